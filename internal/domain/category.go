package domain

// Category groups titles drawn from one knowledge-source listing.
type Category struct {
	ID   int64
	Name string
}

// Title is a single servable fact, named by its knowledge-source title.
// Rating equals LikeCount / ViewCount whenever ViewCount is positive.
type Title struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	LikeCount  float64 `json:"like_count"`
	ViewCount  int64   `json:"view_count"`
}

// UserCategoryRating is one user's running preference score for one category.
type UserCategoryRating struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Score      int64
}

// CategoryCandidate is a category eligible for selection, with the score it
// is weighted by.
type CategoryCandidate struct {
	CategoryID int64
	Score      int64
}
