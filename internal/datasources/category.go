package datasources

import (
	"context"

	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// CategoryIDLister lists every known category id in ascending order.
type CategoryIDLister interface {
	ListCategoryIDs(ctx context.Context) ([]int64, error)
}

// TopCategoryRatingLister lists a user's non-negative category ratings, highest score first.
type TopCategoryRatingLister interface {
	ListTopCategoryRatings(ctx context.Context, userID int64, limit int) ([]domain.UserCategoryRating, error)
}

// ZeroScoreCategoryRatingLister lists a user's category ratings whose score is exactly zero.
type ZeroScoreCategoryRatingLister interface {
	ListZeroScoreCategoryRatings(ctx context.Context, userID int64, limit int) ([]domain.UserCategoryRating, error)
}

// UnratedCategoryIDLister lists categories the user has no rating row for, ascending by id.
type UnratedCategoryIDLister interface {
	ListUnratedCategoryIDs(ctx context.Context, userID int64, limit int) ([]int64, error)
}

type TitleCounter interface {
	CountTitles(ctx context.Context, categoryID int64) (int64, error)
}

// TitleAtGetter returns the title at a zero-based offset in id order within a category.
// Returns domain.ErrTitleNotFound if there is no title at that offset.
type TitleAtGetter interface {
	GetTitleAt(ctx context.Context, categoryID int64, offset int64) (domain.Title, error)
}

// TopRatedTitleLister lists viewed titles by rating, highest first.
type TopRatedTitleLister interface {
	ListTopRatedTitles(ctx context.Context, limit int) ([]domain.Title, error)
}

// CategoryTitlesAppender creates the category if needed and adds any titles
// it does not already have. Returns the number of titles inserted.
type CategoryTitlesAppender interface {
	AppendCategoryTitles(ctx context.Context, categoryName string, titleNames []string) (int64, error)
}

// TitleRatingApplier applies one rate command to a title and the user's
// rating for its category as a single atomic unit.
type TitleRatingApplier interface {
	ApplyTitleRating(
		ctx context.Context, userID, titleID int64, cmd domain.RateCommand,
	) (domain.Title, domain.UserCategoryRating, error)
}

// CategoryCandidateStore is everything the category selector reads.
type CategoryCandidateStore interface {
	TopCategoryRatingLister
	ZeroScoreCategoryRatingLister
	UnratedCategoryIDLister
}

// CategoryRepository combines all category and title operations.
type CategoryRepository interface {
	CategoryIDLister
	CategoryCandidateStore
	TitleCounter
	TitleAtGetter
	TopRatedTitleLister
	CategoryTitlesAppender
	TitleRatingApplier
}
