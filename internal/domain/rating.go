package domain

// ApplyRating returns the title and user category rating as they stand after
// one rate command. The view count always advances by one, so the new rating
// is always defined. The like count never drops below zero.
func ApplyRating(title Title, rating UserCategoryRating, cmd RateCommand) (Title, UserCategoryRating) {
	delta := cmd.Delta()

	title.ViewCount++
	title.LikeCount += float64(delta)
	if title.LikeCount < 0 {
		title.LikeCount = 0
	}
	title.Rating = title.LikeCount / float64(title.ViewCount)

	rating.Score += delta

	return title, rating
}
