package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRating(t *testing.T) {
	cases := []struct {
		name           string
		title          Title
		score          int64
		cmd            RateCommand
		expectedTitle  Title
		expectedScore  int64
		expectedRating float64
	}{
		{
			name:           "like_unviewed_title",
			title:          Title{ID: 2, CategoryID: 1, Name: "B"},
			cmd:            RateCommandLike,
			expectedTitle:  Title{ID: 2, CategoryID: 1, Name: "B", LikeCount: 1, ViewCount: 1, Rating: 1},
			expectedScore:  1,
			expectedRating: 1,
		},
		{
			name:           "like_viewed_title",
			title:          Title{ID: 1, CategoryID: 1, Name: "A", LikeCount: 4, ViewCount: 10, Rating: 0.4},
			score:          2,
			cmd:            RateCommandLike,
			expectedTitle:  Title{ID: 1, CategoryID: 1, Name: "A", LikeCount: 5, ViewCount: 11, Rating: 5.0 / 11},
			expectedScore:  3,
			expectedRating: 5.0 / 11,
		},
		{
			name:           "dislike_viewed_title",
			title:          Title{ID: 1, CategoryID: 1, Name: "A", LikeCount: 4, ViewCount: 10, Rating: 0.4},
			score:          0,
			cmd:            RateCommandDislike,
			expectedTitle:  Title{ID: 1, CategoryID: 1, Name: "A", LikeCount: 3, ViewCount: 11, Rating: 3.0 / 11},
			expectedScore:  -1,
			expectedRating: 3.0 / 11,
		},
		{
			name:           "dislike_unviewed_title_floors_likes",
			title:          Title{ID: 2, CategoryID: 1, Name: "B"},
			score:          -4,
			cmd:            RateCommandDislike,
			expectedTitle:  Title{ID: 2, CategoryID: 1, Name: "B", LikeCount: 0, ViewCount: 1, Rating: 0},
			expectedScore:  -5,
			expectedRating: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rating := UserCategoryRating{UserID: 9, CategoryID: tc.title.CategoryID, Score: tc.score}

			title, updated := ApplyRating(tc.title, rating, tc.cmd)

			assert.Equal(t, tc.expectedTitle.ViewCount, title.ViewCount)
			assert.InDelta(t, tc.expectedTitle.LikeCount, title.LikeCount, 1e-9)
			assert.InDelta(t, tc.expectedRating, title.Rating, 1e-9)
			assert.InDelta(t, title.LikeCount/float64(title.ViewCount), title.Rating, 1e-9)
			assert.GreaterOrEqual(t, title.LikeCount, 0.0)
			assert.LessOrEqual(t, title.LikeCount, float64(title.ViewCount))
			assert.Equal(t, tc.expectedScore, updated.Score)
			assert.Equal(t, tc.title.ID, title.ID)
		})
	}
}

func TestApplyRating_NotIdempotent(t *testing.T) {
	title := Title{ID: 1, LikeCount: 4, ViewCount: 10}
	rating := UserCategoryRating{}

	title, rating = ApplyRating(title, rating, RateCommandLike)
	title, rating = ApplyRating(title, rating, RateCommandLike)

	assert.InDelta(t, 6.0, title.LikeCount, 1e-9)
	assert.Equal(t, int64(12), title.ViewCount)
	assert.Equal(t, int64(2), rating.Score)
}
