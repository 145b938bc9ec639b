package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/jbeshir/procrastination-facts/internal/datasources/mocks"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

// fixedRand always draws the same index, clamped to the range asked for.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	return min(int(f), n-1)
}

func testSelectionConfig() domain.SelectionConfig {
	return domain.SelectionConfig{
		CandidateCount: 5,
		AverageFormula: domain.AverageFormulaInverted,
		FavouredWeight: 3,
	}
}

func TestSelectCategory_Execute(t *testing.T) {
	fiveRatings := []domain.UserCategoryRating{
		{CategoryID: 1, Score: 9},
		{CategoryID: 2, Score: 5},
		{CategoryID: 3, Score: 2},
		{CategoryID: 4, Score: 1},
		{CategoryID: 5, Score: 0},
	}

	cases := []struct {
		name         string
		searchType   domain.SearchType
		draw         fixedRand
		topRatings   []domain.UserCategoryRating
		zeroRatings  []domain.UserCategoryRating
		listErr      error
		unrated      []int64
		unratedLimit int
		unratedErr   error
		expected     int64
		wantErr      error
	}{
		{
			name:       "top_full_without_backfill",
			searchType: domain.SearchTypeTop,
			topRatings: fiveRatings,
			// inverted average 5/17; every positive score is favoured.
			draw:     12,
			expected: 5,
		},
		{
			name:       "top_backfills_with_unrated",
			searchType: domain.SearchTypeTop,
			topRatings: []domain.UserCategoryRating{{CategoryID: 1, Score: 2}},
			// pool [1 1 1 2 3]
			unrated:      []int64{2, 3},
			unratedLimit: 4,
			draw:         3,
			expected:     2,
		},
		{
			name:         "new_without_history_uses_every_category",
			searchType:   domain.SearchTypeNew,
			unrated:      []int64{1, 2, 3},
			unratedLimit: 5,
			// all scores 0, average 0, every candidate favoured: pool [1 1 1 2 2 2 3 3 3]
			draw:     8,
			expected: 3,
		},
		{
			name:         "new_zero_scores_first",
			searchType:   domain.SearchTypeNew,
			zeroRatings:  []domain.UserCategoryRating{{CategoryID: 4, Score: 0}},
			unrated:      []int64{1},
			unratedLimit: 4,
			draw:         0,
			expected:     4,
		},
		{
			name:         "no_categories",
			searchType:   domain.SearchTypeTop,
			unratedLimit: 5,
			wantErr:      domain.ErrNoCategoriesAvailable,
		},
		{
			name:       "invalid_search_type",
			searchType: domain.SearchType("bottom"),
			wantErr:    domain.ErrInvalidSearchType,
		},
		{
			name:       "list_error",
			searchType: domain.SearchTypeTop,
			listErr:    errors.New("database error"),
			wantErr:    errors.New("database error"),
		},
		{
			name:         "unrated_error",
			searchType:   domain.SearchTypeNew,
			unratedLimit: 5,
			unratedErr:   errors.New("database error"),
			wantErr:      errors.New("database error"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockCategoryCandidateStore(t)

			switch tc.searchType {
			case domain.SearchTypeTop:
				store.EXPECT().ListTopCategoryRatings(mock.Anything, int64(7), 5).Return(tc.topRatings, tc.listErr)
			case domain.SearchTypeNew:
				store.EXPECT().ListZeroScoreCategoryRatings(mock.Anything, int64(7), 5).Return(tc.zeroRatings, tc.listErr)
			}
			if tc.unratedLimit > 0 {
				store.EXPECT().ListUnratedCategoryIDs(mock.Anything, int64(7), tc.unratedLimit).
					Return(tc.unrated, tc.unratedErr)
			}

			cmd := NewSelectCategory(store, testSelectionConfig(), tc.draw)
			got, err := cmd.Execute(testContext(), SelectCategoryRequest{UserID: 7, SearchType: tc.searchType})

			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, domain.ErrNotFound) || errors.Is(tc.wantErr, domain.ErrValidation) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.ErrorContains(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSelectCategory_InvalidCandidateCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		t.Run(fmt.Sprintf("count_%d", count), func(t *testing.T) {
			store := mocks.NewMockCategoryCandidateStore(t)

			cfg := testSelectionConfig()
			cfg.CandidateCount = count

			cmd := NewSelectCategory(store, cfg, fixedRand(0))
			_, err := cmd.Execute(testContext(), SelectCategoryRequest{UserID: 7, SearchType: domain.SearchTypeTop})

			assert.ErrorIs(t, err, domain.ErrInvalidSelectionConfig)
			assert.NotErrorIs(t, err, domain.ErrNoCategoriesAvailable)
		})
	}
}
