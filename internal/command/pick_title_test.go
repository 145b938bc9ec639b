package command

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/jbeshir/procrastination-facts/internal/datasources/mocks"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickTitle_Execute(t *testing.T) {
	titleB := domain.Title{ID: 12, CategoryID: 1, Name: "B"}

	cases := []struct {
		name       string
		count      int64
		countErr   error
		draw       fixedRand
		wantOffset int64
		title      domain.Title
		getErr     error
		skipGet    bool
		expected   domain.Title
		wantErr    error
	}{
		{
			name:       "picks_title_at_drawn_offset",
			count:      2,
			draw:       1,
			wantOffset: 1,
			title:      titleB,
			expected:   titleB,
		},
		{
			name:       "single_title_boundary",
			count:      1,
			draw:       5,
			wantOffset: 0,
			title:      titleB,
			expected:   titleB,
		},
		{
			name:    "empty_category",
			count:   0,
			skipGet: true,
			wantErr: domain.ErrCategoryEmpty,
		},
		{
			name:       "title_vanished",
			count:      3,
			draw:       2,
			wantOffset: 2,
			getErr:     domain.ErrTitleNotFound,
			wantErr:    domain.ErrCategoryEmpty,
		},
		{
			name:     "count_error",
			countErr: errors.New("database error"),
			skipGet:  true,
			wantErr:  errors.New("database error"),
		},
		{
			name:       "wrong_category",
			count:      1,
			wantOffset: 0,
			title:      domain.Title{ID: 13, CategoryID: 2, Name: "C"},
			wantErr:    errors.New("belongs to category 2"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockTitleCounter(t)
			getter := mocks.NewMockTitleAtGetter(t)

			counter.EXPECT().CountTitles(mock.Anything, int64(1)).Return(tc.count, tc.countErr)
			if !tc.skipGet {
				getter.EXPECT().GetTitleAt(mock.Anything, int64(1), tc.wantOffset).Return(tc.title, tc.getErr)
			}

			cmd := NewPickTitle(counter, getter, tc.draw)
			got, err := cmd.Execute(testContext(), PickTitleRequest{CategoryID: 1})

			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, domain.ErrNotFound) {
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

func TestPickTitle_OffsetsStayInRange(t *testing.T) {
	counter := mocks.NewMockTitleCounter(t)
	getter := mocks.NewMockTitleAtGetter(t)

	counter.EXPECT().CountTitles(mock.Anything, int64(4)).Return(int64(3), nil)
	getter.EXPECT().GetTitleAt(mock.Anything, int64(4), mock.Anything).
		RunAndReturn(func(_ context.Context, categoryID int64, offset int64) (domain.Title, error) {
			assert.GreaterOrEqual(t, offset, int64(0))
			assert.Less(t, offset, int64(3))
			return domain.Title{ID: 100 + offset, CategoryID: categoryID}, nil
		})

	rng := rand.New(rand.NewPCG(3, 3)) //nolint:gosec // weak random is fine for tests
	cmd := NewPickTitle(counter, getter, rng)

	seen := map[int64]bool{}
	for range 200 {
		title, err := cmd.Execute(testContext(), PickTitleRequest{CategoryID: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(4), title.CategoryID)
		seen[title.ID] = true
	}
	assert.Len(t, seen, 3)
}
