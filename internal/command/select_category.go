package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// SelectCategoryRequest is the request for the SelectCategory command.
type SelectCategoryRequest struct {
	UserID     int64
	SearchType domain.SearchType
}

// SelectCategory picks the category the next rated fact is drawn from.
// In "top" mode candidates are the user's best non-negative categories, in
// "new" mode their zero-score ones; both are backfilled with categories the
// user has never rated, which count as score 0.
type SelectCategory struct {
	Store  datasources.CategoryCandidateStore
	Config domain.SelectionConfig
	Rand   domain.RandomSource
}

// NewSelectCategory creates a properly initialized SelectCategory command.
func NewSelectCategory(
	store datasources.CategoryCandidateStore,
	config domain.SelectionConfig,
	rng domain.RandomSource,
) *SelectCategory {
	return &SelectCategory{
		Store:  store,
		Config: config,
		Rand:   rng,
	}
}

func (c *SelectCategory) Execute(ctx context.Context, req SelectCategoryRequest) (int64, error) {
	if err := c.Config.Validate(); err != nil {
		return 0, err
	}

	candidates, err := c.candidates(ctx, req)
	if err != nil {
		return 0, err
	}

	categoryID, err := domain.SelectCategory(candidates, c.Config, c.Rand)
	if err != nil {
		return 0, fmt.Errorf("selecting category for user %d: %w", req.UserID, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "selected category",
		"category_id", categoryID, "candidates", len(candidates), "search_type", req.SearchType)

	return categoryID, nil
}

func (c *SelectCategory) candidates(ctx context.Context, req SelectCategoryRequest) ([]domain.CategoryCandidate, error) {
	limit := c.Config.CandidateCount

	var ratings []domain.UserCategoryRating
	var err error
	switch req.SearchType {
	case domain.SearchTypeTop:
		ratings, err = c.Store.ListTopCategoryRatings(ctx, req.UserID, limit)
	case domain.SearchTypeNew:
		ratings, err = c.Store.ListZeroScoreCategoryRatings(ctx, req.UserID, limit)
	default:
		return nil, fmt.Errorf("%w: got [%s]", domain.ErrInvalidSearchType, req.SearchType)
	}
	if err != nil {
		return nil, fmt.Errorf("listing rated categories: %w", err)
	}

	candidates := make([]domain.CategoryCandidate, 0, limit)
	for _, r := range ratings {
		candidates = append(candidates, domain.CategoryCandidate{CategoryID: r.CategoryID, Score: r.Score})
	}

	if len(candidates) >= limit {
		return candidates[:limit], nil
	}

	unrated, err := c.Store.ListUnratedCategoryIDs(ctx, req.UserID, limit-len(candidates))
	if err != nil {
		return nil, fmt.Errorf("listing unrated categories: %w", err)
	}
	for _, id := range unrated {
		candidates = append(candidates, domain.CategoryCandidate{CategoryID: id, Score: 0})
	}

	return candidates, nil
}
