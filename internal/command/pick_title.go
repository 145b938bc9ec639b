package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// PickTitleRequest is the request for the PickTitle command.
type PickTitleRequest struct {
	CategoryID int64
}

// PickTitle draws a uniformly random title from a category.
type PickTitle struct {
	Counter datasources.TitleCounter
	Getter  datasources.TitleAtGetter
	Rand    domain.RandomSource
}

// NewPickTitle creates a properly initialized PickTitle command.
func NewPickTitle(
	counter datasources.TitleCounter,
	getter datasources.TitleAtGetter,
	rng domain.RandomSource,
) *PickTitle {
	return &PickTitle{
		Counter: counter,
		Getter:  getter,
		Rand:    rng,
	}
}

// Execute returns domain.ErrCategoryEmpty if the category has no titles, or
// if the drawn title disappears before it can be read.
func (c *PickTitle) Execute(ctx context.Context, req PickTitleRequest) (domain.Title, error) {
	count, err := c.Counter.CountTitles(ctx, req.CategoryID)
	if err != nil {
		return domain.Title{}, fmt.Errorf("counting titles: %w", err)
	}
	if count <= 0 {
		return domain.Title{}, fmt.Errorf("%w: category %d", domain.ErrCategoryEmpty, req.CategoryID)
	}

	offset := int64(c.Rand.IntN(int(count)))

	title, err := c.Getter.GetTitleAt(ctx, req.CategoryID, offset)
	if errors.Is(err, domain.ErrTitleNotFound) {
		return domain.Title{}, fmt.Errorf("%w: category %d shrank below offset %d",
			domain.ErrCategoryEmpty, req.CategoryID, offset)
	}
	if err != nil {
		return domain.Title{}, fmt.Errorf("fetching title: %w", err)
	}
	if title.CategoryID != req.CategoryID {
		return domain.Title{}, fmt.Errorf("title %d belongs to category %d, not %d",
			title.ID, title.CategoryID, req.CategoryID)
	}

	return title, nil
}
