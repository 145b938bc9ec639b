package command

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// IngestCategoriesRequest is the request for the IngestCategories command.
type IngestCategoriesRequest struct {
	CategoryNames     []string
	TitlesPerCategory int
}

// IngestCategoriesResult reports how many new titles each category gained,
// and how many categories the store holds afterwards.
type IngestCategoriesResult struct {
	Inserted         map[string]int64
	StoredCategories int
}

// IngestCategoriesConfig holds configuration for category ingestion.
type IngestCategoriesConfig struct {
	Concurrency int
}

// IngestCategories pulls article names for each category from the knowledge
// source and appends the ones not yet stored. Categories are processed
// independently; a failure in one does not stop the others.
// A run that leaves the store with no categories at all is an error, as
// rated facts cannot be served from it.
type IngestCategories struct {
	Members    datasources.CategoryMemberLister
	Appender   datasources.CategoryTitlesAppender
	Categories datasources.CategoryIDLister
	Config     IngestCategoriesConfig
}

// NewIngestCategories creates a properly initialized IngestCategories command.
func NewIngestCategories(
	members datasources.CategoryMemberLister,
	appender datasources.CategoryTitlesAppender,
	categories datasources.CategoryIDLister,
	config IngestCategoriesConfig,
) *IngestCategories {
	return &IngestCategories{
		Members:    members,
		Appender:   appender,
		Categories: categories,
		Config:     config,
	}
}

func (c *IngestCategories) Execute(ctx context.Context, req IngestCategoriesRequest) (IngestCategoriesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	var g errgroup.Group
	g.SetLimit(max(c.Config.Concurrency, 1))

	var mu sync.Mutex
	result := IngestCategoriesResult{Inserted: make(map[string]int64, len(req.CategoryNames))}
	errs := make([]error, len(req.CategoryNames))

	for i, name := range req.CategoryNames {
		g.Go(func() error {
			inserted, err := c.ingestCategory(ctx, name, req.TitlesPerCategory)
			if err != nil {
				logger.ErrorContext(ctx, "failed to ingest category", "category", name, "error", err)
				errs[i] = fmt.Errorf("ingesting [%s]: %w", name, err)
				return nil
			}

			logger.InfoContext(ctx, "ingested category", "category", name, "inserted", inserted)

			mu.Lock()
			result.Inserted[name] = inserted
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	ids, err := c.Categories.ListCategoryIDs(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("counting stored categories: %w", err))
	case len(ids) == 0:
		errs = append(errs, fmt.Errorf("after ingestion: %w", domain.ErrNoCategoriesAvailable))
	}
	result.StoredCategories = len(ids)

	return result, errors.Join(errs...)
}

func (c *IngestCategories) ingestCategory(ctx context.Context, name string, limit int) (int64, error) {
	titles, err := c.Members.ListCategoryMembers(ctx, name, limit)
	if err != nil {
		return 0, fmt.Errorf("listing members: %w", err)
	}

	inserted, err := c.Appender.AppendCategoryTitles(ctx, name, titles)
	if err != nil {
		return 0, fmt.Errorf("storing titles: %w", err)
	}

	return inserted, nil
}
