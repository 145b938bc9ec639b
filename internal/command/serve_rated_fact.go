package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// ServeRatedFactRequest is the request for the ServeRatedFact command.
type ServeRatedFactRequest struct {
	Session    domain.Session
	SearchType domain.SearchType
}

// ServeRatedFactConfig holds configuration for serving rated facts.
type ServeRatedFactConfig struct {
	// MaxAttempts bounds how many categories are tried when drawn categories turn out empty.
	MaxAttempts int
}

// ServeRatedFact selects a category, picks a title from it, resolves the
// title to text, and records the title in the session so it can be rated.
type ServeRatedFact struct {
	SelectCmd     Command[SelectCategoryRequest, int64]
	PickCmd       Command[PickTitleRequest, domain.Title]
	Describer     datasources.TitleDescriber
	PointerSetter datasources.LastServedTitleSetter
	Config        ServeRatedFactConfig
}

// NewServeRatedFact creates a properly initialized ServeRatedFact command.
func NewServeRatedFact(
	selectCmd Command[SelectCategoryRequest, int64],
	pickCmd Command[PickTitleRequest, domain.Title],
	describer datasources.TitleDescriber,
	pointerSetter datasources.LastServedTitleSetter,
	config ServeRatedFactConfig,
) *ServeRatedFact {
	return &ServeRatedFact{
		SelectCmd:     selectCmd,
		PickCmd:       pickCmd,
		Describer:     describer,
		PointerSetter: pointerSetter,
		Config:        config,
	}
}

func (c *ServeRatedFact) Execute(ctx context.Context, req ServeRatedFactRequest) (domain.Fact, error) {
	title, err := c.drawTitle(ctx, req)
	if err != nil {
		return domain.Fact{}, err
	}

	text, err := c.Describer.DescribeTitle(ctx, title.Name)
	if err != nil {
		return domain.Fact{}, fmt.Errorf("describing title [%s]: %w", title.Name, err)
	}

	if err := c.PointerSetter.SetLastServedTitle(ctx, req.Session.ID, title.ID); err != nil {
		return domain.Fact{}, fmt.Errorf("recording served title: %w", err)
	}

	return domain.Fact{Text: text, TitleName: title.Name}, nil
}

func (c *ServeRatedFact) drawTitle(ctx context.Context, req ServeRatedFactRequest) (domain.Title, error) {
	logger := domain.LoggerFromContext(ctx)

	attempts := max(c.Config.MaxAttempts, 1)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		categoryID, err := c.SelectCmd.Execute(ctx, SelectCategoryRequest{
			UserID:     req.Session.UserID,
			SearchType: req.SearchType,
		})
		if err != nil {
			return domain.Title{}, err
		}

		title, err := c.PickCmd.Execute(ctx, PickTitleRequest{CategoryID: categoryID})
		if errors.Is(err, domain.ErrCategoryEmpty) {
			logger.WarnContext(ctx, "drew empty category, retrying",
				"category_id", categoryID, "attempt", attempt, "error", err)
			lastErr = err
			continue
		}
		if err != nil {
			return domain.Title{}, err
		}

		return title, nil
	}

	return domain.Title{}, fmt.Errorf("no title after %d attempts: %w", attempts, lastErr)
}
