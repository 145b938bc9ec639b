package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// RateFactRequest is the request for the RateFact command.
type RateFactRequest struct {
	Session domain.Session
	Command domain.RateCommand
}

// RateFact applies a like or dislike to the title last served in the session.
// It is not idempotent: each call counts as another view.
type RateFact struct {
	Applier datasources.TitleRatingApplier
}

// NewRateFact creates a properly initialized RateFact command.
func NewRateFact(applier datasources.TitleRatingApplier) *RateFact {
	return &RateFact{Applier: applier}
}

func (c *RateFact) Execute(ctx context.Context, req RateFactRequest) (Empty, error) {
	if req.Session.LastServedTitleID == nil {
		return Empty{}, domain.ErrNoServedTitle
	}
	titleID := *req.Session.LastServedTitleID

	title, rating, err := c.Applier.ApplyTitleRating(ctx, req.Session.UserID, titleID, req.Command)
	if err != nil {
		return Empty{}, fmt.Errorf("applying %s to title %d: %w", req.Command, titleID, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "rated fact",
		"title_id", title.ID,
		"command", req.Command,
		"like_count", title.LikeCount,
		"view_count", title.ViewCount,
		"category_id", rating.CategoryID,
		"score", rating.Score)

	return Empty{}, nil
}
