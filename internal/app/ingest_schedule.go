package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// IngestSchedule runs category ingestion on a cron schedule until its context ends.
type IngestSchedule struct {
	Schedule string
	Location *time.Location
	Cmd      command.Command[command.IngestCategoriesRequest, command.IngestCategoriesResult]
	Request  command.IngestCategoriesRequest
}

func (s *IngestSchedule) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx).With("schedule", s.Schedule)
	ctx = domain.ContextWithLogger(ctx, logger)

	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(s.Schedule, func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("scheduling ingestion [%s]: %w", s.Schedule, err)
	}

	logger.InfoContext(ctx, "starting scheduled ingestion")
	c.Start()

	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	return nil
}

func (s *IngestSchedule) runOnce(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	result, err := s.Cmd.Execute(ctx, s.Request)
	if err != nil {
		logger.ErrorContext(ctx, "scheduled ingestion finished with errors", "error", err)
	}

	var total int64
	for _, n := range result.Inserted {
		total += n
	}
	logger.InfoContext(ctx, "scheduled ingestion finished",
		"categories", len(result.Inserted), "inserted", total, "stored_categories", result.StoredCategories)
}
