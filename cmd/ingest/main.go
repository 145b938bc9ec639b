package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/procrastination-facts/internal/app"
	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/datasources/mysql"
	"github.com/jbeshir/procrastination-facts/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "category ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "category ingestion completed successfully")
}

func run(ctx context.Context) error {
	mysqlURI := os.Getenv("MYSQL_URI")
	if mysqlURI == "" {
		return fmt.Errorf("MYSQL_URI environment variable is required")
	}
	if os.Getenv("WIKIPEDIA_USER_AGENT") == "" {
		return fmt.Errorf("WIKIPEDIA_USER_AGENT environment variable is required")
	}

	db, err := mysql.Connect(ctx, mysqlURI)
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	store := mysql.New(db)
	wiki := app.SetupWikipediaClient(ctx)

	ingestCmd := command.NewIngestCategories(wiki, store, store, app.DefaultIngestCategoriesConfig())

	result, err := ingestCmd.Execute(ctx, app.SetupIngestCategoriesRequest(ctx))
	logger := domain.LoggerFromContext(ctx)
	for name, inserted := range result.Inserted {
		logger.InfoContext(ctx, "category ingested", "category", name, "inserted", inserted)
	}
	logger.InfoContext(ctx, "categories stored", "count", result.StoredCategories)
	return err
}
