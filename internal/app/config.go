package app

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// DefaultSelectionConfig returns the default category selection policy.
func DefaultSelectionConfig() domain.SelectionConfig {
	return domain.SelectionConfig{
		CandidateCount: 5,
		AverageFormula: domain.AverageFormulaInverted,
		FavouredWeight: 3,
	}
}

// DefaultServeRatedFactConfig returns the default config for serving rated facts.
func DefaultServeRatedFactConfig() command.ServeRatedFactConfig {
	return command.ServeRatedFactConfig{
		MaxAttempts: 3,
	}
}

// DefaultIngestCategoriesConfig returns the default config for category ingestion.
func DefaultIngestCategoriesConfig() command.IngestCategoriesConfig {
	return command.IngestCategoriesConfig{
		Concurrency: 2,
	}
}

// DefaultCategoryNames are the Wikipedia categories facts are drawn from.
func DefaultCategoryNames() []string {
	return []string{
		"Category:Physics",
		"Category:Chemistry",
		"Category:Biology",
		"Category:History",
		"Category:Information and communications technology",
	}
}

const (
	defaultTitlesPerCategory = 200
	defaultSessionTTL        = 30 * 24 * time.Hour
	defaultBcryptCost        = bcrypt.DefaultCost
	defaultTopFeedLimit      = 50
)

// DefaultIngestCategoriesRequest returns the request used when ingestion is not configured explicitly.
func DefaultIngestCategoriesRequest() command.IngestCategoriesRequest {
	return command.IngestCategoriesRequest{
		CategoryNames:     DefaultCategoryNames(),
		TitlesPerCategory: defaultTitlesPerCategory,
	}
}
