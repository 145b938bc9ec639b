package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/datasources/mysql"
	"github.com/jbeshir/procrastination-facts/internal/datasources/redis"
	"github.com/jbeshir/procrastination-facts/internal/datasources/wikipedia"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/jbeshir/procrastination-facts/internal/transport/web/controller"
	"github.com/jbeshir/procrastination-facts/internal/transport/web/router"
	"github.com/jbeshir/procrastination-facts/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Setup builds the app's components. The returned cleanup func closes the
// store connections and must be called once every component has stopped.
func Setup(ctx context.Context) ([]Component, func(), error) {
	selectionConfig, err := setupSelectionConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	store := mysql.New(db)

	rdb, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	sessionTTL := GetEnvAsDurationOr(ctx, "SESSION_TTL", defaultSessionTTL)
	sessions := redis.NewSessionStore(rdb, sessionTTL)

	cleanup := func() {
		logger := domain.LoggerFromContext(ctx)
		if err := rdb.Close(); err != nil {
			logger.WarnContext(ctx, "closing Redis client", "error", err)
		}
		if err := db.Close(); err != nil {
			logger.WarnContext(ctx, "closing MySQL connection pool", "error", err)
		}
	}

	wiki := SetupWikipediaClient(ctx)

	//nolint:gosec // category and title draws need no cryptographic strength
	rng := domain.NewLockedRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	selectCategoryCmd := command.NewSelectCategory(store, selectionConfig, rng)
	pickTitleCmd := command.NewPickTitle(store, store, rng)
	serveRatedFactCmd := command.NewServeRatedFact(
		selectCategoryCmd,
		pickTitleCmd,
		wiki,
		sessions,
		DefaultServeRatedFactConfig(),
	)

	tlsDisabled := MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED")

	httpRouter, err := router.MakeRouter(
		router.Commands{
			Register:        command.NewRegisterUser(store, sessions, defaultBcryptCost),
			Login:           command.NewLoginUser(store, sessions),
			RandomFact:      command.NewRandomFact(wiki, wiki),
			RandomRatedFact: serveRatedFactCmd,
			RateFact:        command.NewRateFact(store),
		},
		sessions,
		store,
		router.FeedConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			Limit:       GetEnvAsIntOr(ctx, "RSS_FEED_TOP_LIMIT", defaultTopFeedLimit),
			CacheMaxAge: MustGetEnvAsDuration(ctx, "RSS_FEED_TOP_CACHE_MAX_AGE"),
		},
		controller.SessionCookie{
			MaxAge: sessionTTL,
			Secure: !tlsDisabled,
		},
		router.NewAuthMiddleware([]router.AuthValidator{
			router.NewSessionCookieValidator(sessions),
		}),
	)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       tlsDisabled,
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: GetEnvAsStringsOr("HTTP_AUTOCERT_HOSTNAMES", nil),
			Router:            httpRouter,
		},
	}

	if schedule := GetEnvAsStringOr("INGEST_SCHEDULE", ""); schedule != "" {
		components = append(components, &IngestSchedule{
			Schedule: schedule,
			Cmd:      command.NewIngestCategories(wiki, store, store, DefaultIngestCategoriesConfig()),
			Request:  SetupIngestCategoriesRequest(ctx),
		})
	}

	return components, cleanup, nil
}

// SetupWikipediaClient builds the knowledge source client from the environment.
func SetupWikipediaClient(ctx context.Context) *wikipedia.Client {
	return wikipedia.NewClient(
		GetEnvAsStringOr("WIKIPEDIA_API_URL", wikipedia.DefaultAPIURL),
		MustGetEnvAsString(ctx, "WIKIPEDIA_USER_AGENT"),
	)
}

// SetupIngestCategoriesRequest reads which categories to ingest, and how deeply, from the environment.
func SetupIngestCategoriesRequest(ctx context.Context) command.IngestCategoriesRequest {
	req := DefaultIngestCategoriesRequest()
	req.CategoryNames = GetEnvAsStringsOr("INGEST_CATEGORIES", req.CategoryNames)
	req.TitlesPerCategory = GetEnvAsIntOr(ctx, "INGEST_TITLES_PER_CATEGORY", req.TitlesPerCategory)
	return req
}

func setupSelectionConfig(ctx context.Context) (domain.SelectionConfig, error) {
	cfg := DefaultSelectionConfig()
	cfg.CandidateCount = GetEnvAsIntOr(ctx, "CATEGORY_SELECTION_SIZE", cfg.CandidateCount)

	formula, err := domain.ParseAverageFormula(GetEnvAsStringOr("AVERAGE_FORMULA", string(cfg.AverageFormula)))
	if err != nil {
		return domain.SelectionConfig{}, fmt.Errorf("reading AVERAGE_FORMULA: %w", err)
	}
	cfg.AverageFormula = formula

	if err := cfg.Validate(); err != nil {
		return domain.SelectionConfig{}, fmt.Errorf("reading CATEGORY_SELECTION_SIZE: %w", err)
	}

	return cfg, nil
}
