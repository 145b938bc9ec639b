// Command bot serves facts to Telegram chats through the Procrastination Facts API.
//
// Configuration:
//
//	TELEGRAM_BOT_TOKEN - bot token from BotFather (required)
//	FACTS_API_URL      - base URL of the facts API (required)
//	BOT_MAX_INFLIGHT   - updates handled concurrently (default 16)
//	LOG_LEVEL          - slog level (default INFO)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jbeshir/procrastination-facts/cmd/bot/bot"
	"github.com/jbeshir/procrastination-facts/cmd/bot/client"
	"github.com/jbeshir/procrastination-facts/internal/app"
	"github.com/jbeshir/procrastination-facts/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
		logger.ErrorContext(ctx, "bot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	api, err := tgbotapi.NewBotAPI(app.MustGetEnvAsString(ctx, "TELEGRAM_BOT_TOKEN"))
	if err != nil {
		return fmt.Errorf("connecting to Telegram: %w", err)
	}

	apiURL := app.MustGetEnvAsString(ctx, "FACTS_API_URL")

	b := bot.New(api, func() bot.FactsAPI {
		return client.NewClient(apiURL)
	}, bot.Config{
		MaxInFlight:   app.GetEnvAsIntOr(ctx, "BOT_MAX_INFLIGHT", 16),
		UpdateTimeout: 60,
		DeleteSecrets: true,
	})

	return b.Run(ctx)
}
