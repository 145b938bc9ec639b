// Package bot serves the Procrastination Facts API to Telegram chats.
package bot

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jbeshir/procrastination-facts/cmd/bot/client"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// maxMessageRunes keeps replies under Telegram's 4096 character limit.
const maxMessageRunes = 4000

// TelegramAPI is the subset of *tgbotapi.BotAPI the bot uses.
type TelegramAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// FactsAPI is one chat's session with the facts API.
type FactsAPI interface {
	Register(ctx context.Context, reg client.Registration) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	RandomFact(ctx context.Context) (client.Fact, error)
	RandomRatedFact(ctx context.Context, searchType string) (client.Fact, error)
	RateFact(ctx context.Context, command string) error
}

var _ FactsAPI = (*client.Client)(nil)

// Config holds bot configuration.
type Config struct {
	MaxInFlight   int
	UpdateTimeout int
	DeleteSecrets bool
}

// Bot relays chat commands to the facts API, holding one API session per chat.
type Bot struct {
	api       TelegramAPI
	newClient func() FactsAPI
	config    Config

	mu       sync.Mutex
	sessions map[int64]FactsAPI

	inflight chan struct{}
}

// New creates a bot. newClient is called once per chat to create its API session.
func New(api TelegramAPI, newClient func() FactsAPI, config Config) *Bot {
	maxInFlight := config.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 16
	}

	return &Bot{
		api:       api,
		newClient: newClient,
		config:    config,
		sessions:  make(map[int64]FactsAPI),
		inflight:  make(chan struct{}, maxInFlight),
	}
}

// Run polls for updates until ctx ends.
func (b *Bot) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	logger.InfoContext(ctx, "bot started", "max_inflight", cap(b.inflight))

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "bot stopping")
			b.api.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}

			b.inflight <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.Chat == nil || !message.IsCommand() {
		return
	}

	logger := domain.LoggerFromContext(ctx).With("chat_id", message.Chat.ID, "command", message.Command())
	ctx = domain.ContextWithLogger(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "panic while handling update", "panic", r)
		}
	}()

	var fromID int64
	if message.From != nil {
		fromID = message.From.ID
	}

	reply := b.reply(ctx, message.Chat.ID, fromID, message.Command(), message.CommandArguments())

	if b.config.DeleteSecrets && carriesPassword(message.Command()) {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID)); err != nil {
			logger.WarnContext(ctx, "unable to delete message containing a password", "error", err)
		}
	}

	if reply == "" {
		return
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(message.Chat.ID, truncate(reply, maxMessageRunes))); err != nil {
		logger.ErrorContext(ctx, "unable to send reply", "error", err)
	}
}

func (b *Bot) session(chatID int64) FactsAPI {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[chatID]
	if !ok {
		s = b.newClient()
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) endSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, chatID)
}

func carriesPassword(command string) bool {
	return command == "login" || command == "register"
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:maxRunes-1])) + "…"
}
