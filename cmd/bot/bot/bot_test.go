package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jbeshir/procrastination-facts/cmd/bot/client"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

type fakeFactsAPI struct {
	mu         sync.Mutex
	loggedIn   bool
	registered []client.Registration
	rated      []string
	factErr    error
}

func (f *fakeFactsAPI) Register(_ context.Context, reg client.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reg.Username == "taken" {
		return &client.APIError{StatusCode: http.StatusConflict, Message: "This login already exist"}
	}
	f.registered = append(f.registered, reg)
	f.loggedIn = true
	return nil
}

func (f *fakeFactsAPI) Login(_ context.Context, _, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if password != "Secret123" {
		return &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Incorrect login or password"}
	}
	f.loggedIn = true
	return nil
}

func (f *fakeFactsAPI) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = false
	return nil
}

func (f *fakeFactsAPI) RandomFact(context.Context) (client.Fact, error) {
	if f.factErr != nil {
		return client.Fact{}, f.factErr
	}
	return client.Fact{Text: "Ada Lovelace wrote the first program.", TitleName: "Ada Lovelace"}, nil
}

func (f *fakeFactsAPI) RandomRatedFact(_ context.Context, searchType string) (client.Fact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loggedIn {
		return client.Fact{}, &client.APIError{StatusCode: http.StatusUnauthorized, Message: "login required"}
	}
	return client.Fact{Text: "A " + searchType + " fact.", TitleName: "Photon"}, nil
}

func (f *fakeFactsAPI) RateFact(_ context.Context, command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loggedIn {
		return &client.APIError{StatusCode: http.StatusUnauthorized, Message: "login required"}
	}
	f.rated = append(f.rated, command)
	return nil
}

func newTestBot(api TelegramAPI, facts map[int64]*fakeFactsAPI) *Bot {
	var mu sync.Mutex
	next := int64(0)
	return New(api, func() FactsAPI {
		mu.Lock()
		defer mu.Unlock()
		next++
		f := &fakeFactsAPI{}
		if facts != nil {
			facts[next] = f
		}
		return f
	}, Config{MaxInFlight: 2})
}

func TestBot_Reply(t *testing.T) {
	cases := []struct {
		name     string
		steps    [][2]string
		expected string
	}{
		{
			name:     "start_shows_help",
			steps:    [][2]string{{"start", ""}},
			expected: helpText,
		},
		{
			name:     "unrated_fact_without_login",
			steps:    [][2]string{{"fact", ""}},
			expected: "Ada Lovelace\n\nAda Lovelace wrote the first program.",
		},
		{
			name:     "rated_fact_needs_login",
			steps:    [][2]string{{"top", ""}},
			expected: replyLoginRequired,
		},
		{
			name:     "login_then_top",
			steps:    [][2]string{{"login", "reader42 Secret123"}, {"top", ""}},
			expected: "Photon\n\nA top fact.\n\nRate it: /like or /dislike",
		},
		{
			name:     "wrong_password",
			steps:    [][2]string{{"login", "reader42 nope"}},
			expected: "Incorrect login or password",
		},
		{
			name:     "login_usage",
			steps:    [][2]string{{"login", "reader42"}},
			expected: "Usage: /login <username> <password>",
		},
		{
			name:     "register_taken",
			steps:    [][2]string{{"register", "taken Secret123 a@example.com"}},
			expected: "This login already exist",
		},
		{
			name:     "register_then_like",
			steps:    [][2]string{{"register", "reader42 Secret123 a@example.com"}, {"new", ""}, {"like", ""}},
			expected: "Thanks, noted.",
		},
		{
			name:     "logout_forgets_session",
			steps:    [][2]string{{"login", "reader42 Secret123"}, {"logout", ""}, {"new", ""}},
			expected: replyLoginRequired,
		},
		{
			name:     "unknown_command",
			steps:    [][2]string{{"dance", ""}},
			expected: "Unknown command. Send /help to see what I can do.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBot(nil, nil)

			var got string
			for _, step := range tc.steps {
				got = b.reply(testContext(), 100, 555, step[0], step[1])
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestBot_RegisterSendsTelegramID(t *testing.T) {
	facts := map[int64]*fakeFactsAPI{}
	b := newTestBot(nil, facts)

	b.reply(testContext(), 100, 555, "register", "reader42 Secret123 a@example.com")

	require.Len(t, facts, 1)
	require.Len(t, facts[1].registered, 1)
	reg := facts[1].registered[0]
	assert.Equal(t, "Secret123", reg.Repeated)
	require.NotNil(t, reg.TelegramID)
	assert.Equal(t, int64(555), *reg.TelegramID)
}

func TestBot_SessionsArePerChat(t *testing.T) {
	b := newTestBot(nil, nil)
	ctx := testContext()

	b.reply(ctx, 100, 1, "login", "reader42 Secret123")

	assert.Equal(t, "Thanks, noted.", b.reply(ctx, 100, 1, "dislike", ""))
	assert.Equal(t, replyLoginRequired, b.reply(ctx, 200, 2, "dislike", ""))
}

func TestErrorReply(t *testing.T) {
	ctx := testContext()

	assert.Equal(t, replyUnavailable, errorReply(ctx, errors.New("dial tcp: connection refused")))
	assert.Equal(t, replyUnavailable, errorReply(ctx, &client.APIError{StatusCode: http.StatusBadGateway}))
	assert.Equal(t, "no categories available",
		errorReply(ctx, &client.APIError{StatusCode: http.StatusNotFound, Message: "no categories available"}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

type fakeTelegram struct {
	updates chan tgbotapi.Update

	mu      sync.Mutex
	sent    []tgbotapi.MessageConfig
	deleted []int
	stopped bool
}

func (f *fakeTelegram) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeTelegram) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeTelegram) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if del, ok := c.(tgbotapi.DeleteMessageConfig); ok {
		f.deleted = append(f.deleted, del.MessageID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func commandUpdate(messageID int, chatID int64, text string) tgbotapi.Update {
	length := len(text)
	for i, r := range text {
		if r == ' ' {
			length = i
			break
		}
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: messageID,
			From:      &tgbotapi.User{ID: 555},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
		},
	}
}

func TestBot_Run(t *testing.T) {
	tg := &fakeTelegram{updates: make(chan tgbotapi.Update, 4)}
	b := New(tg, func() FactsAPI { return &fakeFactsAPI{} }, Config{MaxInFlight: 1, DeleteSecrets: true})

	tg.updates <- commandUpdate(1, 100, "/fact")
	tg.updates <- commandUpdate(2, 100, "/login reader42 Secret123")
	tg.updates <- tgbotapi.Update{Message: &tgbotapi.Message{MessageID: 3, Chat: &tgbotapi.Chat{ID: 100}, Text: "hello"}}
	close(tg.updates)

	ctx, cancel := context.WithTimeout(testContext(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.Run(ctx))

	tg.mu.Lock()
	defer tg.mu.Unlock()
	require.Len(t, tg.sent, 2)
	texts := []string{tg.sent[0].Text, tg.sent[1].Text}
	assert.ElementsMatch(t, []string{
		"Ada Lovelace\n\nAda Lovelace wrote the first program.",
		"Logged in as reader42.",
	}, texts)
	assert.Equal(t, []int{2}, tg.deleted)
}
