package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jbeshir/procrastination-facts/cmd/bot/client"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

const helpText = `Hi! I serve random facts for when you should be doing something else.

/fact - a random fact
/register <username> <password> <email> - create an account
/login <username> <password> - log in
/new - a fact from a category you haven't rated yet
/top - a fact from a category you like
/like, /dislike - rate the last /new or /top fact
/logout - log out`

const (
	replyLoginRequired = "Please /login or /register first."
	replyUnavailable   = "Facts are unavailable right now, please try again later."
)

// reply runs one chat command and returns the text to send back.
func (b *Bot) reply(ctx context.Context, chatID, fromID int64, command, args string) string {
	fields := strings.Fields(args)

	switch command {
	case "start", "help":
		return helpText

	case "fact":
		fact, err := b.session(chatID).RandomFact(ctx)
		if err != nil {
			return errorReply(ctx, err)
		}
		return formatFact(fact)

	case "register":
		if len(fields) != 3 {
			return "Usage: /register <username> <password> <email>"
		}
		reg := client.Registration{
			Username: fields[0],
			Password: fields[1],
			Repeated: fields[1],
			Email:    fields[2],
		}
		if fromID != 0 {
			reg.TelegramID = &fromID
		}
		if err := b.session(chatID).Register(ctx, reg); err != nil {
			return errorReply(ctx, err)
		}
		return fmt.Sprintf("Welcome, %s! Try /new for your first fact.", reg.Username)

	case "login":
		if len(fields) != 2 {
			return "Usage: /login <username> <password>"
		}
		if err := b.session(chatID).Login(ctx, fields[0], fields[1]); err != nil {
			return errorReply(ctx, err)
		}
		return fmt.Sprintf("Logged in as %s.", fields[0])

	case "logout":
		err := b.session(chatID).Logout(ctx)
		b.endSession(chatID)
		if err != nil && !client.IsUnauthorized(err) {
			return errorReply(ctx, err)
		}
		return "Logged out."

	case "new", "top":
		fact, err := b.session(chatID).RandomRatedFact(ctx, command)
		if err != nil {
			return errorReply(ctx, err)
		}
		return formatFact(fact) + "\n\nRate it: /like or /dislike"

	case "like", "dislike":
		rateCommand := "Like"
		if command == "dislike" {
			rateCommand = "Dislike"
		}
		if err := b.session(chatID).RateFact(ctx, rateCommand); err != nil {
			return errorReply(ctx, err)
		}
		return "Thanks, noted."

	default:
		return "Unknown command. Send /help to see what I can do."
	}
}

func formatFact(fact client.Fact) string {
	if fact.TitleName == "" {
		return fact.Text
	}
	return fact.TitleName + "\n\n" + fact.Text
}

// errorReply turns an API error into something to show the user.
func errorReply(ctx context.Context, err error) string {
	logger := domain.LoggerFromContext(ctx)

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorContext(ctx, "unable to reach facts API", "error", err)
		return replyUnavailable
	}

	logger.WarnContext(ctx, "facts API returned an error", "status", apiErr.StatusCode, "error", err)

	switch {
	case apiErr.StatusCode == http.StatusUnauthorized && apiErr.Message == "login required":
		return replyLoginRequired
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return replyUnavailable
	case apiErr.Message != "":
		return apiErr.Message
	default:
		return replyUnavailable
	}
}
