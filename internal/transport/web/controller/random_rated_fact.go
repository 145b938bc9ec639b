package controller

import (
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

type RandomRatedFactResponse struct {
	RandomRatedFact string `json:"random_rated_fact"`
	TitleName       string `json:"title_name"`
}

// RandomRatedFact handles GET /random_rated_fact?search_type=new|top.
// The served title is remembered in the session so it can be rated next.
type RandomRatedFact struct {
	ServeCmd command.Command[command.ServeRatedFactRequest, domain.Fact]
}

func (c RandomRatedFact) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	session, ok := domain.SessionFromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	searchType, err := domain.ParseSearchType(r.URL.Query().Get("search_type"))
	if err != nil {
		writeError(ctx, w, "invalid search type", err)
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("user_id", session.UserID, "search_type", searchType))

	fact, err := c.ServeCmd.Execute(ctx, command.ServeRatedFactRequest{
		Session:    session,
		SearchType: searchType,
	})
	if err != nil {
		writeError(ctx, w, "unable to serve rated fact", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, RandomRatedFactResponse{
		RandomRatedFact: fact.Text,
		TitleName:       fact.TitleName,
	})
}
