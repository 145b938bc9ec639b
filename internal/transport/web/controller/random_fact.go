package controller

import (
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

type RandomFactResponse struct {
	RandomFact string `json:"random_fact"`
	TitleName  string `json:"title_name"`
}

// RandomFact handles GET /random_fact. It needs no session.
type RandomFact struct {
	FactCmd command.Command[command.Empty, domain.Fact]
}

func (c RandomFact) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fact, err := c.FactCmd.Execute(ctx, command.Empty{})
	if err != nil {
		writeError(ctx, w, "unable to get random fact", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, RandomFactResponse{
		RandomFact: fact.Text,
		TitleName:  fact.TitleName,
	})
}
