package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/jbeshir/procrastination-facts/internal/transport/web/controller"
)

// Commands holds the commands served over HTTP.
type Commands struct {
	Register        command.Command[domain.Registration, domain.Session]
	Login           command.Command[command.LoginUserRequest, domain.Session]
	RandomFact      command.Command[command.Empty, domain.Fact]
	RandomRatedFact command.Command[command.ServeRatedFactRequest, domain.Fact]
	RateFact        command.Command[command.RateFactRequest, command.Empty]
}

// FeedConfig describes the top rated RSS feed.
type FeedConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
	Limit       int
	CacheMaxAge time.Duration
}

func MakeRouter(
	cmds Commands,
	sessions datasources.SessionDeleter,
	titles datasources.TopRatedTitleLister,
	feed FeedConfig,
	cookie controller.SessionCookie,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/registration", controller.Registration{
		RegisterCmd: cmds.Register,
		Cookie:      cookie,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/login", controller.Login{
		LoginCmd: cmds.Login,
		Cookie:   cookie,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/logout", requireAuthMiddleware(controller.Logout{
		Deleter: sessions,
		Cookie:  cookie,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/random_fact", controller.RandomFact{
		FactCmd: cmds.RandomFact,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/random_rated_fact", requireAuthMiddleware(controller.RandomRatedFact{
		ServeCmd: cmds.RandomRatedFact,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rate_fact", requireAuthMiddleware(controller.RateFact{
		RateCmd: cmds.RateFact,
	})).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    feed.BaseURL,
			FeedPath:        "/rss/top",
			FeedAuthorName:  feed.AuthorName,
			FeedAuthorEmail: feed.AuthorEmail,
			Lister:          titles,
			Limit:           feed.Limit,
			CacheMaxAge:     feed.CacheMaxAge,
		},
	}

	for _, f := range rssFeeds {
		r.Handle(f.FeedPath, f).Methods(http.MethodGet, http.MethodOptions)
	}

	return r, nil
}
