package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// DefaultArticleBaseURL is where feed items link to for their full article.
const DefaultArticleBaseURL = "https://en.wikipedia.org/wiki/"

// RSS serves the highest rated titles as an RSS feed.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	ArticleBaseURL  string
	Lister          datasources.TopRatedTitleLister
	Limit           int
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Procrastination Facts: Top Rated",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "The facts readers liked most",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	titles, err := c.Lister.ListTopRatedTitles(r.Context(), c.Limit)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch titles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, t := range titles {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(t.ID, 10),
			IsPermaLink: "false",
			Title:       t.Name,
			Link:        &feeds.Link{Href: c.articleLink(t.Name)},
			Description: fmt.Sprintf("Rated %.0f%% from %d views", t.Rating*100, t.ViewCount),
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func (c RSS) articleLink(titleName string) string {
	base := c.ArticleBaseURL
	if base == "" {
		base = DefaultArticleBaseURL
	}
	return base + url.PathEscape(strings.ReplaceAll(titleName, " ", "_"))
}
