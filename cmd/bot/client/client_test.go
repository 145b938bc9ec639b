package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SessionCookieIsKept(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "Secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Incorrect login or password"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "PROCRASTINATION_SESSION", Value: "sess-1", Path: "/"})
		_, _ = w.Write([]byte(`{"result":500}`))
	})
	mux.HandleFunc("GET /random_rated_fact", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("PROCRASTINATION_SESSION")
		if err != nil || cookie.Value != "sess-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"login required"}`))
			return
		}
		assert.Equal(t, "top", r.URL.Query().Get("search_type"))
		_, _ = w.Write([]byte(`{"random_rated_fact":"Photons are massless.","title_name":"Photon"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(srv.URL + "/")

	_, err := c.RandomRatedFact(ctx, "top")
	assert.True(t, IsUnauthorized(err))

	err = c.Login(ctx, "reader42", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Incorrect login or password", apiErr.Message)

	require.NoError(t, c.Login(ctx, "reader42", "Secret123"))

	fact, err := c.RandomRatedFact(ctx, "top")
	require.NoError(t, err)
	assert.Equal(t, Fact{Text: "Photons are massless.", TitleName: "Photon"}, fact)

	other := NewClient(srv.URL)
	_, err = other.RandomRatedFact(ctx, "top")
	assert.True(t, IsUnauthorized(err), "sessions must not leak between clients")
}

func TestClient_RateFactAndLogout(t *testing.T) {
	var rated string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /rate_fact", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		rated = body["command"]
		_, _ = w.Write([]byte(`{"result":500}`))
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /random_fact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream service unavailable"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(srv.URL)

	require.NoError(t, c.RateFact(ctx, "Dislike"))
	assert.Equal(t, "Dislike", rated)
	require.NoError(t, c.Logout(ctx))

	_, err := c.RandomFact(ctx)
	assert.EqualError(t, err, "API error (status 502): upstream service unavailable")
}
