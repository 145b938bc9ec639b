// Package client provides an HTTP client for the Procrastination Facts API.
// Each Client carries its own cookie jar, so one Client is one API session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Fact is a fact as served by the API.
type Fact struct {
	Text      string
	TitleName string
}

// Registration holds the fields for creating an account.
type Registration struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Repeated   string `json:"repeated_password"`
	Email      string `json:"email"`
	TelegramID *int64 `json:"telegram_id,omitempty"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err means the session is missing or expired.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client is an HTTP client for the Procrastination Facts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client with an empty session.
func NewClient(baseURL string) *Client {
	// cookiejar.New only fails when given a PublicSuffixList, which we don't pass.
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, result any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	resp, err := c.doRequestWithBody(ctx, method, path, body)
	if err != nil {
		return err
	}

	return c.handleResponse(resp, result)
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody struct {
			Error string `json:"error"`
		}
		if raw, err := io.ReadAll(resp.Body); err == nil && json.Unmarshal(raw, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

type resultResponse struct {
	Result int `json:"result"`
}

// Register creates an account and logs this client in as it.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	var resp resultResponse
	return c.doJSON(ctx, http.MethodPost, "/registration", reg, &resp)
}

// Login starts a session for this client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp resultResponse
	return c.doJSON(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
}

// Logout ends this client's session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/logout")
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// RandomFact fetches an unrated fact. It works without a session.
func (c *Client) RandomFact(ctx context.Context) (Fact, error) {
	var resp struct {
		RandomFact string `json:"random_fact"`
		TitleName  string `json:"title_name"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/random_fact", nil, &resp); err != nil {
		return Fact{}, err
	}
	return Fact{Text: resp.RandomFact, TitleName: resp.TitleName}, nil
}

// RandomRatedFact fetches a fact chosen from the user's ratings; searchType is "new" or "top".
func (c *Client) RandomRatedFact(ctx context.Context, searchType string) (Fact, error) {
	var resp struct {
		RandomRatedFact string `json:"random_rated_fact"`
		TitleName       string `json:"title_name"`
	}
	path := "/random_rated_fact?" + url.Values{"search_type": {searchType}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return Fact{}, err
	}
	return Fact{Text: resp.RandomRatedFact, TitleName: resp.TitleName}, nil
}

// RateFact likes or dislikes the last rated fact; command is "Like" or "Dislike".
func (c *Client) RateFact(ctx context.Context, command string) error {
	var resp resultResponse
	return c.doJSON(ctx, http.MethodPost, "/rate_fact", map[string]string{"command": command}, &resp)
}
