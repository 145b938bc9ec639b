package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

var _ datasources.KnowledgeSource = (*Client)(nil)

const DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

// maxCategoryMembersPerPage is the MediaWiki cap on cmlimit for anonymous clients.
const maxCategoryMembersPerPage = 500

// Client reads article extracts and listings from a MediaWiki action API.
type Client struct {
	apiURL     string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new client. Wikimedia requires a descriptive User-Agent.
func NewClient(apiURL, userAgent string) *Client {
	return &Client{
		apiURL:     apiURL,
		userAgent:  userAgent,
		httpClient: http.DefaultClient,
	}
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
		} `json:"pages"`
		Random []struct {
			Title string `json:"title"`
		} `json:"random"`
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
	Continue map[string]string `json:"continue"`
}

func (c *Client) DescribeTitle(ctx context.Context, titleName string) (string, error) {
	result, err := c.query(ctx, url.Values{
		"prop":        {"extracts"},
		"titles":      {titleName},
		"exlimit":     {"1"},
		"exintro":     {"1"},
		"explaintext": {"1"},
	})
	if err != nil {
		return "", err
	}

	if len(result.Query.Pages) == 0 {
		return "", fmt.Errorf("%w: [%s]", domain.ErrTitleNotFound, titleName)
	}
	page := result.Query.Pages[0]
	if page.Missing || page.Invalid {
		return "", fmt.Errorf("%w: [%s]", domain.ErrTitleNotFound, titleName)
	}

	return page.Extract, nil
}

func (c *Client) GetRandomTitle(ctx context.Context) (string, error) {
	result, err := c.query(ctx, url.Values{
		"list":        {"random"},
		"rnnamespace": {"0"},
		"rnlimit":     {"1"},
	})
	if err != nil {
		return "", err
	}

	if len(result.Query.Random) == 0 {
		return "", fmt.Errorf("%w: empty random title response", domain.ErrUpstreamUnavailable)
	}
	return result.Query.Random[0].Title, nil
}

// ListCategoryMembers follows continuation until limit article names have
// been collected or the category is exhausted. Subcategories are excluded.
func (c *Client) ListCategoryMembers(ctx context.Context, categoryName string, limit int) ([]string, error) {
	var titles []string
	continueParams := map[string]string{}

	for len(titles) < limit {
		pageSize := min(limit-len(titles), maxCategoryMembersPerPage)
		params := url.Values{
			"list":    {"categorymembers"},
			"cmtitle": {categoryName},
			"cmtype":  {"page"},
			"cmlimit": {strconv.Itoa(pageSize)},
		}
		for k, v := range continueParams {
			params.Set(k, v)
		}

		result, err := c.query(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("listing members of [%s]: %w", categoryName, err)
		}

		for _, member := range result.Query.CategoryMembers {
			titles = append(titles, member.Title)
		}

		if len(result.Continue) == 0 || len(result.Query.CategoryMembers) == 0 {
			break
		}
		continueParams = result.Continue
	}

	if len(titles) > limit {
		titles = titles[:limit]
	}
	return titles, nil
}

func (c *Client) query(ctx context.Context, params url.Values) (queryResponse, error) {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return queryResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return queryResponse{}, fmt.Errorf("%w: executing request: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return queryResponse{}, fmt.Errorf("%w: MediaWiki API error (status %d): %s",
			domain.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return queryResponse{}, fmt.Errorf("%w: decoding response: %w", domain.ErrUpstreamUnavailable, err)
	}
	if result.Error != nil {
		return queryResponse{}, fmt.Errorf("%w: MediaWiki API error [%s]: %s",
			domain.ErrUpstreamUnavailable, result.Error.Code, result.Error.Info)
	}

	return result, nil
}
