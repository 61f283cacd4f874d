// Package helpscout is a minimal read-only client for the HelpScout Docs
// API. Every operation issues exactly one authenticated HTTP GET: there are
// no retries, no caching and no shared state beyond the immutable API key,
// so concurrent calls are independent of each other.
package helpscout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hsdocs/internal/logging"
)

const (
	// The Docs API authenticates with HTTP Basic Auth: the API key is the
	// username, the password is the literal "X".
	basicAuthPassword = "X"

	// RequestTimeout bounds every upstream call. Exceeding it surfaces as
	// a TransportError, never as a hang.
	RequestTimeout = 15 * time.Second

	// MaxPageSize is the upstream cap; larger requests are clamped, not
	// rejected.
	MaxPageSize = 100

	// Default page sizes per operation.
	DefaultSearchPageSize = 20
	DefaultListPageSize   = 50
)

// Client talks to the HelpScout Docs API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *logging.AppLogger
}

// NewClient creates a Docs API client. The API key is captured once and is
// immutable for the client's lifetime; an empty key makes every operation
// fail with ErrAPIKeyMissing before any network request.
func NewClient(baseURL, apiKey string, logger *logging.AppLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpc:   &http.Client{Timeout: RequestTimeout},
		logger:  logger,
	}
}

// SearchParams are the arguments to SearchArticles.
type SearchParams struct {
	Query        string
	CollectionID string // optional: restrict the search to one collection
	Page         int
	PageSize     int
}

// SearchArticles searches published, public articles by keyword.
func (c *Client) SearchArticles(ctx context.Context, p SearchParams) (*SearchPage, error) {
	page := normalizePage(p.Page)

	q := url.Values{}
	q.Set("query", p.Query)
	q.Set("status", "published")
	q.Set("visibility", "public")
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(clampPageSize(p.PageSize, DefaultSearchPageSize)))
	if p.CollectionID != "" {
		q.Set("collectionId", p.CollectionID)
	}

	var env searchEnvelope
	if err := c.get(ctx, "/search/articles", q, &env); err != nil {
		return nil, err
	}

	result := env.Articles
	result.normalize(page, len(result.Items))
	return &result, nil
}

// GetArticle fetches the full content of one article. A nil article with a
// nil error means the upstream had no payload for that identifier; per the
// adapter contract that is a normal outcome, not an error.
func (c *Client) GetArticle(ctx context.Context, articleID string) (*Article, error) {
	var env articleEnvelope
	if err := c.get(ctx, "/articles/"+url.PathEscape(articleID), nil, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

// ListCollections lists public collections in ascending order.
func (c *Client) ListCollections(ctx context.Context, page int) (*CollectionPage, error) {
	page = normalizePage(page)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("visibility", "public")
	q.Set("order", "asc")

	var env collectionsEnvelope
	if err := c.get(ctx, "/collections", q, &env); err != nil {
		return nil, err
	}

	result := env.Collections
	result.normalize(page, len(result.Items))
	return &result, nil
}

// ListArticles lists the published articles of one collection, sorted by
// name ascending.
func (c *Client) ListArticles(ctx context.Context, collectionID string, page, pageSize int) (*ArticleRefPage, error) {
	page = normalizePage(page)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("status", "published")
	q.Set("pageSize", strconv.Itoa(clampPageSize(pageSize, DefaultListPageSize)))
	q.Set("sort", "name")
	q.Set("order", "asc")

	var env collectionArticlesEnvelope
	if err := c.get(ctx, "/collections/"+url.PathEscape(collectionID)+"/articles", q, &env); err != nil {
		return nil, err
	}

	result := env.Articles
	result.normalize(page, len(result.Items))
	return &result, nil
}

// get performs the single authenticated GET every operation boils down to.
// The credential check runs first so a misconfigured process never touches
// the network. The response body is closed on every exit path.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, basicAuthPassword)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.LogRequest(path, endpoint, start)

	if resp.StatusCode >= http.StatusBadRequest {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     readErrorDetail(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampPageSize(size, fallback int) int {
	if size <= 0 {
		return fallback
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}
