package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/filmotheque/filmotheque/internal/httpclient"
)

const (
	// PageSize is the fixed number of results per backend page.
	PageSize = 5

	// maxGenrePages bounds genre aggregation. The catalog is not expected
	// to carry more than 25 genres; anything past the cap is dropped.
	maxGenrePages = 5

	cacheTTL = 15 * time.Minute
)

// Client talks to an OCMovies-style paginated movie REST API.
type Client struct {
	baseURL string
	http    *httpclient.Client
	cache   *cache
	logger  *slog.Logger
}

// New creates a catalog client for the given API base URL, e.g.
// "http://localhost:8000/api/v1".
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	cfg := httpclient.DefaultConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return &Client{
		baseURL: baseURL,
		http:    httpclient.New(cfg, logger),
		cache:   newCache(cacheTTL),
		logger:  logger,
	}
}

// NewForTest creates a client pointed at a test server.
// Exported because it is used by cross-package tests.
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpclient.New(httpclient.Config{MaxAttempts: 1, Timeout: 5 * time.Second}, logger),
		cache:   newCache(cacheTTL),
		logger:  logger,
	}
}

// genrePage fetches one page of the genre listing.
func (c *Client) genrePage(ctx context.Context, pageNum int) (*page[Genre], error) {
	cacheKey := fmt.Sprintf("genres:p%d", pageNum)
	if cached, ok := c.cache.Get(cacheKey); ok {
		if p, ok := cached.(*page[Genre]); ok {
			return p, nil
		}
	}

	var p page[Genre]
	if err := c.get(ctx, "/genres/", pageParams(pageNum, nil), &p); err != nil {
		return nil, fmt.Errorf("genre page %d: %w", pageNum, err)
	}

	c.cache.Set(cacheKey, &p)
	return &p, nil
}

// titlePage fetches one page of a titles listing for the given query.
func (c *Client) titlePage(ctx context.Context, pageNum int, q Query) (*page[Movie], error) {
	cacheKey := fmt.Sprintf("titles:p%d:%s", pageNum, q.key())
	if cached, ok := c.cache.Get(cacheKey); ok {
		if p, ok := cached.(*page[Movie]); ok {
			return p, nil
		}
	}

	var p page[Movie]
	if err := c.get(ctx, "/titles/", pageParams(pageNum, q.Values()), &p); err != nil {
		return nil, fmt.Errorf("title page %d (%s): %w", pageNum, q.key(), err)
	}

	c.cache.Set(cacheKey, &p)
	return &p, nil
}

// Title retrieves the full detail record for a movie by id.
func (c *Client) Title(ctx context.Context, id int) (*MovieDetail, error) {
	cacheKey := fmt.Sprintf("title:%d", id)
	if cached, ok := c.cache.Get(cacheKey); ok {
		if d, ok := cached.(*MovieDetail); ok {
			return d, nil
		}
	}

	var d MovieDetail
	if err := c.get(ctx, "/titles/"+strconv.Itoa(id), nil, &d); err != nil {
		return nil, fmt.Errorf("title %d: %w", id, err)
	}

	c.cache.Set(cacheKey, &d)
	return &d, nil
}

// ProbePoster checks whether a poster URL is reachable. Used by render
// surfaces to decide on the placeholder before showing a poster reference.
func (c *Client) ProbePoster(ctx context.Context, posterURL string) error {
	if posterURL == "" {
		return fmt.Errorf("empty poster URL")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, posterURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("probe poster: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster %s: HTTP %d", posterURL, resp.StatusCode)
	}
	return nil
}

func pageParams(pageNum int, extra url.Values) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(pageNum))
	for k, vs := range extra {
		for _, v := range vs {
			params.Set(k, v)
		}
	}
	return params
}

// get performs a GET request against the API and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Set(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
