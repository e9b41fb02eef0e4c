package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cinescout/cinescout/internal/httpclient"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/"
	cacheTTL       = 15 * time.Minute

	// trendingLimit caps the trending landing view at ten titles.
	trendingLimit = 10
)

// Client is a TMDb API v3 client.
type Client struct {
	baseURL  string
	relayURL string
	apiKey   string
	http     *httpclient.Client
	cache    *cache
	logger   *slog.Logger
}

// New creates a new TMDb client. relayURL, if non-empty, is a CORS-forwarding
// proxy prefix that the full target URL is appended to (query-escaped); an
// empty relayURL means requests go to the API origin directly.
func New(apiKey, relayURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		relayURL: relayURL,
		apiKey:   apiKey,
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		cache:    newCache(cacheTTL),
		logger:   logger,
	}
}

// NewForTest creates a TMDb client with a custom base URL for testing.
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  "test-key",
		http:    httpclient.New(httpclient.DefaultConfig(), logger),
		cache:   newCache(cacheTTL),
		logger:  logger,
	}
}

// SearchMovies searches for movies by title. A blank or whitespace-only
// query returns an empty result without touching the network. Only the
// first page is requested and adult titles are excluded; the response
// array is returned unfiltered.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	cacheKey := "search:" + query
	if cached, ok := c.cache.Get(cacheKey); ok {
		if movies, ok := cached.([]Movie); ok {
			return movies, nil
		}
	}

	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"page":          {"1"},
	}

	var resp listResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}

	c.cache.Set(cacheKey, resp.Results)
	return resp.Results, nil
}

// TrendingWeek returns this week's trending movies, truncated to the first
// ten entries.
func (c *Client) TrendingWeek(ctx context.Context) ([]Movie, error) {
	const cacheKey = "trending:week"
	if cached, ok := c.cache.Get(cacheKey); ok {
		if movies, ok := cached.([]Movie); ok {
			return movies, nil
		}
	}

	var resp listResponse
	if err := c.get(ctx, "/trending/movie/week", nil, &resp); err != nil {
		return nil, fmt.Errorf("trending movies: %w", err)
	}

	movies := resp.Results
	if len(movies) > trendingLimit {
		movies = movies[:trendingLimit]
	}

	c.cache.Set(cacheKey, movies)
	return movies, nil
}

// MovieDetails retrieves full details for a movie by TMDb ID, with the
// credits sub-resource embedded in the same response.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	cacheKey := fmt.Sprintf("movie:%d", id)
	if cached, ok := c.cache.Get(cacheKey); ok {
		if details, ok := cached.(*MovieDetails); ok {
			return details, nil
		}
	}

	params := url.Values{"append_to_response": {"credits"}}

	var details MovieDetails
	path := fmt.Sprintf("/movie/%d", id)
	if err := c.get(ctx, path, params, &details); err != nil {
		return nil, fmt.Errorf("movie details %d: %w", id, err)
	}

	c.cache.Set(cacheKey, &details)
	return &details, nil
}

// PosterURL returns the full image CDN URL for a poster path. An empty
// path yields "" so callers render a placeholder instead.
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	return imageBaseURL + size + posterPath
}

// BackdropURL returns the full image CDN URL for a backdrop path.
func BackdropURL(backdropPath, size string) string {
	if backdropPath == "" {
		return ""
	}
	return imageBaseURL + size + backdropPath
}

// get performs an authenticated GET request to the TMDb API and decodes the
// JSON response, routing through the relay when one is configured.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	target := u.String()
	if c.relayURL != "" {
		target = c.relayURL + url.QueryEscape(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
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
		return fmt.Errorf("tmdb API error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
