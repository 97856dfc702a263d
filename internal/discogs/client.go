package discogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jennahya/recordroom/internal/discogs/dto"
	recordhttp "github.com/jennahya/recordroom/internal/http"
)

// DefaultBaseURL is the production Discogs API endpoint.
const DefaultBaseURL = "https://api.discogs.com"

// ErrRateLimited is returned when Discogs answers 429. The enrichment job
// treats it as fatal for the rest of the run: continuing would only burn
// the remaining quota.
var ErrRateLimited = errors.New("discogs rate limit hit")

// Client talks to the Discogs database API.
//
// Two operations are consumed: free-text release search (first match
// only) and full release fetch by ID. Every request carries the personal
// access token in the Authorization header and the client identifier via
// the User-Agent header, both required by Discogs.
//
// Example usage:
//
//	client := discogs.NewClient(httpClient, token)
//
//	id, err := client.SearchRelease(ctx, "John Coltrane", "Blue Train")
//	if err == nil && id != 0 {
//	    release, err := client.GetRelease(ctx, id)
//	    ...
//	}
type Client struct {
	httpClient *recordhttp.Client
	token      string

	// BaseURL of the Discogs API. Overridable for tests.
	BaseURL string
}

// NewClient creates a Discogs client using the given personal access
// token.
func NewClient(httpClient *recordhttp.Client, token string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
		BaseURL:    DefaultBaseURL,
	}
}

// SearchRelease searches for a release by artist and title and returns
// the ID of the first result.
//
// Only the first match is taken; Discogs' own ranking decides. Zero
// results is not an error: the returned ID is 0 and the caller should
// skip the record for this run.
func (c *Client) SearchRelease(ctx context.Context, artist, title string) (int64, error) {
	params := url.Values{}
	params.Set("q", artist+" "+title)
	params.Set("type", "release")
	params.Set("per_page", "1")
	params.Set("page", "1")

	body, err := c.get(ctx, "/database/search?"+params.Encode())
	if err != nil {
		return 0, fmt.Errorf("search %q: %w", artist+" "+title, err)
	}

	var result dto.SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("search %q: decoding response: %w", artist+" "+title, err)
	}

	if len(result.Results) == 0 {
		return 0, nil
	}
	return result.Results[0].ID, nil
}

// GetRelease fetches the full release resource by ID.
func (c *Client) GetRelease(ctx context.Context, id int64) (*dto.Release, error) {
	body, err := c.get(ctx, fmt.Sprintf("/releases/%d", id))
	if err != nil {
		return nil, fmt.Errorf("release %d: %w", id, err)
	}

	var release dto.Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("release %d: decoding response: %w", id, err)
	}
	return &release, nil
}

// get performs an authenticated GET against the API and returns the body.
// 429 responses map to ErrRateLimited; any other non-200 status is a
// plain fetch error.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Discogs token="+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
