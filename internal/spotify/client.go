// Spotify Web API client, response types based on
// https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/playlist-service/internal/config"
)

// Artist represents a Spotify artist as returned inside track results.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album represents a Spotify album as returned inside track results.
type Album struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track represents a Spotify track search result.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
	Album   Album    `json:"album"`
}

type trackPage struct {
	Items []Track `json:"items"`
}

type searchResponse struct {
	Tracks trackPage `json:"tracks"`
}

// Client calls the Spotify Web API using bearer tokens from a TokenProvider.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
	tokens     TokenProvider
}

// NewClient builds a catalog client.
func NewClient(cfg config.SpotifyConfig, httpClient *http.Client, tokens TokenProvider) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout()}
	}
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 10
	}
	return &Client{
		baseURL:    cfg.APIBaseURL,
		limit:      limit,
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// SearchTracks queries the catalog for tracks matching the query.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]Track, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain catalog token: %w", err)
	}

	params := url.Values{
		"q":     {query},
		"type":  {"track"},
		"limit": {strconv.Itoa(c.limit)},
	}
	endpoint := c.baseURL + "/v1/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return payload.Tracks.Items, nil
}
