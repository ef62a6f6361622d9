package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the Pixabay video-search endpoint.
const DefaultBaseURL = "https://pixabay.com/api/videos/"

// Results requested per search. Only the top hit is used; a small page keeps
// responses cheap.
const perPage = 3

// ErrNoResults is returned when a search yields zero hits.
var ErrNoResults = errors.New("no results")

// SearchResponse is the response from the Pixabay video-search API.
type SearchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"`
	Hits      []Hit `json:"hits"`
}

// Hit is a single video result with its available renditions.
type Hit struct {
	ID     int        `json:"id"`
	Videos Renditions `json:"videos"`
}

// Renditions maps size tiers to direct download URLs.
type Renditions struct {
	Large  Rendition `json:"large"`
	Medium Rendition `json:"medium"`
	Small  Rendition `json:"small"`
	Tiny   Rendition `json:"tiny"`
}

// Rendition is one downloadable variant of a video.
type Rendition struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Client queries the Pixabay video-search API
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

// NewClient creates a search client with the fixed per-request timeout
func NewClient(apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: config.SearchTimeout},
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
	}
}

// FindBestVideoURL returns the direct download URL for the top hit of a
// query. The largest rendition is preferred, falling back to medium when
// large is unavailable.
func (c *Client) FindBestVideoURL(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("q", query)
	params.Set("safesearch", "true")
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build search request")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "search request failed for %q", query)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pixabay search for %q: unexpected status %s", query, resp.Status)
	}

	var data SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", errors.Wrap(err, "failed to decode search response")
	}

	if len(data.Hits) == 0 {
		return "", errors.Wrapf(ErrNoResults, "query %q", query)
	}

	best := data.Hits[0].Videos
	if best.Large.URL != "" {
		return best.Large.URL, nil
	}
	if best.Medium.URL != "" {
		return best.Medium.URL, nil
	}
	return "", fmt.Errorf("top hit for %q has no large or medium rendition", query)
}
