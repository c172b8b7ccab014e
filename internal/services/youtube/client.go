// Package youtube implements the caption and metadata collaborator clients
// against YouTube's timedtext and Innertube player endpoints.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sublate/internal/captions"
	"sublate/internal/services"
)

const (
	defaultBaseURL     = "https://www.youtube.com"
	defaultHTTPTimeout = 20 * time.Second

	// The ANDROID client surface returns plain JSON without requiring
	// signature decryption, which is all the metadata lookup needs.
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "19.09.37"
)

// ErrNotFound reports that the video does not exist or is not playable. It
// carries the no-captions marker so boundaries answer 404 rather than
// blaming the upstream.
var ErrNotFound = fmt.Errorf("%w: video not found or unplayable", services.ErrNoCaptions)

// Client talks to the YouTube caption and metadata endpoints. It satisfies
// both captions.CaptionClient and captions.MetadataClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient constructs a YouTube client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// FetchCaptions retrieves timed caption fragments in the requested language
// via the timedtext endpoint (json3 format). An empty slice with a nil error
// means the video has no captions in that language; absence is the caller's
// decision to classify.
func (c *Client) FetchCaptions(ctx context.Context, videoID, lang string) ([]captions.Fragment, error) {
	endpoint := fmt.Sprintf("%s/api/timedtext?v=%s&lang=%s&fmt=json3",
		c.baseURL, url.QueryEscape(videoID), url.QueryEscape(lang))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("timedtext: request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("timedtext: read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("timedtext: http %d", resp.StatusCode)
	}
	// The endpoint answers 200 with an empty body when no track exists.
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var track timedTextResponse
	if err := json.Unmarshal(body, &track); err != nil {
		return nil, fmt.Errorf("timedtext: decode response: %w", err)
	}
	return track.fragments(), nil
}

// FetchMetadata resolves title and duration through the Innertube player
// endpoint.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (captions.Metadata, error) {
	var empty captions.Metadata
	payload := playerRequest{VideoID: videoID}
	payload.Context.Client.ClientName = innertubeClientName
	payload.Context.Client.ClientVersion = innertubeClientVersion

	encoded, err := json.Marshal(payload)
	if err != nil {
		return empty, fmt.Errorf("player: encode request: %w", err)
	}
	endpoint := c.baseURL + "/youtubei/v1/player"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return empty, fmt.Errorf("player: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("player: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, fmt.Errorf("player: read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return empty, ErrNotFound
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return empty, fmt.Errorf("player: http %d", resp.StatusCode)
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return empty, fmt.Errorf("player: decode response: %w", err)
	}
	status := strings.ToUpper(strings.TrimSpace(player.PlayabilityStatus.Status))
	if status == "ERROR" {
		return empty, ErrNotFound
	}
	title := strings.TrimSpace(player.VideoDetails.Title)
	if title == "" {
		return empty, fmt.Errorf("player: response missing video details")
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(player.VideoDetails.LengthSeconds), 64)
	if err != nil {
		return empty, fmt.Errorf("player: invalid length %q: %w", player.VideoDetails.LengthSeconds, err)
	}
	return captions.Metadata{Title: title, DurationSeconds: seconds}, nil
}
