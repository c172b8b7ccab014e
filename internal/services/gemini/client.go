// Package gemini wraps the Gemini generateContent API as the pipeline's
// translation oracle. The returned text has no guaranteed structure; callers
// must validate it before use.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultModel       = "gemini-2.0-flash"
	defaultHTTPTimeout = 60 * time.Second
	defaultTemperature = 0.2
)

// Config captures the runtime settings required to talk to Gemini.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	TimeoutSeconds    int
	RequestsPerMinute int
}

// Client wraps the Gemini generateContent endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
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
			c.cfg.BaseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient constructs a Gemini client. A RequestsPerMinute of zero disables
// client-side rate limiting.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:            strings.TrimSpace(cfg.APIKey),
			BaseURL:           strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Model:             strings.TrimSpace(cfg.Model),
			TimeoutSeconds:    cfg.TimeoutSeconds,
			RequestsPerMinute: cfg.RequestsPerMinute,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	if cfg.RequestsPerMinute > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), 1)
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.Model == "" {
		client.cfg.Model = defaultModel
	}
	return client
}

// Translate sends one translation instruction and returns the model's text
// payload verbatim. No retries: failures and timeouts propagate to the
// caller unchanged.
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (string, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return "", errors.New("gemini translate: source text required")
	}
	if c.cfg.APIKey == "" {
		return "", errors.New("gemini translate: api key required")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("gemini translate: rate limit wait: %w", err)
		}
	}

	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(req)}}}},
	}
	body.GenerationConfig.Temperature = defaultTemperature
	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini translate: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("gemini translate: request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini translate: request failed: %w", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini translate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("gemini translate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("gemini translate: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini translate: api error: %s", strings.TrimSpace(parsed.Error.Message))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini translate: empty candidates")
	}
	var b strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("gemini translate: empty content")
	}
	return text, nil
}

type generateContentRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
