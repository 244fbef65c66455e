// Package nasa adapts the NASA Images and Video Library API
// (https://images-api.nasa.gov) into flat records for tool callers.
//
// The client keeps no state between calls: every method issues its own
// requests and returns. Failures are reported as *Error values.
package nasa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nhGeri/NASA-MCP/internal/logging"
)

const (
	DefaultBaseURL = "https://images-api.nasa.gov"
	DefaultTimeout = 15 * time.Second

	defaultPreviewChars = 1000
	maxResponseBytes    = 16 << 20
)

// Endpoint labels used for metrics and logs.
const (
	endpointSearch       = "search"
	endpointAsset        = "asset"
	endpointMetadata     = "metadata"
	endpointCaptions     = "captions"
	endpointMetadataFile = "metadata_document"
	endpointCaptionFile  = "caption_file"
)

type Config struct {
	BaseURL string
	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
	Timeout    time.Duration
	// RateLimit is the maximum number of outbound requests per second.
	// Zero disables limiting.
	RateLimit    float64
	PreviewChars int
	Metrics      *Metrics
	Logger       logging.Logger
}

type Client struct {
	baseURL      string
	http         *http.Client
	limiter      *rate.Limiter
	previewChars int
	metrics      *Metrics
	log          logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
	}

	preview := cfg.PreviewChars
	if preview <= 0 {
		preview = defaultPreviewChars
	}

	log := cfg.Logger
	if log.Logr().GetSink() == nil {
		log = logging.New(logging.DefaultLogger())
	}

	return &Client{
		baseURL:      base,
		http:         httpClient,
		limiter:      limiter,
		previewChars: preview,
		metrics:      cfg.Metrics,
		log:          log.WithName("nasa.client"),
	}, nil
}

func (c *Client) endpointURL(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// get performs one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	start := time.Now()
	body, err := c.doGet(ctx, rawURL)
	elapsed := time.Since(start)
	c.metrics.observe(endpoint, err, elapsed)
	if err != nil {
		c.log.Debug("upstream request failed", "endpoint", endpoint, "url", rawURL, "elapsed", elapsed, "error", err.Error())
		return nil, err
	}
	c.log.Debug("upstream request", "endpoint", endpoint, "url", rawURL, "elapsed", elapsed, "bytes", len(body))
	return body, nil
}

func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, transportError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidInput, URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := c.http.Do(req)
	if err != nil {
		e := transportError(err)
		e.URL = rawURL
		return nil, e
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		e := transportError(fmt.Errorf("read body: %w", err))
		e.URL = rawURL
		return nil, e
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := statusError(resp.StatusCode, body)
		e.URL = rawURL
		return nil, e
	}
	return body, nil
}
