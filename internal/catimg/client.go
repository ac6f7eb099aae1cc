// Package catimg builds cataas image URLs and checks that they resolve.
package catimg

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

const (
	DefaultBaseURL = "https://cataas.com"

	msgNoResponse = "Image service did not respond"
)

// Mode selects the kind of image requested.
type Mode int

const (
	// ModePic is a still picture, optionally filtered by a tag segment.
	ModePic Mode = iota + 1
	// ModeGif is an animated picture.
	ModeGif
	// ModeSays is a picture with a caption segment.
	ModeSays
)

// Config holds the image service endpoint.
type Config struct {
	BaseURL string
}

// Client builds and probes cataas URLs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. An empty base URL falls back to cataas.com.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		log:        logger.With("adapter", "cataas"),
	}
}

// URL assembles the image URL for a mode. User text is path-escaped so it
// stays a single segment.
func (c *Client) URL(mode Mode, text string) (string, error) {
	text = strings.TrimSpace(text)
	u := c.baseURL + "/cat"

	switch mode {
	case ModePic:
		if text != "" {
			u += "/" + url.PathEscape(text)
		}
	case ModeGif:
		u += "/gif"
	case ModeSays:
		if text == "" {
			return "", domain.NewValidationError("text")
		}
		u += "/says/" + url.PathEscape(text)
	default:
		return "", fmt.Errorf("catimg: unknown mode %d", mode)
	}
	return u, nil
}

// Probe issues a single GET to confirm the image exists. The body is never read.
func (c *Client) Probe(ctx context.Context, imageURL string) (domain.ImageReference, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return domain.ImageReference{}, fmt.Errorf("catimg: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "cataas probe failed", slog.String("url", imageURL), slog.String("error", err.Error()))
		return domain.ImageReference{}, domain.NewUpstreamError(msgNoResponse, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "cataas probe rejected",
			slog.String("url", imageURL),
			slog.Int("status", resp.StatusCode),
		)
		return domain.ImageReference{}, domain.NewUpstreamError(statusText(resp),
			fmt.Errorf("catimg: unexpected status %d", resp.StatusCode))
	}

	c.log.DebugContext(ctx, "cataas probe ok", slog.String("url", imageURL))
	return domain.ImageReference{URL: imageURL}, nil
}

// Fetch builds the URL for mode and probes it.
func (c *Client) Fetch(ctx context.Context, mode Mode, text string) (domain.ImageReference, error) {
	u, err := c.URL(mode, text)
	if err != nil {
		return domain.ImageReference{}, err
	}
	return c.Probe(ctx, u)
}

// Attach turns a probed image into envelope content.
func Attach(ref domain.ImageReference) embed.Content {
	return embed.Content{Image: &ref}
}

// statusText returns the reason phrase sent by the server, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = msgNoResponse
	}
	return text
}
