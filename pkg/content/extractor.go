// Package content fetches article pages and extracts their readable text,
// used by the read-full-article path when the feed carries only a snippet.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// Extractor pulls readable text out of article pages
type Extractor struct {
	client    *http.Client
	userAgent string
}

// NewExtractor creates a content extractor with the given request timeout
func NewExtractor(timeout time.Duration, userAgent string) *Extractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; NewsWeaver/1.0)"
	}
	return &Extractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Extract retrieves the page at articleURL and returns its main text content
func (e *Extractor) Extract(ctx context.Context, articleURL string) (string, error) {
	parsedURL, err := url.Parse(articleURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", articleURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article %s: %w", articleURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, articleURL)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", articleURL, err)
	}
	if result == nil || result.ContentText == "" {
		return "", fmt.Errorf("no text content extracted from %s", articleURL)
	}

	return strings.TrimSpace(result.ContentText), nil
}
