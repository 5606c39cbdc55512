// Package source retrieves the textual Unicode Character Database dump that
// feeds the encoding pipeline.
//
// The fetch is a deliberate seam: the pipeline consumes an opaque Provider so
// tests and offline builds can inject local data instead of touching the
// network.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the authoritative location of the latest UnicodeData.txt.
const DefaultURL = "https://www.unicode.org/Public/UCD/latest/ucd/UnicodeData.txt"

// DefaultTimeout bounds the single blocking fetch.
const DefaultTimeout = 30 * time.Second

// Provider supplies the UCD source text. Fetch is called exactly once, before
// the encoding pass begins; a failed fetch is surfaced immediately and never
// retried.
type Provider interface {
	// Fetch returns a reader over UTF-8 UnicodeData.txt content. The caller
	// owns the reader and must close it.
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// HTTPProvider fetches the UCD text over HTTP with a bounded timeout.
type HTTPProvider struct {
	url    string
	client *http.Client
}

var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a provider for the given URL. An empty url falls
// back to DefaultURL; a non-positive timeout falls back to DefaultTimeout.
func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	if url == "" {
		url = DefaultURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the source URL the provider fetches from.
func (p *HTTPProvider) URL() string {
	return p.url
}

// Fetch performs the single blocking GET request.
func (p *HTTPProvider) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.url, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", p.url, resp.Status)
	}

	return resp.Body, nil
}
