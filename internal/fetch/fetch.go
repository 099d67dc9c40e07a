// Package fetch retrieves the documents mdview renders.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vector76/mdview/internal/httperr"
)

// AllowedTypes are the media types accepted as renderable documents.
var AllowedTypes = []string{"text/plain", "text/markdown", "text/x-markdown"}

// Fetcher downloads text documents over HTTP.
type Fetcher struct {
	UserAgent  string
	HTTPClient *http.Client
}

// New returns a Fetcher that identifies itself as userAgent and uses
// http.DefaultClient.
func New(userAgent string) *Fetcher {
	return &Fetcher{UserAgent: userAgent, HTTPClient: http.DefaultClient}
}

// Fetch GETs url and returns its body. A non-2xx status or a Content-Type
// outside AllowedTypes is reported as a Bad Gateway *httperr.Error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", httperr.BadGateway("Content HTTP %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !MediaTypeIs(contentType, AllowedTypes...) {
		return "", httperr.BadGateway("Unsupported media type: %s", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) client() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}
