// Package render turns Markdown text into HTML fragments.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vector76/mdview/internal/httperr"
)

// DefaultEndpoint is GitHub's Markdown rendering API.
const DefaultEndpoint = "https://api.github.com/markdown"

// GitHub renders Markdown through the GitHub REST API.
type GitHub struct {
	Endpoint   string
	UserAgent  string
	HTTPClient *http.Client
}

// NewGitHub returns a renderer posting to endpoint, or DefaultEndpoint
// when endpoint is empty.
func NewGitHub(endpoint, userAgent string) *GitHub {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &GitHub{Endpoint: endpoint, UserAgent: userAgent, HTTPClient: http.DefaultClient}
}

// githubRequest is the JSON body of POST /markdown.
type githubRequest struct {
	Text string `json:"text"`
}

// Render posts text to the API and returns the response body. A non-2xx
// status is reported as a Bad Gateway *httperr.Error.
func (g *GitHub) Render(ctx context.Context, text string) (string, error) {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(githubRequest{Text: text}); err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending render request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", httperr.BadGateway("GitHub HTTP %d", resp.StatusCode)
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading render response: %w", err)
	}
	return string(html), nil
}
