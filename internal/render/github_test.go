package render

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vector76/mdview/internal/httperr"
)

func TestGitHubRender(t *testing.T) {
	var (
		gotMethod, gotUA, gotCT string
		gotBody                 map[string]any
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotUA = r.Header.Get("User-Agent")
		gotCT = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "text/html;charset=utf-8")
		w.Write([]byte("<h1>Hi</h1>"))
	}))
	defer ts.Close()

	html, err := NewGitHub(ts.URL, "mdview/test").Render(context.Background(), "# Hi <b>&</b>")
	require.NoError(t, err)

	assert.Equal(t, "<h1>Hi</h1>", html)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "mdview/test", gotUA)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, map[string]any{"text": "# Hi <b>&</b>"}, gotBody)
}

func TestGitHubRender_BodyIsNotHTMLEscaped(t *testing.T) {
	var raw []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
	}))
	defer ts.Close()

	_, err := NewGitHub(ts.URL, "mdview/test").Render(context.Background(), "<br>")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"<br>"}`, string(raw))
	assert.Contains(t, string(raw), "<br>")
}

func TestGitHubRender_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewGitHub(ts.URL, "mdview/test").Render(context.Background(), "# Hi")

	var httpErr *httperr.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, "GitHub HTTP 500", httpErr.Message)
}

func TestNewGitHub_DefaultEndpoint(t *testing.T) {
	g := NewGitHub("", "mdview/test")
	assert.Equal(t, DefaultEndpoint, g.Endpoint)
	assert.Equal(t, "https://api.github.com/markdown", g.Endpoint)
}
