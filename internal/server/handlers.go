package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/vector76/mdview/internal/httperr"
)

// TargetURL derives the document URL from the request target: one leading
// slash is stripped and the rest percent-decoded. The query string is part
// of the target. An empty result yields fallback.
func TargetURL(r *http.Request, fallback string) (string, error) {
	raw := r.RequestURI
	if raw == "" {
		raw = r.URL.RequestURI()
	}
	raw = strings.TrimPrefix(raw, "/")

	target, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	if target == "" {
		return fallback, nil
	}
	return target, nil
}

// handleRender handles GET /*.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	target, err := TargetURL(r, s.config.DefaultURL)
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}

	page, err := s.Document(r.Context(), target)
	if err != nil {
		s.writeError(w, r, target, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// writeError logs err and writes its mapped status with a one-line body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, target string, err error) {
	code, msg := httperr.Status(err)
	hlog.FromRequest(r).Error().
		Err(err).
		Str("target", target).
		Int("status", code).
		Msg("render failed")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write([]byte(msg + "\n"))
}
