package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Local renders Markdown in-process with goldmark. Raw HTML in the source
// is omitted from the output.
type Local struct {
	md goldmark.Markdown
}

// NewLocal returns a renderer with GitHub Flavored Markdown enabled.
func NewLocal() *Local {
	return &Local{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

func (l *Local) Render(_ context.Context, text string) (string, error) {
	var buf bytes.Buffer
	if err := l.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
