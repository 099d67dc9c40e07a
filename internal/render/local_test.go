package render

import (
	"context"
	"strings"
	"testing"
)

func renderLocal(t *testing.T, s string) string {
	t.Helper()
	out, err := NewLocal().Render(context.Background(), s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestLocalRender_Heading(t *testing.T) {
	out := renderLocal(t, "# Hello")
	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Errorf("expected <h1> in output, got: %s", out)
	}
}

func TestLocalRender_ListItem(t *testing.T) {
	out := renderLocal(t, "- item")
	if !strings.Contains(out, "<li>") {
		t.Errorf("expected <li> in output, got: %s", out)
	}
}

func TestLocalRender_CodeSpan(t *testing.T) {
	out := renderLocal(t, "`code`")
	if !strings.Contains(out, "<code>") {
		t.Errorf("expected <code> in output, got: %s", out)
	}
}

func TestLocalRender_Table(t *testing.T) {
	out := renderLocal(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected GFM table in output, got: %s", out)
	}
}

func TestLocalRender_Strikethrough(t *testing.T) {
	out := renderLocal(t, "~~gone~~")
	if !strings.Contains(out, "<del>gone</del>") {
		t.Errorf("expected <del> in output, got: %s", out)
	}
}

func TestLocalRender_RawHTMLOmitted(t *testing.T) {
	out := renderLocal(t, "<script>alert(1)</script>")
	if strings.Contains(out, "<script>") {
		t.Errorf("expected <script> to be suppressed, got: %s", out)
	}
}

func TestLocalRender_PlainText(t *testing.T) {
	out := renderLocal(t, "hello world")
	if !strings.Contains(out, "hello world") {
		t.Errorf("expected plain text in output, got: %s", out)
	}
}
