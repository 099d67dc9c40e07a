package server

import (
	"strings"
	"testing"
)

func TestBuildPage(t *testing.T) {
	page, err := buildPage("<h1>Hi</h1>")
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	out := string(page)

	for _, want := range []string{
		"<!doctype html>",
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1, minimal-ui">`,
		`<link rel="stylesheet" href="https://unpkg.com/github-markdown-css">`,
		"max-width: 980px;",
		"<article class=\"markdown-body\">\n  <h1>Hi</h1>\n</article>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}

func TestBuildPage_Deterministic(t *testing.T) {
	a, _ := buildPage("<p>same</p>")
	b, _ := buildPage("<p>same</p>")
	if string(a) != string(b) {
		t.Error("buildPage is not deterministic")
	}
}
