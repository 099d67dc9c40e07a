package server

import (
	"bytes"
	"fmt"
	"html/template"
)

// pageTmpl wraps a rendered fragment in a page styled with
// github-markdown-css. The fragment is inserted as template.HTML, so the
// renderer's output is trusted and never escaped.
var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1, minimal-ui">
<title>GitHub Markdown CSS demo</title>
<link rel="stylesheet" href="https://unpkg.com/github-markdown-css">
<style>
  body {
    box-sizing: border-box;
    min-width: 200px;
    max-width: 980px;
    margin: 0 auto;
    padding: 45px;
  }
</style>
</head>
<body>
<article class="markdown-body">
  {{.}}
</article>
</body>
</html>
`))

func buildPage(html string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, template.HTML(html)); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}
