package fetch

import (
	"mime"
	"strings"
)

// MediaTypeIs reports whether contentType matches any of patterns.
// Parameters such as charset are ignored. A pattern may use "*" for the
// type or subtype, and "*/*+json" style patterns match structured syntax
// suffixes. An empty or unparsable contentType matches nothing.
func MediaTypeIs(contentType string, patterns ...string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, p := range patterns {
		if mediaTypeMatch(strings.ToLower(p), mediaType) {
			return true
		}
	}
	return false
}

func mediaTypeMatch(pattern, actual string) bool {
	wantType, wantSub, ok := strings.Cut(pattern, "/")
	if !ok {
		return false
	}
	gotType, gotSub, ok := strings.Cut(actual, "/")
	if !ok {
		return false
	}

	if wantType != "*" && wantType != gotType {
		return false
	}
	if suffix, ok := strings.CutPrefix(wantSub, "*+"); ok {
		return strings.HasSuffix(gotSub, "+"+suffix)
	}
	return wantSub == "*" || wantSub == gotSub
}
