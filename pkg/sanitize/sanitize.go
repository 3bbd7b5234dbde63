// Package sanitize strips markup from article bodies before they are sent
// to the LLM gateway.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict policy removes every tag and keeps only text content
var policy = bluemonday.StrictPolicy()

var spacesRe = regexp.MustCompile(`[ \t]+`)

// Text removes all markup from s and returns plain text. Pure and total:
// empty input yields empty output, non-markup text passes through unchanged.
func Text(s string) string {
	if s == "" {
		return ""
	}
	clean := policy.Sanitize(s)
	// bluemonday escapes entities in the surviving text, undo that
	clean = html.UnescapeString(clean)
	clean = spacesRe.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}
