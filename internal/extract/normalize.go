package extract

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n{2,}`)
)

// Normalize cleans raw extracted document text before any pattern matching:
// carriage returns are removed, runs of horizontal whitespace collapse to a
// single space, consecutive blank lines collapse to one newline, and the
// result is trimmed. Normalize is total and idempotent.
func Normalize(text string) string {
	t := strings.ReplaceAll(text, "\r", "")
	t = horizontalWS.ReplaceAllString(t, " ")
	t = blankLines.ReplaceAllString(t, "\n")
	return strings.TrimSpace(t)
}
