package extract

import "strings"

// Section returns the body of the named section: the text between the first
// occurrence of heading and the nearest following occurrence of any other
// canonical heading, or end of text when no other heading follows. Returns
// empty when the heading is absent, or when two headings are adjacent with
// no body between them.
//
// The scan is positional and case-sensitive. Because the nearest next
// occurrence bounds the body, section order in the source document does not
// matter.
func Section(text, heading string) string {
	start := strings.Index(text, heading)
	if start == -1 {
		return ""
	}
	after := text[start+len(heading):]
	end := len(after)
	for _, h := range Headings {
		if h == heading {
			continue
		}
		if idx := strings.Index(after, h); idx != -1 && idx < end {
			end = idx
		}
	}
	return strings.TrimSpace(after[:end])
}
