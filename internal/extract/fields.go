package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	projectNameRe         = regexp.MustCompile(projectMarker + `\s+([^\n]+?)\s+` + fiscalYearMarker)
	projectNameFallbackRe = regexp.MustCompile(projectMarker + `\s+([^\n]+)`)
	departmentPatternRe   = regexp.MustCompile(`สำนักงานสาธารณสุขจังหวัด[^\n]+`)
	ownerPatternRe        = regexp.MustCompile(`หัวหน้ากลุ่มงาน[^\n]+`)
	fiscalYearRe          = regexp.MustCompile(fiscalYearMarker + `\s*(\d{4})`)
	budgetTotalRe         = regexp.MustCompile(`รวมเป็นเงิน(?:ทั้งสิ้น)?\s*([0-9][0-9,]*)`)
)

// Line returns the first line fragment following the first occurrence of
// label, up to but not including the next newline. Whitespace between the
// label and the fragment (including a line break directly after the label)
// is skipped. Returns empty when the label is absent.
func Line(text, label string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(label) + `\s*([^\n]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ProjectName extracts the project name. It prefers the phrase bracketed by
// the project marker and the fiscal-year marker on the same line, falls back
// to everything after the project marker to end of line, and returns empty
// when neither form occurs (callers supply the document title then).
func ProjectName(text string) string {
	if m := projectNameRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := projectNameFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Department extracts the responsible department: the explicit location
// line if present, else the first line matching the provincial health office
// name pattern, else the unspecified sentinel.
func Department(text string) string {
	if line := Line(text, HeadingLocation); line != "" {
		return line
	}
	if m := departmentPatternRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return Unspecified
}

// OwnerName extracts the project owner: the explicit owner line if present,
// else the first line matching the section-head role title pattern, else the
// unspecified sentinel.
func OwnerName(text string) string {
	if line := Line(text, HeadingOwner); line != "" {
		return line
	}
	if m := ownerPatternRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return Unspecified
}

// FiscalYearRaw returns the first 4-digit year following the fiscal-year
// marker, in whatever era the document uses. When absent it defaults to the
// current year in the Buddhist-era convention of the source documents.
// Callers normalize the result to Gregorian.
func FiscalYearRaw(text string, now time.Time) int {
	if m := fiscalYearRe.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y
		}
	}
	return now.Year() + 543
}

// Budget returns the grand-total budget in baht. Briefs often carry several
// "รวมเป็นเงิน" subtotals followed by a closing "รวมเป็นเงินทั้งสิ้น"; the
// last total in document order wins. Thousands separators are stripped.
// Returns 0 when no total is present.
func Budget(text string) int64 {
	ms := budgetTotalRe.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return 0
	}
	raw := strings.ReplaceAll(ms[len(ms)-1][1], ",", "")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
