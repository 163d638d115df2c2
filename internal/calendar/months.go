// Package calendar resolves Thai and English month names and normalizes
// Buddhist Era years to Gregorian. Government briefs mix all three freely,
// sometimes within a single line.
package calendar

import (
	"strings"
	"time"
)

// BuddhistEraThreshold separates Buddhist Era years from Gregorian ones.
// Years strictly above it are Buddhist Era; the threshold itself and
// everything below pass through as Gregorian. Documents never reference
// Gregorian years this large or BE years smaller, so each year token
// resolves its era independently.
const BuddhistEraThreshold = 2400

const buddhistEraOffset = 543

var thaiMonths = map[string]int{
	"มกราคม":     1,
	"กุมภาพันธ์": 2,
	"มีนาคม":     3,
	"เมษายน":     4,
	"พฤษภาคม":    5,
	"มิถุนายน":   6,
	"กรกฎาคม":    7,
	"สิงหาคม":    8,
	"กันยายน":    9,
	"ตุลาคม":     10,
	"พฤศจิกายน":  11,
	"ธันวาคม":    12,
}

// thaiAbbrevMonths is keyed without the trailing dot; MonthIndex strips it.
var thaiAbbrevMonths = map[string]int{
	"ม.ค":  1,
	"ก.พ":  2,
	"มี.ค": 3,
	"เม.ย": 4,
	"พ.ค":  5,
	"มิ.ย": 6,
	"ก.ค":  7,
	"ส.ค":  8,
	"ก.ย":  9,
	"ต.ค":  10,
	"พ.ย":  11,
	"ธ.ค":  12,
}

var englishMonths = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// MonthTokenPattern is the alternation of every recognized month token, for
// embedding in a larger expression. Longer forms precede their prefixes
// because Go's regexp alternation is leftmost-first, not longest-match.
const MonthTokenPattern = `มกราคม|กุมภาพันธ์|มีนาคม|เมษายน|พฤษภาคม|พฤศจิกายน|มิถุนายน|กรกฎาคม|สิงหาคม|กันยายน|ตุลาคม|ธันวาคม|` +
	`มี\.ค|เม\.ย|มิ\.ย|ม\.ค|ก\.พ|พ\.ค|ก\.ค|ส\.ค|ก\.ย|ต\.ค|พ\.ย|ธ\.ค|` +
	`january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|` +
	`august|aug|september|sept|sep|october|oct|november|nov|december|dec`

// MonthIndex resolves a month name in any recognized form to its 1-based
// calendar index. Trailing dots on Thai abbreviations are ignored; English
// names are case-insensitive.
func MonthIndex(name string) (int, bool) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if m, ok := thaiMonths[name]; ok {
		return m, true
	}
	if m, ok := thaiAbbrevMonths[name]; ok {
		return m, true
	}
	if m, ok := englishMonths[strings.ToLower(name)]; ok {
		return m, true
	}
	return 0, false
}

// ToGregorianYear converts a Buddhist Era year to Gregorian. Years at or
// below the threshold are assumed to already be Gregorian and pass through
// unchanged.
func ToGregorianYear(year int) int {
	if year > BuddhistEraThreshold {
		return year - buddhistEraOffset
	}
	return year
}

// ResolveMonthYear resolves a month name and a year token of either era to a
// calendar month and Gregorian year.
func ResolveMonthYear(name string, year int) (time.Month, int, bool) {
	m, ok := MonthIndex(name)
	if !ok {
		return 0, 0, false
	}
	return time.Month(m), ToGregorianYear(year), true
}
