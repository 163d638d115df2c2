package timeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chaiwat-s/onepage/internal/calendar"
)

// PaletteSize is the number of bar color tones cycled across tasks. Tones
// are assigned purely by list position and carry no meaning.
const PaletteSize = 6

// Task is one schedule line from a project's timeline note. Span is nil when
// no matcher inferred a range; the task is still listed so its label renders,
// it just produces no bar.
type Task struct {
	Label string
	Span  *Span
	Tone  int
}

var (
	// bulletPrefixRe strips a leading ordinal or bullet marker ("1.", "2)",
	// "3 -") from a schedule line.
	bulletPrefixRe = regexp.MustCompile(`^\s*\d+[).\-\s]+`)

	// quarterRe matches a quarter tag in either locale: "Q3", "q 2",
	// "ไตรมาส 4".
	quarterRe = regexp.MustCompile(`(?i)(?:q|ไตรมาส)\s*([1-4])`)

	// monthNameRe matches any recognized month name token.
	monthNameRe = regexp.MustCompile(`(?i)(` + calendar.MonthTokenPattern + `)`)

	// numericMonthRe matches numeric month/year tokens such as "10/2568",
	// "3-69" or "01.2026".
	numericMonthRe = regexp.MustCompile(`\b(0?[1-9]|1[0-2])\s*[/.\-]\s*(\d{2,4})\b`)
)

// InferTasks parses a freeform schedule note, one task per line, into
// positioned timeline tasks. Matchers apply in fixed precedence per line:
// quarter tag, then month mentions (named or numeric month/year, spanning
// first-detected through last-detected), then no range. Malformed or
// unrecognized tokens are skipped silently; inference never fails.
// startMonth anchors the fiscal grid for month-based spans.
func InferTasks(note string, startMonth time.Month) []Task {
	var tasks []Task
	for _, raw := range strings.Split(note, "\n") {
		label := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(strings.TrimSuffix(raw, "\r"), ""))
		if label == "" {
			continue
		}

		task := Task{Label: label, Tone: len(tasks) % PaletteSize}
		if span, ok := matchQuarter(label); ok {
			task.Span = &span
		} else if months := collectMonths(label); len(months) > 0 {
			span := MapMonthRange(months[0], months[len(months)-1], startMonth)
			task.Span = &span
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// matchQuarter maps a quarter tag to its 3-month span of the fiscal grid:
// quarter N covers grid months 3(N-1) through 3N-1.
func matchQuarter(label string) (Span, bool) {
	m := quarterRe.FindStringSubmatch(label)
	if m == nil {
		return Span{}, false
	}
	q := int(m[1][0] - '0')
	return Span{
		StartPct: float64((q-1)*3) / gridMonths * 100,
		WidthPct: 3.0 / gridMonths * 100,
	}, true
}

// collectMonths returns every month mention on the line as 0-based calendar
// month indexes, ordered by position of appearance. Named and numeric
// mentions participate equally; tokens that fail to resolve are dropped.
func collectMonths(label string) []int {
	type hit struct {
		month int
		pos   int
	}
	var hits []hit

	for _, loc := range monthNameRe.FindAllStringSubmatchIndex(label, -1) {
		if m, ok := calendar.MonthIndex(label[loc[2]:loc[3]]); ok {
			hits = append(hits, hit{month: m - 1, pos: loc[0]})
		}
	}
	for _, loc := range numericMonthRe.FindAllStringSubmatchIndex(label, -1) {
		m, err := strconv.Atoi(label[loc[2]:loc[3]])
		if err == nil && m >= 1 && m <= 12 {
			hits = append(hits, hit{month: m - 1, pos: loc[0]})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	months := make([]int, len(hits))
	for i, h := range hits {
		months[i] = h.month
	}
	return months
}
