package extract

import (
	"regexp"
	"strconv"
	"time"

	"github.com/chaiwat-s/onepage/internal/calendar"
)

// timelineDateRe matches one "เดือน <month> พ.ศ. <year>" declaration on the
// duration line.
var timelineDateRe = regexp.MustCompile(`เดือน\s*([ก-๙]+)\s*พ\.ศ\.\s*(\d{4})`)

// defaultDurationMonths is the synthesized range length when the duration
// line yields no usable pair of dates.
const defaultDurationMonths = 6

// TimelineDates resolves the project's explicit start and end dates from the
// duration line. The first two month/year declarations on the line become
// the range: start is the first day of the start month, end the last day of
// the end month, with each year's era resolved independently. When fewer
// than two declarations parse, or the parsed range is inverted, a default
// range of now through now plus six months is synthesized so that start is
// always before end. The raw duration line is returned for the timeline note.
func TimelineDates(text string, now time.Time) (start, end time.Time, line string) {
	line = Line(text, HeadingDuration)

	ms := timelineDateRe.FindAllStringSubmatch(line, -1)
	if len(ms) >= 2 {
		sm, sy, okStart := resolveDate(ms[0])
		em, ey, okEnd := resolveDate(ms[1])
		if okStart && okEnd {
			start = time.Date(sy, sm, 1, 0, 0, 0, 0, time.UTC)
			// Day 0 of the following month is the last day of the end month.
			end = time.Date(ey, em+1, 0, 0, 0, 0, 0, time.UTC)
			if end.After(start) {
				return start, end, line
			}
		}
	}

	start = now.UTC()
	end = start.AddDate(0, defaultDurationMonths, 0)
	return start, end, line
}

func resolveDate(match []string) (time.Month, int, bool) {
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return calendar.ResolveMonthYear(match[1], year)
}
