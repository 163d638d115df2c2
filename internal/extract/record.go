package extract

import (
	"strings"
	"time"

	"github.com/chaiwat-s/onepage/internal/calendar"
	"github.com/chaiwat-s/onepage/internal/domain"
)

// Record assembles a structured project record from normalized brief text.
// title is the source document title, used as the project-name fallback when
// the body yields none. Extraction is best-effort throughout: an absent
// pattern becomes an empty section, a sentinel, or a defaulted value, never
// an error. Identity and tracking fields (ID, code, status, timestamps) are
// left zero for the caller to assign.
func Record(text, title string, now time.Time) *domain.Project {
	name := ProjectName(text)
	if name == "" {
		name = strings.TrimSpace(title)
	}
	if name == "" {
		name = DefaultProjectName
	}

	start, end, durationLine := TimelineDates(text, now)
	note := joinNonEmpty("\n", durationLine, Section(text, HeadingMethod))

	return &domain.Project{
		Name:         name,
		Department:   Department(text),
		OwnerName:    OwnerName(text),
		FiscalYear:   calendar.ToGregorianYear(FiscalYearRaw(text, now)),
		StartDate:    start,
		EndDate:      end,
		Budget:       Budget(text),
		Objective:    Section(text, HeadingObjective),
		TargetGroup:  Section(text, HeadingTargetGroup),
		Outcomes:     Section(text, HeadingOutcomes),
		Risks:        Section(text, HeadingRisks),
		Mitigation:   Section(text, HeadingMitigation),
		TimelineNote: note,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
