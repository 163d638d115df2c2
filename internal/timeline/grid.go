package timeline

import "time"

// gridMonths is the number of columns in the fiscal-year grid.
const gridMonths = 12

// MinBarWidthPct keeps every positioned bar visible, even for same-day
// ranges that would otherwise collapse to zero width.
const MinBarWidthPct = 1.5

// Span is a renderable horizontal position within the 12-column fiscal
// grid, expressed as percentages of the grid width.
type Span struct {
	StartPct float64
	WidthPct float64
}

// Window is one fiscal year as an absolute time range. It is derived from a
// record's fiscal year on demand and never stored.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the window for the given Gregorian fiscal year. A fiscal
// year labeled N beginning in startMonth runs from the first day of
// startMonth in year N-1 through the end of the preceding day one year
// later; a January start makes the fiscal year the calendar year N.
func NewWindow(fiscalYear int, startMonth time.Month) Window {
	startYear := fiscalYear
	if startMonth != time.January {
		startYear = fiscalYear - 1
	}
	start := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(1, 0, 0).Add(-time.Second),
	}
}

// Length returns the window's duration.
func (w Window) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// MapToGrid positions an absolute date range within the window. Both
// endpoints are clamped into the window before the percentages are computed,
// and the width never falls below MinBarWidthPct. ok is false when the range
// or the window is degenerate (zero dates, end not after start, empty
// window); such input is ungraphable and callers render a fallback notice
// instead of a bar.
func MapToGrid(start, end time.Time, w Window) (Span, bool) {
	total := w.Length()
	if total <= 0 || start.IsZero() || end.IsZero() || !end.After(start) {
		return Span{}, false
	}

	clampedStart := clamp(start, w)
	clampedEnd := clamp(end, w)

	startPct := float64(clampedStart.Sub(w.Start)) / float64(total) * 100
	widthPct := float64(clampedEnd.Sub(clampedStart)) / float64(total) * 100
	if widthPct < MinBarWidthPct {
		widthPct = MinBarWidthPct
	}
	return Span{StartPct: startPct, WidthPct: widthPct}, true
}

// MapMonthRange positions an inferred month range within the grid. startIdx
// and endIdx are 0-based calendar month indexes (0 = January); they are
// rotated into the fiscal ordering that begins at startMonth. The end
// boundary is exclusive (end month + 1) with a one-month minimum, so a range
// that collapses or wraps still produces a visible bar.
func MapMonthRange(startIdx, endIdx int, startMonth time.Month) Span {
	startPos := fiscalPos(startIdx, startMonth)
	endPos := fiscalPos(endIdx, startMonth) + 1
	if endPos <= startPos {
		endPos = startPos + 1
	}
	return Span{
		StartPct: float64(startPos) / gridMonths * 100,
		WidthPct: float64(endPos-startPos) / gridMonths * 100,
	}
}

// MonthLabels returns the 12 column labels of the grid, rotated so the first
// column is the fiscal start month.
func MonthLabels(startMonth time.Month) []string {
	labels := make([]string, gridMonths)
	for i := 0; i < gridMonths; i++ {
		m := time.Month((int(startMonth)-1+i)%gridMonths + 1)
		labels[i] = m.String()[:3]
	}
	return labels
}

// fiscalPos converts a 0-based calendar month index to its 0-based position
// within the fiscal ordering beginning at startMonth.
func fiscalPos(monthIdx int, startMonth time.Month) int {
	return (monthIdx - (int(startMonth) - 1) + gridMonths) % gridMonths
}

func clamp(t time.Time, w Window) time.Time {
	if t.Before(w.Start) {
		return w.Start
	}
	if t.After(w.End) {
		return w.End
	}
	return t
}
