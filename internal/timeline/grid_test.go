package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func octWindow(fiscalYear int) Window {
	return NewWindow(fiscalYear, time.October)
}

func TestNewWindow_OctoberStart(t *testing.T) {
	w := octWindow(2026)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, 2026, w.End.Year())
	assert.Equal(t, time.September, w.End.Month())
	assert.Equal(t, 30, w.End.Day())
	assert.Greater(t, w.Length(), time.Duration(0))
}

func TestNewWindow_JanuaryStart(t *testing.T) {
	w := NewWindow(2026, time.January)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, 2026, w.End.Year())
	assert.Equal(t, time.December, w.End.Month())
}

func TestMapToGrid_FullYearRange(t *testing.T) {
	w := octWindow(2026)
	span, ok := MapToGrid(w.Start, w.End, w)
	assert.True(t, ok)
	assert.InDelta(t, 0, span.StartPct, 0.01)
	assert.InDelta(t, 100, span.WidthPct, 0.01)
}

func TestMapToGrid_ClampsOutOfRange(t *testing.T) {
	w := octWindow(2026)
	start := w.Start.AddDate(-2, 0, 0)
	end := w.End.AddDate(1, 0, 0)

	span, ok := MapToGrid(start, end, w)

	assert.True(t, ok)
	assert.InDelta(t, 0, span.StartPct, 0.01)
	assert.InDelta(t, 100, span.WidthPct, 0.01)
	assert.GreaterOrEqual(t, span.StartPct, 0.0)
	assert.LessOrEqual(t, span.StartPct, 100.0)
}

func TestMapToGrid_MinimumWidth(t *testing.T) {
	w := octWindow(2026)
	day := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	span, ok := MapToGrid(day, day.Add(time.Hour), w)

	assert.True(t, ok)
	assert.GreaterOrEqual(t, span.WidthPct, MinBarWidthPct)
}

func TestMapToGrid_EntirelyOutsideWindowStaysVisible(t *testing.T) {
	w := octWindow(2026)
	start := w.End.AddDate(0, 3, 0)
	end := w.End.AddDate(0, 9, 0)

	span, ok := MapToGrid(start, end, w)

	assert.True(t, ok)
	assert.GreaterOrEqual(t, span.WidthPct, MinBarWidthPct)
	assert.LessOrEqual(t, span.StartPct, 100.0)
}

func TestMapToGrid_Degenerate(t *testing.T) {
	w := octWindow(2026)
	at := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		window     Window
	}{
		{"end before start", at, at.AddDate(0, -3, 0), w},
		{"end equals start", at, at, w},
		{"zero start", time.Time{}, at, w},
		{"zero end", at, time.Time{}, w},
		{"zero-length window", at, at.AddDate(0, 1, 0), Window{Start: at, End: at}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := MapToGrid(tt.start, tt.end, tt.window)
			assert.False(t, ok)
		})
	}
}

func TestMapMonthRange_FiscalRotation(t *testing.T) {
	// October (index 9) is the first fiscal column in an October-start grid.
	span := MapMonthRange(9, 9, time.October)
	assert.InDelta(t, 0, span.StartPct, 0.01)
	assert.InDelta(t, 100.0/12, span.WidthPct, 0.01)

	// October through March spans the first six columns.
	span = MapMonthRange(9, 2, time.October)
	assert.InDelta(t, 0, span.StartPct, 0.01)
	assert.InDelta(t, 50, span.WidthPct, 0.01)

	// September is the last fiscal column.
	span = MapMonthRange(8, 8, time.October)
	assert.InDelta(t, 100.0/12*11, span.StartPct, 0.01)
	assert.InDelta(t, 100.0/12, span.WidthPct, 0.01)
}

func TestMapMonthRange_JanuaryStartIsIdentity(t *testing.T) {
	span := MapMonthRange(0, 5, time.January)
	assert.InDelta(t, 0, span.StartPct, 0.01)
	assert.InDelta(t, 50, span.WidthPct, 0.01)
}

func TestMapMonthRange_CollapsedSpanGetsOneMonth(t *testing.T) {
	// End rotates to a position at or before the start: force one month.
	span := MapMonthRange(2, 9, time.October) // Mar..Oct wraps in fiscal order
	assert.InDelta(t, 100.0/12*5, span.StartPct, 0.01)
	assert.InDelta(t, 100.0/12, span.WidthPct, 0.01)
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(time.October)
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep"}, labels)

	labels = MonthLabels(time.January)
	assert.Equal(t, "Jan", labels[0])
	assert.Equal(t, "Dec", labels[11])
}
