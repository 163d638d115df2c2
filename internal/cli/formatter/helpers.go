package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatBaht renders an amount of whole baht with thousand separators and the
// Thai currency word, matching how briefs state budgets. Zero renders as a
// dimmed placeholder because an absent budget is stored as zero.
func FormatBaht(amount int64) string {
	if amount == 0 {
		return Dim("--")
	}
	return groupDigits(amount) + " บาท"
}

// groupDigits inserts commas every three digits.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FiscalYearBE renders a Gregorian-normalized fiscal year in the Buddhist Era
// numbering readers expect on reports.
func FiscalYearBE(fiscalYear int) string {
	return strconv.Itoa(fiscalYear + 543)
}

// HumanDate renders a date in the short form used throughout list views.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("2 Jan 2006")
}

// DateRange renders a start/end pair.
func DateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", HumanDate(start), HumanDate(end))
}
