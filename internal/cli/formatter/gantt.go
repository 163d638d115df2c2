package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chaiwat-s/onepage/internal/service"
	"github.com/chaiwat-s/onepage/internal/timeline"
)

const (
	// ganttCellsPerMonth makes every month column four characters wide, so
	// the 12-month grid is 48 cells.
	ganttCellsPerMonth = 4
	ganttWidth         = 12 * ganttCellsPerMonth

	// ganttLabelWidth is the fixed width of the task label column.
	ganttLabelWidth = 28

	// UngraphableNotice is shown instead of a project bar when the record's
	// date range cannot be positioned on the grid.
	UngraphableNotice = "ไม่สามารถแสดง Gantt chart ได้ (ตรวจสอบวันที่เริ่มต้น/สิ้นสุด)"
)

// FormatGantt renders a timeline view as a terminal Gantt chart: one rotated
// fiscal-year month header, a bar for the record's overall date range with
// its progress overlaid, then one row per inferred task. Tasks without a
// positioned span still get a row so the reader sees every schedule line.
func FormatGantt(view *service.TimelineView) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s", StyleBold.Render(view.Project.Name),
		Dim("ปีงบประมาณ "+FiscalYearBE(view.Project.FiscalYear)))
	b.WriteString(title + "\n\n")

	b.WriteString(padLabel("") + monthHeader(view.StartMonth) + "\n")
	b.WriteString(padLabel("") + StyleDim.Render(strings.Repeat("─", ganttWidth)) + "\n")

	if view.ProjectSpan != nil {
		bar := renderBar(*view.ProjectSpan, progressOverlay(view.Project.Progress), StyleGreen)
		b.WriteString(padLabel("ระยะเวลาโครงการ") + bar + "\n")
	} else {
		b.WriteString(padLabel("ระยะเวลาโครงการ") + StyleYellow.Render(UngraphableNotice) + "\n")
	}

	for _, task := range view.Tasks {
		row := padLabel(task.Label)
		if task.Span != nil {
			row += renderBar(*task.Span, -1, ToneStyle(task.Tone))
		}
		b.WriteString(row + "\n")
	}

	return RenderBox("", b.String())
}

// monthHeader renders the 12 column labels rotated to the fiscal start month.
func monthHeader(startMonth time.Month) string {
	var b strings.Builder
	for _, label := range timeline.MonthLabels(startMonth) {
		b.WriteString(StyleDim.Render(padCell(label)))
	}
	return b.String()
}

// renderBar positions a span on the grid as a run of block characters. When
// progressPct is non-negative the completed fraction of the bar renders
// filled and the remainder hollow; a negative value renders a solid bar.
func renderBar(span timeline.Span, progressPct int, style lipgloss.Style) string {
	start := int(span.StartPct / 100 * ganttWidth)
	width := int(span.WidthPct/100*ganttWidth + 0.5)
	if width < 1 {
		width = 1
	}
	if start > ganttWidth-1 {
		start = ganttWidth - 1
	}
	if start+width > ganttWidth {
		width = ganttWidth - start
	}

	var bar string
	if progressPct >= 0 {
		filled := width * progressPct / 100
		bar = strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	} else {
		bar = strings.Repeat(filledBlock, width)
	}

	return pad(start) + style.Render(bar)
}

// padLabel truncates or pads a task label to the fixed label column width.
func padLabel(label string) string {
	for lipgloss.Width(label) > ganttLabelWidth-2 {
		r := []rune(label)
		label = string(r[:len(r)-1])
	}
	return label + pad(ganttLabelWidth-lipgloss.Width(label))
}

func padCell(label string) string {
	if len(label) > ganttCellsPerMonth {
		label = label[:ganttCellsPerMonth]
	}
	return label + pad(ganttCellsPerMonth-len(label))
}

func progressOverlay(progress int) int {
	if progress <= 0 {
		return -1
	}
	return progress
}
