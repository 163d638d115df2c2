package formatter

import (
	"fmt"
	"strings"

	"github.com/chaiwat-s/onepage/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "ชื่อโครงการ", "ปีงบ", "สถานะ", "ความคืบหน้า", "งบประมาณ"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.Code
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}

		rows = append(rows, []string{
			id,
			Bold(p.Name),
			FiscalYearBE(p.FiscalYear),
			StatusPill(p.Status),
			RenderProgress(float64(p.Progress)/100, 10),
			FormatBaht(p.Budget),
		})
	}

	return RenderBox("โครงการ", RenderTable(headers, rows))
}

// FormatProjectInspect renders the full one-page card for a single record:
// the tracking metadata followed by every extracted text section that the
// document yielded.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(Dim(p.Department) + "\n\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}
	field("ID        ", p.DisplayID())
	field("UUID      ", TruncID(p.ID))
	field("ปีงบประมาณ", StyleFg.Render(FiscalYearBE(p.FiscalYear)))
	field("สถานะ     ", StatusPill(p.Status))
	field("ความคืบหน้า", RenderProgress(float64(p.Progress)/100, 12))
	field("ระยะเวลา  ", StyleFg.Render(DateRange(p.StartDate, p.EndDate)))
	field("ผู้รับผิดชอบ", StyleFg.Render(p.OwnerName))
	field("งบประมาณ  ", StyleFg.Render(FormatBaht(p.Budget)))

	sections := []struct {
		title string
		body  string
	}{
		{"วัตถุประสงค์", p.Objective},
		{"กลุ่มเป้าหมาย", p.TargetGroup},
		{"ผลที่คาดว่าจะได้รับ", p.Outcomes},
		{"ความเสี่ยง", p.Risks},
		{"แผนจัดการความเสี่ยง", p.Mitigation},
		{"แผนดำเนินการ", p.TimelineNote},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		b.WriteString("\n" + Header(s.title) + "\n")
		b.WriteString(StyleFg.Render(s.body) + "\n")
	}

	return RenderBox("", b.String())
}

// FormatImportPreview renders an extraction result before it is saved,
// flagging every field that fell back to a default so the reviewer knows what
// the document did not yield.
func FormatImportPreview(p *domain.Project, defaulted []string) string {
	defaultedSet := make(map[string]bool, len(defaulted))
	for _, f := range defaulted {
		defaultedSet[f] = true
	}
	mark := func(field, value string) string {
		if defaultedSet[field] {
			return value + " " + StyleYellow.Render("(ค่าเริ่มต้น)")
		}
		return value
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ชื่อโครงการ "), mark("name", Bold(p.Name))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("หน่วยงาน    "), mark("department", p.Department)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ผู้รับผิดชอบ"), mark("owner_name", p.OwnerName)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ปีงบประมาณ  "), FiscalYearBE(p.FiscalYear)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ระยะเวลา    "), DateRange(p.StartDate, p.EndDate)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("งบประมาณ    "), mark("budget", FormatBaht(p.Budget))))

	return RenderBox("ตรวจสอบข้อมูลที่สกัดได้", b.String())
}
