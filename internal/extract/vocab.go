package extract

// Headings are the twelve canonical section labels of a government project
// brief. Documents may present them in any order; the list's order carries
// no meaning beyond exclusion (a label never bounds its own section).
var Headings = []string{
	HeadingObjective,
	HeadingTargetGroup,
	HeadingGoals,
	HeadingMethod,
	HeadingDuration,
	HeadingLocation,
	HeadingOwner,
	HeadingBudget,
	HeadingOutcomes,
	HeadingRisks,
	HeadingMitigation,
	HeadingSignature,
}

// Canonical heading labels.
const (
	HeadingObjective   = "วัตถุประสงค์"
	HeadingTargetGroup = "กลุ่มเป้าหมาย"
	HeadingGoals       = "เป้าหมายของโครงการ"
	HeadingMethod      = "วิธีการดำเนินการ"
	HeadingDuration    = "ระยะเวลาดำเนินการ"
	HeadingLocation    = "สถานที่ดำเนินการ"
	HeadingOwner       = "ผู้รับผิดชอบโครงการ"
	HeadingBudget      = "งบประมาณ"
	HeadingOutcomes    = "ผลที่คาดว่าจะได้รับ"
	HeadingRisks       = "ความเสี่ยง"
	HeadingMitigation  = "แผนจัดการความเสี่ยง"
	HeadingSignature   = "ลงชื่อ"
)

// Marker tokens and sentinels shared by the field extractors.
const (
	// projectMarker opens the project-name phrase on the title line.
	projectMarker = "โครงการ"
	// fiscalYearMarker precedes the 4-digit fiscal year and closes the
	// project-name phrase.
	fiscalYearMarker = "ปีงบประมาณ"

	// Unspecified is the sentinel for an absent department or owner.
	Unspecified = "ไม่ระบุ"
	// DefaultProjectName is the final fallback when neither the document
	// body nor the document title yields a project name.
	DefaultProjectName = "โครงการใหม่"
)
