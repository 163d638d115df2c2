package domain

// ProjectStatus tracks where a project stands against its plan.
type ProjectStatus string

const (
	ProjectOnTrack ProjectStatus = "on_track"
	ProjectAtRisk  ProjectStatus = "at_risk"
	ProjectDelayed ProjectStatus = "delayed"
	ProjectDone    ProjectStatus = "done"
)

// ValidProjectStatuses lists every accepted status value.
var ValidProjectStatuses = []ProjectStatus{
	ProjectOnTrack,
	ProjectAtRisk,
	ProjectDelayed,
	ProjectDone,
}

func (s ProjectStatus) Valid() bool {
	for _, v := range ValidProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label returns the Thai display label used on printed one-page reports.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectOnTrack:
		return "ตามแผน"
	case ProjectAtRisk:
		return "เสี่ยง"
	case ProjectDelayed:
		return "ล่าช้า"
	case ProjectDone:
		return "เสร็จสิ้น"
	default:
		return string(s)
	}
}
