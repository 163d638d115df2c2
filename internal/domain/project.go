package domain

import (
	"fmt"
	"time"
)

// Project is one "Project One Page" record: the structured result of
// importing a government project brief, plus the tracking fields maintained
// after import. Text sections are empty when the source document did not
// contain them.
type Project struct {
	ID         string
	Code       string // short project code such as PJ-001, optional
	Name       string
	Department string
	OwnerName  string
	FiscalYear int // Gregorian-normalized fiscal year
	StartDate  time.Time
	EndDate    time.Time
	Status     ProjectStatus
	Progress   int // percent complete, 0-100
	Budget     int64

	Objective    string
	TargetGroup  string
	Outcomes     string
	Risks        string
	Mitigation   string
	TimelineNote string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields an update may change.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", p.Progress)
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", p.Budget)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("invalid status %q", p.Status)
	}
	if !p.EndDate.After(p.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Code; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.Code != "" {
		return p.Code
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
