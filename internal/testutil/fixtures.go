package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/chaiwat-s/onepage/internal/domain"
)

// NewProject returns a valid project record for tests, with the given code.
func NewProject(code string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         "อบรมฟื้นฟูความรู้ อสม.",
		Department:   "สำนักงานสาธารณสุขจังหวัดลำพูน",
		OwnerName:    "นางสาวสมหญิง ใจดี",
		FiscalYear:   2026,
		StartDate:    time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		Status:       domain.ProjectOnTrack,
		Progress:     0,
		Budget:       25500,
		Objective:    "เพื่อพัฒนาศักยภาพอาสาสมัครสาธารณสุข",
		TimelineNote: "Q1 วางแผน\nQ2 อบรม",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
