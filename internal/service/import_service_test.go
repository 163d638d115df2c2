package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaiwat-s/onepage/internal/domain"
	"github.com/chaiwat-s/onepage/internal/repository"
	"github.com/chaiwat-s/onepage/internal/testutil"
)

// stubExtractor returns canned text or a canned error.
type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

const stubBrief = `โครงการ อบรมฟื้นฟูความรู้ อสม. ปีงบประมาณ 2569
วัตถุประสงค์ เพื่อพัฒนาศักยภาพอาสาสมัครสาธารณสุข
ระยะเวลาดำเนินการ เดือนตุลาคม พ.ศ. 2568 ถึง เดือนมีนาคม พ.ศ. 2569
สถานที่ดำเนินการ สำนักงานสาธารณสุขจังหวัดลำพูน
ผู้รับผิดชอบโครงการ นางสาวสมหญิง ใจดี
รวมเป็นเงินทั้งสิ้น 25,500 บาท`

func newImportService(t *testing.T, texts stubExtractor) (ImportService, repository.ProjectRepo) {
	t.Helper()
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))
	return NewImportService(repo, texts, nil), repo
}

func TestImportFile_PersistsExtractedRecord(t *testing.T) {
	svc, repo := newImportService(t, stubExtractor{text: stubBrief})
	ctx := context.Background()

	result, err := svc.ImportFile(ctx, "brief.pdf", "")
	require.NoError(t, err)
	require.NotNil(t, result.Project)

	got, err := repo.GetByID(ctx, result.Project.ID)
	require.NoError(t, err)
	assert.Equal(t, "อบรมฟื้นฟูความรู้ อสม.", got.Name)
	assert.Equal(t, 2026, got.FiscalYear)
	assert.Equal(t, int64(25500), got.Budget)
	assert.Equal(t, domain.ProjectOnTrack, got.Status)
	assert.True(t, got.EndDate.After(got.StartDate))
}

func TestImportFile_AcquisitionFailureAbortsImport(t *testing.T) {
	svc, repo := newImportService(t, stubExtractor{err: fmt.Errorf("pdftotext: damaged xref table")})
	ctx := context.Background()

	_, err := svc.ImportFile(ctx, "broken.pdf", "")

	require.Error(t, err)
	assert.ErrorContains(t, err, "acquiring document text")
	assert.ErrorContains(t, err, "damaged xref table")

	projects, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, projects)
}

func TestImportFile_EmptyTextIsAnError(t *testing.T) {
	svc, _ := newImportService(t, stubExtractor{text: "   \n\n  "})
	_, err := svc.ImportFile(context.Background(), "blank.pdf", "")
	assert.ErrorContains(t, err, "produced no text")
}

func TestPreviewFile_DoesNotPersist(t *testing.T) {
	svc, repo := newImportService(t, stubExtractor{text: stubBrief})
	ctx := context.Background()

	result, err := svc.PreviewFile(ctx, "brief.pdf", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Project.ID)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestPreviewFile_TitleFallbackFromFileName(t *testing.T) {
	svc, _ := newImportService(t, stubExtractor{text: "เอกสารที่ไม่มีหัวข้อโครงการเลย"})

	result, err := svc.PreviewFile(context.Background(), "/tmp/แผนงานปี69.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, "แผนงานปี69", result.Project.Name)
	assert.Contains(t, result.DefaultedFields, "name")
	assert.Contains(t, result.DefaultedFields, "department")
	assert.Contains(t, result.DefaultedFields, "owner_name")
	assert.Contains(t, result.DefaultedFields, "budget")
}

func TestImportFile_DefaultedFieldsEmptyForCompleteBrief(t *testing.T) {
	svc, _ := newImportService(t, stubExtractor{text: stubBrief})

	result, err := svc.ImportFile(context.Background(), "brief.pdf", "")
	require.NoError(t, err)
	assert.Empty(t, result.DefaultedFields)
}

func TestImportText_PersistsWithoutAcquisition(t *testing.T) {
	svc, repo := newImportService(t, stubExtractor{err: fmt.Errorf("never called")})
	ctx := context.Background()

	result, err := svc.ImportText(ctx, stubBrief, "")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, result.Project.ID)
	require.NoError(t, err)
	assert.Equal(t, "อบรมฟื้นฟูความรู้ อสม.", got.Name)
}

func TestImportText_RejectsBlankText(t *testing.T) {
	svc, _ := newImportService(t, stubExtractor{})

	_, err := svc.ImportText(context.Background(), "  \n ", "")
	assert.ErrorContains(t, err, "no text")
}

func TestSave_ValidatesBeforePersisting(t *testing.T) {
	svc, repo := newImportService(t, stubExtractor{text: stubBrief})
	ctx := context.Background()

	p := testutil.NewProject("PJ-009")
	p.Progress = 150
	assert.Error(t, svc.Save(ctx, p))

	p.Progress = 10
	require.NoError(t, svc.Save(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "PJ-009", got.Code)
}
