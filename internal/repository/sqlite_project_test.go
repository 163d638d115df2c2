package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaiwat-s/onepage/internal/domain"
	"github.com/chaiwat-s/onepage/internal/testutil"
)

func newRepo(t *testing.T) *SQLiteProjectRepo {
	t.Helper()
	return NewSQLiteProjectRepo(testutil.NewTestDB(t))
}

func TestProjectRepo_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("PJ-001")

	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Code, got.Code)
	assert.Equal(t, p.Department, got.Department)
	assert.Equal(t, p.FiscalYear, got.FiscalYear)
	assert.Equal(t, p.Budget, got.Budget)
	assert.Equal(t, domain.ProjectOnTrack, got.Status)
	assert.Equal(t, p.StartDate, got.StartDate)
	assert.Equal(t, p.EndDate, got.EndDate)
	assert.Equal(t, p.TimelineNote, got.TimelineNote)
}

func TestProjectRepo_GetByCode_CaseInsensitive(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("PJ-007")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByCode(ctx, "pj-007")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestProjectRepo_GetMissing(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorContains(t, err, "not found")
}

func TestProjectRepo_NullableSectionsRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("")
	p.Objective = ""
	p.TimelineNote = ""

	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Code)
	assert.Equal(t, "", got.Objective)
	assert.Equal(t, "", got.TimelineNote)
}

func TestProjectRepo_ListByFiscalYear(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p1 := testutil.NewProject("PJ-001")
	p2 := testutil.NewProject("PJ-002")
	p2.FiscalYear = 2027
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	fy2026, err := repo.ListByFiscalYear(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, fy2026, 1)
	assert.Equal(t, "PJ-001", fy2026[0].Code)
}

func TestProjectRepo_Update(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("PJ-001")
	require.NoError(t, repo.Create(ctx, p))

	p.Status = domain.ProjectDone
	p.Progress = 100
	p.Budget = 30000
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectDone, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, int64(30000), got.Budget)
}

func TestProjectRepo_UpdatePersistsCallerTimestamp(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("PJ-001")
	require.NoError(t, repo.Create(ctx, p))

	// The caller owns updated_at; the repo must not stamp its own clock.
	stamp := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
	p.UpdatedAt = stamp
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, stamp, got.UpdatedAt)
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := testutil.NewProject("PJ-001")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.Error(t, err)
}
