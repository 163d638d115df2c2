package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chaiwat-s/onepage/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const dateLayout = "2006-01-02"

const projectColumns = `id, code, name, department, owner_name, fiscal_year,
	start_date, end_date, status, progress, budget,
	objective, target_group, outcomes, risks, mitigation, timeline_note,
	created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		nullableStringToValue(p.Code),
		p.Name,
		p.Department,
		p.OwnerName,
		p.FiscalYear,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		string(p.Status),
		p.Progress,
		p.Budget,
		nullableStringToValue(p.Objective),
		nullableStringToValue(p.TargetGroup),
		nullableStringToValue(p.Outcomes),
		nullableStringToValue(p.Risks),
		nullableStringToValue(p.Mitigation),
		nullableStringToValue(p.TimelineNote),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByCode(ctx context.Context, code string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(code) = UPPER(?)`
	return scanProject(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return r.queryProjects(ctx, query)
}

func (r *SQLiteProjectRepo) ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE fiscal_year = ? ORDER BY created_at`
	return r.queryProjects(ctx, query, fiscalYear)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET code = ?, name = ?, department = ?, owner_name = ?,
		fiscal_year = ?, start_date = ?, end_date = ?, status = ?, progress = ?, budget = ?,
		objective = ?, target_group = ?, outcomes = ?, risks = ?, mitigation = ?, timeline_note = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(p.Code),
		p.Name,
		p.Department,
		p.OwnerName,
		p.FiscalYear,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		string(p.Status),
		p.Progress,
		p.Budget,
		nullableStringToValue(p.Objective),
		nullableStringToValue(p.TargetGroup),
		nullableStringToValue(p.Outcomes),
		nullableStringToValue(p.Risks),
		nullableStringToValue(p.Mitigation),
		nullableStringToValue(p.TimelineNote),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string, args ...interface{}) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// rowScanner abstracts over *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var startDateStr, endDateStr, createdAtStr, updatedAtStr, statusStr string
	var code, objective, targetGroup, outcomes, risks, mitigation, timelineNote sql.NullString

	err := row.Scan(
		&p.ID, &code, &p.Name, &p.Department, &p.OwnerName, &p.FiscalYear,
		&startDateStr, &endDateStr, &statusStr, &p.Progress, &p.Budget,
		&objective, &targetGroup, &outcomes, &risks, &mitigation, &timelineNote,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Code = stringFromNull(code)
	p.Status = domain.ProjectStatus(statusStr)
	p.Objective = stringFromNull(objective)
	p.TargetGroup = stringFromNull(targetGroup)
	p.Outcomes = stringFromNull(outcomes)
	p.Risks = stringFromNull(risks)
	p.Mitigation = stringFromNull(mitigation)
	p.TimelineNote = stringFromNull(timelineNote)

	var parseErr error
	p.StartDate, parseErr = time.Parse(dateLayout, startDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	p.EndDate, parseErr = time.Parse(dateLayout, endDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
