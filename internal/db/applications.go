package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

const applicationColumns = `id, user_id, company, job_title, COALESCE(job_url, ''),
	COALESCE(job_description, ''), status, resume_id, COALESCE(notes, ''),
	applied_at, created_at, updated_at`

func scanApplication(row pgx.Row) (*types.JobApplication, error) {
	var app types.JobApplication
	var status string
	err := row.Scan(&app.ID, &app.UserID, &app.Company, &app.JobTitle, &app.JobURL,
		&app.JobDescription, &status, &app.ResumeID, &app.Notes,
		&app.AppliedAt, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	app.Status, _ = types.MapToApplicationStatus(status)
	return &app, nil
}

// CreateApplication inserts a new job application.
func (db *DB) CreateApplication(ctx context.Context, app *types.JobApplication) (*types.JobApplication, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO job_applications (user_id, company, job_title, job_url, job_description, status, notes)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''))
		 RETURNING `+applicationColumns,
		app.UserID, app.Company, app.JobTitle, app.JobURL, app.JobDescription, string(app.Status), app.Notes,
	)
	created, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// GetApplication retrieves an application by ID; returns nil when not found.
func (db *DB) GetApplication(ctx context.Context, appID uuid.UUID) (*types.JobApplication, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, appID)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ApplicationFilters holds optional filters for listing applications.
type ApplicationFilters struct {
	Status  string
	Company string
}

// ListApplications lists a user's applications, newest first.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID, filters ApplicationFilters) ([]types.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// UpdateApplication applies the non-nil fields of req to an application and
// returns the updated record.
func (db *DB) UpdateApplication(ctx context.Context, appID uuid.UUID, req *types.UpdateApplicationRequest) (*types.JobApplication, error) {
	app, err := db.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.JobTitle != nil {
		app.JobTitle = *req.JobTitle
	}
	if req.JobURL != nil {
		app.JobURL = *req.JobURL
	}
	if req.JobDescription != nil {
		app.JobDescription = *req.JobDescription
	}
	if req.Status != nil {
		app.Status, _ = types.MapToApplicationStatus(*req.Status)
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	if req.ResumeID != nil {
		if *req.ResumeID == "" {
			app.ResumeID = nil
		} else {
			rid, err := uuid.Parse(*req.ResumeID)
			if err != nil {
				return nil, fmt.Errorf("invalid resume_id: %w", err)
			}
			app.ResumeID = &rid
		}
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE job_applications
		 SET company = $1, job_title = $2, job_url = NULLIF($3, ''),
		     job_description = NULLIF($4, ''), status = $5, notes = NULLIF($6, ''),
		     resume_id = $7,
		     applied_at = CASE WHEN $5 = 'APPLIED' AND applied_at IS NULL THEN NOW() ELSE applied_at END,
		     updated_at = NOW()
		 WHERE id = $8
		 RETURNING `+applicationColumns,
		app.Company, app.JobTitle, app.JobURL, app.JobDescription, string(app.Status),
		app.Notes, app.ResumeID, appID,
	)
	updated, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return updated, nil
}

// SetApplicationDescription stores extracted job posting text.
func (db *DB) SetApplicationDescription(ctx context.Context, appID uuid.UUID, description string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_applications SET job_description = $1, updated_at = NOW() WHERE id = $2`,
		description, appID,
	)
	if err != nil {
		return fmt.Errorf("failed to set application description: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", appID)
	}
	return nil
}

// LinkResume attaches a tailored resume to an application.
func (db *DB) LinkResume(ctx context.Context, appID, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_applications SET resume_id = $1, updated_at = NOW() WHERE id = $2`,
		resumeID, appID,
	)
	if err != nil {
		return fmt.Errorf("failed to link resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", appID)
	}
	return nil
}

// DeleteApplication removes an application.
func (db *DB) DeleteApplication(ctx context.Context, appID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", appID)
	}
	return nil
}
