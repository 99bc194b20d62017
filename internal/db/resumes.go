package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is a stored resume: the full document as JSONB plus metadata
// columns for listing and lookup.
type Resume struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Title     string               `json:"title"`
	IsMaster  bool                 `json:"is_master"`
	Document  types.ResumeDocument `json:"document"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// CreateResume stores a new resume document for a user and returns the
// stored record. The row ID becomes the document's ID.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, title string, isMaster bool, doc *types.ResumeDocument) (*Resume, error) {
	content, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}

	var r Resume
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, is_master, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, is_master, created_at, updated_at`,
		userID, title, isMaster, content,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.IsMaster, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	r.Document = *doc
	r.Document.ID = r.ID.String()
	return &r, nil
}

// GetResume retrieves a resume by ID; returns nil when not found.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	var r Resume
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, is_master, content, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.IsMaster, &content, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(content, &r.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume document: %w", err)
	}
	r.Document.ID = r.ID.String()
	return &r, nil
}

// GetMasterResume retrieves the user's master resume; nil when none is set.
func (db *DB) GetMasterResume(ctx context.Context, userID uuid.UUID) (*Resume, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM resumes WHERE user_id = $1 AND is_master ORDER BY updated_at DESC LIMIT 1`,
		userID,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master resume: %w", err)
	}
	return db.GetResume(ctx, id)
}

// ResumeSummary is a lightweight view of a resume for listing.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	IsMaster  bool      `json:"is_master"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResumes lists a user's resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, is_master, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.IsMaster, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// UpdateResume replaces a resume's document and title.
func (db *DB) UpdateResume(ctx context.Context, resumeID uuid.UUID, title string, doc *types.ResumeDocument) error {
	content, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal resume document: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, content = $2, updated_at = NOW() WHERE id = $3`,
		title, content, resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// DeleteResume removes a resume.
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
