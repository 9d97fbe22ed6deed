package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Resume represents a stored resume. Data holds the raw section structure
// as JSONB.
type Resume struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Title            string         `json:"title"`
	Data             map[string]any `json:"data"`
	TargetJobRole    string         `json:"target_job_role,omitempty"`
	GeneratedContent string         `json:"generated_content,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreateResume inserts a resume for a user and returns its ID.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, title string, data map[string]any, targetJobRole string) (uuid.UUID, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, data, target_job_role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, title, dataBytes, targetJobRole,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID, scoped to its owner. Returns nil when
// no such resume exists for the user.
func (db *DB) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*Resume, error) {
	var resume Resume
	var dataBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, data, COALESCE(target_job_role, ''), COALESCE(generated_content, ''), created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&resume.ID, &resume.UserID, &resume.Title, &dataBytes, &resume.TargetJobRole, &resume.GeneratedContent, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(dataBytes, &resume.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves all resumes for a user, newest first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, data, COALESCE(target_job_role, ''), COALESCE(generated_content, ''), created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var resume Resume
		var dataBytes []byte
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.Title, &dataBytes, &resume.TargetJobRole, &resume.GeneratedContent, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(dataBytes, &resume.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

// UpdateResume replaces a resume's title, data, and target role.
func (db *DB) UpdateResume(ctx context.Context, resumeID, userID uuid.UUID, title string, data map[string]any, targetJobRole string) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal resume data: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, data = $2, target_job_role = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5`,
		title, dataBytes, targetJobRole, resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// SetGeneratedContent stores generated resume content on an existing resume.
func (db *DB) SetGeneratedContent(ctx context.Context, resumeID, userID uuid.UUID, content string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET generated_content = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		content, resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set generated content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// DeleteResume deletes a resume and its dependent records (via cascade).
func (db *DB) DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
