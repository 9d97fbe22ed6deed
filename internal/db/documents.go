package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CoverLetter is a persisted cover letter.
type CoverLetter struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	ResumeID         uuid.UUID `json:"resume_id"`
	CompanyName      string    `json:"company_name"`
	JobTitle         string    `json:"job_title"`
	JobDescription   string    `json:"job_description,omitempty"`
	Tone             string    `json:"tone"`
	GeneratedContent string    `json:"generated_content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Portfolio is a persisted portfolio site.
type Portfolio struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Template      string    `json:"template"`
	GeneratedHTML string    `json:"generated_html"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCoverLetter stores a cover letter and returns its ID.
func (db *DB) CreateCoverLetter(ctx context.Context, letter *CoverLetter) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cover_letters (user_id, resume_id, company_name, job_title, job_description, tone, generated_content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		letter.UserID, letter.ResumeID, letter.CompanyName, letter.JobTitle,
		letter.JobDescription, letter.Tone, letter.GeneratedContent,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create cover letter: %w", err)
	}
	return id, nil
}

// GetCoverLetter retrieves a cover letter by ID, scoped to its owner.
// Returns nil when no such letter exists for the user.
func (db *DB) GetCoverLetter(ctx context.Context, letterID, userID uuid.UUID) (*CoverLetter, error) {
	var letter CoverLetter
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, company_name, job_title, COALESCE(job_description, ''), tone, generated_content, created_at, updated_at
		 FROM cover_letters WHERE id = $1 AND user_id = $2`,
		letterID, userID,
	).Scan(&letter.ID, &letter.UserID, &letter.ResumeID, &letter.CompanyName, &letter.JobTitle,
		&letter.JobDescription, &letter.Tone, &letter.GeneratedContent, &letter.CreatedAt, &letter.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}
	return &letter, nil
}

// ListCoverLetters retrieves a user's cover letters, newest first.
func (db *DB) ListCoverLetters(ctx context.Context, userID uuid.UUID) ([]CoverLetter, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, company_name, job_title, COALESCE(job_description, ''), tone, generated_content, created_at, updated_at
		 FROM cover_letters WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cover letters: %w", err)
	}
	defer rows.Close()

	var letters []CoverLetter
	for rows.Next() {
		var letter CoverLetter
		if err := rows.Scan(&letter.ID, &letter.UserID, &letter.ResumeID, &letter.CompanyName, &letter.JobTitle,
			&letter.JobDescription, &letter.Tone, &letter.GeneratedContent, &letter.CreatedAt, &letter.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cover letter: %w", err)
		}
		letters = append(letters, letter)
	}
	return letters, nil
}

// DeleteCoverLetter deletes a cover letter, scoped to its owner.
func (db *DB) DeleteCoverLetter(ctx context.Context, letterID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`,
		letterID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cover letter not found: %s", letterID)
	}
	return nil
}

// CreatePortfolio stores a generated portfolio site and returns its ID.
func (db *DB) CreatePortfolio(ctx context.Context, portfolio *Portfolio) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO portfolios (user_id, title, template, generated_html)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		portfolio.UserID, portfolio.Title, portfolio.Template, portfolio.GeneratedHTML,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return id, nil
}

// GetPortfolio retrieves a portfolio by ID, scoped to its owner. Returns nil
// when no such portfolio exists for the user.
func (db *DB) GetPortfolio(ctx context.Context, portfolioID, userID uuid.UUID) (*Portfolio, error) {
	var portfolio Portfolio
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, template, generated_html, created_at
		 FROM portfolios WHERE id = $1 AND user_id = $2`,
		portfolioID, userID,
	).Scan(&portfolio.ID, &portfolio.UserID, &portfolio.Title, &portfolio.Template, &portfolio.GeneratedHTML, &portfolio.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return &portfolio, nil
}

// ListPortfolios retrieves a user's portfolios, newest first.
func (db *DB) ListPortfolios(ctx context.Context, userID uuid.UUID) ([]Portfolio, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, template, generated_html, created_at
		 FROM portfolios WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []Portfolio
	for rows.Next() {
		var portfolio Portfolio
		if err := rows.Scan(&portfolio.ID, &portfolio.UserID, &portfolio.Title, &portfolio.Template, &portfolio.GeneratedHTML, &portfolio.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, portfolio)
	}
	return portfolios, nil
}

// DeletePortfolio removes a portfolio owned by the user.
func (db *DB) DeletePortfolio(ctx context.Context, portfolioID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM portfolios WHERE id = $1 AND user_id = $2`,
		portfolioID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio not found: %s", portfolioID)
	}
	return nil
}
