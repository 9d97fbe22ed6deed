package db

import (
	"context"
	"fmt"
)

// schemaStatements creates the tables on first boot. Statements are
// idempotent so re-running them against an existing database is safe.
// Child tables cascade on user deletion; admin account removal relies
// on that.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		phone         TEXT,
		password_hash TEXT,
		password_set  BOOLEAN NOT NULL DEFAULT FALSE,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title             TEXT NOT NULL,
		data              JSONB NOT NULL,
		target_job_role   TEXT,
		generated_content TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS resume_scores (
		id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id             UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resume_id           UUID REFERENCES resumes(id) ON DELETE SET NULL,
		job_description     TEXT NOT NULL,
		overall_score       DOUBLE PRECISION NOT NULL,
		keyword_match_score DOUBLE PRECISION NOT NULL,
		format_score        DOUBLE PRECISION NOT NULL,
		content_score       DOUBLE PRECISION NOT NULL,
		missing_keywords    JSONB NOT NULL DEFAULT '[]',
		suggestions         JSONB NOT NULL DEFAULT '[]',
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_analyses (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id          UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_role         TEXT NOT NULL,
		required_skills  JSONB NOT NULL DEFAULT '[]',
		user_skills      JSONB NOT NULL DEFAULT '[]',
		matching_skills  JSONB NOT NULL DEFAULT '[]',
		missing_skills   JSONB NOT NULL DEFAULT '[]',
		match_percentage DOUBLE PRECISION NOT NULL,
		recommendations  JSONB NOT NULL DEFAULT '[]',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cover_letters (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resume_id         UUID REFERENCES resumes(id) ON DELETE SET NULL,
		company_name      TEXT NOT NULL,
		job_title         TEXT NOT NULL,
		job_description   TEXT,
		tone              TEXT NOT NULL DEFAULT 'professional',
		generated_content TEXT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS portfolios (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id        UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		template       TEXT NOT NULL DEFAULT 'minimal',
		generated_html TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_resumes_user_id ON resumes(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_resume_scores_user_id ON resume_scores(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_skill_analyses_user_id ON skill_analyses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cover_letters_user_id ON cover_letters(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_portfolios_user_id ON portfolios(user_id)`,
}

// ensureSchema applies the schema statements in order.
func (db *DB) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
