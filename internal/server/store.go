package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/daniyar/resume-studio/internal/db"
)

// Store is the database surface the HTTP handlers depend on. *db.DB
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	// Resumes
	CreateResume(ctx context.Context, userID uuid.UUID, title string, data map[string]any, targetJobRole string) (uuid.UUID, error)
	GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
	UpdateResume(ctx context.Context, resumeID, userID uuid.UUID, title string, data map[string]any, targetJobRole string) error
	SetGeneratedContent(ctx context.Context, resumeID, userID uuid.UUID, content string) error
	DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) error

	// Analysis history
	SaveResumeScore(ctx context.Context, record *db.ScoreRecord) (uuid.UUID, error)
	ListResumeScores(ctx context.Context, userID uuid.UUID, limit int) ([]db.ScoreRecord, error)
	SaveSkillAnalysis(ctx context.Context, record *db.SkillGapRecord) (uuid.UUID, error)
	ListSkillAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]db.SkillGapRecord, error)

	// Generated documents
	CreateCoverLetter(ctx context.Context, letter *db.CoverLetter) (uuid.UUID, error)
	GetCoverLetter(ctx context.Context, letterID, userID uuid.UUID) (*db.CoverLetter, error)
	ListCoverLetters(ctx context.Context, userID uuid.UUID) ([]db.CoverLetter, error)
	DeleteCoverLetter(ctx context.Context, letterID, userID uuid.UUID) error
	CreatePortfolio(ctx context.Context, portfolio *db.Portfolio) (uuid.UUID, error)
	GetPortfolio(ctx context.Context, portfolioID, userID uuid.UUID) (*db.Portfolio, error)
	ListPortfolios(ctx context.Context, userID uuid.UUID) ([]db.Portfolio, error)
	DeletePortfolio(ctx context.Context, portfolioID, userID uuid.UUID) error

	// Administration
	GetDashboardStats(ctx context.Context) (*db.DashboardStats, error)
	ListUsers(ctx context.Context) ([]db.UserSummary, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	Close()
}
