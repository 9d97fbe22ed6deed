package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is a persisted resume scoring report.
type ScoreRecord struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	ResumeID          *uuid.UUID `json:"resume_id,omitempty"`
	JobDescription    string     `json:"job_description"`
	OverallScore      float64    `json:"overall_score"`
	KeywordMatchScore float64    `json:"keyword_match_score"`
	FormatScore       float64    `json:"format_score"`
	ContentScore      float64    `json:"content_score"`
	MissingKeywords   []string   `json:"missing_keywords"`
	Suggestions       []string   `json:"suggestions"`
	CreatedAt         time.Time  `json:"created_at"`
}

// SkillGapRecord is a persisted skill gap analysis.
type SkillGapRecord struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JobRole         string    `json:"job_role"`
	RequiredSkills  []string  `json:"required_skills"`
	UserSkills      []string  `json:"user_skills"`
	MatchingSkills  []string  `json:"matching_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	MatchPercentage float64   `json:"match_percentage"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}

// SaveResumeScore stores a scoring report and returns its ID.
func (db *DB) SaveResumeScore(ctx context.Context, record *ScoreRecord) (uuid.UUID, error) {
	missingKeywords, err := json.Marshal(record.MissingKeywords)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing keywords: %w", err)
	}
	suggestions, err := json.Marshal(record.Suggestions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_scores
		   (user_id, resume_id, job_description, overall_score, keyword_match_score, format_score, content_score, missing_keywords, suggestions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		record.UserID, record.ResumeID, record.JobDescription,
		record.OverallScore, record.KeywordMatchScore, record.FormatScore, record.ContentScore,
		missingKeywords, suggestions,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume score: %w", err)
	}
	return id, nil
}

// ListResumeScores retrieves a user's scoring reports, newest first.
func (db *DB) ListResumeScores(ctx context.Context, userID uuid.UUID, limit int) ([]ScoreRecord, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_description, overall_score, keyword_match_score, format_score, content_score, missing_keywords, suggestions, created_at
		 FROM resume_scores WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var record ScoreRecord
		var missingKeywords, suggestions []byte
		if err := rows.Scan(&record.ID, &record.UserID, &record.ResumeID, &record.JobDescription,
			&record.OverallScore, &record.KeywordMatchScore, &record.FormatScore, &record.ContentScore,
			&missingKeywords, &suggestions, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume score: %w", err)
		}
		if err := json.Unmarshal(missingKeywords, &record.MissingKeywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing keywords: %w", err)
		}
		if err := json.Unmarshal(suggestions, &record.Suggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// SaveSkillAnalysis stores a skill gap analysis and returns its ID.
func (db *DB) SaveSkillAnalysis(ctx context.Context, record *SkillGapRecord) (uuid.UUID, error) {
	fields := map[string][]string{
		"required": record.RequiredSkills,
		"user":     record.UserSkills,
		"matching": record.MatchingSkills,
		"missing":  record.MissingSkills,
		"recs":     record.Recommendations,
	}
	encoded := make(map[string][]byte, len(fields))
	for name, value := range fields {
		bytes, err := json.Marshal(value)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal %s skills: %w", name, err)
		}
		encoded[name] = bytes
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skill_analyses
		   (user_id, job_role, required_skills, user_skills, matching_skills, missing_skills, match_percentage, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		record.UserID, record.JobRole,
		encoded["required"], encoded["user"], encoded["matching"], encoded["missing"],
		record.MatchPercentage, encoded["recs"],
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save skill analysis: %w", err)
	}
	return id, nil
}

// ListSkillAnalyses retrieves a user's skill gap analyses, newest first.
func (db *DB) ListSkillAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]SkillGapRecord, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_role, required_skills, user_skills, matching_skills, missing_skills, match_percentage, recommendations, created_at
		 FROM skill_analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill analyses: %w", err)
	}
	defer rows.Close()

	var records []SkillGapRecord
	for rows.Next() {
		var record SkillGapRecord
		var required, user, matching, missing, recs []byte
		if err := rows.Scan(&record.ID, &record.UserID, &record.JobRole,
			&required, &user, &matching, &missing, &record.MatchPercentage, &recs, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill analysis: %w", err)
		}
		for _, field := range []struct {
			bytes []byte
			dst   *[]string
		}{
			{required, &record.RequiredSkills},
			{user, &record.UserSkills},
			{matching, &record.MatchingSkills},
			{missing, &record.MissingSkills},
			{recs, &record.Recommendations},
		} {
			if err := json.Unmarshal(field.bytes, field.dst); err != nil {
				return nil, fmt.Errorf("failed to unmarshal skill analysis field: %w", err)
			}
		}
		records = append(records, record)
	}
	return records, nil
}
