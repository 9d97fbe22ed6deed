package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Resume represents a stored resume. Data holds the section structure as
// raw nested key-value data (personal_info, education, skills, projects,
// experience, internships, certifications, achievements) so the analysis
// layer can flatten it without a rigid schema.
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

// CreateResumeRequest represents the request to create or replace a resume.
type CreateResumeRequest struct {
	Title         string         `json:"title" validate:"required,min=1"`
	Data          map[string]any `json:"data" validate:"required"`
	TargetJobRole string         `json:"target_job_role,omitempty"`
}

// CoverLetter represents a stored cover letter and its generation inputs.
type CoverLetter struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	ResumeID         uuid.UUID `json:"resume_id"`
	CompanyName      string    `json:"company_name"`
	JobTitle         string    `json:"job_title"`
	JobDescription   string    `json:"job_description,omitempty"`
	Tone             string    `json:"tone"`
	GeneratedContent string    `json:"generated_content,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateCoverLetterRequest represents the request to create a cover letter.
type CreateCoverLetterRequest struct {
	ResumeID       uuid.UUID `json:"resume_id" validate:"required"`
	CompanyName    string    `json:"company_name" validate:"required,min=1"`
	JobTitle       string    `json:"job_title" validate:"required,min=1"`
	JobDescription string    `json:"job_description,omitempty"`
	Tone           string    `json:"tone,omitempty" validate:"omitempty,oneof=formal confident professional"`
}

// Portfolio represents a generated portfolio site.
type Portfolio struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Template      string    `json:"template"`
	GeneratedHTML string    `json:"generated_html"`
	CreatedAt     time.Time `json:"created_at"`
}

// GeneratePortfolioRequest represents the request to generate a portfolio
// site from a stored resume.
type GeneratePortfolioRequest struct {
	ResumeID uuid.UUID `json:"resume_id" validate:"required"`
	Template string    `json:"template,omitempty" validate:"omitempty,oneof=modern minimal creative"`
}

// ScoreResumeRequest represents the request to score a resume against a job
// description. Exactly one of ResumeID or ResumeData identifies the resume;
// exactly one of JobDescription or JobURL supplies the posting.
type ScoreResumeRequest struct {
	ResumeID       *uuid.UUID     `json:"resume_id,omitempty"`
	ResumeData     map[string]any `json:"resume_data,omitempty"`
	JobDescription string         `json:"job_description,omitempty"`
	JobURL         string         `json:"job_url,omitempty" validate:"omitempty,url"`
}

// BatchScoreRequest represents the request to score one resume against
// several job postings fetched by URL.
type BatchScoreRequest struct {
	ResumeID   *uuid.UUID     `json:"resume_id,omitempty"`
	ResumeData map[string]any `json:"resume_data,omitempty"`
	JobURLs    []string       `json:"job_urls" validate:"required,min=1,max=10,dive,url"`
}

// SkillGapRequest represents the request for a skill gap analysis.
type SkillGapRequest struct {
	JobDescription string   `json:"job_description,omitempty"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
	UserSkills     []string `json:"user_skills"`
	JobRole        string   `json:"job_role,omitempty"`
}

// GenerateResumeRequest represents the request to generate resume content.
type GenerateResumeRequest struct {
	JobDescription string `json:"job_description,omitempty"`
}

func (r *CreateResumeRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateCoverLetterRequest) Validate() error {
	return validate.Struct(r)
}

func (r *GeneratePortfolioRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ScoreResumeRequest. The resume may be identified by
// ID or supplied inline, and the job posting may be supplied as text or as a
// URL to fetch, but each must be supplied exactly one way.
func (r *ScoreResumeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.ResumeID == nil) == (len(r.ResumeData) == 0) {
		return errors.New("exactly one of resume_id or resume_data is required")
	}
	if (r.JobDescription == "") == (r.JobURL == "") {
		return errors.New("exactly one of job_description or job_url is required")
	}
	return nil
}

// Validate validates the BatchScoreRequest. The resume is identified the
// same way as in ScoreResumeRequest.
func (r *BatchScoreRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.ResumeID == nil) == (len(r.ResumeData) == 0) {
		return errors.New("exactly one of resume_id or resume_data is required")
	}
	return nil
}

// Validate validates the SkillGapRequest.
func (r *SkillGapRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.JobDescription == "") == (r.JobURL == "") {
		return errors.New("exactly one of job_description or job_url is required")
	}
	return nil
}
