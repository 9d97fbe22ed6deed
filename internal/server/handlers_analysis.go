package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/daniyar/resume-studio/internal/analysis"
	"github.com/daniyar/resume-studio/internal/db"
	"github.com/daniyar/resume-studio/internal/ingest"
	"github.com/daniyar/resume-studio/internal/skills"
	"github.com/daniyar/resume-studio/internal/types"
)

// resolveJobText returns the job posting text, fetching it from the URL
// when the request supplies job_url instead of job_description.
func (s *Server) resolveJobText(w http.ResponseWriter, r *http.Request, description, jobURL string) (string, bool) {
	if description != "" {
		return description, true
	}

	text, err := ingest.FetchJobText(r.Context(), jobURL, nil)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to fetch job posting: "+err.Error())
		return "", false
	}
	return text, true
}

// historyLimit parses the optional ?limit= query parameter.
func historyLimit(r *http.Request) int {
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			return limit
		}
	}
	return 0
}

// handleScoreResume scores a resume against a job description. The resume
// may be referenced by ID or supplied inline; the job posting may be given
// as text or as a URL to fetch.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.ScoreResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resumeData := req.ResumeData
	if req.ResumeID != nil {
		resume, err := s.db.GetResume(r.Context(), *req.ResumeID, userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if resume == nil {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		resumeData = resume.Data
	}

	jobText, ok := s.resolveJobText(w, r, req.JobDescription, req.JobURL)
	if !ok {
		return
	}

	report := analysis.AnalyzeResumeScore(resumeData, jobText)

	// History is best-effort; a failed write must not lose the report.
	record := &db.ScoreRecord{
		UserID:            userID,
		ResumeID:          req.ResumeID,
		JobDescription:    jobText,
		OverallScore:      report.OverallScore,
		KeywordMatchScore: report.KeywordMatchScore,
		FormatScore:       report.FormatScore,
		ContentScore:      report.ContentScore,
		MissingKeywords:   report.MissingKeywords,
		Suggestions:       report.Suggestions,
	}
	if _, err := s.db.SaveResumeScore(r.Context(), record); err != nil {
		log.Printf("Failed to save resume score: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleBatchScore scores one resume against several job postings. The
// postings are fetched concurrently; one unreachable URL fails the whole
// batch so partial results never masquerade as a full comparison.
func (s *Server) handleBatchScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resumeData := req.ResumeData
	if req.ResumeID != nil {
		resume, err := s.db.GetResume(r.Context(), *req.ResumeID, userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if resume == nil {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		resumeData = resume.Data
	}

	jobTexts, err := ingest.FetchAll(r.Context(), req.JobURLs, nil)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to fetch job posting: "+err.Error())
		return
	}

	type batchResult struct {
		JobURL string                `json:"job_url"`
		Report *analysis.ScoreReport `json:"report"`
	}
	results := make([]batchResult, len(jobTexts))
	for i, jobText := range jobTexts {
		report := analysis.AnalyzeResumeScore(resumeData, jobText)
		results[i] = batchResult{JobURL: req.JobURLs[i], Report: report}

		record := &db.ScoreRecord{
			UserID:            userID,
			ResumeID:          req.ResumeID,
			JobDescription:    jobText,
			OverallScore:      report.OverallScore,
			KeywordMatchScore: report.KeywordMatchScore,
			FormatScore:       report.FormatScore,
			ContentScore:      report.ContentScore,
			MissingKeywords:   report.MissingKeywords,
			Suggestions:       report.Suggestions,
		}
		if _, err := s.db.SaveResumeScore(r.Context(), record); err != nil {
			log.Printf("Failed to save resume score: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleListScores returns the authenticated user's scoring history
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	scores, err := s.db.ListResumeScores(r.Context(), userID, historyLimit(r))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"scores": scores,
		"count":  len(scores),
	})
}

// handleSkillGap analyzes the gap between a job posting's required skills
// and the user's skill list.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.SkillGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jobText, ok := s.resolveJobText(w, r, req.JobDescription, req.JobURL)
	if !ok {
		return
	}

	report := skills.AnalyzeGap(jobText, req.UserSkills, req.JobRole)

	record := &db.SkillGapRecord{
		UserID:          userID,
		JobRole:         report.JobRole,
		RequiredSkills:  report.RequiredSkills,
		UserSkills:      report.UserSkills,
		MatchingSkills:  report.MatchingSkills,
		MissingSkills:   report.MissingSkills,
		MatchPercentage: report.MatchPercentage,
		Recommendations: report.Recommendations,
	}
	if _, err := s.db.SaveSkillAnalysis(r.Context(), record); err != nil {
		log.Printf("Failed to save skill gap analysis: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListSkillGaps returns the authenticated user's skill gap history
func (s *Server) handleListSkillGaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	analyses, err := s.db.ListSkillAnalyses(r.Context(), userID, historyLimit(r))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}
