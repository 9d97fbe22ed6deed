package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/daniyar/resume-studio/internal/schemas"
	"github.com/daniyar/resume-studio/internal/server/middleware"
	"github.com/daniyar/resume-studio/internal/types"
)

// requireUserID extracts the authenticated user ID set by the auth
// middleware. A missing ID means the route was registered without the
// middleware, so respond 401 and return false.
func (s *Server) requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// validationMessage renders a request validation error for the client.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return extractValidationErrors(err)
	}
	return err.Error()
}

// parseResumeID parses the {id} path value as a resume UUID.
func (s *Server) parseResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return uuid.Nil, false
	}
	resumeID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return uuid.Nil, false
	}
	return resumeID, true
}

// handleCreateResume stores a new resume for the authenticated user
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if err := schemas.ValidateResumeData(req.Data); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resumeID, err := s.db.CreateResume(r.Context(), userID, req.Title, req.Data, req.TargetJobRole)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil || resume == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes returns all resumes owned by the authenticated user
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

// handleGetResume returns a single resume by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.parseResumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a resume's title, data, and target role
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.parseResumeID(w, r)
	if !ok {
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if err := schemas.ValidateResumeData(req.Data); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.db.UpdateResume(r.Context(), resumeID, userID, req.Title, req.Data, req.TargetJobRole); err != nil {
		if err.Error() == "resume not found: "+resumeID.String() {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil || resume == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a resume and its dependent records
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.parseResumeID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resumeID, userID); err != nil {
		if err.Error() == "resume not found: "+resumeID.String() {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGenerateResume produces tailored resume content for a stored resume.
// The request body is optional; when present it may carry a job description
// to tailor the generated content toward.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.parseResumeID(w, r)
	if !ok {
		return
	}

	var req types.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	result := s.generator.GenerateResume(r.Context(), resume.Data, req.JobDescription)

	if err := s.db.SetGeneratedContent(r.Context(), resumeID, userID, result.Content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id":          resumeID.String(),
		"generated_content":  result.Content,
		"method":             result.Method,
		"keywords_optimized": result.KeywordsOptimized,
	})
}
