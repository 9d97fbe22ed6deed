package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/daniyar/resume-studio/internal/db"
	"github.com/daniyar/resume-studio/internal/generate"
	"github.com/daniyar/resume-studio/internal/types"
)

// handleCreateCoverLetter generates and stores a cover letter for a resume
func (s *Server) handleCreateCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.CreateCoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resume, err := s.db.GetResume(r.Context(), req.ResumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = generate.DefaultTone
	}

	result := s.generator.GenerateCoverLetter(r.Context(), resume.Data, req.CompanyName, req.JobTitle, req.JobDescription, tone)

	letterID, err := s.db.CreateCoverLetter(r.Context(), &db.CoverLetter{
		UserID:           userID,
		ResumeID:         req.ResumeID,
		CompanyName:      req.CompanyName,
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		Tone:             tone,
		GeneratedContent: result.Content,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	letter, err := s.db.GetCoverLetter(r.Context(), letterID, userID)
	if err != nil || letter == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created cover letter")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"cover_letter": letter,
		"method":       result.Method,
	})
}

// handleListCoverLetters returns the authenticated user's cover letters
func (s *Server) handleListCoverLetters(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	letters, err := s.db.ListCoverLetters(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"cover_letters": letters,
		"count":         len(letters),
	})
}

// handleGetCoverLetter returns a single cover letter by ID
func (s *Server) handleGetCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	letterID, ok := s.parsePathID(w, r, "Cover letter")
	if !ok {
		return
	}

	letter, err := s.db.GetCoverLetter(r.Context(), letterID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if letter == nil {
		s.errorResponse(w, http.StatusNotFound, "Cover letter not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, letter)
}

// handleDeleteCoverLetter deletes a cover letter
func (s *Server) handleDeleteCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	letterID, ok := s.parsePathID(w, r, "Cover letter")
	if !ok {
		return
	}

	if err := s.db.DeleteCoverLetter(r.Context(), letterID, userID); err != nil {
		if err.Error() == "cover letter not found: "+letterID.String() {
			s.errorResponse(w, http.StatusNotFound, "Cover letter not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleCreatePortfolio renders and stores a portfolio site from a resume
func (s *Server) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	var req types.GeneratePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resume, err := s.db.GetResume(r.Context(), req.ResumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	templateName := req.Template
	if templateName == "" {
		templateName = "modern"
	}

	html, err := s.generator.GeneratePortfolio(resume.Data, templateName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render portfolio: "+err.Error())
		return
	}

	portfolioID, err := s.db.CreatePortfolio(r.Context(), &db.Portfolio{
		UserID:        userID,
		Title:         resume.Title,
		Template:      templateName,
		GeneratedHTML: html,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	portfolio, err := s.db.GetPortfolio(r.Context(), portfolioID, userID)
	if err != nil || portfolio == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created portfolio")
		return
	}

	s.jsonResponse(w, http.StatusCreated, portfolio)
}

// handleListPortfolios returns the authenticated user's portfolios
func (s *Server) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	portfolios, err := s.db.ListPortfolios(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"portfolios": portfolios,
		"count":      len(portfolios),
	})
}

// handleGetPortfolio returns a single portfolio by ID. With ?format=html the
// stored page is served directly so it can be previewed in a browser.
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	portfolioID, ok := s.parsePathID(w, r, "Portfolio")
	if !ok {
		return
	}

	portfolio, err := s.db.GetPortfolio(r.Context(), portfolioID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if portfolio == nil {
		s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(portfolio.GeneratedHTML)); err != nil {
			return
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, portfolio)
}

// handleDeletePortfolio deletes a portfolio
func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	portfolioID, ok := s.parsePathID(w, r, "Portfolio")
	if !ok {
		return
	}

	if err := s.db.DeletePortfolio(r.Context(), portfolioID, userID); err != nil {
		if err.Error() == "portfolio not found: "+portfolioID.String() {
			s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parsePathID parses the {id} path value as a UUID, naming the resource in
// error messages.
func (s *Server) parsePathID(w http.ResponseWriter, r *http.Request, resource string) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, resource+" ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+strings.ToLower(resource)+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
