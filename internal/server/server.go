// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daniyar/resume-studio/internal/config"
	"github.com/daniyar/resume-studio/internal/db"
	"github.com/daniyar/resume-studio/internal/generate"
	"github.com/daniyar/resume-studio/internal/llm"
	"github.com/daniyar/resume-studio/internal/server/middleware"
	"github.com/daniyar/resume-studio/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          Store
	generator   *generate.Generator
	llmClient   llm.Client
	allowOrigin string
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	AllowOrigin  string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:          database,
		allowOrigin: cfg.AllowOrigin,
	}
	if s.allowOrigin == "" {
		s.allowOrigin = "*"
	}

	// Generation works without an API key; the rule-based path takes over.
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("LLM client unavailable, using rule-based generation: %v", err)
		} else {
			s.llmClient = client
		}
	}
	s.generator = generate.NewGenerator(s.llmClient)

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything except /health and the register and
// login endpoints requires a valid bearer token.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))
	mux.Handle("GET /auth/me", protected(s.handleGetMe))

	// Resume endpoints
	mux.Handle("POST /resumes", protected(s.handleCreateResume))
	mux.Handle("GET /resumes", protected(s.handleListResumes))
	mux.Handle("GET /resumes/{id}", protected(s.handleGetResume))
	mux.Handle("PUT /resumes/{id}", protected(s.handleUpdateResume))
	mux.Handle("DELETE /resumes/{id}", protected(s.handleDeleteResume))
	mux.Handle("POST /resumes/{id}/generate", protected(s.handleGenerateResume))

	// Analysis endpoints
	mux.Handle("POST /analyze/score", protected(s.handleScoreResume))
	mux.Handle("POST /analyze/score/batch", protected(s.handleBatchScore))
	mux.Handle("GET /analyze/scores", protected(s.handleListScores))
	mux.Handle("POST /analyze/skill-gap", protected(s.handleSkillGap))
	mux.Handle("GET /analyze/skill-gaps", protected(s.handleListSkillGaps))

	// Cover letter endpoints
	mux.Handle("POST /cover-letters", protected(s.handleCreateCoverLetter))
	mux.Handle("GET /cover-letters", protected(s.handleListCoverLetters))
	mux.Handle("GET /cover-letters/{id}", protected(s.handleGetCoverLetter))
	mux.Handle("DELETE /cover-letters/{id}", protected(s.handleDeleteCoverLetter))

	// Portfolio endpoints
	mux.Handle("POST /portfolios", protected(s.handleCreatePortfolio))
	mux.Handle("GET /portfolios", protected(s.handleListPortfolios))
	mux.Handle("GET /portfolios/{id}", protected(s.handleGetPortfolio))
	mux.Handle("DELETE /portfolios/{id}", protected(s.handleDeletePortfolio))

	// Admin endpoints; requireAdmin rejects non-admin accounts
	mux.Handle("GET /admin/dashboard", protected(s.handleAdminDashboard))
	mux.Handle("GET /admin/users", protected(s.handleAdminListUsers))
	mux.Handle("DELETE /admin/users/{id}", protected(s.handleAdminDeleteUser))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// handleGetMe returns the authenticated user's profile.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; deployments behind a trusted
// proxy should terminate X-Forwarded-For there.
func (s *Server) extractClientID(r *http.Request) string {
	// RemoteAddr has the form "IP:port"
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
