package server

import (
	"net/http"

	"github.com/google/uuid"
)

// requireAdmin extracts the authenticated user and checks the admin flag.
// Non-admin callers get a 403 and false back.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return uuid.Nil, false
	}

	user, err := s.userService.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, false
	}
	if !user.IsAdmin {
		err := &ErrAdminRequired{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, false
	}
	return userID, true
}

// handleAdminDashboard returns platform-wide usage counts and the most
// requested job roles.
func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	stats, err := s.db.GetDashboardStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleAdminListUsers returns every account, newest first.
func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	users, err := s.db.ListUsers(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}

// handleAdminDeleteUser removes an account and everything it owns. Admins
// cannot delete themselves; demote the flag first and let another admin
// do it.
func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}
	targetID, ok := s.parsePathID(w, r, "User")
	if !ok {
		return
	}

	if targetID == adminID {
		s.errorResponse(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := s.db.DeleteUser(r.Context(), targetID); err != nil {
		if err.Error() == "user not found: "+targetID.String() {
			s.errorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
