package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// topRoleLimit caps the most-requested-roles list on the dashboard.
const topRoleLimit = 5

// DashboardStats aggregates platform-wide usage for the admin dashboard.
type DashboardStats struct {
	TotalUsers    int64       `json:"total_users"`
	TotalResumes  int64       `json:"total_resumes"`
	TotalScores   int64       `json:"total_scores"`
	TotalAnalyses int64       `json:"total_analyses"`
	TopRoles      []RoleCount `json:"top_roles"`
}

// RoleCount is a job role and how many analyses requested it.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// UserSummary is the admin-facing view of an account. It carries no
// password material.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// GetDashboardStats collects row counts and the most requested job roles.
func (db *DB) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	counts := []struct {
		table string
		dst   *int64
	}{
		{"users", &stats.TotalUsers},
		{"resumes", &stats.TotalResumes},
		{"resume_scores", &stats.TotalScores},
		{"skill_analyses", &stats.TotalAnalyses},
	}
	for _, c := range counts {
		err := db.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.table)).Scan(c.dst)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	rows, err := db.pool.Query(ctx,
		`SELECT job_role, COUNT(*) AS requests
		 FROM skill_analyses
		 GROUP BY job_role
		 ORDER BY requests DESC, job_role
		 LIMIT $1`,
		topRoleLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rank job roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rc RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan role count: %w", err)
		}
		stats.TopRoles = append(stats.TopRoles, rc)
	}
	return &stats, nil
}

// ListUsers retrieves every account, newest first.
func (db *DB) ListUsers(ctx context.Context) ([]UserSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, is_admin, created_at
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []UserSummary
	for rows.Next() {
		var u UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// DeleteUser removes an account. Owned rows go with it through the
// ON DELETE CASCADE constraints on the child tables.
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
