package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniyar/resume-studio/internal/config"
	"github.com/daniyar/resume-studio/internal/types"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *UserService) {
	t.Helper()
	svc, _ := newTestUserService()
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          testJWTSecret,
		ExpirationHours: 1,
	})
	return NewAuthHandler(svc, jwtService), svc
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates account and returns token", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		w := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.User)
		assert.Equal(t, "john@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("token from response validates", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		w := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		claims, err := handler.jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.String(), claims.Subject)
	})

	t.Run("duplicate email", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		first := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
			Name:     "Jane Doe",
			Email:    "john@example.com",
			Password: "another-password",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.JSONEq(t, `{"error": "email already registered: john@example.com"}`, second.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Invalid request body"}`, w.Body.String())
	})

	t.Run("validation failures", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		tests := []struct {
			name string
			req  types.CreateUserRequest
		}{
			{
				name: "missing name",
				req:  types.CreateUserRequest{Email: "john@example.com", Password: "correct-horse-battery"},
			},
			{
				name: "invalid email",
				req:  types.CreateUserRequest{Name: "John Doe", Email: "not-an-email", Password: "correct-horse-battery"},
			},
			{
				name: "short password",
				req:  types.CreateUserRequest{Name: "John Doe", Email: "john@example.com", Password: "short"},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := postJSON(t, handler.Register, "/auth/register", tt.req)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), "validation error")
			})
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	handler, svc := newTestAuthHandler(t)
	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "john@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "john@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "invalid email or password"}`, w.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse-battery",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
			Email: "john@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation error")
	})
}

func TestAuthHandler_UpdatePasswordWithUserID(t *testing.T) {
	handler, svc := newTestAuthHandler(t)
	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "original-password",
	})
	require.NoError(t, err)

	update := func(body any) *httptest.ResponseRecorder {
		return postJSON(t, func(w http.ResponseWriter, r *http.Request) {
			handler.UpdatePasswordWithUserID(w, r, user.ID)
		}, "/auth/password", body)
	}

	t.Run("wrong current password", func(t *testing.T) {
		w := update(types.UpdatePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password-123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "current password is incorrect"}`, w.Body.String())
	})

	t.Run("short new password", func(t *testing.T) {
		w := update(types.UpdatePasswordRequest{
			CurrentPassword: "original-password",
			NewPassword:     "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation error")
	})

	t.Run("updates password", func(t *testing.T) {
		w := update(types.UpdatePasswordRequest{
			CurrentPassword: "original-password",
			NewPassword:     "new-password-123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "Password updated successfully"}`, w.Body.String())

		_, err := svc.Login(context.Background(), &types.LoginRequest{
			Email:    "john@example.com",
			Password: "new-password-123",
		})
		require.NoError(t, err)
	})
}
