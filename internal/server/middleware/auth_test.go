package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

// echoHandler records the user ID the middleware put on the context.
func echoHandler(t *testing.T, want uuid.UUID, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		got, err := GetUserID(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	called := false
	handler := AuthMiddleware(&stubValidator{userID: userID})(echoHandler(t, userID, &called))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	userID := uuid.New()
	called := false
	handler := AuthMiddleware(&stubValidator{userID: userID})(echoHandler(t, userID, &called))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "scheme without token", header: "Bearer"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(&stubValidator{userID: uuid.New()})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

			req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called, "handler must not run without credentials")
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
			assert.JSONEq(t, `{"error":"missing or malformed Authorization header"}`, w.Body.String())
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	called := false
	handler := AuthMiddleware(&stubValidator{err: errors.New("token expired")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, w.Body.String())
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)

	_, err := GetUserID(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ID not found")
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, ok := bearerToken(req)
	require.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}
