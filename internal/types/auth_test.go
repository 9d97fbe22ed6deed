package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: CreateUserRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "password123",
				Phone:    "555-0100",
			},
			wantErr: false,
		},
		{
			name: "valid request without phone",
			request: CreateUserRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: CreateUserRequest{
				Email:    "john@example.com",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email format",
			request: CreateUserRequest{
				Name:     "John Doe",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: CreateUserRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name: "password exactly 8 characters",
			request: CreateUserRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "12345678",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "john@example.com", Password: "password123"},
			wantErr: false,
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "password123"},
			wantErr: true,
		},
		{
			name:    "invalid email format",
			request: LoginRequest{Email: "not-an-email", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "john@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request UpdatePasswordRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: UpdatePasswordRequest{
				CurrentPassword: "oldpassword123",
				NewPassword:     "newpassword456",
			},
			wantErr: false,
		},
		{
			name:    "missing current password",
			request: UpdatePasswordRequest{NewPassword: "newpassword456"},
			wantErr: true,
		},
		{
			name: "new password too short",
			request: UpdatePasswordRequest{
				CurrentPassword: "oldpassword123",
				NewPassword:     "short",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginResponse_Serialization(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	response := LoginResponse{
		User: &User{
			ID:          userID,
			Name:        "John Doe",
			Email:       "john@example.com",
			PasswordSet: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Token: "test-jwt-token-12345",
	}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, userID.String())
	assert.Contains(t, jsonStr, "test-jwt-token-12345")
	// The response type never carries credentials.
	assert.NotContains(t, jsonStr, "password_hash")

	var unmarshaled LoginResponse
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	require.NotNil(t, unmarshaled.User)
	assert.Equal(t, userID, unmarshaled.User.ID)
	assert.Equal(t, "John Doe", unmarshaled.User.Name)
}
