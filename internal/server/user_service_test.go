package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniyar/resume-studio/internal/config"
	"github.com/daniyar/resume-studio/internal/db"
	"github.com/daniyar/resume-studio/internal/types"
)

// fakeDBClient is an in-memory DBClient for unit tests.
type fakeDBClient struct {
	users map[uuid.UUID]*db.User
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDBClient) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDBClient) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDBClient) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeDBClient) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService() (*UserService, *fakeDBClient) {
	client := newFakeDBClient()
	passwordConfig := &config.PasswordConfig{
		BcryptCost: 4, // Minimum cost for faster tests
		Pepper:     "",
	}
	return NewUserService(client, passwordConfig), client
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "John Doe",
			Email:        "john@example.com",
			Phone:        "555-0100",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			IsAdmin:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.Phone, typesUser.Phone)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.IsAdmin, typesUser.IsAdmin)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
	})

	t.Run("nil user", func(t *testing.T) {
		typesUser := convertDBUserToTypesUser(nil)
		assert.Nil(t, typesUser)
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		svc, client := newTestUserService()

		user, err := svc.Register(context.Background(), &types.CreateUserRequest{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "John Doe", user.Name)
		assert.True(t, user.PasswordSet)

		stored := client.users[user.ID]
		require.NotNil(t, stored)
		assert.NotEmpty(t, stored.PasswordHash)
		assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, err := svc.Register(context.Background(), &types.CreateUserRequest{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), &types.CreateUserRequest{
			Name:     "Jane Doe",
			Email:    "john@example.com",
			Password: "another-password",
		})
		require.Error(t, err)
		assert.IsType(t, &ErrEmailAlreadyExists{}, err)
	})
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newTestUserService()
	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), &types.LoginRequest{
			Email:    "john@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &types.LoginRequest{
			Email:    "john@example.com",
			Password: "wrong-password",
		})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse-battery",
		})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc, _ := newTestUserService()
	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "original-password",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), user.ID, "not-the-password", "new-password-123")
		assert.IsType(t, &ErrPasswordMismatch{}, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), uuid.New(), "original-password", "new-password-123")
		assert.IsType(t, &ErrUserNotFound{}, err)
	})

	t.Run("updates and allows login with new password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), user.ID, "original-password", "new-password-123")
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), &types.LoginRequest{
			Email:    "john@example.com",
			Password: "new-password-123",
		})
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), &types.LoginRequest{
			Email:    "john@example.com",
			Password: "original-password",
		})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_GetUser(t *testing.T) {
	svc, _ := newTestUserService()

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetUser(context.Background(), uuid.New())
		assert.IsType(t, &ErrUserNotFound{}, err)
	})

	t.Run("found", func(t *testing.T) {
		created, err := svc.Register(context.Background(), &types.CreateUserRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		user, err := svc.GetUser(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})
}
