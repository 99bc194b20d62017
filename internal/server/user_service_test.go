package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (s *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	s.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (s *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return s.users[userID], nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := s.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if u, ok := s.users[userID]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	// Minimum allowed cost keeps the tests fast.
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	svc, store := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash is never the plaintext password.
	stored := store.users[user.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)

	// Duplicate email is rejected.
	_, err = svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Other",
		Email:    "jane@example.com",
		Password: "password456",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong"})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "wrong", "newpassword1")
		assert.IsType(t, &ErrPasswordMismatch{}, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, uuid.New(), "password123", "newpassword1")
		assert.IsType(t, &ErrUserNotFound{}, err)
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, user.ID, "password123", "newpassword1"))

		_, err := svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "newpassword1"})
		assert.NoError(t, err)
		_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "password123"})
		assert.Error(t, err)
	})
}
