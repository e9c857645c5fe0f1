//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookwise/internal/domain/user"
	"bookwise/internal/pkg/jwt"
	"bookwise/internal/pkg/password"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users  map[string]*queries.AuthorizedUser
	hashes map[string]string

	touched   []uuid.UUID
	failTouch bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  map[string]*queries.AuthorizedUser{},
		hashes: map[string]string{},
	}
}

func (s *fakeUserStore) add(t *testing.T, email, rawPassword string, role string, active bool) uuid.UUID {
	t.Helper()
	hash, err := password.HashPassword(rawPassword)
	require.NoError(t, err)

	id := uuid.New()
	s.users[email] = &queries.AuthorizedUser{
		ID:       id,
		Email:    email,
		Role:     role,
		IsActive: active,
	}
	s.hashes[email] = hash
	return id
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email user.Email) (*queries.AuthorizedUser, string, error) {
	account, ok := s.users[email.String()]
	if !ok {
		return nil, "", errors.New("no rows")
	}
	return account, s.hashes[email.String()], nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUser, error) {
	for _, account := range s.users {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, errors.New("no rows")
}

func (s *fakeUserStore) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	if s.failTouch {
		return errors.New("write failed")
	}
	s.touched = append(s.touched, id)
	return nil
}

func newAuthCommands(store *fakeUserStore) (commands.AuthCommands, *jwt.Service) {
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(store, store, jwtSvc), jwtSvc
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		store := newFakeUserStore()
		userID := store.add(t, "ada@example.com", "correct horse battery", string(user.RoleCustomer), true)
		auth, jwtSvc := newAuthCommands(store)

		result, err := auth.Login(ctx, "ada@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, userID, result.UserID)

		claims, err := jwtSvc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, string(user.RoleCustomer), claims.Role)

		assert.Equal(t, []uuid.UUID{userID}, store.touched)
	})

	t.Run("wrong password", func(t *testing.T) {
		store := newFakeUserStore()
		store.add(t, "ada@example.com", "correct horse battery", string(user.RoleCustomer), true)
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, "ada@example.com", "wrong")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Empty(t, store.touched)
	})

	t.Run("unknown account is indistinguishable from a wrong password", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		store := newFakeUserStore()
		store.add(t, "ada@example.com", "correct horse battery", string(user.RoleCustomer), false)
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, "ada@example.com", "correct horse battery")
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("malformed email", func(t *testing.T) {
		store := newFakeUserStore()
		auth, _ := newAuthCommands(store)

		_, err := auth.Login(ctx, "not-an-email", "whatever")
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})

	t.Run("last-login bookkeeping failure does not fail the login", func(t *testing.T) {
		store := newFakeUserStore()
		store.add(t, "ada@example.com", "correct horse battery", string(user.RoleStaff), true)
		store.failTouch = true
		auth, _ := newAuthCommands(store)

		result, err := auth.Login(ctx, "ada@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})
}
