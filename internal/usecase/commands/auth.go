package commands

import (
	"context"
	"log/slog"

	"bookwise/internal/domain/user"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/pkg/jwt"
	"bookwise/internal/pkg/password"
	"bookwise/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

// LastLoginRecorder is the optional post-login bookkeeping hook.
type LastLoginRecorder interface {
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	recorder   LastLoginRecorder
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, recorder LastLoginRecorder, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		recorder:   recorder,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	account, hash, err := a.readStore.FindByEmail(ctx, addr)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if a.recorder != nil {
		if recErr := a.recorder.TouchLastLogin(ctx, account.ID); recErr != nil {
			// Not critical; the login itself succeeded
			slog.Warn("failed to update last login", "user_id", account.ID, "error", recErr.Error())
		}
	}

	return &LoginResult{UserID: account.ID, AccessToken: token}, nil
}
