package queries

import (
	"context"
	"time"

	"bookwise/internal/domain/user"

	"github.com/google/uuid"
)

type AuthorizedUser struct {
	ID        uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
}

type UserReadStore interface {
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email user.Email) (*AuthorizedUser, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUser, error)
}
