package readstore

import (
	"context"

	"bookwise/internal/domain/user"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userByEmailSQL = `
SELECT id, email, password_hash, role, active, last_login
FROM users
WHERE email = $1`

const userByIDSQL = `
SELECT id, email, password_hash, role, active, last_login
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUser, string, error) {
	return r.findOne(ctx, userByEmailSQL, email.String())
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUser, error) {
	u, _, err := r.findOne(ctx, userByIDSQL, id)
	return u, err
}

func (r *UserReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.AuthorizedUser, string, error) {
	var (
		u         queries.AuthorizedUser
		hash      string
		lastLogin pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &hash, &u.Role, &u.IsActive, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	u.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &u, hash, nil
}

const touchLastLoginSQL = `
UPDATE users SET last_login = now() WHERE id = $1`

func (r *UserReadStore) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, touchLastLoginSQL, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
