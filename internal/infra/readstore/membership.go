package readstore

import (
	"context"

	"bookwise/internal/domain/user"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type MembershipReadStore struct {
	db db.DBTX
}

func NewMembershipReadStore(dbtx db.DBTX) *MembershipReadStore {
	return &MembershipReadStore{db: dbtx}
}

const membershipRoleSQL = `
SELECT user_id, establishment_id, role
FROM establishment_members
WHERE user_id = $1 AND establishment_id = $2`

func (r *MembershipReadStore) FindRole(ctx context.Context, userID, establishmentID uuid.UUID) (*shared.MembershipSnapshot, error) {
	var (
		snap shared.MembershipSnapshot
		role string
	)
	err := r.db.QueryRow(ctx, membershipRoleSQL, userID, establishmentID).Scan(&snap.UserID, &snap.EstablishmentID, &role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find membership", err)
	}
	membershipRole, err := user.NewMembershipRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid membership role", err)
	}
	snap.Role = membershipRole
	return &snap, nil
}
