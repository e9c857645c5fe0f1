package readstore

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// ServiceReadStore is the narrow lookup into the service catalog; service
// CRUD itself lives outside the booking core.
type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceByIDSQL = `
SELECT id, establishment_id, name, service_type, base_price_cents, active, requires_confirmation
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var (
		snap        shared.ServiceSnapshot
		serviceType string
	)
	row := r.db.QueryRow(ctx, serviceByIDSQL, id)
	err := row.Scan(&snap.ID, &snap.EstablishmentID, &snap.Name, &serviceType,
		&snap.BasePriceCents, &snap.Active, &snap.RequiresConfirmation)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	snap.Type = shared.ServiceType(serviceType)
	return &snap, nil
}
