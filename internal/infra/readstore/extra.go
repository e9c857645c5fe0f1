package readstore

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// ExtraReadStore is the narrow lookup into the extras catalog.
type ExtraReadStore struct {
	db db.DBTX
}

func NewExtraReadStore(dbtx db.DBTX) *ExtraReadStore {
	return &ExtraReadStore{db: dbtx}
}

const extrasByIDsSQL = `
SELECT id, service_id, name, price_cents, max_quantity
FROM extras
WHERE id = ANY($1)`

func (r *ExtraReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.ExtraSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, extrasByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extras", err)
	}
	defer rows.Close()

	var extras []*shared.ExtraSnapshot
	for rows.Next() {
		var snap shared.ExtraSnapshot
		if err := rows.Scan(&snap.ID, &snap.ServiceID, &snap.Name, &snap.PriceCents, &snap.MaxQuantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra row", err)
		}
		extras = append(extras, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras", err)
	}

	return extras, nil
}
