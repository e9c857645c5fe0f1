package readstore

import (
	"context"
	"time"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotByIDSQL = `
SELECT id, service_id, slot_date, start_time, end_time, capacity
FROM availability_slots
WHERE id = $1`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	row := r.db.QueryRow(ctx, slotByIDSQL, id)
	err := row.Scan(&snap.ID, &snap.ServiceID, &snap.Date, &snap.StartTime, &snap.EndTime, &snap.Capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return &snap, nil
}

const slotOverlapSQL = `
SELECT EXISTS (
	SELECT 1
	FROM availability_slots
	WHERE service_id = $1
	  AND slot_date = $2
	  AND start_time < $4
	  AND end_time > $3
	  AND ($5::uuid IS NULL OR id <> $5)
)`

// HasOverlap reports whether another slot for the same service and date has
// an intersecting [start, end) window. Used by slot create/update, not by
// booking creation.
func (r *SlotReadStore) HasOverlap(ctx context.Context, serviceID uuid.UUID, date time.Time, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	var overlap bool
	err := r.db.QueryRow(ctx, slotOverlapSQL, serviceID, date, start, end, pgconv.UUIDPtrToPgtype(excludeID)).Scan(&overlap)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot overlap", err)
	}
	return overlap, nil
}
