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

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomByIDSQL = `
SELECT id, service_id, room_number, status
FROM rooms
WHERE id = $1`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	row := r.db.QueryRow(ctx, roomByIDSQL, id)
	if err := row.Scan(&snap.ID, &snap.ServiceID, &snap.Number, &snap.Status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &snap, nil
}

const assignableRoomSQL = `
SELECT r.id, r.service_id, r.room_number, r.status
FROM rooms r
WHERE r.service_id = $1
  AND r.status = 'AVAILABLE'
  AND NOT EXISTS (
	SELECT 1
	FROM bookings b
	WHERE b.room_id = r.id
	  AND b.status NOT IN ('CANCELLED', 'CHECKED_OUT', 'NO_SHOW')
	  AND b.check_in_date < $3
	  AND b.check_out_date > $2
  )
ORDER BY r.room_number
LIMIT 1`

// FindAssignable picks the first AVAILABLE room of the service without a
// stay overlapping [checkIn, checkOut). The pick is advisory; the claim is
// re-verified inside the booking transaction.
func (r *RoomReadStore) FindAssignable(ctx context.Context, serviceID uuid.UUID, checkIn, checkOut time.Time) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	row := r.db.QueryRow(ctx, assignableRoomSQL, serviceID, checkIn, checkOut)
	if err := row.Scan(&snap.ID, &snap.ServiceID, &snap.Number, &snap.Status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no assignable room for requested dates", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignable room", err)
	}
	return &snap, nil
}
