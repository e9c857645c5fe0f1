package repository

import (
	"context"
	"time"

	"bookwise/internal/domain/room"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// RoomRepository is the transaction-scoped room occupancy store. Occupancy is
// derived from non-terminal bookings rather than stored as a calendar.
type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID uuid.UUID, status room.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`,
		roomID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

const overlappingStaysSQL = `
SELECT count(*)
FROM bookings
WHERE room_id = $1
  AND status NOT IN ('CANCELLED', 'CHECKED_OUT', 'NO_SHOW')
  AND check_in_date < $3
  AND check_out_date > $2`

// ClaimForStay serializes concurrent claims on one room: it locks the room
// row, re-checks assignability on the locked row, then re-runs the overlap
// query inside the same transaction that will write the ledger row. The lock
// closes the check-then-act race between two requests for the same dates.
func (r *RoomRepository) ClaimForStay(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}

	if room.Status(status) != room.StatusAvailable {
		return infra.WrapRepoErr("room is not available for assignment", nil, infra.KindConflict)
	}

	var conflicting int
	if err := r.db.QueryRow(ctx, overlappingStaysSQL, roomID, checkIn, checkOut).Scan(&conflicting); err != nil {
		return infra.WrapRepoErr("failed to check room occupancy", err)
	}
	if conflicting > 0 {
		return infra.WrapRepoErr("room has an overlapping stay", nil, infra.KindConflict)
	}

	return nil
}
