package repository

import (
	"context"
	"time"

	"bookwise/internal/domain/slot"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotRepository is the transaction-scoped slot capacity store.
type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

const slotColumns = `id, service_id, slot_date, start_time, end_time, capacity`

const decrementCapacitySQL = `
UPDATE availability_slots
SET capacity = capacity - $2, updated_at = now()
WHERE id = $1 AND capacity >= $2
RETURNING ` + slotColumns

// DecrementCapacity reserves capacity with a conditional update: the
// capacity >= quantity guard and the row lock make the read-check-write
// atomic under concurrent callers, with no application-level locking.
func (r *SlotRepository) DecrementCapacity(ctx context.Context, slotID uuid.UUID, quantity int32) (*shared.SlotSnapshot, error) {
	snap, err := scanSlot(r.db.QueryRow(ctx, decrementCapacitySQL, slotID, quantity))
	if err == nil {
		return snap, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to decrement slot capacity", err)
	}

	// Zero rows: either the slot is gone or the floor check failed.
	exists, existsErr := r.slotExists(ctx, slotID)
	if existsErr != nil {
		return nil, existsErr
	}
	if !exists {
		return nil, infra.WrapRepoErr("availability slot not found", nil, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("no available capacity", nil, infra.KindConflict)
}

const incrementCapacitySQL = `
UPDATE availability_slots
SET capacity = capacity + $2, updated_at = now()
WHERE id = $1
RETURNING ` + slotColumns

// IncrementCapacity releases capacity on cancel, no-show, or check-out.
func (r *SlotRepository) IncrementCapacity(ctx context.Context, slotID uuid.UUID, quantity int32) (*shared.SlotSnapshot, error) {
	snap, err := scanSlot(r.db.QueryRow(ctx, incrementCapacitySQL, slotID, quantity))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to increment slot capacity", err)
	}
	return snap, nil
}

const insertSlotSQL = `
INSERT INTO availability_slots (id, service_id, slot_date, start_time, end_time, capacity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`

func (r *SlotRepository) Insert(ctx context.Context, s *slot.Slot) error {
	_, err := r.db.Exec(ctx, insertSlotSQL,
		s.ID(), s.ServiceID(), s.Date(), s.Window().Start(), s.Window().End(), s.Capacity())
	if err != nil {
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

const updateSlotWindowSQL = `
UPDATE availability_slots
SET slot_date = $2, start_time = $3, end_time = $4, updated_at = now()
WHERE id = $1
RETURNING ` + slotColumns

func (r *SlotRepository) UpdateWindow(ctx context.Context, slotID uuid.UUID, date time.Time, window slot.TimeWindow) (*shared.SlotSnapshot, error) {
	snap, err := scanSlot(r.db.QueryRow(ctx, updateSlotWindowSQL, slotID, date, window.Start(), window.End()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update slot window", err)
	}
	return snap, nil
}

func (r *SlotRepository) slotExists(ctx context.Context, slotID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM availability_slots WHERE id = $1)`, slotID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot existence", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	if err := row.Scan(&snap.ID, &snap.ServiceID, &snap.Date, &snap.StartTime, &snap.EndTime, &snap.Capacity); err != nil {
		return nil, err
	}
	return &snap, nil
}
