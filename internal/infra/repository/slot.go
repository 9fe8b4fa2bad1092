package repository

import (
	"context"

	"parkhub/internal/domain/slot"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// SlotRepository is the write side of the slot registry. The occupancy
// transitions are conditional updates: the WHERE clause on the current status
// is the mutual-exclusion gate for concurrent bookings.
type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, db infra.DBTX, s *slot.Slot) (uuid.UUID, error) {
	const q = `
		INSERT INTO slots (id, code, status, rate_per_hour, reserved, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, q,
		s.ID(),
		s.Code().String(),
		s.Status().String(),
		pgconv.Int32PtrToPgtype(s.RatePerHour()),
		s.Reserved(),
		s.Location(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err, "slots_code_key") {
			return uuid.Nil, infra.WrapRepoErr("slot code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}
	return id, nil
}

type SlotPatch struct {
	Code        *string
	Status      *slot.Status
	RatePerHour *int32
	Reserved    *bool
	Location    *string
}

// Update merges only the provided fields.
func (r *SlotRepository) Update(ctx context.Context, db infra.DBTX, id uuid.UUID, p SlotPatch) error {
	const q = `
		UPDATE slots
		SET code          = COALESCE($2, code),
		    status        = COALESCE($3, status),
		    rate_per_hour = COALESCE($4, rate_per_hour),
		    reserved      = COALESCE($5, reserved),
		    location      = COALESCE($6, location),
		    updated_at    = now()
		WHERE id = $1`

	var status *string
	if p.Status != nil {
		s := p.Status.String()
		status = &s
	}

	tag, err := db.Exec(ctx, q, id, p.Code, status, p.RatePerHour, p.Reserved, p.Location)
	if err != nil {
		if infra.IsUniqueViolation(err, "slots_code_key") {
			return infra.WrapRepoErr("slot code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete refuses to remove a slot that an active booking references.
func (r *SlotRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	const q = `
		DELETE FROM slots
		WHERE id = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings WHERE slot_id = $1 AND active
		  )`

	tag, err := db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		occupied, checkErr := r.hasActiveBooking(ctx, db, id)
		if checkErr != nil {
			return checkErr
		}
		if occupied {
			return infra.WrapRepoErr("slot has an active booking", nil, infra.KindConflict)
		}
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Reserve flips the slot vacant -> occupied, but only if it is still vacant.
// Zero rows affected means another booking won the race.
func (r *SlotRepository) Reserve(ctx context.Context, db infra.DBTX, slotID, bookingID uuid.UUID) (bool, error) {
	const q = `
		UPDATE slots
		SET status = 'occupied', current_booking_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'vacant'`

	tag, err := db.Exec(ctx, q, slotID, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Release puts the slot back to vacant after its booking closed. The update
// is unconditional on status so a close never strands an active booking
// behind an admin-edited slot.
func (r *SlotRepository) Release(ctx context.Context, db infra.DBTX, slotID uuid.UUID) error {
	const q = `
		UPDATE slots
		SET status = 'vacant', current_booking_id = NULL, updated_at = now()
		WHERE id = $1`

	tag, err := db.Exec(ctx, q, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) hasActiveBooking(ctx context.Context, db infra.DBTX, slotID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bookings WHERE slot_id = $1 AND active)`

	var exists bool
	if err := db.QueryRow(ctx, q, slotID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active bookings", err)
	}
	return exists, nil
}
