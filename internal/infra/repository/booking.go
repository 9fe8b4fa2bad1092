package repository

import (
	"context"
	"time"

	"parkhub/internal/domain/booking"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, user_id, slot_id, start_time, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, q,
		b.ID(),
		b.UserID(),
		b.SlotID(),
		b.StartTime(),
		b.IsActive(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err, "bookings_one_active_per_user") {
			return uuid.Nil, infra.WrapRepoErr("user already has an active booking", err, infra.KindConflict)
		}
		if infra.IsUniqueViolation(err, "bookings_one_active_per_slot") {
			return uuid.Nil, infra.WrapRepoErr("slot already has an active booking", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// ActiveRow is the subset of a booking needed to close it, joined with the
// slot's billing fields.
type ActiveRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SlotID      uuid.UUID
	SlotCode    string
	RatePerHour *int32
	StartTime   time.Time
	Active      bool
}

// FindForUpdate loads a booking row with its slot, locking both against
// concurrent closers for the duration of the transaction.
func (r *BookingRepository) FindForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*ActiveRow, error) {
	const q = `
		SELECT b.id, b.user_id, b.slot_id, s.code, s.rate_per_hour, b.start_time, b.active
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE b.id = $1
		FOR UPDATE OF b, s`

	var (
		row  ActiveRow
		rate *int32
	)
	err := db.QueryRow(ctx, q, id).Scan(
		&row.ID, &row.UserID, &row.SlotID, &row.SlotCode, &rate, &row.StartTime, &row.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking for update", err)
	}
	row.RatePerHour = rate
	return &row, nil
}

// Close writes the fare breakdown and flips active off; the WHERE clause on
// active makes a second close a no-op that reports zero rows.
func (r *BookingRepository) Close(ctx context.Context, db infra.DBTX, id uuid.UUID, endTime time.Time, f booking.Fare) (bool, error) {
	const q = `
		UPDATE bookings
		SET end_time = $2, duration_minutes = $3, blocks_used = $4, fare = $5,
		    active = false, updated_at = now()
		WHERE id = $1 AND active`

	tag, err := db.Exec(ctx, q, id, endTime, f.DurationMinutes, f.BlocksUsed, f.Amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to close booking", err)
	}
	return tag.RowsAffected() == 1, nil
}
