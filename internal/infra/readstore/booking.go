package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSelect = `
	SELECT b.id, b.slot_id, s.code, s.location, b.user_id, u.email,
	       b.start_time, b.end_time, b.duration_minutes, b.blocks_used, b.fare, b.active
	FROM bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.user_id = $1 AND b.active`, userID)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

const bookingListSelect = `
	SELECT b.id, s.code, u.email, b.start_time, b.end_time, b.duration_minutes, b.fare, b.active
	FROM bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSelect+` WHERE b.user_id = $1 ORDER BY b.start_time DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSelect+` ORDER BY b.start_time DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v        queries.BookingView
		endTime  pgtype.Timestamptz
		duration pgtype.Int4
		blocks   pgtype.Int4
		fare     pgtype.Int4
	)
	err := row.Scan(
		&v.ID, &v.SlotID, &v.SlotCode, &v.SlotLocation, &v.UserID, &v.UserEmail,
		&v.StartTime, &endTime, &duration, &blocks, &fare, &v.Active,
	)
	if err != nil {
		return nil, err
	}

	v.EndTime = pgconv.TimePtrFromPgtype(endTime)
	v.DurationMinutes = pgconv.Int32PtrFromPgtype(duration)
	v.BlocksUsed = pgconv.Int32PtrFromPgtype(blocks)
	v.Fare = pgconv.Int32PtrFromPgtype(fare)
	return &v, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item     queries.BookingListItem
			endTime  pgtype.Timestamptz
			duration pgtype.Int4
			fare     pgtype.Int4
		)
		err := rows.Scan(
			&item.ID, &item.SlotCode, &item.UserEmail,
			&item.StartTime, &endTime, &duration, &fare, &item.Active,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.EndTime = pgconv.TimePtrFromPgtype(endTime)
		item.DurationMinutes = pgconv.Int32PtrFromPgtype(duration)
		item.Fare = pgconv.Int32PtrFromPgtype(fare)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
