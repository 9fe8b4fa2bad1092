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

type SlotReadStore struct {
	db infra.DBTX
}

func NewSlotReadStore(db infra.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

const slotSelect = `
	SELECT id, code, status, rate_per_hour, reserved, location, current_booking_id,
	       created_at, updated_at
	FROM slots`

func (r *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, slotSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return views, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotSelect+` WHERE id = $1`, id)

	view, err := scanSlotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

// CountByStatus aggregates the dashboard counters in one scan.
func (r *SlotReadStore) CountByStatus(ctx context.Context) (queries.SlotCounts, error) {
	const q = `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'vacant'),
		       count(*) FILTER (WHERE status = 'occupied'),
		       count(*) FILTER (WHERE reserved)
		FROM slots`

	var c queries.SlotCounts
	err := r.db.QueryRow(ctx, q).Scan(&c.Total, &c.Vacant, &c.Occupied, &c.Reserved)
	if err != nil {
		return queries.SlotCounts{}, infra.WrapRepoErr("failed to count slots", err)
	}
	return c, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		v       queries.SlotView
		rate    pgtype.Int4
		booking pgtype.UUID
	)
	err := row.Scan(
		&v.ID, &v.Code, &v.Status, &rate, &v.Reserved, &v.Location, &booking,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.RatePerHour = pgconv.Int32PtrFromPgtype(rate)
	v.CurrentBookingID = pgconv.UUIDPtrFromPgtype(booking)
	return &v, nil
}
