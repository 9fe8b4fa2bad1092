package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	Status           string     `json:"status"`
	RatePerHour      *int32     `json:"rate_per_hour,omitempty"`
	Reserved         bool       `json:"reserved"`
	Location         string     `json:"location"`
	CurrentBookingID *uuid.UUID `json:"current_booking_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SlotCounts feeds the dashboard tiles. Reserved counts the advance-booking
// flag, not the "reserved" status.
type SlotCounts struct {
	Total    int64 `json:"total"`
	Vacant   int64 `json:"vacant"`
	Occupied int64 `json:"occupied"`
	Reserved int64 `json:"reserved"`
}

type SlotQueries interface {
	List(ctx context.Context) ([]*SlotView, error)
	ByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	Counts(ctx context.Context) (SlotCounts, error)
}

type SlotReadStore interface {
	FindAll(ctx context.Context) ([]*SlotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

// SlotCountsReadStore is satisfied directly by the readstore or by the redis
// read-through cache wrapping it.
type SlotCountsReadStore interface {
	CountByStatus(ctx context.Context) (SlotCounts, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
	counts    SlotCountsReadStore
}

func NewSlotQueries(readStore SlotReadStore, counts SlotCountsReadStore) SlotQueries {
	return &slotQueriesImpl{readStore: readStore, counts: counts}
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *slotQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *slotQueriesImpl) Counts(ctx context.Context) (SlotCounts, error) {
	return q.counts.CountByStatus(ctx)
}
