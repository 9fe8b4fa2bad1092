package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	SlotID          uuid.UUID  `json:"slot_id"`
	SlotCode        string     `json:"slot_code"`
	SlotLocation    string     `json:"slot_location"`
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int32     `json:"duration_minutes,omitempty"`
	BlocksUsed      *int32     `json:"blocks_used,omitempty"`
	Fare            *int32     `json:"fare,omitempty"`
	Active          bool       `json:"active"`
}

type BookingListItem struct {
	ID              uuid.UUID  `json:"id"`
	SlotCode        string     `json:"slot_code"`
	UserEmail       string     `json:"user_email"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int32     `json:"duration_minutes,omitempty"`
	Fare            *int32     `json:"fare,omitempty"`
	Active          bool       `json:"active"`
}

type BookingQueries interface {
	// Current returns nil without error when the user holds no active booking.
	Current(ctx context.Context, userID uuid.UUID) (*BookingView, error)
	ByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) Current(ctx context.Context, userID uuid.UUID) (*BookingView, error) {
	return q.readStore.FindActiveByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.readStore.FindByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingListItem, error) {
	return q.readStore.FindAll(ctx)
}
