package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed  = errors.New("booking is already closed")
	ErrEndBeforeStart = errors.New("end time cannot precede start time")
)

// Booking links a user to a slot for a span of time. Lifecycle is
// none -> active -> closed; closed is terminal. Closing writes the fare
// breakdown exactly once.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	slotID          uuid.UUID
	startTime       time.Time
	endTime         *time.Time
	durationMinutes *int32
	blocksUsed      *int32
	fare            *int32
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(userID, slotID uuid.UUID, startTime time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		slotID:    slotID,
		startTime: startTime,
		active:    true,
	}
}

func ReconstructBooking(
	id, userID, slotID uuid.UUID,
	startTime time.Time,
	endTime *time.Time,
	durationMinutes, blocksUsed, fare *int32,
	active bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		slotID:          slotID,
		startTime:       startTime,
		endTime:         endTime,
		durationMinutes: durationMinutes,
		blocksUsed:      blocksUsed,
		fare:            fare,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Close terminates the booking at endTime with the given fare breakdown.
func (b *Booking) Close(endTime time.Time, f Fare) error {
	if !b.active {
		return ErrAlreadyClosed
	}
	if endTime.Before(b.startTime) {
		return ErrEndBeforeStart
	}

	minutes := f.DurationMinutes
	blocks := f.BlocksUsed
	amount := f.Amount

	b.endTime = &endTime
	b.durationMinutes = &minutes
	b.blocksUsed = &blocks
	b.fare = &amount
	b.active = false
	return nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) SlotID() uuid.UUID       { return b.slotID }
func (b *Booking) StartTime() time.Time    { return b.startTime }
func (b *Booking) EndTime() *time.Time     { return b.endTime }
func (b *Booking) DurationMinutes() *int32 { return b.durationMinutes }
func (b *Booking) BlocksUsed() *int32      { return b.blocksUsed }
func (b *Booking) FareAmount() *int32      { return b.fare }
func (b *Booking) IsActive() bool          { return b.active }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
