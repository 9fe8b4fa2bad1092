package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode       = errors.New("slot code must not be blank")
	ErrInvalidStatus   = errors.New("invalid slot status")
	ErrNonPositiveRate = errors.New("slot rate must be positive")
)

// DefaultRatePerHour is assigned to slots created without an explicit rate.
const DefaultRatePerHour int32 = 50

// Slot is an addressable parking space. Occupancy is derived from the active
// booking; current booking id on the record is a convenience back-reference,
// never the owning relationship.
type Slot struct {
	id               uuid.UUID
	code             Code
	status           Status
	ratePerHour      *int32
	reserved         bool
	location         string
	currentBookingID *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSlot(code Code, status Status, ratePerHour *int32, reserved bool, location string) (*Slot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if ratePerHour == nil {
		rate := DefaultRatePerHour
		ratePerHour = &rate
	}
	if *ratePerHour <= 0 {
		return nil, ErrNonPositiveRate
	}
	return &Slot{
		id:          uuid.New(),
		code:        code,
		status:      status,
		ratePerHour: ratePerHour,
		reserved:    reserved,
		location:    location,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	code Code,
	status Status,
	ratePerHour *int32,
	reserved bool,
	location string,
	currentBookingID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:               id,
		code:             code,
		status:           status,
		ratePerHour:      ratePerHour,
		reserved:         reserved,
		location:         location,
		currentBookingID: currentBookingID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Slot) ID() uuid.UUID                { return s.id }
func (s *Slot) Code() Code                   { return s.code }
func (s *Slot) Status() Status               { return s.status }
func (s *Slot) RatePerHour() *int32          { return s.ratePerHour }
func (s *Slot) Reserved() bool               { return s.reserved }
func (s *Slot) Location() string             { return s.location }
func (s *Slot) CurrentBookingID() *uuid.UUID { return s.currentBookingID }
func (s *Slot) CreatedAt() time.Time         { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time         { return s.updatedAt }

func (s *Slot) IsVacant() bool {
	return s.status == StatusVacant
}

type Code struct {
	value string
}

// NewCode accepts short identifiers like "A1" or "B-12".
func NewCode(value string) (Code, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Code{}, ErrEmptyCode
	}
	return Code{value: trimmed}, nil
}

func (c Code) String() string {
	return c.value
}
