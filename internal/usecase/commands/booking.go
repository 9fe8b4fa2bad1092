package commands

import (
	"context"
	"time"

	"parkhub/internal/domain/booking"
	"parkhub/internal/domain/slot"
	"parkhub/internal/infra"
	"parkhub/internal/infra/repository"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotUnavailable         = errs.New("slot is not available")
	ErrActiveBookingExists     = errs.New("user already has an active booking")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAlreadyClosed    = errs.New("booking is already closed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ExitSummary is what the gate displays when a booking ends.
type ExitSummary struct {
	BookingID       uuid.UUID
	SlotCode        string
	DurationMinutes int32
	BlocksUsed      int32
	Fare            int32
	EndTime         time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, userID, slotID uuid.UUID) (*queries.BookingView, error)
	End(ctx context.Context, bookingID uuid.UUID) (*ExitSummary, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*repository.ActiveRow, error)
	Close(ctx context.Context, db infra.DBTX, id uuid.UUID, endTime time.Time, f booking.Fare) (bool, error)
}

type SlotReserver interface {
	Reserve(ctx context.Context, db infra.DBTX, slotID, bookingID uuid.UUID) (bool, error)
	Release(ctx context.Context, db infra.DBTX, slotID uuid.UUID) error
}

// CountInvalidator drops cached dashboard counters after occupancy changes.
type CountInvalidator interface {
	Invalidate(ctx context.Context)
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	slotRepo         SlotReserver
	bookingReadStore queries.BookingReadStore
	slotReadStore    queries.SlotReadStore
	rateReadStore    queries.RateReadStore
	invalidator      CountInvalidator
	db               shared.TxStarter
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	slotRepo SlotReserver,
	bookingReadStore queries.BookingReadStore,
	slotReadStore queries.SlotReadStore,
	rateReadStore queries.RateReadStore,
	invalidator CountInvalidator,
	db shared.TxStarter,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		slotRepo:         slotRepo,
		bookingReadStore: bookingReadStore,
		slotReadStore:    slotReadStore,
		rateReadStore:    rateReadStore,
		invalidator:      invalidator,
		db:               db,
		clock:            clock,
	}
}

// Create reserves the slot and records the booking in one transaction. The
// conditional vacant->occupied update is the gate: of two concurrent creates
// on the same slot exactly one sees a row flip, the other fails before any
// insert.
func (c *bookingCommandsImpl) Create(ctx context.Context, userID, slotID uuid.UUID) (*queries.BookingView, error) {
	existing, err := c.bookingReadStore.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, ErrActiveBookingExists
	}

	slotView, err := c.slotReadStore.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if slotView.Status != slot.StatusVacant.String() {
		return nil, ErrSlotUnavailable
	}

	entity := booking.NewBooking(userID, slotID, c.clock.Now())

	bookingID, err := shared.RunInTx(ctx, c.db, func(tx infra.DBTX) (uuid.UUID, error) {
		reserved, err := c.slotRepo.Reserve(ctx, tx, slotID, entity.ID())
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !reserved {
			return uuid.Nil, ErrSlotUnavailable
		}

		id, err := c.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, ErrActiveBookingExists
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidator.Invalidate(ctx)

	view, err := c.bookingReadStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// End closes the booking and frees its slot atomically. Fare uses the slot's
// hourly rate (or the fallback) and the configured billing interval.
func (c *bookingCommandsImpl) End(ctx context.Context, bookingID uuid.UUID) (*ExitSummary, error) {
	rateView, err := c.rateReadStore.GetOrCreate(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	summary, err := shared.RunInTx(ctx, c.db, func(tx infra.DBTX) (*ExitSummary, error) {
		row, err := c.bookingRepo.FindForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !row.Active {
			return nil, ErrBookingAlreadyClosed
		}

		endTime := c.clock.Now()
		fare, err := booking.CalculateFare(
			row.StartTime,
			endTime,
			booking.ResolveRatePerHour(row.RatePerHour),
			rateView.IntervalMinutes,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		closed, err := c.bookingRepo.Close(ctx, tx, bookingID, endTime, fare)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !closed {
			return nil, ErrBookingAlreadyClosed
		}

		if err := c.slotRepo.Release(ctx, tx, row.SlotID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &ExitSummary{
			BookingID:       row.ID,
			SlotCode:        row.SlotCode,
			DurationMinutes: fare.DurationMinutes,
			BlocksUsed:      fare.BlocksUsed,
			Fare:            fare.Amount,
			EndTime:         endTime,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidator.Invalidate(ctx)
	return summary, nil
}
