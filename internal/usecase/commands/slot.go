package commands

import (
	"context"

	"parkhub/internal/domain/slot"
	"parkhub/internal/infra"
	"parkhub/internal/infra/repository"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidSlot      = errs.New("invalid slot")
	ErrSlotCodeTaken    = errs.New("slot code already exists")
	ErrSlotHasBooking   = errs.New("slot has an active booking")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateSlotParams struct {
	Code        string
	Status      *string
	RatePerHour *int32
	Reserved    *bool
	Location    *string
}

type UpdateSlotParams struct {
	Code        *string
	Status      *string
	RatePerHour *int32
	Reserved    *bool
	Location    *string
}

type SlotCommands interface {
	Create(ctx context.Context, p CreateSlotParams) (*queries.SlotView, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateSlotParams) (*queries.SlotView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SlotRepository interface {
	Create(ctx context.Context, db infra.DBTX, s *slot.Slot) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, id uuid.UUID, p repository.SlotPatch) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type slotCommandsImpl struct {
	repo        SlotRepository
	readStore   queries.SlotReadStore
	invalidator CountInvalidator
	db          *pgxpool.Pool
}

func NewSlotCommands(
	repo SlotRepository,
	readStore queries.SlotReadStore,
	invalidator CountInvalidator,
	db *pgxpool.Pool,
) SlotCommands {
	return &slotCommandsImpl{
		repo:        repo,
		readStore:   readStore,
		invalidator: invalidator,
		db:          db,
	}
}

func (c *slotCommandsImpl) Create(ctx context.Context, p CreateSlotParams) (*queries.SlotView, error) {
	code, err := slot.NewCode(p.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	status := slot.StatusVacant
	if p.Status != nil {
		status = slot.Status(*p.Status)
	}
	reserved := p.Reserved != nil && *p.Reserved
	location := ""
	if p.Location != nil {
		location = *p.Location
	}

	entity, err := slot.NewSlot(code, status, p.RatePerHour, reserved, location)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, c.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotCodeTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.invalidator.Invalidate(ctx)
	return c.readStore.FindByID(ctx, id)
}

func (c *slotCommandsImpl) Update(ctx context.Context, id uuid.UUID, p UpdateSlotParams) (*queries.SlotView, error) {
	patch := repository.SlotPatch{
		RatePerHour: p.RatePerHour,
		Reserved:    p.Reserved,
		Location:    p.Location,
	}

	if p.Code != nil {
		code, err := slot.NewCode(*p.Code)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidSlot)
		}
		normalized := code.String()
		patch.Code = &normalized
	}
	if p.Status != nil {
		status := slot.Status(*p.Status)
		if !status.IsValid() {
			return nil, errs.Mark(slot.ErrInvalidStatus, ErrInvalidSlot)
		}
		patch.Status = &status
	}
	if p.RatePerHour != nil && *p.RatePerHour <= 0 {
		return nil, errs.Mark(slot.ErrNonPositiveRate, ErrInvalidSlot)
	}

	if err := c.repo.Update(ctx, c.db, id, patch); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrSlotNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrSlotCodeTaken
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	c.invalidator.Invalidate(ctx)
	return c.readStore.FindByID(ctx, id)
}

// Delete refuses to remove a slot with an active booking; ending the booking
// first is the supported path.
func (c *slotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrSlotNotFound
		case infra.IsKind(err, infra.KindConflict):
			return ErrSlotHasBooking
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	c.invalidator.Invalidate(ctx)
	return nil
}
