package commands

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound  = errs.New("user not found")
	ErrWrongPassword = errs.New("current password is incorrect")
)

type UpdateProfileParams struct {
	Name  *string
	Email *string
}

type AdminCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, p UpdateProfileParams) (*queries.UserView, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type ProfileRepository interface {
	UpdateProfile(ctx context.Context, db infra.DBTX, id uuid.UUID, name, email *string) error
	UpdatePassword(ctx context.Context, db infra.DBTX, id uuid.UUID, passwordHash string) error
}

type adminCommandsImpl struct {
	repo      ProfileRepository
	readStore queries.UserReadStore
	db        *pgxpool.Pool
}

func NewAdminCommands(repo ProfileRepository, readStore queries.UserReadStore, db *pgxpool.Pool) AdminCommands {
	return &adminCommandsImpl{
		repo:      repo,
		readStore: readStore,
		db:        db,
	}
}

func (a *adminCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, p UpdateProfileParams) (*queries.UserView, error) {
	if err := a.repo.UpdateProfile(ctx, a.db, userID, p.Name, p.Email); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrEmailTaken
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return a.readStore.FindByID(ctx, userID)
}

func (a *adminCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	view, hash, err := a.findWithHash(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.Compare(hash, currentPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(newPassword)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := a.repo.UpdatePassword(ctx, a.db, view.ID, newHash); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *adminCommandsImpl) findWithHash(ctx context.Context, userID uuid.UUID) (*queries.UserView, string, error) {
	view, err := a.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// FindByEmail is the read path that exposes the stored hash.
	_, hash, err := a.readStore.FindByEmail(ctx, view.Email)
	if err != nil {
		return nil, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, hash, nil
}
