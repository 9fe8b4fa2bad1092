package repository

import (
	"context"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, db infra.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, q,
		u.ID(),
		u.Name(),
		u.Email().String(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err, "users_email_key") {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, db infra.DBTX, id uuid.UUID, name, email *string) error {
	const q = `
		UPDATE users
		SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = now()
		WHERE id = $1`

	tag, err := db.Exec(ctx, q, id, name, email)
	if err != nil {
		if infra.IsUniqueViolation(err, "users_email_key") {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, db infra.DBTX, id uuid.UUID, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	tag, err := db.Exec(ctx, q, id, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
