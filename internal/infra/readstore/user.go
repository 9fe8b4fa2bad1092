package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `
		SELECT id, name, email, role, is_active, created_at
		FROM users WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const q = `
		SELECT id, name, email, role, is_active, created_at, password_hash
		FROM users WHERE email = $1`

	var (
		v    queries.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, q, email).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &v.CreatedAt, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
