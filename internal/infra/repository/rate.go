package repository

import (
	"context"

	"parkhub/internal/domain/rate"
	"parkhub/internal/infra"
)

type RateRepository struct{}

func NewRateRepository() *RateRepository {
	return &RateRepository{}
}

func (r *RateRepository) Upsert(ctx context.Context, db infra.DBTX, rt rate.Rate) error {
	const q = `
		INSERT INTO rates (id, price, interval_minutes)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET price = EXCLUDED.price, interval_minutes = EXCLUDED.interval_minutes,
		    updated_at = now()`

	if _, err := db.Exec(ctx, q, rt.Price(), rt.IntervalMinutes()); err != nil {
		return infra.WrapRepoErr("failed to update rate", err)
	}
	return nil
}
