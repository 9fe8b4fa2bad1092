package readstore

import (
	"context"

	"parkhub/internal/domain/rate"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"
	"parkhub/internal/usecase/queries"
)

type RateReadStore struct {
	db infra.DBTX
}

func NewRateReadStore(db infra.DBTX) *RateReadStore {
	return &RateReadStore{db: db}
}

// GetOrCreate reads the singleton, seeding the defaults on first access.
func (r *RateReadStore) GetOrCreate(ctx context.Context) (queries.RateView, error) {
	const sel = `SELECT price, interval_minutes FROM rates WHERE id = 1`

	var view queries.RateView
	err := r.db.QueryRow(ctx, sel).Scan(&view.Price, &view.IntervalMinutes)
	if err == nil {
		return view, nil
	}
	if !pgconv.IsNoRows(err) {
		return queries.RateView{}, infra.WrapRepoErr("failed to read rate", err)
	}

	const ins = `
		INSERT INTO rates (id, price, interval_minutes)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(ctx, ins, rate.DefaultPrice, rate.DefaultIntervalMinutes); err != nil {
		return queries.RateView{}, infra.WrapRepoErr("failed to seed default rate", err)
	}

	if err := r.db.QueryRow(ctx, sel).Scan(&view.Price, &view.IntervalMinutes); err != nil {
		return queries.RateView{}, infra.WrapRepoErr("failed to read rate after seeding", err)
	}
	return view, nil
}
