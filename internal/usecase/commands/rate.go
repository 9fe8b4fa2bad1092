package commands

import (
	"context"

	"parkhub/internal/domain/rate"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidRate = errs.New("invalid rate")

type RateCommands interface {
	Set(ctx context.Context, price, intervalMinutes int32) (queries.RateView, error)
}

type RateRepository interface {
	Upsert(ctx context.Context, db infra.DBTX, rt rate.Rate) error
}

type rateCommandsImpl struct {
	repo RateRepository
	db   *pgxpool.Pool
}

func NewRateCommands(repo RateRepository, db *pgxpool.Pool) RateCommands {
	return &rateCommandsImpl{repo: repo, db: db}
}

func (c *rateCommandsImpl) Set(ctx context.Context, price, intervalMinutes int32) (queries.RateView, error) {
	rt, err := rate.NewRate(price, intervalMinutes)
	if err != nil {
		return queries.RateView{}, errs.Mark(err, ErrInvalidRate)
	}

	if err := c.repo.Upsert(ctx, c.db, rt); err != nil {
		return queries.RateView{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.RateView{
		Price:           rt.Price(),
		IntervalMinutes: rt.IntervalMinutes(),
	}, nil
}
