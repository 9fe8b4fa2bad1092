package queries

import (
	"context"
)

type RateView struct {
	Price           int32 `json:"price"`
	IntervalMinutes int32 `json:"interval"`
}

type RateQueries interface {
	// Get lazily creates the default record on first read.
	Get(ctx context.Context) (RateView, error)
}

type RateReadStore interface {
	GetOrCreate(ctx context.Context) (RateView, error)
}

type rateQueriesImpl struct {
	readStore RateReadStore
}

func NewRateQueries(readStore RateReadStore) RateQueries {
	return &rateQueriesImpl{readStore: readStore}
}

func (q *rateQueriesImpl) Get(ctx context.Context) (RateView, error) {
	return q.readStore.GetOrCreate(ctx)
}
