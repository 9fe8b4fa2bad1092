package booking

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveRate      = errors.New("rate per hour must be positive")
	ErrNonPositiveBlockSize = errors.New("block size must be positive")
)

// FallbackRatePerHour applies when a slot carries no rate override.
const FallbackRatePerHour int32 = 60

type Fare struct {
	DurationMinutes int32
	BlocksUsed      int32
	Amount          int32
}

// CalculateFare bills the elapsed time in whole blocks, rounding up twice:
// elapsed milliseconds round up to whole minutes, minutes round up to whole
// blocks, and at least one block is always charged. Rounding up at both
// steps keeps the result monotonic in duration and never underbills.
func CalculateFare(start, end time.Time, ratePerHour, blockSizeMinutes int32) (Fare, error) {
	if end.Before(start) {
		return Fare{}, ErrEndBeforeStart
	}
	if ratePerHour <= 0 {
		return Fare{}, ErrNonPositiveRate
	}
	if blockSizeMinutes <= 0 {
		return Fare{}, ErrNonPositiveBlockSize
	}

	elapsedMs := end.Sub(start).Milliseconds()
	minutes := int32((elapsedMs + 59_999) / 60_000)

	blocks := (minutes + blockSizeMinutes - 1) / blockSizeMinutes
	if blocks < 1 {
		blocks = 1
	}

	// ratePerBlock = ratePerHour / (60 / blockSize). A single division keeps
	// the intermediate exact whenever the true result is an integer.
	amount := decimal.NewFromInt32(blocks).
		Mul(decimal.NewFromInt32(ratePerHour)).
		Mul(decimal.NewFromInt32(blockSizeMinutes)).
		Div(decimal.NewFromInt(60)).
		Ceil()

	return Fare{
		DurationMinutes: minutes,
		BlocksUsed:      blocks,
		Amount:          int32(amount.IntPart()),
	}, nil
}

// ResolveRatePerHour picks the slot's override when present.
func ResolveRatePerHour(slotRate *int32) int32 {
	if slotRate != nil && *slotRate > 0 {
		return *slotRate
	}
	return FallbackRatePerHour
}
