package rate

import "errors"

var (
	ErrNonPositivePrice    = errors.New("rate price must be positive")
	ErrNonPositiveInterval = errors.New("rate interval must be positive")
)

// Defaults used when the singleton record does not exist yet. First read
// creates it with these values.
const (
	DefaultPrice           = 50
	DefaultIntervalMinutes = 30
)

// Rate is the singleton billing configuration: the default price applied to
// newly created slots and the block size (in minutes) used to round billed
// duration upward.
type Rate struct {
	price           int32
	intervalMinutes int32
}

func NewRate(price, intervalMinutes int32) (Rate, error) {
	if price <= 0 {
		return Rate{}, ErrNonPositivePrice
	}
	if intervalMinutes <= 0 {
		return Rate{}, ErrNonPositiveInterval
	}
	return Rate{price: price, intervalMinutes: intervalMinutes}, nil
}

func DefaultRate() Rate {
	return Rate{price: DefaultPrice, intervalMinutes: DefaultIntervalMinutes}
}

func (r Rate) Price() int32           { return r.price }
func (r Rate) IntervalMinutes() int32 { return r.intervalMinutes }
