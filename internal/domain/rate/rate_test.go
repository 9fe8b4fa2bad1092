//go:build unit

package rate_test

import (
	"testing"

	"parkhub/internal/domain/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		r, err := rate.NewRate(100, 15)
		require.NoError(t, err)
		assert.Equal(t, int32(100), r.Price())
		assert.Equal(t, int32(15), r.IntervalMinutes())
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := rate.NewRate(0, 30)
		assert.ErrorIs(t, err, rate.ErrNonPositivePrice)
	})

	t.Run("non-positive interval rejected", func(t *testing.T) {
		_, err := rate.NewRate(50, -1)
		assert.ErrorIs(t, err, rate.ErrNonPositiveInterval)
	})
}

func TestDefaultRate(t *testing.T) {
	r := rate.DefaultRate()
	assert.Equal(t, int32(rate.DefaultPrice), r.Price())
	assert.Equal(t, int32(rate.DefaultIntervalMinutes), r.IntervalMinutes())
}
