//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCalculateFare(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     time.Duration
		ratePerHour int32
		blockSize   int32
		wantMinutes int32
		wantBlocks  int32
		wantAmount  int32
	}{
		{
			name:        "12 minutes at 60/hr with 5-minute blocks",
			elapsed:     12 * time.Minute,
			ratePerHour: 60,
			blockSize:   5,
			wantMinutes: 12,
			wantBlocks:  3,
			wantAmount:  15,
		},
		{
			name:        "40 minutes at 50/hr with 30-minute blocks",
			elapsed:     40 * time.Minute,
			ratePerHour: 50,
			blockSize:   30,
			wantMinutes: 40,
			wantBlocks:  2,
			wantAmount:  50,
		},
		{
			name:        "zero duration still bills one block",
			elapsed:     0,
			ratePerHour: 60,
			blockSize:   30,
			wantMinutes: 0,
			wantBlocks:  1,
			wantAmount:  30,
		},
		{
			name:        "sub-minute remainder rounds up to a whole minute",
			elapsed:     5*time.Minute + time.Second,
			ratePerHour: 60,
			blockSize:   5,
			wantMinutes: 6,
			wantBlocks:  2,
			wantAmount:  10,
		},
		{
			name:        "exact block boundary does not spill into the next block",
			elapsed:     30 * time.Minute,
			ratePerHour: 50,
			blockSize:   30,
			wantMinutes: 30,
			wantBlocks:  1,
			wantAmount:  25,
		},
		{
			name:        "fractional per-block price rounds up",
			elapsed:     3 * time.Minute,
			ratePerHour: 50,
			blockSize:   5,
			wantMinutes: 3,
			wantBlocks:  1,
			wantAmount:  5, // 50*5/60 = 4.17 -> 5
		},
		{
			name:        "multi-hour stay",
			elapsed:     2*time.Hour + 10*time.Minute,
			ratePerHour: 60,
			blockSize:   30,
			wantMinutes: 130,
			wantBlocks:  5,
			wantAmount:  150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare, err := booking.CalculateFare(base, base.Add(tt.elapsed), tt.ratePerHour, tt.blockSize)
			require.NoError(t, err)

			want := booking.Fare{
				DurationMinutes: tt.wantMinutes,
				BlocksUsed:      tt.wantBlocks,
				Amount:          tt.wantAmount,
			}
			if diff := cmp.Diff(want, fare); diff != "" {
				t.Errorf("fare mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateFareErrors(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		_, err := booking.CalculateFare(base, base.Add(-time.Minute), 60, 30)
		assert.ErrorIs(t, err, booking.ErrEndBeforeStart)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		_, err := booking.CalculateFare(base, base.Add(time.Hour), 0, 30)
		assert.ErrorIs(t, err, booking.ErrNonPositiveRate)
	})

	t.Run("non-positive block size", func(t *testing.T) {
		_, err := booking.CalculateFare(base, base.Add(time.Hour), 60, 0)
		assert.ErrorIs(t, err, booking.ErrNonPositiveBlockSize)
	})
}

func TestCalculateFareMonotonicity(t *testing.T) {
	// A longer stay never costs less.
	prev := int32(0)
	for minutes := 0; minutes <= 180; minutes += 7 {
		fare, err := booking.CalculateFare(base, base.Add(time.Duration(minutes)*time.Minute), 55, 15)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fare.Amount, prev, "fare decreased at %d minutes", minutes)
		prev = fare.Amount
	}
}

func TestResolveRatePerHour(t *testing.T) {
	override := int32(75)
	zero := int32(0)

	assert.Equal(t, override, booking.ResolveRatePerHour(&override))
	assert.Equal(t, booking.FallbackRatePerHour, booking.ResolveRatePerHour(nil))
	assert.Equal(t, booking.FallbackRatePerHour, booking.ResolveRatePerHour(&zero))
}
