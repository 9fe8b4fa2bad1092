//go:build unit

package slot_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/booking"
	"parkhub/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain code", input: "A1", want: "A1"},
		{name: "surrounding whitespace trimmed", input: "  B-12  ", want: "B-12"},
		{name: "empty rejected", input: "", errIs: slot.ErrEmptyCode},
		{name: "whitespace-only rejected", input: "   ", errIs: slot.ErrEmptyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := slot.NewCode(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, slot.StatusVacant.IsValid())
	assert.True(t, slot.StatusOccupied.IsValid())
	assert.True(t, slot.StatusReserved.IsValid())
	assert.False(t, slot.Status("parked").IsValid())
	assert.False(t, slot.Status("").IsValid())
}

func TestNewSlot(t *testing.T) {
	code, err := slot.NewCode("A1")
	require.NoError(t, err)

	t.Run("defaults to vacant at the default rate", func(t *testing.T) {
		s, err := slot.NewSlot(code, slot.StatusVacant, nil, false, "level 1")
		require.NoError(t, err)

		assert.Equal(t, "A1", s.Code().String())
		assert.True(t, s.IsVacant())
		require.NotNil(t, s.RatePerHour())
		assert.Equal(t, slot.DefaultRatePerHour, *s.RatePerHour())
		assert.False(t, s.Reserved())
		assert.Equal(t, "level 1", s.Location())
	})

	t.Run("default rate bills 50 for a 40 minute stay", func(t *testing.T) {
		s, err := slot.NewSlot(code, slot.StatusVacant, nil, false, "")
		require.NoError(t, err)

		start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		fare, err := booking.CalculateFare(
			start, start.Add(40*time.Minute),
			booking.ResolveRatePerHour(s.RatePerHour()), 30,
		)
		require.NoError(t, err)
		assert.Equal(t, int32(50), fare.Amount)
	})

	t.Run("positive rate override accepted", func(t *testing.T) {
		rate := int32(80)
		s, err := slot.NewSlot(code, slot.StatusVacant, &rate, true, "")
		require.NoError(t, err)
		require.NotNil(t, s.RatePerHour())
		assert.Equal(t, int32(80), *s.RatePerHour())
		assert.True(t, s.Reserved())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := slot.NewSlot(code, slot.Status("bogus"), nil, false, "")
		assert.ErrorIs(t, err, slot.ErrInvalidStatus)
	})

	t.Run("non-positive rate rejected", func(t *testing.T) {
		rate := int32(0)
		_, err := slot.NewSlot(code, slot.StatusVacant, &rate, false, "")
		assert.ErrorIs(t, err, slot.ErrNonPositiveRate)
	})
}
