//go:build unit

package field_test

import (
	"testing"

	"sportfields/internal/domain/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		cases := []struct {
			name  string
			raw   string
			errIs error
		}{
			{name: "window OK", raw: "10:00 - 22:00"},
			{name: "non-stop OK", raw: "non-stop"},
			{name: "surrounding whitespace OK", raw: "  08:00 - 20:00  "},
			{name: "midnight close OK", raw: "10:00 - 24:00"},
			{name: "missing separator NG", raw: "10:00-22:00", errIs: field.ErrInvalidSchedule},
			{name: "single time NG", raw: "10:00", errIs: field.ErrInvalidSchedule},
			{name: "non-numeric hour NG", raw: "ten:00 - 22:00", errIs: field.ErrInvalidSchedule},
			{name: "hour out of range NG", raw: "25:00 - 26:00", errIs: field.ErrInvalidSchedule},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := field.NewSchedule(tc.raw)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("IsOpen respects the window bounds", func(t *testing.T) {
		s, err := field.NewSchedule("10:00 - 22:00")
		require.NoError(t, err)

		assert.False(t, s.IsOpen(9))
		assert.True(t, s.IsOpen(10))
		assert.True(t, s.IsOpen(21))
		assert.False(t, s.IsOpen(22))
		assert.False(t, s.IsOpen(-1))
		assert.False(t, s.IsOpen(24))
	})

	t.Run("non-stop opens every hour", func(t *testing.T) {
		s, err := field.NewSchedule("non-stop")
		require.NoError(t, err)
		require.True(t, s.IsNonStop())

		for h := 0; h < 24; h++ {
			assert.True(t, s.IsOpen(h), "hour %d", h)
		}
	})

	t.Run("inverted window never opens", func(t *testing.T) {
		s, err := field.NewSchedule("22:00 - 10:00")
		require.NoError(t, err)

		for h := 0; h < 24; h++ {
			assert.False(t, s.IsOpen(h), "hour %d", h)
		}
	})

	t.Run("zero value stays closed", func(t *testing.T) {
		var s field.Schedule
		for h := 0; h < 24; h++ {
			assert.False(t, s.IsOpen(h), "hour %d", h)
		}
	})
}
