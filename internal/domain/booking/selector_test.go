//go:build unit

package booking_test

import (
	"testing"

	"sportfields/internal/domain/availability"
	"sportfields/internal/domain/booking"
	"sportfields/internal/domain/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridWith builds an occupancy vector with a 10:00-22:00 window and the
// given hours already reserved.
func gridWith(t *testing.T, reservedHours ...int) availability.Vector {
	t.Helper()
	schedule, err := field.NewSchedule("10:00 - 22:00")
	require.NoError(t, err)

	var reserved []availability.Interval
	for _, h := range reservedHours {
		reserved = append(reserved, availability.Interval{StartHour: h, EndHour: h + 1})
	}
	return availability.Build(schedule, reserved)
}

func TestSelectorDrag(t *testing.T) {
	t.Run("dragging three cells commits a three hour slot", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 11))
		require.NoError(t, s.Extend(1, 12))
		assert.Equal(t, []int{10, 11, 12}, s.Selected())

		slot, err := s.Release()
		require.NoError(t, err)
		assert.Equal(t, booking.Slot{FieldID: 1, StartHour: 10, EndHour: 13}, slot)
		assert.Equal(t, 3, slot.Hours())
		assert.False(t, s.IsDragging())
	})

	t.Run("selection can grow downward from the anchor", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 12))
		require.NoError(t, s.Extend(1, 11))

		slot, err := s.Release()
		require.NoError(t, err)
		assert.Equal(t, booking.Slot{FieldID: 1, StartHour: 11, EndHour: 13}, slot)
	})

	t.Run("press on a reserved cell is rejected", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t, 15)})

		assert.ErrorIs(t, s.Press(1, 15), booking.ErrNotAvailable)
		assert.False(t, s.IsDragging())
	})

	t.Run("press on a closed cell is rejected", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		assert.ErrorIs(t, s.Press(1, 8), booking.ErrNotAvailable)
	})

	t.Run("entering a reserved cell aborts the drag", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t, 12)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 11))
		assert.ErrorIs(t, s.Extend(1, 12), booking.ErrNotAvailable)

		assert.False(t, s.IsDragging())
		_, err := s.Release()
		assert.ErrorIs(t, err, booking.ErrNotDragging)
	})

	t.Run("crossing onto another field aborts the drag", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{
			1: gridWith(t),
			2: gridWith(t),
		})

		require.NoError(t, s.Press(1, 10))
		assert.ErrorIs(t, s.Extend(2, 11), booking.ErrWrongField)
		assert.False(t, s.IsDragging())
	})

	t.Run("a fourth hour aborts the drag", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 11))
		require.NoError(t, s.Extend(1, 12))
		assert.ErrorIs(t, s.Extend(1, 13), booking.ErrSlotTooLong)
		assert.False(t, s.IsDragging())
	})

	t.Run("re-entering a selected cell is a no-op", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 11))
		require.NoError(t, s.Extend(1, 10))
		assert.Equal(t, []int{10, 11}, s.Selected())
	})

	t.Run("a non-adjacent cell does not extend the selection", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 14))
		assert.Equal(t, []int{10}, s.Selected())
	})

	t.Run("cancel reverts the selection", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		s.Cancel()

		assert.False(t, s.IsDragging())
		assert.Nil(t, s.Selected())
	})

	t.Run("second press during a drag is rejected", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		assert.ErrorIs(t, s.Press(1, 12), booking.ErrAlreadyActive)
	})

	t.Run("mark reserved blocks a follow-up drag", func(t *testing.T) {
		s := booking.NewSelector(map[int64]availability.Vector{1: gridWith(t)})

		require.NoError(t, s.Press(1, 10))
		require.NoError(t, s.Extend(1, 11))
		slot, err := s.Release()
		require.NoError(t, err)

		s.MarkReserved(slot)
		assert.ErrorIs(t, s.Press(1, 10), booking.ErrNotAvailable)
		assert.ErrorIs(t, s.Press(1, 11), booking.ErrNotAvailable)
		assert.NoError(t, s.Press(1, 12))
	})
}
