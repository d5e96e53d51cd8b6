//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sportfields/internal/domain/booking"
	"sportfields/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		cases := []struct {
			name             string
			date, start, end string
			errIs            error
		}{
			{name: "one hour OK", date: "2026-09-10", start: "10:00", end: "11:00"},
			{name: "three hours OK", date: "2026-09-10", start: "10:00", end: "13:00"},
			{name: "last hour of the day OK", date: "2026-09-10", start: "23:00", end: "24:00"},
			{name: "bad date NG", date: "10-09-2026", start: "10:00", end: "11:00", errIs: reservation.ErrInvalidDate},
			{name: "bad start NG", date: "2026-09-10", start: "ten", end: "11:00", errIs: reservation.ErrInvalidTime},
			{name: "bad end NG", date: "2026-09-10", start: "10:00", end: "25:00", errIs: reservation.ErrInvalidTime},
			{name: "end equals start NG", date: "2026-09-10", start: "10:00", end: "10:00", errIs: reservation.ErrInvalidInterval},
			{name: "end before start NG", date: "2026-09-10", start: "12:00", end: "10:00", errIs: reservation.ErrInvalidInterval},
			{name: "four hours NG", date: "2026-09-10", start: "10:00", end: "14:00", errIs: reservation.ErrTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewTimeSlot(tc.date, tc.start, tc.end)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("midnight end parses as hour 24", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-09-10", "22:00", "24:00")
		require.NoError(t, err)
		assert.Equal(t, 22, slot.StartHour())
		assert.Equal(t, 24, slot.EndHour())
		assert.Equal(t, 2, slot.Hours())
	})
}

func TestTimeSlotValidateAgainst(t *testing.T) {
	// Fixed reference instant: 2026-09-10 14:30 in the venue zone.
	now := time.Date(2026, 9, 10, 14, 30, 0, 0, reservation.Location())

	cases := []struct {
		name             string
		date, start, end string
		errIs            error
	}{
		{name: "tomorrow OK", date: "2026-09-11", start: "10:00", end: "11:00"},
		{name: "later today OK", date: "2026-09-10", start: "15:00", end: "16:00"},
		{name: "yesterday NG", date: "2026-09-09", start: "10:00", end: "11:00", errIs: reservation.ErrPastDate},
		{name: "passed hour today NG", date: "2026-09-10", start: "13:00", end: "14:00", errIs: reservation.ErrPastStart},
		{name: "current hour today NG", date: "2026-09-10", start: "14:00", end: "15:00", errIs: reservation.ErrPastStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := reservation.NewTimeSlot(tc.date, tc.start, tc.end)
			require.NoError(t, err)

			err = slot.ValidateAgainst(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeSlotUTCRange(t *testing.T) {
	t.Run("summer offset is +3", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-07-15", "10:00", "12:00")
		require.NoError(t, err)

		start, end := slot.UTCRange()
		assert.Equal(t, time.Date(2026, 7, 15, 7, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC), end)
	})

	t.Run("winter offset is +2", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-01-15", "10:00", "12:00")
		require.NoError(t, err)

		start, end := slot.UTCRange()
		assert.Equal(t, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), end)
	})
}

func TestFromSlot(t *testing.T) {
	slot, err := reservation.FromSlot("2026-09-10", booking.Slot{FieldID: 1, StartHour: 9, EndHour: 11})
	require.NoError(t, err)
	assert.Equal(t, 9, slot.StartHour())
	assert.Equal(t, 11, slot.EndHour())
}

func TestReservation(t *testing.T) {
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, reservation.Location())

	t.Run("new freezes the UTC range", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-09-11", "10:00", "12:00")
		require.NoError(t, err)

		res, err := reservation.New("ion.popescu", 7, slot, now)
		require.NoError(t, err)

		wantStart, wantEnd := slot.UTCRange()
		assert.Equal(t, wantStart, res.StartUTC())
		assert.Equal(t, wantEnd, res.EndUTC())
		assert.Equal(t, "2026-09-11", res.DateString())
	})

	t.Run("new rejects a past slot", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-09-09", "10:00", "11:00")
		require.NoError(t, err)

		_, err = reservation.New("ion.popescu", 7, slot, now)
		assert.ErrorIs(t, err, reservation.ErrPastDate)
	})

	t.Run("holder and owner may cancel", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-09-11", "10:00", "11:00")
		require.NoError(t, err)

		res, err := reservation.New("ion.popescu", 7, slot, now)
		require.NoError(t, err)

		assert.True(t, res.CanBeCanceledBy("ion.popescu", "owner.user"))
		assert.True(t, res.CanBeCanceledBy("owner.user", "owner.user"))
		assert.False(t, res.CanBeCanceledBy("someone.else", "owner.user"))
	})

	t.Run("reconstruct restores a stored row unchanged", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot("2026-09-11", "10:00", "12:00")
		require.NoError(t, err)
		start, end := slot.UTCRange()

		res := reservation.Reconstruct(42, "ion.popescu", 7, slot, start, end)

		assert.Equal(t, int64(42), res.ID())
		assert.Equal(t, "ion.popescu", res.Username())
		assert.Equal(t, int64(7), res.FieldID())
		assert.Equal(t, "2026-09-11", res.DateString())
		assert.Equal(t, start, res.StartUTC())
		assert.True(t, res.CanBeCanceledBy("ion.popescu", "owner.user"))
	})
}
