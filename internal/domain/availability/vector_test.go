//go:build unit

package availability_test

import (
	"testing"

	"sportfields/internal/domain/availability"
	"sportfields/internal/domain/field"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchedule(t *testing.T, raw string) field.Schedule {
	t.Helper()
	s, err := field.NewSchedule(raw)
	require.NoError(t, err)
	return s
}

func TestBuild(t *testing.T) {
	t.Run("schedule and reservations combine into one vector", func(t *testing.T) {
		schedule := mustSchedule(t, "10:00 - 14:00")
		reserved := []availability.Interval{{StartHour: 11, EndHour: 13}}

		got := availability.Build(schedule, reserved)

		var want availability.Vector
		for h := range want {
			want[h] = availability.StateClosed
		}
		want[10] = availability.StateAvailable
		want[11] = availability.StateReserved
		want[12] = availability.StateReserved
		want[13] = availability.StateAvailable

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("vector mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reservations outside the schedule stay closed", func(t *testing.T) {
		schedule := mustSchedule(t, "10:00 - 12:00")
		reserved := []availability.Interval{{StartHour: 8, EndHour: 9}}

		got := availability.Build(schedule, reserved)

		assert.Equal(t, availability.StateClosed, got[8])
		assert.Equal(t, availability.StateAvailable, got[10])
	})

	t.Run("non-stop with no reservations is fully available", func(t *testing.T) {
		got := availability.Build(mustSchedule(t, "non-stop"), nil)
		for h, state := range got {
			assert.Equal(t, availability.StateAvailable, state, "hour %d", h)
		}
	})

	t.Run("overlapping reservations do not double count", func(t *testing.T) {
		schedule := mustSchedule(t, "non-stop")
		reserved := []availability.Interval{
			{StartHour: 10, EndHour: 12},
			{StartHour: 11, EndHour: 13},
		}

		got := availability.Build(schedule, reserved)
		for h := 10; h < 13; h++ {
			assert.Equal(t, availability.StateReserved, got[h], "hour %d", h)
		}
		assert.Equal(t, availability.StateAvailable, got[13])
	})
}

func TestIntervalContains(t *testing.T) {
	iv := availability.Interval{StartHour: 10, EndHour: 13}

	assert.False(t, iv.Contains(9))
	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(12))
	assert.False(t, iv.Contains(13), "end hour is exclusive")
}

func TestHourOf(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  int
		errIs error
	}{
		{name: "full time OK", in: "14:00:00", want: 14},
		{name: "short time OK", in: "9:30", want: 9},
		{name: "padded OK", in: " 07:00:00 ", want: 7},
		{name: "midnight end OK", in: "24:00:00", want: 24},
		{name: "hour 25 NG", in: "25:00:00", errIs: availability.ErrInvalidTime},
		{name: "garbage NG", in: "noon", errIs: availability.ErrInvalidTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := availability.HourOf(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
