package field

import (
	"strconv"
	"strings"

	"sportfields/internal/pkg/errs"
)

var ErrInvalidSchedule = errs.New("invalid schedule format")

const NonStop = "non-stop"

// Schedule is the daily open window attached to a field, persisted as
// either the literal "non-stop" or "HH:MM - HH:MM". A window whose
// close hour is not strictly after its open hour never opens; windows
// do not wrap around midnight.
type Schedule struct {
	raw       string
	nonStop   bool
	openHour  int
	closeHour int
}

func NewSchedule(raw string) (Schedule, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == NonStop {
		return Schedule{raw: trimmed, nonStop: true}, nil
	}

	parts := strings.Split(trimmed, " - ")
	if len(parts) != 2 {
		return Schedule{}, ErrInvalidSchedule
	}

	open, err := parseHour(parts[0])
	if err != nil {
		return Schedule{}, err
	}
	close, err := parseHour(parts[1])
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{raw: trimmed, openHour: open, closeHour: close}, nil
}

func parseHour(s string) (int, error) {
	hhmm := strings.SplitN(strings.TrimSpace(s), ":", 2)
	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, ErrInvalidSchedule
	}
	return hour, nil
}

func (s Schedule) String() string {
	return s.raw
}

func (s Schedule) IsNonStop() bool {
	return s.nonStop
}

// IsOpen reports whether hour h (0-23) falls inside the open window.
func (s Schedule) IsOpen(h int) bool {
	if h < 0 || h > 23 {
		return false
	}
	if s.nonStop {
		return true
	}
	return h >= s.openHour && h < s.closeHour
}
