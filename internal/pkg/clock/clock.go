package clock

import "time"

// Clock abstracts time.Now so booking rules can be tested at a fixed
// instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to one instant.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	return f.t
}

func (f *Fixed) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}
