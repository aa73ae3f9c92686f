package clock

import "time"

// Clock abstracts the time source so identity assignment and token expiry
// checks stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock frozen at the given instant
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type steppedClock struct {
	now  time.Time
	step time.Duration
}

// NewStepped returns a clock that starts at the given instant and advances
// by step on every read.
func NewStepped(start time.Time, step time.Duration) Clock {
	return &steppedClock{now: start.UTC(), step: step}
}

func (s *steppedClock) Now() time.Time {
	t := s.now
	s.now = s.now.Add(s.step)
	return t
}
