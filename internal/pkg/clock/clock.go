package clock

import "time"

// Clock abstracts "now" so the resolution pipeline and the backfill job can
// be tested against a fixed instant. Implementations must return UTC.
type Clock interface {
	NowUTC() time.Time
}

type systemClock struct{}

func (systemClock) NowUTC() time.Time { return time.Now().UTC() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t (converted to UTC).
func Fixed(t time.Time) Clock { return fixedClock{t.UTC()} }

type fixedClock struct{ t time.Time }

func (f fixedClock) NowUTC() time.Time { return f.t }
