package export

import "time"

// Clock abstracts time so the progress ticker can be driven by a
// deterministic source in tests instead of a wall-clock timer.
type Clock interface {
	Now() time.Time
	// Tick returns a channel delivering ticks at the given interval and a
	// stop function releasing the underlying timer.
	Tick(d time.Duration) (<-chan time.Time, func())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Tick(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// SystemClock is the wall-clock implementation used outside tests.
func SystemClock() Clock { return systemClock{} }
