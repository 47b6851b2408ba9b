package iterbench

import "time"

// Clock is a monotonic time source. Readings are only meaningful relative to
// each other.
type Clock interface {
	Now() time.Duration
	Name() string
}

// SelectClock returns the highest resolution monotonic clock the host offers,
// preferring one that is not slewed by NTP.
func SelectClock() Clock {
	if c := platformClock(); c != nil {
		return c
	}
	return newRuntimeClock()
}

// runtimeClock reads the monotonic component Go attaches to time.Now.
type runtimeClock struct {
	origin time.Time
}

func newRuntimeClock() *runtimeClock {
	return &runtimeClock{origin: time.Now()}
}

func (c *runtimeClock) Now() time.Duration {
	return time.Since(c.origin)
}

func (c *runtimeClock) Name() string {
	return "runtime monotonic"
}
