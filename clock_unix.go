//go:build linux || darwin || freebsd || openbsd

package iterbench

import (
	"time"

	"golang.org/x/sys/unix"
)

type posixClock struct {
	id   int32
	name string
}

// firstUsable returns the first candidate the kernel accepts.
func firstUsable(candidates ...*posixClock) Clock {
	for _, c := range candidates {
		var ts unix.Timespec
		if unix.ClockGettime(c.id, &ts) == nil {
			return c
		}
	}
	return nil
}

// Now panics if the clock stops working mid-run; firstUsable has already
// proved the id valid.
func (c *posixClock) Now() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(c.id, &ts); err != nil {
		panic(err)
	}
	return time.Duration(ts.Nano())
}

func (c *posixClock) Name() string {
	return c.name
}
