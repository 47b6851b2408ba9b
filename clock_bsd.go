//go:build freebsd || openbsd

package iterbench

import "golang.org/x/sys/unix"

// The BSDs have no separate raw clock.
func platformClock() Clock {
	return firstUsable(&posixClock{id: unix.CLOCK_MONOTONIC, name: "CLOCK_MONOTONIC"})
}
