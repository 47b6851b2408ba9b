package iterbench

import "golang.org/x/sys/unix"

func platformClock() Clock {
	return firstUsable(
		&posixClock{id: unix.CLOCK_MONOTONIC_RAW, name: "CLOCK_MONOTONIC_RAW"},
		&posixClock{id: unix.CLOCK_MONOTONIC, name: "CLOCK_MONOTONIC"},
	)
}
