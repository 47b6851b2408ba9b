package iterbench

import "golang.org/x/sys/unix"

// platformClock prefers CLOCK_MONOTONIC_RAW, which is immune to NTP rate
// adjustment, and falls back to CLOCK_MONOTONIC on kernels that reject it.
func platformClock() Clock {
	return firstUsable(
		&posixClock{id: unix.CLOCK_MONOTONIC_RAW, name: "CLOCK_MONOTONIC_RAW"},
		&posixClock{id: unix.CLOCK_MONOTONIC, name: "CLOCK_MONOTONIC"},
	)
}
