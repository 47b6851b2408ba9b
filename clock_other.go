//go:build !linux && !darwin && !freebsd && !openbsd

package iterbench

func platformClock() Clock {
	return nil
}
