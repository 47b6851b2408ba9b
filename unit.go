package iterbench

import "errors"

// ErrAssertionFailed is returned by benchmark units whose self check fails.
// The runner passes it through untouched.
var ErrAssertionFailed = errors.New("assertion failed")

// Unit is a benchmark exposing the run_iter entry point.
type Unit interface {
	RunIter(param int64) error
}

type UnitFunc func(param int64) error

func (f UnitFunc) RunIter(param int64) error {
	return f(param)
}

// Assert returns ErrAssertionFailed unless cond holds.
func Assert(cond bool) error {
	if !cond {
		return ErrAssertionFailed
	}
	return nil
}
