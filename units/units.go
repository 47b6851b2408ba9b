// Package units links a few demonstration benchmarks into the runner. Import
// it for its side effects.
package units

import (
	"time"

	"github.com/thiagonache/iterbench"
)

func init() {
	iterbench.Register("demo.bench", iterbench.UnitFunc(Sleep))
	iterbench.Register("fib.bench", iterbench.UnitFunc(Fib))
	iterbench.Register("fail.bench", &FailAfter{})
}

// Sleep blocks for param milliseconds.
func Sleep(param int64) error {
	time.Sleep(time.Duration(param) * time.Millisecond)
	return nil
}

// Fib computes the param'th Fibonacci number twice, iteratively and
// recursively, and asserts they agree.
func Fib(param int64) error {
	if param < 0 {
		return iterbench.ErrAssertionFailed
	}
	return iterbench.Assert(fibIter(param) == fibRec(param))
}

func fibIter(n int64) uint64 {
	var a, b uint64 = 0, 1
	for i := int64(0); i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func fibRec(n int64) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibRec(n-1) + fibRec(n-2)
}

// FailAfter succeeds param times and fails its assertion on every later call.
// The count survives between iterations.
type FailAfter struct {
	calls int64
}

func (f *FailAfter) RunIter(param int64) error {
	f.calls++
	return iterbench.Assert(f.calls <= param)
}
