package units_test

import (
	"errors"
	"testing"
	"time"

	"github.com/thiagonache/iterbench"
	"github.com/thiagonache/iterbench/units"
)

func TestSleepBlocksForParamMilliseconds(t *testing.T) {
	t.Parallel()
	start := time.Now()
	err := units.Sleep(5)
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("want at least 5ms, got %v", elapsed)
	}
}

func TestFibAssertionHoldsForValidParams(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{0, 1, 2, 10, 20} {
		if err := units.Fib(n); err != nil {
			t.Errorf("fib(%d): %v", n, err)
		}
	}
}

func TestFibNegativeParamFailsAssertion(t *testing.T) {
	t.Parallel()
	err := units.Fib(-1)
	if !errors.Is(err, iterbench.ErrAssertionFailed) {
		t.Errorf("want ErrAssertionFailed, got %v", err)
	}
}

func TestFailAfterKeepsCountAcrossCalls(t *testing.T) {
	t.Parallel()
	f := &units.FailAfter{}
	for i := 1; i <= 2; i++ {
		if err := f.RunIter(2); err != nil {
			t.Fatalf("call %d: want no error, got %v", i, err)
		}
	}
	err := f.RunIter(2)
	if err != iterbench.ErrAssertionFailed {
		t.Errorf("call 3: want ErrAssertionFailed, got %v", err)
	}
}

func TestBuiltinUnitsAreRegistered(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"demo.bench", "fib.bench", "fail.bench"} {
		if _, ok := iterbench.Lookup(name); !ok {
			t.Errorf("want %q registered", name)
		}
	}
}
