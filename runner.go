package iterbench

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const usage = "usage: %s [-strict] <benchmark> <#iterations> <benchmark_param>\n"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUsage            = errors.New("wrong number of arguments")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
	ErrNoUnit           = errors.New("no benchmark unit configured")
)

// RunConfig is fixed for the whole run.
type RunConfig struct {
	Benchmark  string
	Iterations int
	Param      int64
}

type Runner struct {
	config         RunConfig
	unit           Unit
	clock          Clock
	strict         bool
	stdout, stderr io.Writer
	results        []time.Duration
}

type Option func(*Runner) error

func NewRunner(opts ...Option) (*Runner, error) {
	runner := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range opts {
		err := o(runner)
		if err != nil {
			return nil, err
		}
	}
	if runner.config.Iterations < 0 {
		return nil, ErrNegativeIterations(runner.config.Iterations)
	}
	if runner.clock == nil {
		runner.clock = SelectClock()
	}
	return runner, nil
}

func ErrNegativeIterations(iters int) error {
	return fmt.Errorf("%w: %d is invalid number of iterations", ErrInvalidArgument, iters)
}

func WithIterations(iters int) Option {
	return func(r *Runner) error {
		r.config.Iterations = iters
		return nil
	}
}

func WithParam(param int64) Option {
	return func(r *Runner) error {
		r.config.Param = param
		return nil
	}
}

// WithBenchmark only records the identifier; resolution happens in Load.
func WithBenchmark(name string) Option {
	return func(r *Runner) error {
		r.config.Benchmark = name
		return nil
	}
}

func WithUnit(u Unit) Option {
	return func(r *Runner) error {
		if u == nil {
			return ErrValueCannotBeNil
		}
		r.unit = u
		return nil
	}
}

func WithClock(c Clock) Option {
	return func(r *Runner) error {
		if c == nil {
			return ErrValueCannotBeNil
		}
		r.clock = c
		return nil
	}
}

// WithStrictList drops the separator after the last interval so the output
// is a valid list.
func WithStrictList(strict bool) Option {
	return func(r *Runner) error {
		r.strict = strict
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(r *Runner) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(r *Runner) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		r.stderr = w
		return nil
	}
}

// WithInputsFromArgs parses `[-strict] <benchmark> <#iterations> <param>`.
// A wrong positional count returns ErrUsage.
func WithInputsFromArgs(args []string) Option {
	return func(r *Runner) error {
		fset := flag.NewFlagSet("iterrunner", flag.ContinueOnError)
		// RunCLI prints the usage line itself, on stdout.
		fset.SetOutput(io.Discard)
		strict := fset.Bool("strict", false, "omit the separator after the last interval")
		err := fset.Parse(args)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		args = fset.Args()
		if len(args) != 3 {
			return ErrUsage
		}
		iters, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: iterations %q is not an integer", ErrInvalidArgument, args[1])
		}
		param, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: param %q is not an integer", ErrInvalidArgument, args[2])
		}
		r.config = RunConfig{
			Benchmark:  args[0],
			Iterations: iters,
			Param:      param,
		}
		r.strict = *strict
		return nil
	}
}

func (r Runner) Config() RunConfig {
	return r.config
}

func (r Runner) Clock() Clock {
	return r.clock
}

// Results returns a copy of the intervals recorded so far.
func (r Runner) Results() []time.Duration {
	results := make([]time.Duration, len(r.results))
	copy(results, r.results)
	return results
}

// Run times RunIter once per iteration and streams the intervals to stdout.
// An error from the unit is returned as is and the closing bracket is not
// written.
func (r *Runner) Run() error {
	if r.unit == nil {
		return ErrNoUnit
	}
	iters := r.config.Iterations
	r.LogStdOut("[")
	for k := 1; k <= iters; k++ {
		r.LogFStdErr("[iteration runner] iteration %d/%d\n", k, iters)

		startTime := r.clock.Now()
		err := r.unit.RunIter(r.config.Param)
		stopTime := r.clock.Now()
		if err != nil {
			return err
		}

		elapsed := stopTime - startTime
		r.results = append(r.results, elapsed)
		r.LogStdOut(FormatInterval(elapsed))
		if !r.strict || k < iters {
			r.LogStdOut(", ")
		}
	}
	r.LogStdOut("]")
	return nil
}

// FormatInterval renders d as seconds with as many digits as needed.
func FormatInterval(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func (r Runner) LogStdOut(msg string) {
	fmt.Fprint(r.stdout, msg)
}

func (r Runner) LogStdErr(msg string) {
	fmt.Fprint(r.stderr, msg)
}

func (r Runner) LogFStdOut(msg string, opts ...interface{}) {
	fmt.Fprintf(r.stdout, msg, opts...)
}

func (r Runner) LogFStdErr(msg string, opts ...interface{}) {
	fmt.Fprintf(r.stderr, msg, opts...)
}
