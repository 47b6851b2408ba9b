package iterbench

import (
	"context"
	"errors"
)

// RunCLI parses args, resolves the benchmark and runs it. Usage text goes to
// the runner's stdout and any other error to its stderr; the error is also
// returned so the caller can pick an exit code.
func RunCLI(args []string, opts ...Option) error {
	runner, err := NewRunner(opts...)
	if err != nil {
		return err
	}
	err = runner.runCLI(args)
	if errors.Is(err, ErrUsage) {
		runner.LogFStdOut(usage, "iterrunner")
		return err
	}
	if err != nil {
		runner.LogStdErr(err.Error() + "\n")
	}
	return err
}

func (r *Runner) runCLI(args []string) error {
	err := WithInputsFromArgs(args)(r)
	if err != nil {
		return err
	}
	if r.config.Iterations < 0 {
		return ErrNegativeIterations(r.config.Iterations)
	}
	unit, err := Load(context.Background(), r.config.Benchmark, WithUnitOutput(r.stderr))
	if err != nil {
		return err
	}
	defer unit.Close()
	r.unit = unit
	return r.Run()
}
