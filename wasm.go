package iterbench

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// wasmUnit calls the run_iter(i64) export of a WebAssembly module. Modules may
// import env.assert(i32) to report ErrAssertionFailed.
type wasmUnit struct {
	ctx      context.Context
	runtime  wazero.Runtime
	module   api.Module
	runIter  api.Function
	asserted bool
}

func loadWasm(ctx context.Context, path string, cfg *loadConfig) (*LoadedUnit, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return newWasmUnit(ctx, code, cfg)
}

func newWasmUnit(ctx context.Context, code []byte, cfg *loadConfig) (*LoadedUnit, error) {
	r := wazero.NewRuntime(ctx)
	u := &wasmUnit{ctx: ctx, runtime: r}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}
	_, err := r.NewHostModuleBuilder("env").
		NewFunctionBuilder().
		WithFunc(u.assert).
		Export("assert").
		Instantiate(ctx)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate host module: %w", err)
	}

	compiled, err := r.CompileModule(ctx, code)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("compile benchmark: %w", err)
	}
	// Reactor style modules initialise through _initialize; a command's
	// _start is never run.
	config := wazero.NewModuleConfig().
		WithName("benchmark").
		WithStartFunctions("_initialize").
		WithStdout(cfg.output).
		WithStderr(cfg.output)
	mod, err := r.InstantiateModule(ctx, compiled, config)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate benchmark: %w", err)
	}

	u.module = mod
	u.runIter = mod.ExportedFunction("run_iter")
	if u.runIter == nil {
		r.Close(ctx)
		return nil, ErrMissingEntry
	}
	if params := u.runIter.Definition().ParamTypes(); len(params) != 1 || params[0] != api.ValueTypeI64 {
		r.Close(ctx)
		return nil, fmt.Errorf("%w: want run_iter(i64), got %d params", ErrMissingEntry, len(params))
	}
	return &LoadedUnit{
		Unit:   u,
		Kind:   "wasm",
		closer: func() error { return r.Close(ctx) },
	}, nil
}

func (u *wasmUnit) assert(_ context.Context, _ api.Module, cond uint32) {
	if cond == 0 {
		u.asserted = true
		panic(ErrAssertionFailed)
	}
}

func (u *wasmUnit) RunIter(param int64) error {
	_, err := u.runIter.Call(u.ctx, api.EncodeI64(param))
	if err == nil {
		return nil
	}
	if u.asserted {
		u.asserted = false
		return ErrAssertionFailed
	}
	return fmt.Errorf("run_iter: %w", err)
}
