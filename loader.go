package iterbench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownBenchmark = errors.New("unknown benchmark")
	ErrMissingEntry     = errors.New("benchmark does not export run_iter")
)

// LoadedUnit is a resolved benchmark. Close releases whatever runtime backs
// it and is safe to call on linked-in units.
type LoadedUnit struct {
	Unit
	Kind   string
	closer func() error
}

func (lu *LoadedUnit) Close() error {
	if lu.closer == nil {
		return nil
	}
	return lu.closer()
}

type loadConfig struct {
	output io.Writer
}

type LoadOption func(*loadConfig)

// WithUnitOutput sets where a sandboxed unit's own stdout and stderr go. It
// defaults to os.Stderr so nothing interleaves with the interval list.
func WithUnitOutput(w io.Writer) LoadOption {
	return func(c *loadConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// Load resolves name to a unit: first the linked-in registry, then by file
// extension, .wasm modules and .so Go plugins. Relative paths are taken from
// the working directory.
func Load(ctx context.Context, name string, opts ...LoadOption) (*LoadedUnit, error) {
	cfg := &loadConfig{output: os.Stderr}
	for _, o := range opts {
		o(cfg)
	}
	if u, ok := Lookup(name); ok {
		return &LoadedUnit{Unit: u, Kind: "registry"}, nil
	}
	path, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wasm":
		return loadWasm(ctx, path, cfg)
	case ".so":
		return loadPlugin(path)
	}
	registered := "none"
	if names := Registered(); len(names) > 0 {
		registered = strings.Join(names, ", ")
	}
	return nil, fmt.Errorf("%w: %q is neither a .wasm or .so file nor registered (registered: %s)", ErrUnknownBenchmark, name, registered)
}
