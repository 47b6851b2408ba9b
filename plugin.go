//go:build (linux || darwin || freebsd) && cgo

package iterbench

import (
	"fmt"
	"plugin"
)

// pluginSymbol is the exported name a Go plugin must provide.
const pluginSymbol = "RunIter"

func loadPlugin(path string) (*LoadedUnit, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %w", path, err)
	}
	sym, err := p.Lookup(pluginSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingEntry, err)
	}
	var u Unit
	switch fn := sym.(type) {
	case func(int64) error:
		u = UnitFunc(fn)
	case func(int64):
		u = UnitFunc(func(param int64) error {
			fn(param)
			return nil
		})
	default:
		return nil, fmt.Errorf("%w: %s has type %T", ErrMissingEntry, pluginSymbol, sym)
	}
	// Go plugins cannot be unloaded.
	return &LoadedUnit{Unit: u, Kind: "plugin"}, nil
}
