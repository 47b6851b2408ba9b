//go:build !((linux || darwin || freebsd) && cgo)

package iterbench

import (
	"errors"
	"fmt"
)

var errPluginUnsupported = errors.New("go plugins are not supported on this build")

func loadPlugin(path string) (*LoadedUnit, error) {
	return nil, fmt.Errorf("open plugin %s: %w", path, errPluginUnsupported)
}
