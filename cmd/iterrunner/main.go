package main

import (
	"os"

	"github.com/thiagonache/iterbench"
	_ "github.com/thiagonache/iterbench/units"
)

func main() {
	if err := iterbench.RunCLI(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
