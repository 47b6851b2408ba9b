package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thiagonache/iterbench"
)

func main() {
	fset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	out := fset.String("o", "iterations.png", "output image; format follows the extension")
	title := fset.String("t", "Iteration times", "chart title")
	fset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o out.png] [-t title] results1.txt [results2.txt ...]\n", os.Args[0])
		fset.PrintDefaults()
	}
	fset.Parse(os.Args[1:])
	if fset.NArg() < 1 {
		fset.Usage()
		os.Exit(1)
	}
	var sets []iterbench.Results
	for _, path := range fset.Args() {
		res, err := iterbench.ReadResultsFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sets = append(sets, res)
	}
	cp, err := iterbench.NewComparePlot(sets, iterbench.WithCMPTitle(*title))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cp.Save(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
