package iterbench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyResults = errors.New("results cannot be empty")

// ComparePlot draws the raw per-iteration intervals of several runs on one
// chart, one line per run.
type ComparePlot struct {
	Sets           []Results
	Title          string
	Width, Height  vg.Length
	Stdout, Stderr io.Writer
}

type CMPOption func(*ComparePlot) error

func NewComparePlot(sets []Results, opts ...CMPOption) (*ComparePlot, error) {
	if len(sets) == 0 {
		return &ComparePlot{}, ErrEmptyResults
	}
	for _, s := range sets {
		if len(s.Intervals) == 0 {
			return &ComparePlot{}, fmt.Errorf("%w: %s", ErrEmptyResults, s.Name)
		}
	}
	cp := &ComparePlot{
		Sets:   sets,
		Title:  "Iteration times",
		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, o := range opts {
		err := o(cp)
		if err != nil {
			return nil, err
		}
	}
	return cp, nil
}

func WithCMPTitle(title string) CMPOption {
	return func(cp *ComparePlot) error {
		cp.Title = title
		return nil
	}
}

func WithCMPSize(width, height vg.Length) CMPOption {
	return func(cp *ComparePlot) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: plot size %vx%v", ErrInvalidArgument, width, height)
		}
		cp.Width, cp.Height = width, height
		return nil
	}
}

func WithCMPStdout(w io.Writer) CMPOption {
	return func(cp *ComparePlot) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		cp.Stdout = w
		return nil
	}
}

func WithCMPStderr(w io.Writer) CMPOption {
	return func(cp *ComparePlot) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		cp.Stderr = w
		return nil
	}
}

// Plot builds the chart: iteration number on X, seconds on Y. Runs that
// stopped early get a "(partial)" legend suffix. Save also warns about them
// on Stderr.
func (cp ComparePlot) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cp.Title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Time (s)"
	p.Add(plotter.NewGrid())
	for i, set := range cp.Sets {
		xys := make(plotter.XYs, len(set.Intervals))
		for j, v := range set.Intervals {
			xys[j].X = float64(j + 1)
			xys[j].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		label := set.Name
		if !set.Complete {
			label += " (partial)"
		}
		p.Add(line)
		p.Legend.Add(label, line)
	}
	return p, nil
}

// Save renders the chart; the format follows the extension of path.
func (cp ComparePlot) Save(path string) error {
	p, err := cp.Plot()
	if err != nil {
		return err
	}
	err = p.Save(cp.Width, cp.Height, path)
	if err != nil {
		return err
	}
	for _, set := range cp.Sets {
		if !set.Complete {
			fmt.Fprintf(cp.Stderr, "%s: run did not complete, plotted %d iterations\n", set.Name, len(set.Intervals))
		}
	}
	fmt.Fprintf(cp.Stdout, "wrote %s\n", path)
	return nil
}
