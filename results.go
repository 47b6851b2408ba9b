package iterbench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var ErrMalformedResults = errors.New("malformed results")

// Results is one run's interval list read back from a runner's stdout.
// Complete is false when the closing bracket is missing, which means the run
// failed part way through.
type Results struct {
	Name      string
	Intervals []float64
	Complete  bool
}

// ParseResults accepts both the trailing separator form and strict lists.
func ParseResults(name string, r io.Reader) (Results, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Results{}, err
	}
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("[")) {
		return Results{}, fmt.Errorf("%w: %s does not start with '['", ErrMalformedResults, name)
	}
	data = data[1:]
	res := Results{Name: name, Intervals: []float64{}}
	if bytes.HasSuffix(data, []byte("]")) {
		res.Complete = true
		data = data[:len(data)-1]
	}
	fields := bytes.Split(data, []byte(","))
	for i, field := range fields {
		field = bytes.TrimSpace(field)
		if len(field) == 0 {
			// Only the slot after the trailing separator may be empty.
			if i == len(fields)-1 {
				continue
			}
			return Results{}, fmt.Errorf("%w: %s entry %d is empty", ErrMalformedResults, name, i+1)
		}
		v, err := strconv.ParseFloat(string(field), 64)
		if err != nil {
			return Results{}, fmt.Errorf("%w: %s entry %d: %v", ErrMalformedResults, name, i+1, err)
		}
		if v < 0 {
			return Results{}, fmt.Errorf("%w: %s entry %d is negative", ErrMalformedResults, name, i+1)
		}
		res.Intervals = append(res.Intervals, v)
	}
	return res, nil
}

func ReadResultsFile(path string) (Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return Results{}, err
	}
	defer f.Close()
	return ParseResults(path, f)
}
