package iterbench_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thiagonache/iterbench"
)

func TestParseResults(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc  string
		input string
		want  iterbench.Results
	}{
		{
			desc:  "empty run",
			input: "[]",
			want:  iterbench.Results{Name: "r", Intervals: []float64{}, Complete: true},
		},
		{
			desc:  "trailing separator",
			input: "[0.5, 0.25, ]",
			want:  iterbench.Results{Name: "r", Intervals: []float64{0.5, 0.25}, Complete: true},
		},
		{
			desc:  "strict list with newline",
			input: "[0.5, 1e-06]\n",
			want:  iterbench.Results{Name: "r", Intervals: []float64{0.5, 0.000001}, Complete: true},
		},
		{
			desc:  "run failed on third iteration",
			input: "[0.5, 0.25, ",
			want:  iterbench.Results{Name: "r", Intervals: []float64{0.5, 0.25}},
		},
		{
			desc:  "run failed on first iteration",
			input: "[",
			want:  iterbench.Results{Name: "r", Intervals: []float64{}},
		},
	}
	for _, tc := range testCases {
		got, err := iterbench.ParseResults("r", strings.NewReader(tc.input))
		if err != nil {
			t.Errorf("%s: %v", tc.desc, err)
			continue
		}
		if !cmp.Equal(tc.want, got) {
			t.Errorf("%s: %s", tc.desc, cmp.Diff(tc.want, got))
		}
	}
}

func TestParseResultsRejectsMalformedInput(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"0.5, 0.25]",
		"[0.5, abc, ]",
		"[-0.5, ]",
		"[1,,2]",
		"[, 1]",
		"[0.5, , ]",
	}
	for _, input := range inputs {
		_, err := iterbench.ParseResults("r", strings.NewReader(input))
		if !errors.Is(err, iterbench.ErrMalformedResults) {
			t.Errorf("%q: want ErrMalformedResults, got %v", input, err)
		}
	}
}

func TestReadResultsFileUsesPathAsName(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "run1.txt")
	err := os.WriteFile(path, []byte("[0.1, 0.2, ]"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	res, err := iterbench.ReadResultsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != path {
		t.Errorf("want name %q, got %q", path, res.Name)
	}
	if !cmp.Equal([]float64{0.1, 0.2}, res.Intervals) {
		t.Error(cmp.Diff([]float64{0.1, 0.2}, res.Intervals))
	}
}

func TestReadResultsFileMissingReturnsError(t *testing.T) {
	t.Parallel()
	_, err := iterbench.ReadResultsFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want os.ErrNotExist, got %v", err)
	}
}
