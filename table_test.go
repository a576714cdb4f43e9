package benchplot_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/thiagonache/benchplot"
)

func TestReadCSVInfersNumericAndTextColumns(t *testing.T) {
	t.Parallel()
	input := "iterations,time_ms,host\n10,1.5,a\n20,,b\n"
	table, err := benchplot.ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []benchplot.Column{
		{Name: "iterations", Numeric: true, Floats: []float64{10, 20}},
		{Name: "time_ms", Numeric: true, Floats: []float64{1.5, math.NaN()}},
		{Name: "host", Strings: []string{"a", "b"}},
	}
	got := table.Columns
	if !cmp.Equal(want, got, cmpopts.EquateNaNs()) {
		t.Error(cmp.Diff(want, got, cmpopts.EquateNaNs()))
	}
	if table.Len() != 2 {
		t.Errorf("want 2 rows, got %d", table.Len())
	}
}

func TestReadCSVKeepsHeaderOrderAndStripsBOM(t *testing.T) {
	t.Parallel()
	input := "\ufeffiterations,time_ms,memory_b\n10,1,0\n"
	table, err := benchplot.ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"iterations", "time_ms", "memory_b"}
	got := table.Names()
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestReadCSVHeaderOnlyReturnsEmptyTable(t *testing.T) {
	t.Parallel()
	table, err := benchplot.ReadCSV(strings.NewReader("iterations,time_ms,memory_kb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Errorf("want 0 rows, got %d", table.Len())
	}
	if len(table.Columns) != 3 {
		t.Errorf("want 3 columns, got %d", len(table.Columns))
	}
}

func TestReadCSVReturnsErrMalformedInput(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc  string
		input string
	}{
		{desc: "empty input", input: ""},
		{desc: "short record", input: "iterations,time_ms\n10\n"},
		{desc: "long record", input: "iterations,time_ms\n10,1,2\n"},
		{desc: "duplicate header", input: "iterations,iterations\n10,1\n"},
		{desc: "unterminated quote", input: "iterations,time_ms\n\"10,1\n"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()
			_, err := benchplot.ReadCSV(strings.NewReader(tC.input))
			if !errors.Is(err, benchplot.ErrMalformedInput) {
				t.Errorf("want ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestReadCSVFileLoadsBenchmarkResults(t *testing.T) {
	t.Parallel()
	table, err := benchplot.ReadCSVFile("testdata/benchmark_asp.csv")
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 19 {
		t.Errorf("want 19 rows, got %d", table.Len())
	}
	iterations, ok := table.Column("iterations")
	if !ok {
		t.Fatal("want iterations column")
	}
	if !iterations.Numeric {
		t.Error("want iterations to be numeric")
	}
	if iterations.Floats[0] != 10 || iterations.Floats[18] != 100 {
		t.Errorf("want iterations from 10 to 100, got %v", iterations.Floats)
	}
}

func TestReadCSVFileWrapsErrorsWithPath(t *testing.T) {
	t.Parallel()
	_, err := benchplot.ReadCSVFile("testdata/ragged.csv")
	if !errors.Is(err, benchplot.ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "testdata/ragged.csv") {
		t.Errorf("want error to name the file, got %q", err)
	}
}

func TestColumnStringFormatsNumbers(t *testing.T) {
	t.Parallel()
	c := benchplot.Column{Name: "n", Numeric: true, Floats: []float64{10, 0.25, math.NaN()}}
	want := []string{"10", "0.25", ""}
	got := []string{c.String(0), c.String(1), c.String(2)}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
