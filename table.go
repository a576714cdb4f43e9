package benchplot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrMissingColumn    = errors.New("missing column")
	ErrNonNumericColumn = errors.New("column is not numeric")
)

// Column is a named, typed column. Exactly one of Floats or Strings is
// populated, depending on Numeric.
type Column struct {
	Name    string
	Numeric bool
	Floats  []float64
	Strings []string
}

func (c Column) Len() int {
	if c.Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// String returns the cell at row i as text.
func (c Column) String(i int) string {
	if c.Numeric {
		if math.IsNaN(c.Floats[i]) {
			return ""
		}
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	}
	return c.Strings[i]
}

func (c Column) clone() Column {
	out := Column{Name: c.Name, Numeric: c.Numeric}
	if c.Numeric {
		out.Floats = append([]float64(nil), c.Floats...)
	} else {
		out.Strings = append([]string(nil), c.Strings...)
	}
	return out
}

// Table is an ordered set of equal-length columns.
type Table struct {
	Columns []Column
	rows    int
}

func (t *Table) Len() int {
	return t.rows
}

func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t *Table) numericColumn(name string) ([]float64, error) {
	c, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	if !c.Numeric {
		return nil, fmt.Errorf("%w: %q", ErrNonNumericColumn, name)
	}
	return c.Floats, nil
}

// ReadCSVFile loads the CSV file at path. Parse failures are reported
// as ErrMalformedInput.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses comma separated records whose first record is the
// header. A column is numeric when every non-empty cell parses as a
// float; empty cells in numeric columns are NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedInput, name)
		}
		seen[name] = true
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	t := &Table{Columns: make([]Column, len(header)), rows: len(records)}
	for j, name := range header {
		cells := make([]string, len(records))
		for i, rec := range records {
			cells[i] = rec[j]
		}
		t.Columns[j] = inferColumn(name, cells)
	}
	return t, nil
}

func inferColumn(name string, cells []string) Column {
	floats := make([]float64, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Column{Name: name, Strings: cells}
		}
		floats[i] = v
	}
	return Column{Name: name, Numeric: true, Floats: floats}
}
