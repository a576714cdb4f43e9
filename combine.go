package benchplot

import (
	"errors"
	"fmt"
	"slices"
)

const (
	LabelASP = "actually_smart_pointer"
	LabelStd = "std::shared_ptr"

	ColumnIterations = "iterations"
	ColumnTime       = "time_ms"
	ColumnType       = "type"
)

var ErrSchemaMismatch = errors.New("tables have different columns")

// Observation is one row of a combined table.
type Observation struct {
	Iterations float64
	TimeMS     float64
	Type       string
}

// WithConstant returns a copy of t with a text column name set to value
// on every row. An existing column of that name is replaced in place.
func (t *Table) WithConstant(name, value string) *Table {
	values := make([]string, t.rows)
	for i := range values {
		values[i] = value
	}
	col := Column{Name: name, Strings: values}
	out := &Table{rows: t.rows}
	replaced := false
	for _, c := range t.Columns {
		if c.Name == name {
			out.Columns = append(out.Columns, col)
			replaced = true
			continue
		}
		out.Columns = append(out.Columns, c.clone())
	}
	if !replaced {
		out.Columns = append(out.Columns, col)
	}
	return out
}

// Select projects t onto the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{rows: t.rows}
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		out.Columns = append(out.Columns, c.clone())
	}
	return out, nil
}

// Concat appends the rows of every table, in argument order. All tables
// must share the same column names in the same order. A column that is
// numeric in some tables and text in others comes out as text.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return &Table{}, nil
	}
	names := tables[0].Names()
	for _, t := range tables[1:] {
		if !slices.Equal(names, t.Names()) {
			return nil, fmt.Errorf("%w: %q and %q", ErrSchemaMismatch, names, t.Names())
		}
	}
	out := &Table{Columns: make([]Column, len(names))}
	for _, t := range tables {
		out.rows += t.rows
	}
	for j, name := range names {
		numeric := true
		for _, t := range tables {
			numeric = numeric && t.Columns[j].Numeric
		}
		col := Column{Name: name, Numeric: numeric}
		for _, t := range tables {
			src := t.Columns[j]
			switch {
			case numeric:
				col.Floats = append(col.Floats, src.Floats...)
			case src.Numeric:
				for i := range src.Floats {
					col.Strings = append(col.Strings, src.String(i))
				}
			default:
				col.Strings = append(col.Strings, src.Strings...)
			}
		}
		out.Columns[j] = col
	}
	return out, nil
}

// Combine labels asp and std with their benchmark names and stacks them
// into one long-form table with columns iterations, time_ms and type.
func Combine(asp, std *Table) (*Table, error) {
	if asp == nil || std == nil {
		return nil, ErrValueCannotBeNil
	}
	parts := make([]*Table, 0, 2)
	for _, in := range []struct {
		table *Table
		label string
	}{
		{asp, LabelASP},
		{std, LabelStd},
	} {
		t, err := in.table.WithConstant(ColumnType, in.label).Select(ColumnIterations, ColumnTime, ColumnType)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.label, err)
		}
		parts = append(parts, t)
	}
	combined, err := Concat(parts...)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{ColumnIterations, ColumnTime} {
		if _, err := combined.numericColumn(name); err != nil {
			return nil, err
		}
	}
	return combined, nil
}

// Observations returns the rows of a combined table.
func (t *Table) Observations() ([]Observation, error) {
	xs, err := t.numericColumn(ColumnIterations)
	if err != nil {
		return nil, err
	}
	ys, err := t.numericColumn(ColumnTime)
	if err != nil {
		return nil, err
	}
	types, ok := t.Column(ColumnType)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColumnType)
	}
	obs := make([]Observation, t.rows)
	for i := range obs {
		obs[i] = Observation{
			Iterations: xs[i],
			TimeMS:     ys[i],
			Type:       types.String(i),
		}
	}
	return obs, nil
}
