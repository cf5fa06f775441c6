package domain

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ColumnKind is the inferred type of a column.
type ColumnKind int

const (
	// KindText marks a column holding free text.
	KindText ColumnKind = iota
	// KindNumeric marks a column whose non-empty cells all parse as numbers.
	KindNumeric
)

// String returns the lower-case name of the kind.
func (k ColumnKind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// timeColumnNames lists the header names treated as the dataset's time axis, in priority order.
var timeColumnNames = []string{"time", "timestamp", "datetime", "date", "period_start", "valid_time"}

// Column is one named, typed column of a Dataset.
type Column struct {
	Name string
	Kind ColumnKind
	// Cells holds the raw cell text for every row.
	Cells []string
	// Values holds the parsed numbers for numeric columns. Empty cells are NaN.
	Values []float64
}

// Dataset is the parsed CSV content. It is immutable once constructed.
type Dataset struct {
	source  string
	columns []Column
	index   map[string]int
	rows    int
}

// NewDataset builds a Dataset from a header and its data records.
// Every record must have exactly len(header) fields and header names must be unique and non-empty.
func NewDataset(source string, header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrMissingHeader
	}

	index := make(map[string]int, len(header))
	names := make([]string, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, zerr.With(ErrEmptyColumnName, "position", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, zerr.With(ErrDuplicateColumn, "column", name)
		}
		index[name] = i
		names[i] = name
	}

	for i, rec := range records {
		if len(rec) != len(header) {
			err := zerr.With(ErrRaggedRow, "row", i+1)
			err = zerr.With(err, "fields", len(rec))
			return nil, zerr.With(err, "expected", len(header))
		}
	}

	columns := make([]Column, len(header))
	for c, name := range names {
		cells := make([]string, len(records))
		for r, rec := range records {
			cells[r] = rec[c]
		}
		columns[c] = inferColumn(name, cells)
	}

	return &Dataset{
		source:  source,
		columns: columns,
		index:   index,
		rows:    len(records),
	}, nil
}

// inferColumn decides whether cells form a numeric or a text column.
func inferColumn(name string, cells []string) Column {
	col := Column{Name: name, Kind: KindText, Cells: cells}

	values := make([]float64, len(cells))
	finite := 0
	for i, cell := range cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			values[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return col
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			values[i] = math.NaN()
			continue
		}
		values[i] = f
		finite++
	}
	if finite == 0 {
		return col
	}

	col.Kind = KindNumeric
	col.Values = values
	return col
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string {
	if d == nil {
		return ""
	}
	return d.source
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	if d == nil {
		return 0
	}
	return d.rows
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	if d == nil {
		return 0
	}
	return len(d.columns)
}

// Empty reports whether the dataset is missing or has no rows.
func (d *Dataset) Empty() bool {
	return d.RowCount() == 0
}

// ColumnNames returns the column names in header order.
func (d *Dataset) ColumnNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumnNames returns the names of numeric columns in header order.
func (d *Dataset) NumericColumnNames() []string {
	if d == nil {
		return nil
	}
	var names []string
	for _, c := range d.columns {
		if c.Kind == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// MeasureColumnNames returns the numeric columns that carry measurements.
// The time column acts as the row index and is never a measure, even when it holds numbers.
func (d *Dataset) MeasureColumnNames() []string {
	timeCol, hasTime := d.TimeColumn()
	var names []string
	for _, name := range d.NumericColumnNames() {
		if hasTime && name == timeCol {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) (Column, bool) {
	if d == nil {
		return Column{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	c := d.columns[i]
	return Column{
		Name:   c.Name,
		Kind:   c.Kind,
		Cells:  slices.Clone(c.Cells),
		Values: slices.Clone(c.Values),
	}, true
}

// Kind returns the kind of the named column.
func (d *Dataset) Kind(name string) (ColumnKind, bool) {
	if d == nil {
		return KindText, false
	}
	i, ok := d.index[name]
	if !ok {
		return KindText, false
	}
	return d.columns[i].Kind, true
}

// Values returns a copy of the parsed values of a numeric column.
func (d *Dataset) Values(name string) ([]float64, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[name]
	if !ok || d.columns[i].Kind != KindNumeric {
		return nil, false
	}
	return slices.Clone(d.columns[i].Values), true
}

// Cell returns the raw text at the given row and column position.
func (d *Dataset) Cell(row, col int) string {
	if d == nil || row < 0 || row >= d.rows || col < 0 || col >= len(d.columns) {
		return ""
	}
	return d.columns[col].Cells[row]
}

// Row returns the raw text of one row in header order.
func (d *Dataset) Row(row int) []string {
	if d == nil || row < 0 || row >= d.rows {
		return nil
	}
	out := make([]string, len(d.columns))
	for c := range d.columns {
		out[c] = d.columns[c].Cells[row]
	}
	return out
}

// Head returns up to n rows from the start of the dataset.
func (d *Dataset) Head(n int) [][]string {
	n = min(n, d.RowCount())
	if n <= 0 {
		return nil
	}
	rows := make([][]string, n)
	for r := range n {
		rows[r] = d.Row(r)
	}
	return rows
}

// TimeColumn returns the column used to label rows, if the dataset has one.
func (d *Dataset) TimeColumn() (string, bool) {
	if d == nil {
		return "", false
	}
	for _, candidate := range timeColumnNames {
		for _, c := range d.columns {
			if strings.EqualFold(c.Name, candidate) {
				return c.Name, true
			}
		}
	}
	return "", false
}
