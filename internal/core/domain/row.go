package domain

import "fmt"

// RowShape selects how a result row is presented.
type RowShape string

const (
	RowShapeDict  RowShape = "dict"  // column name -> value
	RowShapeTuple RowShape = "tuple" // positional values
)

// ParseRowShape maps a configuration value to a RowShape.
func ParseRowShape(s string) (RowShape, error) {
	switch RowShape(s) {
	case RowShapeDict, RowShapeTuple:
		return RowShape(s), nil
	}
	return "", fmt.Errorf("unknown row shape %q", s)
}

// Row is one result row with its column names.
type Row struct {
	Columns []string
	Values  []any
}

// Shape renders the row as a map or a slice. Duplicate column names in
// dict shape keep the last value.
func (r Row) Shape(shape RowShape) any {
	if shape == RowShapeTuple {
		out := make([]any, len(r.Values))
		copy(out, r.Values)
		return out
	}
	out := make(map[string]any, len(r.Columns))
	for i, col := range r.Columns {
		if i < len(r.Values) {
			out[col] = r.Values[i]
		}
	}
	return out
}
