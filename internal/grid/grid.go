package grid

// ColumnType identifies the kind of data a column holds.
type ColumnType string

// Column kinds.
const (
	ColumnTypeText    ColumnType = "text"
	ColumnTypeNumber  ColumnType = "number"
	ColumnTypeDate    ColumnType = "date"
	ColumnTypeBoolean ColumnType = "boolean"
	ColumnTypeImage   ColumnType = "image"
	ColumnTypeHidden  ColumnType = "hidden"
)

var columnTypes = []ColumnType{
	ColumnTypeText,
	ColumnTypeNumber,
	ColumnTypeDate,
	ColumnTypeBoolean,
	ColumnTypeImage,
	ColumnTypeHidden,
}

// ColumnTypes returns every known column type.
func ColumnTypes() []ColumnType {
	out := make([]ColumnType, len(columnTypes))
	copy(out, columnTypes)
	return out
}

// ParseColumnType converts s to a ColumnType.
// It reports false if s does not name a known column type.
func ParseColumnType(s string) (ColumnType, bool) {
	for _, t := range columnTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Value is the content of a cell. A nil Value means the cell has no value.
type Value = any

// Column describes one field of the grid.
type Column struct {
	// Index is the column's position in the grid.
	Index int
	// BindTo is the logical field the column displays. Columns sharing a
	// BindTo are the same field for uniqueness checks.
	BindTo string
	// Title is the human-readable column header.
	Title string
	// Type is the kind of data the column holds.
	Type ColumnType
	// Validators run, in order, against every proposed value for the column.
	Validators []*Validator
}

// Label returns the column title, falling back to BindTo.
func (c *Column) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.BindTo
}

// Row identifies a position in the grid.
type Row struct {
	Index int
}

// Cell is the value stored at a (column, row) position.
type Cell struct {
	Column *Column
	Row    *Row
	Value  Value
}

// FindCell returns the cell at the given column and row indexes.
func FindCell(cells []Cell, column, row int) (Cell, bool) {
	for _, c := range cells {
		if c.Column != nil && c.Row != nil && c.Column.Index == column && c.Row.Index == row {
			return c, true
		}
	}
	return Cell{}, false
}
