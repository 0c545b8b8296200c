package gridfile

import (
	"context"
	"strconv"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
	"github.com/thoreinstein/gridcheck/internal/logging"
	"github.com/thoreinstein/gridcheck/pkg/fileutil"
)

// Sentinel errors for column declarations.
var (
	// ErrMissingBindTo is returned for a column without a bindTo field.
	ErrMissingBindTo = errors.New("column has no bindTo")

	// ErrUnknownColumnType is returned for a column type that is not one of
	// grid.ColumnTypes.
	ErrUnknownColumnType = errors.New("unknown column type")
)

// Grid is a loaded grid document.
type Grid struct {
	// Source is the path the grid was loaded from, if any.
	Source  string
	Columns []*grid.Column
	Rows    []*grid.Row
	// Cells holds one cell per (row, column), row-major.
	Cells []grid.Cell
}

// Load reads, decodes and builds the grid document at path.
// A nil registry means DefaultRegistry. Decode and build failures are
// marked with errors.ErrInvalidGrid.
func Load(ctx context.Context, path string, reg *Registry) (*Grid, error) {
	logger := logging.FromContext(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading grid %s", path)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decoding grid %s", path), errors.ErrInvalidGrid)
	}

	g, err := Build(doc, reg)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "building grid %s", path), errors.ErrInvalidGrid)
	}
	g.Source = path

	logger.Debug("loaded grid",
		"path", path,
		"format", format,
		"columns", len(g.Columns),
		"rows", len(g.Rows),
		"cells", len(g.Cells))

	return g, nil
}

// Build turns a decoded document into columns, rows and cells.
// A nil registry means DefaultRegistry.
func Build(doc *Document, reg *Registry) (*Grid, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	g := &Grid{
		Columns: make([]*grid.Column, 0, len(doc.Columns)),
		Rows:    make([]*grid.Row, 0, len(doc.Rows)),
		Cells:   make([]grid.Cell, 0, len(doc.Columns)*len(doc.Rows)),
	}

	for i, spec := range doc.Columns {
		col, err := buildColumn(i, spec, reg)
		if err != nil {
			return nil, err
		}
		g.Columns = append(g.Columns, col)
	}

	for i, values := range doc.Rows {
		row := &grid.Row{Index: i}
		g.Rows = append(g.Rows, row)
		for _, col := range g.Columns {
			g.Cells = append(g.Cells, grid.Cell{
				Column: col,
				Row:    row,
				Value:  normalize(values[col.BindTo]),
			})
		}
	}

	return g, nil
}

func buildColumn(index int, spec ColumnSpec, reg *Registry) (*grid.Column, error) {
	if spec.BindTo == "" {
		return nil, errors.Wrapf(ErrMissingBindTo, "column %d", index)
	}

	colType := grid.ColumnTypeText
	if spec.Type != "" {
		t, ok := grid.ParseColumnType(spec.Type)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumnType, "column %q: %q", spec.BindTo, spec.Type)
		}
		colType = t
	}

	col := &grid.Column{
		Index:      index,
		BindTo:     spec.BindTo,
		Title:      spec.Title,
		Type:       colType,
		Validators: make([]*grid.Validator, 0, len(spec.Validators)),
	}

	for j, vs := range spec.Validators {
		v, err := reg.Build(vs)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q validator %d", spec.BindTo, j)
		}
		col.Validators = append(col.Validators, v)
	}

	return col, nil
}

// Column resolves ref to a column. ref is matched against BindTo first,
// then parsed as a column index.
func (g *Grid) Column(ref string) (*grid.Column, error) {
	for _, c := range g.Columns {
		if c.BindTo == ref {
			return c, nil
		}
	}
	if i, err := strconv.Atoi(ref); err == nil && i >= 0 && i < len(g.Columns) {
		return g.Columns[i], nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "column %q", ref)
}

// Cell returns the stored cell of column at row.
func (g *Grid) Cell(column *grid.Column, row int) (grid.Cell, error) {
	cell, ok := grid.FindCell(g.Cells, column.Index, row)
	if !ok {
		return grid.Cell{}, errors.Wrapf(errors.ErrNotFound, "cell %s row %d", column.BindTo, row)
	}
	return cell, nil
}
