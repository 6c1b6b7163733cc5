package ods

import (
	"fmt"

	"github.com/aerissecure/odsgen/odf"
)

// Cell is a materialized cell. ColSpan/RowSpan are 1 unless a merge region
// was applied with this cell as its top-left corner; Covered marks cells
// hidden under another cell's span.
type Cell struct {
	odf.Cell
	ColSpan int
	RowSpan int
	Covered bool
}

// Row is a materialized row.
type Row struct {
	style string
	y     int
	cells []*Cell
}

// AddCell appends a cell and returns its (column, row) coordinate.
func (r *Row) AddCell(c odf.Cell) (int, int) {
	cell := &Cell{Cell: c, ColSpan: 1, RowSpan: 1}
	r.cells = append(r.cells, cell)
	return len(r.cells) - 1, r.y
}

// Style returns the row style name, "" for none.
func (r *Row) Style() string { return r.style }

// Cells returns the appended cells in order.
func (r *Row) Cells() []*Cell { return r.cells }

// Values returns the raw cell values in order, for inspection.
func (r *Row) Values() []any {
	vals := make([]any, len(r.cells))
	for i, c := range r.cells {
		vals[i] = c.Value
	}
	return vals
}

// Table is a materialized tab.
type Table struct {
	name      string
	rows      []*Row
	colStyles []string
}

// AddRow appends a row with an optional style name.
func (t *Table) AddRow(styleName string) odf.Row {
	r := &Row{style: styleName, y: len(t.rows)}
	t.rows = append(t.rows, r)
	return r
}

// ColumnCount is the width of the widest row, or the number of styled
// columns if larger.
func (t *Table) ColumnCount() int {
	n := len(t.colStyles)
	for _, r := range t.rows {
		if len(r.cells) > n {
			n = len(r.cells)
		}
	}
	return n
}

// SetColumnStyle assigns a column style at pos, growing the column list.
func (t *Table) SetColumnStyle(pos int, styleName string) {
	if pos < 0 {
		return
	}
	for len(t.colStyles) <= pos {
		t.colStyles = append(t.colStyles, "")
	}
	t.colStyles[pos] = styleName
}

// SetSpan merges the region: the top-left cell absorbs the span counts and
// every other covered cell is marked covered. Rows and cells are extended
// when the region reaches past the appended content.
func (t *Table) SetSpan(sp odf.Span) error {
	if !sp.Valid() {
		return fmt.Errorf("invalid span %s", sp)
	}
	for len(t.rows) <= sp.Y1 {
		t.AddRow("")
	}
	for y := sp.Y0; y <= sp.Y1; y++ {
		row := t.rows[y]
		for len(row.cells) <= sp.X1 {
			row.AddCell(odf.Cell{})
		}
		for x := sp.X0; x <= sp.X1; x++ {
			if x == sp.X0 && y == sp.Y0 {
				continue
			}
			row.cells[x].Covered = true
		}
	}
	master := t.rows[sp.Y0].cells[sp.X0]
	master.ColSpan = sp.X1 - sp.X0 + 1
	master.RowSpan = sp.Y1 - sp.Y0 + 1
	return nil
}

// Name returns the tab name.
func (t *Table) Name() string { return t.name }

// Rows returns the appended rows in order.
func (t *Table) Rows() []*Row { return t.rows }

// ColumnStyles returns the per-position column style names.
func (t *Table) ColumnStyles() []string { return t.colStyles }
