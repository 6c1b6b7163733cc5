package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/odsgen/odf"
)

// Table wraps one sheet.
type Table struct {
	doc     *Document
	sheet   spreadsheet.Sheet
	rows    int
	maxCols int
}

// AddRow appends a row, applying a row-style height when the named style
// carries one.
func (t *Table) AddRow(styleName string) odf.Row {
	row := t.sheet.AddRow()
	y := t.rows
	t.rows++
	if st, ok := t.doc.styles[styleName]; ok {
		if h := st.Property("style:table-row-properties", "style:row-height"); h != "" {
			if dist, ok := parseDistance(h); ok {
				row.SetHeight(dist)
			}
		}
	}
	return &Row{table: t, row: row, y: y}
}

// ColumnCount is the width of the widest appended row.
func (t *Table) ColumnCount() int { return t.maxCols }

// SetColumnStyle applies the column-width property of the named style to the
// column at pos. Other column properties have no xlsx equivalent here.
func (t *Table) SetColumnStyle(pos int, styleName string) {
	st, ok := t.doc.styles[styleName]
	if !ok || pos < 0 {
		return
	}
	w := st.Property("style:table-column-properties", "style:column-width")
	if dist, ok := parseDistance(w); ok {
		t.sheet.Column(uint32(pos + 1)).SetWidth(dist)
	}
	if pos+1 > t.maxCols {
		t.maxCols = pos + 1
	}
}

// SetSpan merges the cells covered by the region.
func (t *Table) SetSpan(sp odf.Span) error {
	if !sp.Valid() {
		return fmt.Errorf("invalid span %s", sp)
	}
	t.sheet.AddMergedCells(odf.CellRef(sp.X0, sp.Y0), odf.CellRef(sp.X1, sp.Y1))
	return nil
}

// Row wraps one sheet row.
type Row struct {
	table *Table
	row   spreadsheet.Row
	x     int
	y     int
}

// AddCell appends a cell and returns its (column, row) coordinate.
func (r *Row) AddCell(c odf.Cell) (int, int) {
	cell := r.row.AddCell()
	x := r.x
	r.x++
	if r.x > r.table.maxCols {
		r.table.maxCols = r.x
	}
	switch v := c.Value.(type) {
	case nil:
		if c.Text != "" {
			cell.SetString(c.Text)
		}
	case string:
		cell.SetString(v)
	case bool:
		cell.SetBool(v)
	case int:
		cell.SetNumber(float64(v))
	case int64:
		cell.SetNumber(float64(v))
	case uint64:
		cell.SetNumber(float64(v))
	case float64:
		cell.SetNumber(v)
	case float32:
		cell.SetNumber(float64(v))
	default:
		cell.SetString(fmt.Sprint(v))
	}
	if c.Formula != "" {
		cell.SetFormulaRaw(c.Formula)
	}
	if cs, ok := r.table.doc.cellStyle(c.Style); ok {
		cell.SetStyle(cs)
	}
	return x, r.y
}
