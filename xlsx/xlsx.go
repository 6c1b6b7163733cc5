// Package xlsx implements the odf.Document writer contract on top of a
// unioffice spreadsheet workbook. ODF style definitions are interpreted down
// to the property subset Excel styles can carry: bold, horizontal alignment,
// background color, cell borders, number formats, row heights and column
// widths.
package xlsx

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/odsgen/odf"
)

// Document is an xlsx workbook under construction.
type Document struct {
	wb         *spreadsheet.Workbook
	styles     map[string]*odf.Style
	cellStyles map[string]spreadsheet.CellStyle
	autoSeq    int
}

// New returns an empty workbook document.
func New() *Document {
	return &Document{
		wb:         spreadsheet.New(),
		styles:     map[string]*odf.Style{},
		cellStyles: map[string]spreadsheet.CellStyle{},
	}
}

// AddTable appends a named sheet.
func (d *Document) AddTable(name string) odf.Table {
	sheet := d.wb.AddSheet()
	sheet.SetName(name)
	return &Table{doc: d, sheet: sheet}
}

// InsertStyle registers an ODF style definition with the workbook. The
// definition is kept and interpreted lazily, once a cell, row or column
// first uses it; dependency styles (number formats) may arrive after their
// referrer. Returns the canonical name, generating one when absent.
func (d *Document) InsertStyle(s *odf.Style, automatic bool) (string, error) {
	if s == nil {
		return "", fmt.Errorf("insert style: nil style")
	}
	name := s.Name()
	if name == "" {
		d.autoSeq++
		name = fmt.Sprintf("auto%d", d.autoSeq)
		s.SetName(name)
	}
	if _, ok := d.styles[name]; !ok {
		d.styles[name] = s
	}
	return name, nil
}

// Save writes the workbook.
func (d *Document) Save(w io.Writer) error {
	return d.wb.Save(w)
}

// Workbook exposes the underlying workbook, mainly for tests.
func (d *Document) Workbook() *spreadsheet.Workbook { return d.wb }

// cellStyle resolves a named ODF style into a workbook cell style, building
// and caching it on first use.
func (d *Document) cellStyle(name string) (spreadsheet.CellStyle, bool) {
	if cs, ok := d.cellStyles[name]; ok {
		return cs, true
	}
	st, ok := d.styles[name]
	if !ok || st.Family() != odf.FamilyTableCell {
		return spreadsheet.CellStyle{}, false
	}
	cs := d.buildCellStyle(st)
	d.cellStyles[name] = cs
	return cs, true
}
