package odf

import "io"

// Cell is the payload handed to a backend for a single cell append. Value
// keeps the decoded input type; the backend decides how to represent it.
type Cell struct {
	Value   any
	Text    string            // display text override
	Formula string            // opaque formula string, not evaluated
	Style   string            // resolved style name, "" for none
	Attrs   map[string]string // extra attributes applied verbatim
}

// Document is the writer contract the generator drives. Implementations are
// single-threaded and consume appends strictly in traversal order.
type Document interface {
	// AddTable appends a named tab and returns its writer.
	AddTable(name string) Table
	// InsertStyle inserts a style definition into the document and returns
	// its canonical name, generating one for anonymous definitions.
	// Automatic styles are internal to the rendered content; non-automatic
	// ones stay user visible.
	InsertStyle(s *Style, automatic bool) (string, error)
	// Save serializes the finished document.
	Save(w io.Writer) error
}

// Table is the per-tab writer.
type Table interface {
	// AddRow appends a row with an optional row style name.
	AddRow(styleName string) Row
	// ColumnCount returns the current number of columns, derived from the
	// widest appended row and any styled columns.
	ColumnCount() int
	// SetColumnStyle assigns a column-family style to the column at pos,
	// growing the column list as needed.
	SetColumnStyle(pos int, styleName string)
	// SetSpan merges the cells covered by the region.
	SetSpan(sp Span) error
}

// Row is the per-row writer. AddCell returns the appended cell's zero-based
// (column, row) coordinate.
type Row interface {
	AddCell(c Cell) (x, y int)
}
