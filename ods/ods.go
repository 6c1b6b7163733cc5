// Package ods implements the odf.Document writer contract with a native
// OpenDocument Spreadsheet serializer: an in-memory document model packaged
// as a zip archive with content.xml, styles.xml, meta.xml and a manifest.
package ods

import (
	"fmt"

	"github.com/aerissecure/odsgen/odf"
)

const mimetype = "application/vnd.oasis.opendocument.spreadsheet"

// Document is an in-memory ODS document under construction.
type Document struct {
	tables    []*Table
	automatic []*odf.Style
	common    []*odf.Style
	inserted  map[string]bool
	autoSeq   int
}

// New returns an empty spreadsheet document.
func New() *Document {
	return &Document{inserted: map[string]bool{}}
}

// AddTable appends a named tab.
func (d *Document) AddTable(name string) odf.Table {
	t := &Table{name: name}
	d.tables = append(d.tables, t)
	return t
}

// InsertStyle adds a style definition to the document. Automatic styles land
// in the content automatic-styles section, others in the styles part.
// Anonymous definitions get a generated name. Returns the canonical name.
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
	if d.inserted[name] {
		return name, nil
	}
	d.inserted[name] = true
	if automatic {
		d.automatic = append(d.automatic, s)
	} else {
		d.common = append(d.common, s)
	}
	return name, nil
}

// Tables returns the appended tabs in order.
func (d *Document) Tables() []*Table { return d.tables }

// AutomaticStyles returns the styles inserted with automatic=true, in
// insertion order.
func (d *Document) AutomaticStyles() []*odf.Style { return d.automatic }

// CommonStyles returns the user-visible styles, in insertion order.
func (d *Document) CommonStyles() []*odf.Style { return d.common }
