package ods

import (
	"archive/zip"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/aerissecure/odsgen/odf"
	"github.com/aerissecure/odsgen/version"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Namespace declarations for the document parts. Style fragments reference
// these prefixes without declaring them, so the roots must bind them all.
var contentNS = []string{
	"xmlns:office", "urn:oasis:names:tc:opendocument:xmlns:office:1.0",
	"xmlns:style", "urn:oasis:names:tc:opendocument:xmlns:style:1.0",
	"xmlns:text", "urn:oasis:names:tc:opendocument:xmlns:text:1.0",
	"xmlns:table", "urn:oasis:names:tc:opendocument:xmlns:table:1.0",
	"xmlns:fo", "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0",
	"xmlns:number", "urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0",
	"xmlns:svg", "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0",
	"xmlns:loext", "urn:org:documentfoundation:names:experimental:office:xmlns:loext:1.0",
	"xmlns:calcext", "urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0",
	"xmlns:meta", "urn:oasis:names:tc:opendocument:xmlns:meta:1.0",
	"xmlns:dc", "http://purl.org/dc/elements/1.1/",
	"office:version", "1.2",
}

// Save packages the document. The mimetype entry must come first and be
// stored uncompressed so format sniffers can read it from a fixed offset.
func (d *Document) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("write mimetype: %w", err)
	}
	if _, err := mt.Write([]byte(mimetype)); err != nil {
		return fmt.Errorf("write mimetype: %w", err)
	}
	parts := []struct {
		name string
		body string
	}{
		{"META-INF/manifest.xml", manifestXML()},
		{"content.xml", d.contentXML()},
		{"styles.xml", d.stylesXML()},
		{"meta.xml", metaXML()},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(xmlHeader + p.body)); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func (d *Document) contentXML() string {
	root := odf.NewElement("office:document-content", contentNS...)
	auto := root.Append(odf.NewElement("office:automatic-styles"))
	for _, s := range d.automatic {
		auto.Append(s.Element())
	}
	sheet := root.Append(odf.NewElement("office:body")).Append(odf.NewElement("office:spreadsheet"))
	for _, t := range d.tables {
		sheet.Append(t.element())
	}
	return root.XML()
}

func (d *Document) stylesXML() string {
	root := odf.NewElement("office:document-styles", contentNS...)
	styles := root.Append(odf.NewElement("office:styles"))
	for _, s := range d.common {
		styles.Append(s.Element())
	}
	return root.XML()
}

func metaXML() string {
	root := odf.NewElement("office:document-meta", contentNS...)
	meta := root.Append(odf.NewElement("office:meta"))
	gen := meta.Append(odf.NewElement("meta:generator"))
	gen.Text = "odsgen/" + version.Version
	return root.XML()
}

func manifestXML() string {
	const ns = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	root := odf.NewElement("manifest:manifest", "xmlns:manifest", ns, "manifest:version", "1.2")
	entry := func(path, media string) {
		root.Append(odf.NewElement("manifest:file-entry",
			"manifest:full-path", path, "manifest:media-type", media))
	}
	entry("/", mimetype)
	entry("content.xml", "text/xml")
	entry("styles.xml", "text/xml")
	entry("meta.xml", "text/xml")
	return root.XML()
}

func (t *Table) element() *odf.Element {
	el := odf.NewElement("table:table", "table:name", t.name)
	cols := t.ColumnCount()
	if cols == 0 {
		cols = 1
	}
	for i := 0; i < cols; i++ {
		col := el.Append(odf.NewElement("table:table-column"))
		if i < len(t.colStyles) && t.colStyles[i] != "" {
			col.SetAttr("table:style-name", t.colStyles[i])
		}
	}
	for _, r := range t.rows {
		el.Append(r.element())
	}
	return el
}

func (r *Row) element() *odf.Element {
	el := odf.NewElement("table:table-row")
	if r.style != "" {
		el.SetAttr("table:style-name", r.style)
	}
	for _, c := range r.cells {
		el.Append(c.element())
	}
	return el
}

func (c *Cell) element() *odf.Element {
	if c.Covered {
		return odf.NewElement("table:covered-table-cell")
	}
	el := odf.NewElement("table:table-cell")
	if c.Style != "" {
		el.SetAttr("table:style-name", c.Style)
	}
	valueType, valueAttr, display := formatValue(c.Value)
	if valueType != "" {
		el.SetAttr("office:value-type", valueType)
		el.SetAttr("calcext:value-type", valueType)
	}
	switch valueType {
	case "float":
		el.SetAttr("office:value", valueAttr)
	case "boolean":
		el.SetAttr("office:boolean-value", valueAttr)
	}
	if c.Formula != "" {
		el.SetAttr("table:formula", c.Formula)
	}
	if c.ColSpan > 1 {
		el.SetAttr("table:number-columns-spanned", strconv.Itoa(c.ColSpan))
	}
	if c.RowSpan > 1 {
		el.SetAttr("table:number-rows-spanned", strconv.Itoa(c.RowSpan))
	}
	for _, k := range slices.Sorted(maps.Keys(c.Attrs)) {
		el.SetAttr(k, c.Attrs[k])
	}
	if c.Text != "" {
		display = c.Text
	}
	if display != "" {
		p := el.Append(odf.NewElement("text:p"))
		p.Text = display
	}
	return el
}

// formatValue maps a decoded input value onto the ODF value type, the value
// attribute and the default display text.
func formatValue(v any) (valueType, valueAttr, display string) {
	switch t := v.(type) {
	case nil:
		return "", "", ""
	case string:
		return "string", "", t
	case bool:
		s := strconv.FormatBool(t)
		return "boolean", s, s
	case int:
		s := strconv.Itoa(t)
		return "float", s, s
	case int64:
		s := strconv.FormatInt(t, 10)
		return "float", s, s
	case uint64:
		s := strconv.FormatUint(t, 10)
		return "float", s, s
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return "float", s, s
	case float32:
		s := strconv.FormatFloat(float64(t), 'f', -1, 32)
		return "float", s, s
	default:
		return "string", "", fmt.Sprint(t)
	}
}
