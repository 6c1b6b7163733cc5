package odsgen

import (
	"fmt"

	"github.com/aerissecure/odsgen/odf"
)

// applyWidth maps the tab's "width" option onto column styles: a list styles
// each position with a non-empty width, a scalar styles every existing
// column with the same width.
func (b *builder) applyWidth(table odf.Table, opt any) error {
	switch v := opt.(type) {
	case nil:
		return nil
	case []any:
		for pos, item := range v {
			width := widthString(item)
			if width == "" {
				continue
			}
			name, err := b.columnWidthStyle(width)
			if err != nil {
				return err
			}
			table.SetColumnStyle(pos, name)
		}
		return nil
	default:
		width := widthString(v)
		if width == "" {
			return nil
		}
		name, err := b.columnWidthStyle(width)
		if err != nil {
			return err
		}
		for pos := 0; pos < table.ColumnCount(); pos++ {
			table.SetColumnStyle(pos, name)
		}
		return nil
	}
}

// columnWidthStyle synthesizes an anonymous table-column style for a width
// string and inserts it as automatic, once per distinct width per document.
// These styles never enter the named catalog.
func (b *builder) columnWidthStyle(width string) (string, error) {
	if name, ok := b.widthStyles[width]; ok {
		return name, nil
	}
	st, err := odf.ParseStyle(fmt.Sprintf(
		`<style:style style:family="table-column">
		<style:table-column-properties fo:break-before="auto"
		style:column-width="%s"/>
		</style:style>`, width))
	if err != nil {
		return "", fmt.Errorf("column width %q: %w", width, err)
	}
	name, err := b.doc.InsertStyle(st, true)
	if err != nil {
		return "", fmt.Errorf("column width %q: %w", width, err)
	}
	b.widthStyles[width] = name
	return name, nil
}

// widthString renders a width option value; numbers pass through as written.
func widthString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
