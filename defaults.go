package odsgen

// Defaults is the per-parse record of default style names. The zero level of
// the cascade: tab seeds start from StyleTableRow/StyleTableCell, and cells
// without an inherited seed fall back to the per-kind entries.
type Defaults struct {
	StyleTableRow  string
	StyleTableCell string
	StyleStr       string
	StyleInt       string
	StyleFloat     string
	StyleOther     string
}

func builtinDefaults() Defaults {
	return Defaults{
		StyleTableRow:  "default_table_row",
		StyleTableCell: "",
		StyleStr:       "left",
		StyleInt:       "right",
		StyleFloat:     "right",
		StyleOther:     "left",
	}
}

// apply overrides the record per-key from a document-level "defaults" option.
// Called once, before any tab is processed.
func (d *Defaults) apply(opt any) {
	m, ok := opt.(map[string]any)
	if !ok {
		return
	}
	set := func(key string, dst *string) {
		if v, ok := m[key].(string); ok {
			*dst = v
		}
	}
	set("style_table_row", &d.StyleTableRow)
	set("style_table_cell", &d.StyleTableCell)
	set("style_str", &d.StyleStr)
	set("style_int", &d.StyleInt)
	set("style_float", &d.StyleFloat)
	set("style_other", &d.StyleOther)
}

// styleFor returns the default style name for a cell value kind. Null values
// share the string default.
func (d *Defaults) styleFor(k valueKind) string {
	switch k {
	case kindNull, kindString:
		return d.StyleStr
	case kindInt:
		return d.StyleInt
	case kindFloat:
		return d.StyleFloat
	default:
		return d.StyleOther
	}
}
