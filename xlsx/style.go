package xlsx

import (
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/odsgen/odf"
)

// buildCellStyle maps the supported subset of an ODF table-cell style onto a
// workbook cell style.
func (d *Document) buildCellStyle(st *odf.Style) spreadsheet.CellStyle {
	cs := d.wb.StyleSheet.AddCellStyle()

	if st.Property("style:text-properties", "fo:font-weight") == "bold" {
		fnt := d.wb.StyleSheet.AddFont()
		fnt.SetBold(true)
		cs.SetFont(fnt)
	}

	switch st.Property("style:paragraph-properties", "fo:text-align") {
	case "start":
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentLeft)
	case "end":
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentRight)
	case "center":
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentCenter)
	case "justify":
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentJustify)
	}

	if bg := st.Property("style:table-cell-properties", "fo:background-color"); bg != "" && bg != "transparent" {
		if c, ok := hexColor(bg); ok {
			fill := d.wb.StyleSheet.Fills().AddFill()
			pf := fill.SetPatternFill()
			pf.SetFgColor(c)
			cs.SetFill(fill)
		}
	}

	if border := st.Property("style:table-cell-properties", "fo:border"); border != "" && border != "none" {
		b := d.wb.StyleSheet.AddBorder()
		b.SetLeft(sml.ST_BorderStyleThin, color.Black)
		b.SetRight(sml.ST_BorderStyleThin, color.Black)
		b.SetTop(sml.ST_BorderStyleThin, color.Black)
		b.SetBottom(sml.ST_BorderStyleThin, color.Black)
		cs.SetBorder(b)
	}

	if ref := st.Element().Attr("style:data-style-name"); ref != "" {
		if format := d.numberFormat(ref); format != "" {
			cs.SetNumberFormat(format)
		}
	}
	return cs
}

// numberFormat renders a referenced ODF number style as an Excel format
// string, e.g. decimal-places=2 becomes "0.00".
func (d *Document) numberFormat(name string) string {
	st, ok := d.styles[name]
	if !ok {
		return ""
	}
	num := st.Element().Child("number:number")
	if num == nil {
		return ""
	}
	format := "0"
	if num.Attr("number:min-integer-digits") == "0" {
		format = "#"
	}
	if places, err := strconv.Atoi(num.Attr("number:decimal-places")); err == nil && places > 0 {
		format += "." + strings.Repeat("0", places)
	}
	return format
}

// hexColor parses "#rrggbb" into a workbook color.
func hexColor(s string) (color.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Color{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Color{}, false
	}
	return color.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), true
}

// parseDistance converts an ODF length string ("4.52mm", "1cm", "0.06pt",
// "1in") into a workbook distance.
func parseDistance(s string) (measurement.Distance, bool) {
	units := []struct {
		suffix string
		unit   measurement.Distance
	}{
		{"mm", measurement.Millimeter},
		{"cm", measurement.Centimeter},
		{"in", measurement.Inch},
		{"pt", measurement.Point},
		{"px", measurement.Pixel72},
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
			if err != nil {
				return 0, false
			}
			return measurement.Distance(v) * u.unit, true
		}
	}
	return 0, false
}
