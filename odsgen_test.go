package odsgen

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/odsgen/ods"
)

func buildODS(t *testing.T, content any) *ods.Document {
	t.Helper()
	doc := ods.New()
	require.NoError(t, Build(content, doc))
	return doc
}

func autoStyleNames(doc *ods.Document) []string {
	var names []string
	for _, s := range doc.AutomaticStyles() {
		names = append(names, s.Name())
	}
	return names
}

func TestMinimalRoundTrip(t *testing.T) {
	doc := buildODS(t, []any{[]any{
		[]any{"a", "b", "c"},
		[]any{10, 20, 30},
	}})
	tables := doc.Tables()
	require.Len(t, tables, 1)
	require.Equal(t, "Tab 1", tables[0].Name())
	rows := tables[0].Rows()
	require.Len(t, rows, 2)
	require.Empty(t, cmp.Diff([]any{"a", "b", "c"}, rows[0].Values()))
	require.Empty(t, cmp.Diff([]any{10, 20, 30}, rows[1].Values()))
}

func TestDefaultTabNamesAreOrdinal(t *testing.T) {
	doc := buildODS(t, []any{
		[]any{},
		map[string]any{"name": "named", "table": []any{}},
		[]any{},
	})
	tables := doc.Tables()
	require.Len(t, tables, 3)
	require.Equal(t, "Tab 1", tables[0].Name())
	require.Equal(t, "named", tables[1].Name())
	require.Equal(t, "Tab 3", tables[2].Name())
}

func TestValueKindDefaultStyles(t *testing.T) {
	doc := buildODS(t, []any{[]any{
		[]any{"s", 1, 1.5, nil, true},
	}})
	cells := doc.Tables()[0].Rows()[0].Cells()
	require.Equal(t, "left", cells[0].Style)  // string
	require.Equal(t, "right", cells[1].Style) // int
	require.Equal(t, "right", cells[2].Style) // float
	require.Equal(t, "left", cells[3].Style)  // null
	require.Equal(t, "left", cells[4].Style)  // other
}

func TestExplicitCellStyleBeatsKindDefault(t *testing.T) {
	doc := buildODS(t, []any{[]any{
		[]any{map[string]any{"value": 10, "style": "bold_center"}},
	}})
	cell := doc.Tables()[0].Rows()[0].Cells()[0]
	require.Equal(t, "bold_center", cell.Style)
}

func TestDefaultsOverride(t *testing.T) {
	doc := buildODS(t, map[string]any{
		"body":     []any{[]any{[]any{10}}},
		"defaults": map[string]any{"style_int": "bold"},
	})
	cell := doc.Tables()[0].Rows()[0].Cells()[0]
	require.Equal(t, "bold", cell.Style)
}

func TestRowStyleCascade(t *testing.T) {
	// bold_center is cell family, so it must not become the row's own style,
	// while table_row_1cm from the same list must. Cells inherit bold_center
	// as their seed.
	doc := buildODS(t, []any{map[string]any{
		"name": "first tab",
		"table": []any{
			map[string]any{
				"row":   []any{"a", "b"},
				"style": []any{"bold_center", "table_row_1cm"},
			},
			[]any{"c"},
		},
	}})
	table := doc.Tables()[0]
	require.Equal(t, "first tab", table.Name())
	styled := table.Rows()[0]
	require.Equal(t, "table_row_1cm", styled.Style())
	for _, c := range styled.Cells() {
		require.Equal(t, "bold_center", c.Style)
	}
	// the second row falls back to the built-in row default and cell kinds
	plain := table.Rows()[1]
	require.Equal(t, "default_table_row", plain.Style())
	require.Equal(t, "left", plain.Cells()[0].Style)
}

func TestTabCellStyleSeedsAllRows(t *testing.T) {
	doc := buildODS(t, []any{map[string]any{
		"style": "cell_decimal2",
		"table": []any{[]any{1.5, "x"}},
	}})
	cells := doc.Tables()[0].Rows()[0].Cells()
	require.Equal(t, "cell_decimal2", cells[0].Style)
	require.Equal(t, "cell_decimal2", cells[1].Style)
	// the data-style dependency was inserted exactly once
	require.Contains(t, autoStyleNames(doc), "decimal2")
}

func TestCellOptionsCarried(t *testing.T) {
	doc := buildODS(t, []any{[]any{[]any{
		map[string]any{
			"value":   3.14,
			"text":    "3,14",
			"formula": "of:=PI()",
			"attr":    map[string]any{"office:protected": true},
		},
	}}})
	cell := doc.Tables()[0].Rows()[0].Cells()[0]
	require.Equal(t, 3.14, cell.Value)
	require.Equal(t, "3,14", cell.Text)
	require.Equal(t, "of:=PI()", cell.Formula)
	require.Equal(t, map[string]string{"office:protected": "true"}, cell.Attrs)
}

func TestSpannedCells(t *testing.T) {
	doc := buildODS(t, []any{[]any{
		[]any{"a", "b", "c", "d"},
		[]any{"x", "y", map[string]any{"value": 1, "colspanned": 2, "rowspanned": 1}},
	}})
	rows := doc.Tables()[0].Rows()
	master := rows[1].Cells()[2]
	require.Equal(t, 2, master.ColSpan)
	require.Equal(t, 1, master.RowSpan)
	require.True(t, rows[1].Cells()[3].Covered)
	// row 0 is untouched
	for _, c := range rows[0].Cells() {
		require.Equal(t, 1, c.ColSpan)
		require.False(t, c.Covered)
	}
}

func TestUnitSpanIsNoOp(t *testing.T) {
	doc := buildODS(t, []any{[]any{
		[]any{map[string]any{"value": 1, "colspanned": 1, "rowspanned": 1}},
	}})
	cell := doc.Tables()[0].Rows()[0].Cells()[0]
	require.Equal(t, 1, cell.ColSpan)
	require.Equal(t, 1, cell.RowSpan)
	require.False(t, cell.Covered)
}

func TestExplicitSpanOption(t *testing.T) {
	doc := buildODS(t, []any{map[string]any{
		"table": []any{
			[]any{"a", "b"},
			[]any{"c", "d"},
		},
		"span": "A1:B2",
	}})
	rows := doc.Tables()[0].Rows()
	require.Equal(t, 2, rows[0].Cells()[0].ColSpan)
	require.Equal(t, 2, rows[0].Cells()[0].RowSpan)
	require.True(t, rows[1].Cells()[1].Covered)
}

func TestExplicitSpanRectAndCellSpansCombine(t *testing.T) {
	doc := buildODS(t, []any{map[string]any{
		"table": []any{
			[]any{"a", "b", "c"},
			[]any{map[string]any{"value": 1, "rowspanned": 2}},
			[]any{"x"},
		},
		"span": []any{[]any{1, 0, 2, 0}},
	}})
	rows := doc.Tables()[0].Rows()
	require.Equal(t, 2, rows[0].Cells()[1].ColSpan)
	require.True(t, rows[0].Cells()[2].Covered)
	require.Equal(t, 2, rows[1].Cells()[0].RowSpan)
	require.True(t, rows[2].Cells()[0].Covered)
}

func TestWidthPerColumn(t *testing.T) {
	doc := buildODS(t, []any{map[string]any{
		"table": []any{[]any{"a", "b", "c"}},
		"width": []any{"10mm", nil, "25mm"},
	}})
	styles := doc.Tables()[0].ColumnStyles()
	require.Len(t, styles, 3)
	require.NotEmpty(t, styles[0])
	require.Empty(t, styles[1])
	require.NotEmpty(t, styles[2])
	require.NotEqual(t, styles[0], styles[2])
}

func TestWidthUniformSharesOneStyle(t *testing.T) {
	doc := buildODS(t, []any{map[string]any{
		"table": []any{[]any{"a", "b", "c"}},
		"width": "10mm",
	}})
	styles := doc.Tables()[0].ColumnStyles()
	require.Len(t, styles, 3)
	require.Equal(t, styles[0], styles[1])
	require.Equal(t, styles[1], styles[2])

	count := 0
	for _, s := range doc.AutomaticStyles() {
		if s.Family() == "table-column" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestUserStylesAlwaysInserted(t *testing.T) {
	doc := buildODS(t, map[string]any{
		"body": []any{},
		"styles": []any{map[string]any{
			"name":       "mine",
			"definition": `<style:style style:family="table-cell"/>`,
		}},
	})
	require.Contains(t, autoStyleNames(doc), "mine")
}

func TestMalformedUserStyleFails(t *testing.T) {
	err := Build(map[string]any{
		"body":   []any{},
		"styles": []any{map[string]any{"name": "bad", "definition": "<nope"}},
	}, ods.New())
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad")
}

func TestShapeMismatchFails(t *testing.T) {
	require.ErrorIs(t, Build("scalar", ods.New()), ErrShape)
	require.ErrorIs(t, Build([]any{[]any{"row-is-scalar"}}, ods.New()), ErrShape)
}

func TestBytesProducesPackage(t *testing.T) {
	raw, err := Bytes([]any{[]any{[]any{"a", "b", "c"}, []any{10, 20, 30}}})
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	require.Equal(t, "mimetype", zr.File[0].Name)
}
