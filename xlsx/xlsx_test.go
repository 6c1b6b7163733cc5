package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerissecure/odsgen"
	"github.com/aerissecure/odsgen/xlsx"
)

func TestBuildWorkbook(t *testing.T) {
	doc := xlsx.New()
	err := odsgen.Build([]any{map[string]any{
		"name": "first tab",
		"table": []any{
			map[string]any{
				"row":   []any{"a", "b", "c"},
				"style": "bold_center_bg_gray_grid_06pt",
			},
			[]any{10, 20, 30.5},
		},
		"width": []any{"20mm", "20mm", "30mm"},
	}}, doc)
	require.NoError(t, err)

	sheets := doc.Workbook().Sheets()
	require.Len(t, sheets, 1)
	require.Equal(t, "first tab", sheets[0].Name())
	rows := sheets[0].Rows()
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Cells(), 3)
	require.Len(t, rows[1].Cells(), 3)
}

func TestMergedRegions(t *testing.T) {
	doc := xlsx.New()
	err := odsgen.Build([]any{map[string]any{
		"table": []any{
			[]any{map[string]any{"value": "wide", "colspanned": 2}, "x", "y"},
		},
	}}, doc)
	require.NoError(t, err)

	sheet := doc.Workbook().Sheets()[0]
	mc := sheet.X().MergeCells
	require.NotNil(t, mc)
	require.Len(t, mc.MergeCell, 1)
	require.Equal(t, "A1:B1", mc.MergeCell[0].RefAttr)
}

func TestSaveWritesWorkbook(t *testing.T) {
	doc := xlsx.New()
	require.NoError(t, odsgen.Build([]any{[]any{[]any{"a"}}}, doc))
	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))
	require.NotZero(t, buf.Len())
}
