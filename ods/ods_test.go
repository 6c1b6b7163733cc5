package ods

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerissecure/odsgen/odf"
)

func TestAppendOrderCoordinates(t *testing.T) {
	doc := New()
	table := doc.AddTable("t")
	row := table.AddRow("")
	x, y := row.AddCell(odf.Cell{Value: "a"})
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	x, y = row.AddCell(odf.Cell{Value: "b"})
	require.Equal(t, 1, x)
	require.Equal(t, 0, y)
	row2 := table.AddRow("")
	x, y = row2.AddCell(odf.Cell{Value: "c"})
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)
}

func TestSetSpanMarksCoveredCells(t *testing.T) {
	doc := New()
	table := doc.AddTable("t").(*Table)
	row := table.AddRow("")
	row.AddCell(odf.Cell{Value: "m"})
	row.AddCell(odf.Cell{Value: "n"})

	require.NoError(t, table.SetSpan(odf.Span{X0: 0, Y0: 0, X1: 1, Y1: 1}))
	rows := table.Rows()
	require.Len(t, rows, 2) // second row created by the span
	master := rows[0].Cells()[0]
	require.Equal(t, 2, master.ColSpan)
	require.Equal(t, 2, master.RowSpan)
	require.True(t, rows[0].Cells()[1].Covered)
	require.True(t, rows[1].Cells()[0].Covered)
	require.True(t, rows[1].Cells()[1].Covered)

	require.Error(t, table.SetSpan(odf.Span{X0: 1, Y0: 0, X1: 0, Y1: 0}))
}

func TestInsertStyleNamesAndDeduplicates(t *testing.T) {
	doc := New()
	st, err := odf.ParseStyle(`<style:style style:family="table-column"/>`)
	require.NoError(t, err)
	name, err := doc.InsertStyle(st, true)
	require.NoError(t, err)
	require.NotEmpty(t, name)

	again, err := doc.InsertStyle(st, true)
	require.NoError(t, err)
	require.Equal(t, name, again)
	require.Len(t, doc.AutomaticStyles(), 1)

	named, err := odf.ParseStyle(`<style:style style:name="bold" style:family="table-cell"/>`)
	require.NoError(t, err)
	got, err := doc.InsertStyle(named, false)
	require.NoError(t, err)
	require.Equal(t, "bold", got)
	require.Len(t, doc.CommonStyles(), 1)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in        any
		valueType string
		value     string
	}{
		{nil, "", ""},
		{"x", "string", ""},
		{10, "float", "10"},
		{int64(-3), "float", "-3"},
		{10.5, "float", "10.5"},
		{true, "boolean", "true"},
		{[]any{1}, "string", ""},
	}
	for _, c := range cases {
		vt, va, _ := formatValue(c.in)
		require.Equal(t, c.valueType, vt, "value %v", c.in)
		require.Equal(t, c.value, va, "value %v", c.in)
	}
}

func TestSavePackage(t *testing.T) {
	doc := New()
	st, err := odf.ParseStyle(`<style:style style:name="left" style:family="table-cell"/>`)
	require.NoError(t, err)
	_, err = doc.InsertStyle(st, true)
	require.NoError(t, err)

	table := doc.AddTable("first tab").(*Table)
	row := table.AddRow("")
	row.AddCell(odf.Cell{Value: "hello & goodbye", Style: "left"})
	row.AddCell(odf.Cell{Value: 10.5, Text: "10,50", Formula: "of:=SUM([.A1:.B1])"})
	table.SetColumnStyle(0, "co1")

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Equal(t, "mimetype", zr.File[0].Name)
	require.Equal(t, zip.Store, zr.File[0].Method)

	content := readEntry(t, zr, "content.xml")
	require.Contains(t, content, `table:name="first tab"`)
	require.Contains(t, content, `office:value-type="float"`)
	require.Contains(t, content, `office:value="10.5"`)
	require.Contains(t, content, `table:formula="of:=SUM([.A1:.B1])"`)
	require.Contains(t, content, `<text:p>10,50</text:p>`)
	require.Contains(t, content, "hello &amp; goodbye")
	require.Contains(t, content, `table:style-name="co1"`)
	require.Contains(t, content, `style:name="left"`)

	for _, name := range []string{"META-INF/manifest.xml", "styles.xml", "meta.xml"} {
		require.NotEmpty(t, readEntry(t, zr, name))
	}
}

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("missing zip entry %s", name)
	return ""
}
