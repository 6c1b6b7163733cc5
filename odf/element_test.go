package odf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseElementKeepsPrefixes(t *testing.T) {
	el, err := ParseElement(`<style:style style:family="table-cell">
		<style:text-properties fo:font-weight="bold"/>
		</style:style>`)
	require.NoError(t, err)
	require.Equal(t, "style:style", el.Tag)
	require.Equal(t, "table-cell", el.Attr("style:family"))
	require.Len(t, el.Children, 1)
	require.Equal(t, "style:text-properties", el.Children[0].Tag)
	require.Equal(t, "bold", el.Children[0].Attr("fo:font-weight"))
}

func TestParseElementErrors(t *testing.T) {
	_, err := ParseElement("")
	require.Error(t, err)
	_, err = ParseElement("<broken")
	require.Error(t, err)
	_, err = ParseElement("<a/><b/>")
	require.Error(t, err)
}

func TestElementXMLRoundTrip(t *testing.T) {
	el, err := ParseElement(`<number:number-style><number:number number:decimal-places="2"/></number:number-style>`)
	require.NoError(t, err)
	out := el.XML()
	again, err := ParseElement(out)
	require.NoError(t, err)
	require.Equal(t, el.Tag, again.Tag)
	require.Equal(t, "2", again.Children[0].Attr("number:decimal-places"))
}

func TestSetAttrReplaces(t *testing.T) {
	el := NewElement("style:style", "style:name", "old")
	el.SetAttr("style:name", "new")
	require.Equal(t, "new", el.Attr("style:name"))
	require.Len(t, el.Attrs, 1)
}

func TestElementXMLEscapesText(t *testing.T) {
	el := NewElement("text:p")
	el.Text = `a < b & "c"`
	require.Contains(t, el.XML(), "a &lt; b &amp;")
}
