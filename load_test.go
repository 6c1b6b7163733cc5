package odsgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	content, err := Decode([]byte(`[[["a", 1, 1.5, null]]]`))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(
		[]any{[]any{[]any{"a", 1, 1.5, nil}}},
		content,
	))
}

func TestDecodeYAML(t *testing.T) {
	content, err := Decode([]byte(`
- name: first tab
  table:
    - row: [a, b]
      style: bold
`))
	require.NoError(t, err)
	tab, ok := content.([]any)[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "first tab", tab["name"])
}

func TestDecodeKeepsNumberKinds(t *testing.T) {
	content, err := Decode([]byte(`[10, 10.0, "10"]`))
	require.NoError(t, err)
	vals := content.([]any)
	require.Equal(t, kindInt, kindOf(vals[0]))
	require.Equal(t, kindFloat, kindOf(vals[1]))
	require.Equal(t, kindString, kindOf(vals[2]))
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte("{unterminated: ["))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[["a"]]]`), 0o644))
	content, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, content, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
