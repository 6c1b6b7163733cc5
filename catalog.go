package odsgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aerissecure/odsgen/odf"
)

// ErrCyclicStyle reports a dependency cycle between named styles, e.g. a
// style whose data-style references a style that points back at it.
var ErrCyclicStyle = errors.New("cyclic style dependency")

// styleCatalog holds the named style definitions of one parse and tracks
// which of them already reached the output document. One catalog per parse;
// it is not safe to share across documents.
type styleCatalog struct {
	doc       odf.Document
	styles    map[string]*odf.Style
	used      map[string]bool
	inserting map[string]bool
}

func newStyleCatalog(doc odf.Document) *styleCatalog {
	return &styleCatalog{
		doc:       doc,
		styles:    map[string]*odf.Style{},
		used:      map[string]bool{},
		inserting: map[string]bool{},
	}
}

// define parses a style definition and stores it under its name. An explicit
// name overrides the one encoded in the markup; redefinition silently
// replaces. A definition that does not parse is fatal for the whole parse.
func (c *styleCatalog) define(name, definition string) (string, error) {
	st, err := odf.ParseStyle(definition)
	if err != nil {
		return "", fmt.Errorf("style %q: %w (definition: %s)", name, err, strings.TrimSpace(definition))
	}
	if name != "" {
		st.SetName(name)
	} else {
		name = st.Name()
	}
	c.styles[name] = st
	return name, nil
}

// guessStyle resolves the style for one cascade slot. The "style" option may
// be a single name or a list; the first name whose catalog entry matches the
// family wins. The fallback applies only if it also matches. Unknown names
// and family mismatches resolve to none, never to an error.
func (c *styleCatalog) guessStyle(opt map[string]any, family, fallback string) string {
	names, ok := opt["style"].([]any)
	if !ok {
		names = []any{opt["style"]}
	}
	for _, n := range names {
		name, _ := n.(string)
		if name == "" {
			continue
		}
		if st, ok := c.styles[name]; ok && st.Family() == family {
			return name
		}
	}
	if fallback != "" {
		if st, ok := c.styles[fallback]; ok && st.Family() == family {
			return fallback
		}
	}
	return ""
}

// insertStyle hands the named style to the document writer once, then walks
// every attribute whose key ends in "style-name" and inserts the referenced
// styles the same way. Empty, unknown and already inserted names are no-ops.
// A reference chain that loops back onto a style still being inserted fails.
func (c *styleCatalog) insertStyle(name string, automatic bool) error {
	if name == "" || c.used[name] {
		return nil
	}
	st, ok := c.styles[name]
	if !ok {
		return nil
	}
	if c.inserting[name] {
		return fmt.Errorf("%w: %s", ErrCyclicStyle, name)
	}
	c.inserting[name] = true
	defer delete(c.inserting, name)
	if _, err := c.doc.InsertStyle(st, automatic); err != nil {
		return fmt.Errorf("insert style %q: %w", name, err)
	}
	for _, a := range st.Attributes() {
		if strings.HasSuffix(a.Key, "style-name") {
			if err := c.insertStyle(a.Value, automatic); err != nil {
				return err
			}
		}
	}
	c.used[name] = true
	return nil
}
