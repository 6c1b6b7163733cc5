// Package odf holds the pieces shared between the description parser and the
// document backends: a minimal ODF XML element tree, the style wrapper built
// on it, merge regions, and the writer contract that backends implement.
package odf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attr is a single prefixed XML attribute, e.g. {"style:family", "table-cell"}.
type Attr struct {
	Key   string
	Value string
}

// Element is a generic XML element with prefixed names kept verbatim.
// encoding/xml resolves namespace prefixes against declarations, but ODF
// style fragments are written without xmlns bindings, so we keep the prefix
// as part of the name and emit it back unchanged.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// ParseElement parses a single XML fragment into an Element tree.
func ParseElement(markup string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse element: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: tokenName(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Key: tokenName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse element: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parse element: unbalanced end tag %s", tokenName(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				if s := strings.TrimSpace(string(t)); s != "" {
					stack[len(stack)-1].Text += s
				}
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parse element: empty markup")
	}
	return root, nil
}

func tokenName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// Child returns the first direct child with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Append adds a child element and returns it, for chained tree building.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// NewElement builds an element from a prefixed tag and alternating key/value
// attribute pairs.
func NewElement(tag string, kv ...string) *Element {
	el := &Element{Tag: tag}
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return el
}

// XML serializes the element tree. Prefixes are written back verbatim, which
// is what ODF consumers expect for fragments nested under a document root
// that declares the namespaces.
func (e *Element) XML() string {
	var b bytes.Buffer
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *bytes.Buffer) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		xml.EscapeText(b, []byte(a.Value))
		b.WriteByte('"')
	}
	if e.Text == "" && len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if e.Text != "" {
		xml.EscapeText(b, []byte(e.Text))
	}
	for _, c := range e.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}
