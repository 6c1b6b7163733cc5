package odf

import "fmt"

// Style families used by the cascade. Number styles carry no family and are
// only reachable through style-name attribute references.
const (
	FamilyTableRow    = "table-row"
	FamilyTableCell   = "table-cell"
	FamilyTableColumn = "table-column"
)

// Style wraps a parsed ODF style fragment. The element tree is kept so the
// definition can be re-emitted verbatim, including a name set after parsing.
type Style struct {
	el *Element
}

// ParseStyle parses an ODF style definition fragment.
func ParseStyle(markup string) (*Style, error) {
	el, err := ParseElement(markup)
	if err != nil {
		return nil, fmt.Errorf("style definition: %w", err)
	}
	return &Style{el: el}, nil
}

// Name returns the style:name attribute, or "" for anonymous styles.
func (s *Style) Name() string { return s.el.Attr("style:name") }

// SetName sets the style:name attribute, overriding any encoded name.
func (s *Style) SetName(name string) { s.el.SetAttr("style:name", name) }

// Family returns the style:family attribute. Number styles return "".
func (s *Style) Family() string { return s.el.Attr("style:family") }

// Attributes returns the top-level attributes of the definition. Keys ending
// in "style-name" encode dependencies on other styles.
func (s *Style) Attributes() []Attr { return s.el.Attrs }

// Property returns an attribute of a direct child element, e.g.
// Property("style:text-properties", "fo:font-weight"). Returns "" if either
// the child or the attribute is absent.
func (s *Style) Property(childTag, key string) string {
	c := s.el.Child(childTag)
	if c == nil {
		return ""
	}
	return c.Attr(key)
}

// Element exposes the underlying tree for backends that embed the definition
// into a larger document.
func (s *Style) Element() *Element { return s.el }

// XML re-serializes the definition.
func (s *Style) XML() string { return s.el.XML() }
