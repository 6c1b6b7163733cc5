package odf

import (
	"fmt"
	"strings"
)

// Span is a rectangular merge region in zero-based inclusive cell coordinates.
type Span struct {
	X0, Y0, X1, Y1 int
}

// Valid reports whether the region is non-degenerate and in bounds.
func (s Span) Valid() bool {
	return s.X0 >= 0 && s.Y0 >= 0 && s.X1 >= s.X0 && s.Y1 >= s.Y0
}

func (s Span) String() string {
	return fmt.Sprintf("[%d %d %d %d]", s.X0, s.Y0, s.X1, s.Y1)
}

// ParseSpan converts a description-level span value into a Span. Accepted
// shapes: a spreadsheet range string ("A1:B3", or "B3" for a single cell) or
// a sequence of four numbers [x0, y0, x1, y1].
func ParseSpan(v any) (Span, error) {
	switch t := v.(type) {
	case string:
		return parseRange(t)
	case []any:
		if len(t) != 4 {
			return Span{}, fmt.Errorf("span rectangle needs 4 coordinates, got %d", len(t))
		}
		var coords [4]int
		for i, c := range t {
			n, ok := asInt(c)
			if !ok {
				return Span{}, fmt.Errorf("span coordinate %v is not an integer", c)
			}
			coords[i] = n
		}
		sp := Span{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
		if !sp.Valid() {
			return Span{}, fmt.Errorf("invalid span rectangle %s", sp)
		}
		return sp, nil
	default:
		return Span{}, fmt.Errorf("unsupported span value %v (%T)", v, v)
	}
}

// IsRect reports whether the value looks like a bare [x0, y0, x1, y1]
// rectangle rather than a sequence of span values.
func IsRect(v []any) bool {
	if len(v) != 4 {
		return false
	}
	for _, c := range v {
		if _, ok := asInt(c); !ok {
			return false
		}
	}
	return true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func parseRange(ref string) (Span, error) {
	ref = strings.TrimSpace(ref)
	first, rest, found := strings.Cut(ref, ":")
	x0, y0, err := parseCellRef(first)
	if err != nil {
		return Span{}, err
	}
	if !found {
		return Span{X0: x0, Y0: y0, X1: x0, Y1: y0}, nil
	}
	x1, y1, err := parseCellRef(rest)
	if err != nil {
		return Span{}, err
	}
	sp := Span{X0: x0, Y0: y0, X1: x1, Y1: y1}
	if !sp.Valid() {
		return Span{}, fmt.Errorf("invalid span range %q", ref)
	}
	return sp, nil
}

func parseCellRef(ref string) (x, y int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		x = x*26 + int(ref[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	for ; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
		}
		y = y*10 + int(ref[i]-'0')
	}
	if y == 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return x - 1, y - 1, nil
}

// CellRef renders zero-based coordinates as an "A1" style reference.
func CellRef(x, y int) string {
	col := ""
	for n := x + 1; n > 0; n = (n - 1) / 26 {
		col = string(rune('A'+(n-1)%26)) + col
	}
	return fmt.Sprintf("%s%d", col, y+1)
}
