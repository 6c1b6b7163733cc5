package odsgen

import (
	"errors"
	"fmt"
)

// ErrShape reports a description node whose shape does not match its level,
// e.g. a mapping where a sequence of rows is required.
var ErrShape = errors.New("unexpected description shape")

// split decomposes a description node into (children-or-value, options). A
// mapping has the reserved key popped as the first element (empty sequence
// when absent) and the remaining keys returned as options; any other node is
// itself the first element with no options. Applied once at every structural
// level, with no knowledge of the key's meaning.
func split(node any, key string) (any, map[string]any) {
	m, ok := node.(map[string]any)
	if !ok {
		return node, map[string]any{}
	}
	inner, ok := m[key]
	if !ok {
		inner = []any{}
	}
	delete(m, key)
	return inner, m
}

// sequence asserts that the children of a structural level form a sequence.
// nil stands in for an empty one.
func sequence(v any, level string) ([]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %s content must be a sequence, got %T", ErrShape, level, v)
	}
}

// valueKind is the closed variant over cell value types, resolved once when
// the value is read and dispatched to the configured default styles.
type valueKind int

const (
	kindNull valueKind = iota
	kindString
	kindInt
	kindFloat
	kindOther
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNull
	case string:
		return kindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt
	case float32, float64:
		return kindFloat
	default:
		return kindOther
	}
}

// stringOpt reads a string-valued option, tolerating absence and non-string
// junk (which resolves to "").
func stringOpt(opt map[string]any, key string) string {
	s, _ := opt[key].(string)
	return s
}

// intOpt reads an integer-valued option with a default.
func intOpt(opt map[string]any, key string, def int) int {
	switch n := opt[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// attrMap converts an "attr" option mapping into string attributes.
func attrMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(m))
	for k, val := range m {
		attrs[k] = fmt.Sprint(val)
	}
	return attrs
}
