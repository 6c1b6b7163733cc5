package odsgen

import (
	"fmt"

	"github.com/aerissecure/odsgen/odf"
)

// recordSpan accumulates a merge region for a cell declaring colspanned or
// rowspanned, anchored at the coordinate assigned on append. Counts clamp to
// at least 1; a 1x1 span is a no-op.
func (b *builder) recordSpan(x, y int, opt map[string]any) {
	colspan := max(1, intOpt(opt, "colspanned", 1))
	rowspan := max(1, intOpt(opt, "rowspanned", 1))
	if colspan < 2 && rowspan < 2 {
		return
	}
	b.spans = append(b.spans, odf.Span{X0: x, Y0: y, X1: x + colspan - 1, Y1: y + rowspan - 1})
}

// applySpans merges the tab's explicit "span" option with the regions
// accumulated from per-cell declarations, explicit regions first, and drives
// them through the writer. Overlapping regions are passed through untouched.
func (b *builder) applySpans(table odf.Table, opt any) error {
	areas, err := normalizeSpans(opt)
	if err != nil {
		return err
	}
	areas = append(areas, b.spans...)
	for _, sp := range areas {
		if err := table.SetSpan(sp); err != nil {
			return err
		}
	}
	return nil
}

// normalizeSpans turns the "span" option into a list of regions: a single
// range string or a bare [x0, y0, x1, y1] rectangle wraps to one region;
// otherwise every element is a region of either shape.
func normalizeSpans(opt any) ([]odf.Span, error) {
	switch v := opt.(type) {
	case nil:
		return nil, nil
	case string:
		sp, err := odf.ParseSpan(v)
		if err != nil {
			return nil, fmt.Errorf("span option: %w", err)
		}
		return []odf.Span{sp}, nil
	case []any:
		if odf.IsRect(v) {
			sp, err := odf.ParseSpan(v)
			if err != nil {
				return nil, fmt.Errorf("span option: %w", err)
			}
			return []odf.Span{sp}, nil
		}
		spans := make([]odf.Span, 0, len(v))
		for _, item := range v {
			sp, err := odf.ParseSpan(item)
			if err != nil {
				return nil, fmt.Errorf("span option: %w", err)
			}
			spans = append(spans, sp)
		}
		return spans, nil
	default:
		return nil, fmt.Errorf("span option: unsupported value %v (%T)", opt, opt)
	}
}
