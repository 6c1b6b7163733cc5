// Package odsgen converts a loosely-typed nested description of a
// spreadsheet document (sequences and keyed mappings, typically decoded from
// JSON or YAML) into a structured document with resolved styles, merged-cell
// regions and column widths, driven through a backend-neutral writer.
//
// A description can be minimalist, a list of lists of lists:
//
//	raw, err := odsgen.Bytes([]any{[]any{[]any{"a", "b", "c"}}})
//
// or carry options at any level: tab names, row/cell styles, column widths,
// formulas and merge regions. See the cmd/odsgenerator help text for the
// full grammar.
package odsgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerissecure/odsgen/odf"
	"github.com/aerissecure/odsgen/ods"
	"github.com/aerissecure/odsgen/xlsx"
)

// builder walks Body -> Tab -> Row -> Cell in one pass, narrowing default
// style names at each level and driving the writer in traversal order. One
// builder per parse; all state below is discarded with it.
type builder struct {
	doc         odf.Document
	catalog     *styleCatalog
	defaults    Defaults
	tabCount    int
	spans       []odf.Span
	widthStyles map[string]string
}

// Build parses the description and materializes it into doc.
func Build(content any, doc odf.Document) error {
	b := &builder{
		doc:         doc,
		catalog:     newStyleCatalog(doc),
		defaults:    builtinDefaults(),
		widthStyles: map[string]string{},
	}
	return b.parse(content)
}

func (b *builder) parse(content any) error {
	body, opt := split(content, "body")
	b.defaults.apply(opt["defaults"])
	for _, def := range builtinStyles {
		if _, err := b.catalog.define(def.Name, def.Definition); err != nil {
			return err
		}
	}
	if err := b.parseUserStyles(opt["styles"]); err != nil {
		return err
	}
	tabs, err := sequence(body, "body")
	if err != nil {
		return err
	}
	for _, tab := range tabs {
		if err := b.parseTable(tab); err != nil {
			return err
		}
	}
	return nil
}

// parseUserStyles loads the document-level "styles" option: definitions are
// stored in the catalog and inserted immediately so user-declared styles
// always exist in the output.
func (b *builder) parseUserStyles(v any) error {
	items, err := sequence(v, "styles")
	if err != nil {
		return err
	}
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: style definition must be a mapping, got %T", ErrShape, item)
		}
		name, err := b.catalog.define(stringOpt(m, "name"), stringOpt(m, "definition"))
		if err != nil {
			return err
		}
		if err := b.catalog.insertStyle(name, true); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) parseTable(content any) error {
	rowNodes, opt := split(content, "table")
	b.tabCount++
	name := stringOpt(opt, "name")
	if name == "" {
		name = fmt.Sprintf("Tab %d", b.tabCount)
	}
	table := b.doc.AddTable(name)
	rowSeed := b.catalog.guessStyle(opt, odf.FamilyTableRow, b.defaults.StyleTableRow)
	cellSeed := b.catalog.guessStyle(opt, odf.FamilyTableCell, b.defaults.StyleTableCell)
	b.spans = b.spans[:0]
	rows, err := sequence(rowNodes, "table")
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := b.parseRow(table, row, rowSeed, cellSeed); err != nil {
			return err
		}
	}
	if err := b.applyWidth(table, opt["width"]); err != nil {
		return err
	}
	return b.applySpans(table, opt["span"])
}

func (b *builder) parseRow(table odf.Table, content any, rowSeed, cellSeed string) error {
	cellNodes, opt := split(content, "row")
	rowStyle := b.catalog.guessStyle(opt, odf.FamilyTableRow, rowSeed)
	if err := b.catalog.insertStyle(rowStyle, true); err != nil {
		return err
	}
	cellSeed = b.catalog.guessStyle(opt, odf.FamilyTableCell, cellSeed)
	row := table.AddRow(rowStyle)
	cells, err := sequence(cellNodes, "row")
	if err != nil {
		return err
	}
	for _, cell := range cells {
		if err := b.parseCell(row, cell, cellSeed); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) parseCell(row odf.Row, content any, cellSeed string) error {
	value, opt := split(content, "value")
	fallback := cellSeed
	if fallback == "" {
		fallback = b.defaults.styleFor(kindOf(value))
	}
	style := b.catalog.guessStyle(opt, odf.FamilyTableCell, fallback)
	if err := b.catalog.insertStyle(style, true); err != nil {
		return err
	}
	x, y := row.AddCell(odf.Cell{
		Value:   value,
		Text:    stringOpt(opt, "text"),
		Formula: stringOpt(opt, "formula"),
		Style:   style,
		Attrs:   attrMap(opt["attr"]),
	})
	b.recordSpan(x, y, opt)
	return nil
}

// Bytes builds the description into a native ODS document and returns the
// zipped package.
func Bytes(content any) ([]byte, error) {
	doc := ods.New()
	if err := Build(content, doc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildContent builds the description and saves it to outputPath, choosing
// the backend from the extension (.xlsx gets a workbook, everything else the
// native ODS writer). Nothing is written when the build fails.
func BuildContent(content any, outputPath string) error {
	doc := newBackend(outputPath)
	if err := Build(content, doc); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := doc.Save(f); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return f.Close()
}

// BuildFile loads a JSON or YAML description from inputPath and saves the
// generated document to outputPath.
func BuildFile(inputPath, outputPath string) error {
	content, err := LoadFile(inputPath)
	if err != nil {
		return err
	}
	return BuildContent(content, outputPath)
}

func newBackend(path string) odf.Document {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsx.New()
	}
	return ods.New()
}
