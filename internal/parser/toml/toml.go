// Package toml extracts scannable regions from TOML files.
package toml

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for TOML files.
type Parser struct{}

// New creates a new TOML parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".toml"}
}

// ValidateAndParse returns every string value and key of content as a
// region. The decoder keeps no positions, so each region is placed at the
// first occurrence of its text and is never exact.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	var doc map[string]any
	if _, err := toml.Decode(string(content), &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	e := &extractor{content: content, lines: parser.BuildLineIndex(content)}
	e.table(doc, "")
	return e.regions, nil
}

func init() {
	parser.RegisterParser(New())
}

type extractor struct {
	content []byte
	lines   []int
	regions []parser.Region
}

func (e *extractor) value(v any, path string) {
	switch val := v.(type) {
	case string:
		e.add(val, path)
	case map[string]any:
		e.table(val, path)
	case []any:
		for i, item := range val {
			e.value(item, path+"["+strconv.Itoa(i)+"]")
		}
	case []map[string]any:
		// Array of tables.
		for i, item := range val {
			e.table(item, path+"["+strconv.Itoa(i)+"]")
		}
	}
}

func (e *extractor) table(t map[string]any, path string) {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}
		e.add(key, childPath)
		e.value(t[key], childPath)
	}
}

func (e *extractor) add(s, path string) {
	if s == "" {
		return
	}
	line, col := 1, 1
	if idx := parser.FindOffset(e.content, s, 0); idx >= 0 {
		line, col = parser.OffsetToLineCol(e.lines, idx)
	}
	e.regions = append(e.regions, parser.Region{
		Text:   s,
		Offset: -1,
		Line:   line,
		Column: col,
		Key:    path,
	})
}
