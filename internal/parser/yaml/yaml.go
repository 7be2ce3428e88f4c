// Package yaml extracts scannable regions from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for YAML files.
type Parser struct{}

// New creates a new YAML parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// ValidateAndParse returns every scalar key and value of every document in
// content as a region.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	e := &extractor{content: content, lines: parser.BuildLineIndex(content)}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var node yaml.Node
		if err := decoder.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		e.node(&node, "")
	}

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

func (e *extractor) node(n *yaml.Node, path string) {
	if n == nil {
		return
	}

	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			e.node(c, path)
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]

			childPath := path
			if key.Kind == yaml.ScalarNode {
				if path != "" {
					childPath += "."
				}
				childPath += key.Value
			}

			e.node(key, childPath)
			e.node(value, childPath)
		}

	case yaml.SequenceNode:
		for i, item := range n.Content {
			e.node(item, path+"["+strconv.Itoa(i)+"]")
		}

	case yaml.ScalarNode:
		e.scalar(n, path)

	// Aliases are skipped: their target is scanned where it is defined.
	case yaml.AliasNode:
	}
}

func (e *extractor) scalar(n *yaml.Node, path string) {
	if n.Value == "" {
		return
	}

	region := parser.Region{
		Text:   n.Value,
		Offset: -1,
		Line:   n.Line,
		Column: n.Column,
		Key:    path,
	}

	if off := e.rawOffset(n); off >= 0 {
		region.Offset = off
		region.Exact = true
	}
	e.regions = append(e.regions, region)
}

// rawOffset returns the offset of a scalar whose source text is exactly its
// value, or -1. Block scalars and values with escapes never qualify.
func (e *extractor) rawOffset(n *yaml.Node) int {
	if n.Line < 1 || n.Line > len(e.lines) || n.Column < 1 {
		return -1
	}

	off := e.lines[n.Line-1] + n.Column - 1
	switch n.Style {
	case 0:
	case yaml.DoubleQuotedStyle, yaml.SingleQuotedStyle:
		off++
	default:
		return -1
	}

	end := off + len(n.Value)
	if end > len(e.content) || string(e.content[off:end]) != n.Value {
		return -1
	}
	return off
}
