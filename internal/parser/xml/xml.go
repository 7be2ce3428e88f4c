// Package xml extracts scannable regions from XML files: character data and
// attribute values.
package xml //nolint:revive // package name matches file type being parsed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for XML files.
type Parser struct{}

// New creates a new XML parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".xml", ".rss", ".atom", ".svg"}
}

// ValidateAndParse validates the content and extracts its regions in a
// single pass over the token stream.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	e := &extractor{content: content, lines: parser.BuildLineIndex(content)}

	decoder := xml.NewDecoder(bytes.NewReader(content))
	for {
		start := int(decoder.InputOffset())
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid XML: %w", err)
		}
		e.token(token, start, int(decoder.InputOffset()))
	}

	return e.regions, nil
}

func init() {
	parser.RegisterParser(New())
}

type extractor struct {
	content []byte
	lines   []int
	path    []string
	regions []parser.Region
}

// token handles a token read from content[start:end].
func (e *extractor) token(token xml.Token, start, end int) {
	switch t := token.(type) {
	case xml.StartElement:
		e.path = append(e.path, t.Name.Local)
		key := e.key()
		for _, attr := range t.Attr {
			if isNamespaceDecl(attr.Name) {
				continue
			}
			e.attribute(attr, key, start, end)
		}

	case xml.EndElement:
		if len(e.path) > 0 {
			e.path = e.path[:len(e.path)-1]
		}

	case xml.CharData:
		e.charData(string(t), start, end)
	}
}

func (e *extractor) charData(s string, start, end int) {
	if strings.TrimSpace(s) == "" {
		return
	}

	if string(e.content[start:end]) == s {
		e.regions = append(e.regions, parser.Region{Text: s, Offset: start, Key: e.key(), Exact: true})
		return
	}

	// Entities or CDATA make the raw text differ from the value.
	line, col := parser.OffsetToLineCol(e.lines, start)
	e.regions = append(e.regions, parser.Region{Text: s, Offset: -1, Line: line, Column: col, Key: e.key()})
}

// attribute records an attribute value of the tag at content[start:end].
func (e *extractor) attribute(attr xml.Attr, key string, start, end int) {
	if strings.TrimSpace(attr.Value) == "" {
		return
	}

	line, col := parser.OffsetToLineCol(e.lines, start)
	if idx := bytes.Index(e.content[start:end], []byte(attr.Value)); idx >= 0 {
		line, col = parser.OffsetToLineCol(e.lines, start+idx)
	}

	e.regions = append(e.regions, parser.Region{
		Text:   attr.Value,
		Offset: -1,
		Line:   line,
		Column: col,
		Key:    key + "@" + qualified(attr.Name),
	})
}

func (e *extractor) key() string {
	return strings.Join(e.path, ".")
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}

// qualified renders an attribute name with its namespace prefix, if any. The
// decoder resolves prefixes to URLs; only the last path segment is kept.
func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	space := n.Space
	if i := strings.LastIndexAny(space, "/:"); i >= 0 && i < len(space)-1 {
		space = space[i+1:]
	}
	return space + ":" + n.Local
}
