// Package text handles plain text and HTML files. The whole file is one
// region: HTML is not parsed, the linkifier already skips attribute values
// and the text of existing anchors.
package text

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for text and HTML files.
type Parser struct{}

// New returns a text parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".txt", ".text", ".html", ".htm"}
}

// ValidateAndParse returns content as a single region. Content that is not
// UTF-8 is rejected.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("invalid text: content is not UTF-8")
	}
	return []parser.Region{{Text: string(content), Offset: 0, Exact: true}}, nil
}

func init() {
	parser.RegisterParser(New())
}
