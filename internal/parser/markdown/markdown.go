// Package markdown splits Markdown files into prose regions. Code blocks,
// fenced or indented, and inline code spans are left out so that example
// URLs in code are not reported. Link text is reported but not rewritable.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for Markdown.
type Parser struct{}

// New returns a Markdown parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".md", ".mdx", ".markdown"}
}

// ValidateAndParse returns the prose regions of content. Any text is valid
// Markdown.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	return Regions(content), nil
}

func init() {
	parser.RegisterParser(New())
}

// byteRange is a half-open range of content.
type byteRange struct {
	start, stop int
}

// Byte classes of a document.
const (
	prose byte = iota
	code
	linkText
)

// Regions returns the parts of content outside code, with exact offsets.
// The text of links and images is returned as regions that are not exact,
// so it is listed but never rewritten. Emphasis and strikethrough content
// gets its own region, apart from the delimiters around it.
func Regions(content []byte) []parser.Region {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	doc := md.Parser().Parse(text.NewReader(content))
	class, splits := classify(doc, len(content))

	var regions []parser.Region
	start := 0
	for i := 1; i <= len(content); i++ {
		if i < len(content) && class[i] == class[start] && !splits[i] {
			continue
		}
		if class[start] != code {
			regions = appendRegion(regions, content, start, i, class[start] == prose)
		}
		start = i
	}
	return regions
}

func appendRegion(regions []parser.Region, content []byte, start, stop int, exact bool) []parser.Region {
	if start >= stop || len(bytes.TrimSpace(content[start:stop])) == 0 {
		return regions
	}
	return append(regions, parser.Region{
		Text:   string(content[start:stop]),
		Offset: start,
		Exact:  exact,
	})
}

// classify marks each byte of the document as prose, code or link text, and
// returns the offsets where emphasis content meets its delimiters.
func classify(doc ast.Node, size int) ([]byte, map[int]bool) {
	class := make([]byte, size)
	splits := map[int]bool{}

	mark := func(r byteRange, c byte) {
		for i := max(r.start, 0); i < min(r.stop, size); i++ {
			class[i] = c
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindCodeBlock, ast.KindFencedCodeBlock:
			if lines := n.Lines(); lines.Len() > 0 {
				mark(byteRange{start: lines.At(0).Start, stop: lines.At(lines.Len() - 1).Stop}, code)
			}
			return ast.WalkSkipChildren, nil

		case ast.KindCodeSpan:
			if r, ok := textRange(n); ok {
				mark(r, code)
			}
			return ast.WalkSkipChildren, nil

		case ast.KindLink, ast.KindImage:
			if r, ok := textRange(n); ok {
				mark(r, linkText)
			}

		case ast.KindEmphasis, east.KindStrikethrough:
			if r, ok := textRange(n); ok {
				splits[r.start] = true
				splits[r.stop] = true
			}
		}
		return ast.WalkContinue, nil
	})

	return class, splits
}

// textRange spans the text segments below n.
func textRange(n ast.Node) (byteRange, bool) {
	r := byteRange{start: -1}
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		t, ok := c.(*ast.Text)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if r.start == -1 || t.Segment.Start < r.start {
			r.start = t.Segment.Start
		}
		r.stop = max(r.stop, t.Segment.Stop)
		return ast.WalkContinue, nil
	})
	return r, r.start >= 0 && r.stop > r.start
}
