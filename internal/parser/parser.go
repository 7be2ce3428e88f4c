// Package parser turns files into regions of text and finds the links in
// them.
//
// Each supported format has a FileParser in a subpackage that registers
// itself with the default registry on import. A parser decides which parts
// of a file are prose worth scanning: markdown skips code, structured
// formats yield their string values. The regions are then run through
// linkify.List.
package parser

import (
	"bytes"
	"sort"

	"github.com/leonardomso/anchor/internal/linkify"
)

// Region is a piece of a file that is scanned for links.
type Region struct {
	// Text is the content to scan.
	Text string

	// Offset is the byte offset of Text in the file, or -1 when the format
	// decoder does not expose it.
	Offset int

	// Line and Column locate the region when Offset is -1. Both are 1-indexed.
	Line   int
	Column int

	// Key is the key path for structured formats (e.g. "links[0].url").
	Key string

	// Exact is set when matches in Text can be rewritten in place: Text
	// appears verbatim at Offset and is not already the text of a link.
	Exact bool
}

// Link is a match found in a file.
type Link struct {
	Match    linkify.Match
	FilePath string
	Line     int // 1-indexed
	Column   int // 1-indexed, in bytes
	Key      string

	// Offset is the byte offset of the match in the file, or -1.
	Offset int

	// Exact mirrors Region.Exact.
	Exact bool
}

// Text returns the matched text.
func (l Link) Text() string {
	return l.Match.Bounds().Text
}

// Kind returns the kind of the match.
func (l Link) Kind() linkify.Kind {
	return l.Match.Kind()
}

// BuildLineIndex returns the byte offset at which each line starts.
// The first entry is always 0.
func BuildLineIndex(content []byte) []int {
	lines := make([]int, 1, bytes.Count(content, []byte{'\n'})+1)
	for i, b := range content {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// OffsetToLineCol converts a byte offset to 1-indexed line and column numbers
// using an index from BuildLineIndex.
func OffsetToLineCol(lines []int, offset int) (line, col int) {
	if len(lines) == 0 || offset < 0 {
		return 1, 1
	}
	// Index of the first line starting after offset.
	i := sort.SearchInts(lines, offset+1)
	return i, offset - lines[i-1] + 1
}

// FindOffset returns the offset of the first occurrence of s in content at
// or after from, or -1. Structured parsers use it to place decoded values.
func FindOffset(content []byte, s string, from int) int {
	if s == "" || from < 0 || from >= len(content) {
		return -1
	}
	idx := bytes.Index(content[from:], []byte(s))
	if idx == -1 {
		return -1
	}
	return from + idx
}

// LinksFromRegions scans each region and places its matches in the file.
// Links are ordered by position.
func LinksFromRegions(filePath string, content []byte, regions []Region) []Link {
	var lines []int
	var links []Link

	for _, r := range regions {
		for _, m := range linkify.List(r.Text) {
			span := m.Bounds()
			link := Link{
				Match:    m,
				FilePath: filePath,
				Key:      r.Key,
				Offset:   -1,
				Line:     max(r.Line, 1),
				Column:   max(r.Column, 1),
				Exact:    r.Exact,
			}

			if r.Offset >= 0 {
				if lines == nil {
					lines = BuildLineIndex(content)
				}
				link.Offset = r.Offset + span.Start
				link.Line, link.Column = OffsetToLineCol(lines, link.Offset)
			}
			links = append(links, link)
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Line != links[j].Line {
			return links[i].Line < links[j].Line
		}
		return links[i].Column < links[j].Column
	})
	return links
}
