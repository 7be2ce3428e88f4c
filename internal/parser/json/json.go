// Package jsonparser extracts scannable regions from JSON files.
package jsonparser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/leonardomso/anchor/internal/parser"
)

// Parser implements parser.FileParser for JSON files.
type Parser struct{}

// New creates a new JSON parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (*Parser) Extensions() []string {
	return []string{".json"}
}

// ValidateAndParse returns every string key and value of content as a
// region, in document order. Empty content has no regions.
func (*Parser) ValidateAndParse(_ string, content []byte) ([]parser.Region, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	w := &walker{
		dec:     json.NewDecoder(bytes.NewReader(content)),
		content: content,
		lines:   parser.BuildLineIndex(content),
	}

	if err := w.walk(""); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	// A document holds a single value.
	if _, err := w.dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return w.regions, nil
}

func init() {
	parser.RegisterParser(New())
}

// walker streams tokens so that regions keep document order and their
// position in the source.
type walker struct {
	dec     *json.Decoder
	content []byte
	lines   []int
	regions []parser.Region
}

func (w *walker) walk(path string) error {
	tok, err := w.dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		if s, isString := tok.(string); isString {
			w.add(s, path)
		}
		return nil
	}

	switch delim {
	case '{':
		for w.dec.More() {
			keyTok, err := w.dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			childPath := joinKey(path, key)
			w.add(key, childPath)
			if err := w.walk(childPath); err != nil {
				return err
			}
		}
	case '[':
		for i := 0; w.dec.More(); i++ {
			if err := w.walk(path + "[" + strconv.Itoa(i) + "]"); err != nil {
				return err
			}
		}
	}

	// Closing delimiter.
	_, err = w.dec.Token()
	return err
}

// add records the string token just read. Its closing quote is the byte
// before the decoder's input offset.
func (w *walker) add(s, path string) {
	if s == "" {
		return
	}

	end := int(w.dec.InputOffset()) - 1
	open := openingQuote(w.content, end)
	if open < 0 {
		w.regions = append(w.regions, parser.Region{Text: s, Offset: -1, Line: 1, Column: 1, Key: path})
		return
	}

	start := open + 1
	if string(w.content[start:end]) == s {
		w.regions = append(w.regions, parser.Region{Text: s, Offset: start, Key: path, Exact: true})
		return
	}

	// Escapes make the raw text differ from the value.
	line, col := parser.OffsetToLineCol(w.lines, start)
	w.regions = append(w.regions, parser.Region{Text: s, Offset: -1, Line: line, Column: col, Key: path})
}

// openingQuote finds the quote that opens the string closed at end. Quotes
// inside a JSON string are always escaped.
func openingQuote(content []byte, end int) int {
	if end <= 0 || end >= len(content) || content[end] != '"' {
		return -1
	}
	for i := end - 1; i >= 0; i-- {
		if content[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && content[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i
		}
	}
	return -1
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
