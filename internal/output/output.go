// Package output formats match reports for files and pipes.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonardomso/anchor/internal/filter"
	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/parser"
)

// Format represents an output format type.
type Format string

const (
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
	// FormatXML outputs as generic XML.
	FormatXML Format = "xml"
	// FormatMarkdown outputs as a Markdown report.
	FormatMarkdown Format = "markdown"
	// FormatMsgpack outputs the JSON document as MessagePack.
	FormatMsgpack Format = "msgpack"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatXML),
		string(FormatMarkdown),
		string(FormatMsgpack),
	}
}

// IsValidFormat checks if a format string is valid.
func IsValidFormat(s string) bool {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, FormatYAML, FormatXML, FormatMarkdown, FormatMsgpack:
		return true
	default:
		return false
	}
}

// Report contains all data needed for output formatting.
type Report struct {
	GeneratedAt time.Time
	Files       []string
	Links       []parser.Link
	Ignored     []filter.IgnoreReason
}

// Summary counts the links of a report.
type Summary struct {
	Total   int
	Unique  int
	URLs    int
	Emails  int
	Files   int
	Ignored int
}

// Summary computes the counts of r.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Links), Ignored: len(r.Ignored)}
	texts := make([]string, 0, len(r.Links))
	for _, l := range r.Links {
		texts = append(texts, l.Text())
		switch l.Kind() {
		case linkify.KindURL:
			s.URLs++
		case linkify.KindEmail:
			s.Emails++
		case linkify.KindFile:
			s.Files++
		}
	}
	s.Unique = helpers.CountUniqueStrings(texts)
	return s
}

// Formatter is the interface that output formatters implement.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the appropriate formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatXML:
		return &XMLFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	case FormatMsgpack:
		return &MsgpackFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// Write formats report to w.
func Write(w io.Writer, report *Report, format Format) error {
	data, err := FormatReport(report, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .json, .yaml, .yml, .xml, .md, .markdown, .msgpack, .mp)",
			ext,
		)
	}
}

// WriteToFile writes a formatted report to a file, the format following the
// extension.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// fieldMap returns the classified fields of m, nil when there are none.
func fieldMap(m linkify.Match) map[string]string {
	fields := linkify.Fields(m)
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out
}
