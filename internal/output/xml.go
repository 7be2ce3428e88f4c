package output

import (
	"encoding/xml"

	"github.com/leonardomso/anchor/internal/linkify"
)

// XMLFormatter formats reports as generic XML.
type XMLFormatter struct{}

// xmlOutput is the XML structure for output.
type xmlOutput struct {
	Ignored     *xmlIgnored `xml:"ignored,omitempty"`
	XMLName     xml.Name    `xml:"report"`
	GeneratedAt string      `xml:"generated_at,attr"`
	Matches     xmlMatches  `xml:"matches"`
	Summary     xmlSummary  `xml:"summary"`
	TotalFiles  int         `xml:"total_files,attr"`
}

type xmlSummary struct {
	Total   int `xml:"total"`
	Unique  int `xml:"unique"`
	URLs    int `xml:"urls"`
	Emails  int `xml:"emails"`
	Files   int `xml:"files"`
	Ignored int `xml:"ignored,omitempty"`
}

type xmlMatches struct {
	Matches []xmlMatch `xml:"match"`
}

type xmlMatch struct {
	Kind     string     `xml:"kind,attr"`
	Exact    bool       `xml:"exact,attr"`
	Text     string     `xml:"text"`
	FilePath string     `xml:"file"`
	Key      string     `xml:"key,omitempty"`
	Fields   []xmlField `xml:"fields>field,omitempty"`
	Line     int        `xml:"line"`
	Column   int        `xml:"column"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlIgnored struct {
	Items []xmlIgnoredItem `xml:"item"`
}

type xmlIgnoredItem struct {
	Kind   string `xml:"kind,attr"`
	Text   string `xml:"text"`
	File   string `xml:"file"`
	Reason string `xml:"reason"`
	Rule   string `xml:"rule"`
	Line   int    `xml:"line,omitempty"`
}

// Format implements Formatter.
func (*XMLFormatter) Format(report *Report) ([]byte, error) {
	s := report.Summary()
	output := xmlOutput{
		GeneratedAt: report.GeneratedAt.Format(timeLayout),
		TotalFiles:  len(report.Files),
		Summary: xmlSummary{
			Total:   s.Total,
			Unique:  s.Unique,
			URLs:    s.URLs,
			Emails:  s.Emails,
			Files:   s.Files,
			Ignored: s.Ignored,
		},
		Matches: xmlMatches{
			Matches: make([]xmlMatch, 0, len(report.Links)),
		},
	}

	for _, l := range report.Links {
		output.Matches.Matches = append(output.Matches.Matches, xmlMatch{
			Kind:     l.Kind().String(),
			Exact:    l.Exact,
			Text:     l.Text(),
			FilePath: l.FilePath,
			Key:      l.Key,
			Fields:   xmlFields(l.Match),
			Line:     l.Line,
			Column:   l.Column,
		})
	}

	if len(report.Ignored) > 0 {
		output.Ignored = &xmlIgnored{
			Items: make([]xmlIgnoredItem, len(report.Ignored)),
		}
		for i, ig := range report.Ignored {
			output.Ignored.Items[i] = xmlIgnoredItem{
				Kind:   ig.Kind.String(),
				Text:   ig.Text,
				File:   ig.File,
				Reason: ig.Type,
				Rule:   ig.Rule,
				Line:   ig.Line,
			}
		}
	}

	data, err := xml.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), data...), nil
}

func xmlFields(m linkify.Match) []xmlField {
	fields := linkify.Fields(m)
	if len(fields) == 0 {
		return nil
	}
	out := make([]xmlField, len(fields))
	for i, f := range fields {
		out[i] = xmlField{Name: f.Name, Value: f.Value}
	}
	return out
}
