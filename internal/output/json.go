package output

import (
	"encoding/json"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// jsonOutput is the JSON structure for output. The msgpack formatter encodes
// the same document.
type jsonOutput struct {
	GeneratedAt string        `json:"generated_at"`
	TotalFiles  int           `json:"total_files"`
	Summary     jsonSummary   `json:"summary"`
	Matches     []jsonMatch   `json:"matches"`
	Ignored     []jsonIgnored `json:"ignored,omitempty"`
}

type jsonSummary struct {
	Total   int `json:"total"`
	Unique  int `json:"unique"`
	URLs    int `json:"urls"`
	Emails  int `json:"emails"`
	Files   int `json:"files"`
	Ignored int `json:"ignored,omitempty"`
}

type jsonMatch struct {
	Text     string            `json:"text"`
	Kind     string            `json:"kind"`
	FilePath string            `json:"file_path"`
	Line     int               `json:"line"`
	Column   int               `json:"column"`
	Key      string            `json:"key,omitempty"`
	Exact    bool              `json:"exact"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type jsonIgnored struct {
	Text   string `json:"text"`
	Kind   string `json:"kind"`
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Reason string `json:"reason"`
	Rule   string `json:"rule"`
}

func newJSONOutput(report *Report) jsonOutput {
	s := report.Summary()
	output := jsonOutput{
		GeneratedAt: report.GeneratedAt.Format(timeLayout),
		TotalFiles:  len(report.Files),
		Summary: jsonSummary{
			Total:   s.Total,
			Unique:  s.Unique,
			URLs:    s.URLs,
			Emails:  s.Emails,
			Files:   s.Files,
			Ignored: s.Ignored,
		},
		Matches: make([]jsonMatch, 0, len(report.Links)),
	}

	for _, l := range report.Links {
		output.Matches = append(output.Matches, jsonMatch{
			Text:     l.Text(),
			Kind:     l.Kind().String(),
			FilePath: l.FilePath,
			Line:     l.Line,
			Column:   l.Column,
			Key:      l.Key,
			Exact:    l.Exact,
			Fields:   fieldMap(l.Match),
		})
	}

	for _, ig := range report.Ignored {
		output.Ignored = append(output.Ignored, jsonIgnored{
			Text:   ig.Text,
			Kind:   ig.Kind.String(),
			File:   ig.File,
			Line:   ig.Line,
			Reason: ig.Type,
			Rule:   ig.Rule,
		})
	}
	return output
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	return json.MarshalIndent(newJSONOutput(report), "", "  ")
}
