package output

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// yamlOutput is the YAML structure for output.
type yamlOutput struct {
	GeneratedAt string        `yaml:"generated_at"`
	Matches     []yamlMatch   `yaml:"matches"`
	Ignored     []yamlIgnored `yaml:"ignored,omitempty"`
	Summary     yamlSummary   `yaml:"summary"`
	TotalFiles  int           `yaml:"total_files"`
}

type yamlSummary struct {
	Total   int `yaml:"total"`
	Unique  int `yaml:"unique"`
	URLs    int `yaml:"urls"`
	Emails  int `yaml:"emails"`
	Files   int `yaml:"files"`
	Ignored int `yaml:"ignored,omitempty"`
}

type yamlMatch struct {
	Fields   map[string]string `yaml:"fields,omitempty"`
	Text     string            `yaml:"text"`
	Kind     string            `yaml:"kind"`
	FilePath string            `yaml:"file_path"`
	Key      string            `yaml:"key,omitempty"`
	Line     int               `yaml:"line"`
	Column   int               `yaml:"column"`
	Exact    bool              `yaml:"exact"`
}

type yamlIgnored struct {
	Text   string `yaml:"text"`
	Kind   string `yaml:"kind"`
	File   string `yaml:"file"`
	Reason string `yaml:"reason"`
	Rule   string `yaml:"rule"`
	Line   int    `yaml:"line,omitempty"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	s := report.Summary()
	output := yamlOutput{
		GeneratedAt: report.GeneratedAt.Format(timeLayout),
		TotalFiles:  len(report.Files),
		Summary: yamlSummary{
			Total:   s.Total,
			Unique:  s.Unique,
			URLs:    s.URLs,
			Emails:  s.Emails,
			Files:   s.Files,
			Ignored: s.Ignored,
		},
		Matches: make([]yamlMatch, 0, len(report.Links)),
	}

	for _, l := range report.Links {
		output.Matches = append(output.Matches, yamlMatch{
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
		output.Ignored = append(output.Ignored, yamlIgnored{
			Text:   ig.Text,
			Kind:   ig.Kind.String(),
			File:   ig.File,
			Line:   ig.Line,
			Reason: ig.Type,
			Rule:   ig.Rule,
		})
	}

	return yaml.Marshal(output)
}
