package config

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/leonardomso/anchor/internal/linkify"
)

// RenderConfig holds the options used by `anchor render` and `anchor apply`.
type RenderConfig struct {
	// Protocol is prefixed to matches written without one.
	Protocol string `yaml:"protocol" toml:"protocol"`

	// Truncate limits the visible text; 0 means unbounded.
	Truncate         int  `yaml:"truncate" toml:"truncate"`
	MiddleTruncation bool `yaml:"middle_truncation" toml:"middle_truncation"`

	Attributes []AttributeConfig `yaml:"attributes" toml:"attributes"`
	Special    []SpecialConfig   `yaml:"special" toml:"special"`
	Extensions []ExtensionConfig `yaml:"extensions" toml:"extensions"`
}

// AttributeConfig is an attribute added to every generated anchor.
type AttributeConfig struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
	Bare  bool   `yaml:"bare" toml:"bare"`
}

// SpecialConfig renders matches whose text matches Test with Template, a
// text/template executed with TemplateData.
type SpecialConfig struct {
	Test     string `yaml:"test" toml:"test"`
	Template string `yaml:"template" toml:"template"`
}

// ExtensionConfig rewrites the input before scanning: each match of Test is
// replaced by Replace, which may refer to groups as $1 or ${name}.
type ExtensionConfig struct {
	Test    string `yaml:"test" toml:"test"`
	Replace string `yaml:"replace" toml:"replace"`
}

// TemplateData is passed to special templates.
type TemplateData struct {
	Text     string
	Kind     string
	Protocol string
	Host     string
	Fields   map[string]string
}

// NewTemplateData describes m for a special template.
func NewTemplateData(m linkify.Match) TemplateData {
	fields := map[string]string{}
	for _, f := range linkify.Fields(m) {
		fields[f.Name] = f.Value
	}
	return TemplateData{
		Text:     m.Bounds().Text,
		Kind:     m.Kind().String(),
		Protocol: linkify.Protocol(m),
		Host:     linkify.Host(m),
		Fields:   fields,
	}
}

// IsEmpty returns true if no render option is set.
func (rc RenderConfig) IsEmpty() bool {
	return rc.Protocol == "" &&
		rc.Truncate == 0 &&
		!rc.MiddleTruncation &&
		len(rc.Attributes) == 0 &&
		len(rc.Special) == 0 &&
		len(rc.Extensions) == 0
}

func (rc *RenderConfig) merge(other RenderConfig) {
	if other.Protocol != "" {
		rc.Protocol = other.Protocol
	}
	if other.Truncate != 0 {
		rc.Truncate = other.Truncate
	}
	rc.MiddleTruncation = rc.MiddleTruncation || other.MiddleTruncation
	rc.Attributes = append(rc.Attributes, other.Attributes...)
	rc.Special = append(rc.Special, other.Special...)
	rc.Extensions = append(rc.Extensions, other.Extensions...)
}

// Options builds linkify options from c. exclude, usually the ignore
// filter's rule, is combined with the ignored kinds.
func (c *Config) Options(exclude linkify.Rule[bool]) (*linkify.Options, []linkify.Extension, error) {
	rc := c.Render
	opts := &linkify.Options{}

	if rc.Protocol != "" {
		opts.Protocol = linkify.Const(rc.Protocol)
	}
	if rc.Truncate > 0 {
		opts.Truncate = linkify.Const(rc.Truncate)
	}
	if rc.MiddleTruncation {
		opts.MiddleTruncation = linkify.Const(true)
	}

	if len(rc.Attributes) > 0 {
		attrs := make([]linkify.Attribute, 0, len(rc.Attributes))
		for _, a := range rc.Attributes {
			attrs = append(attrs, linkify.Attribute{Name: a.Name, Value: a.Value, Bare: a.Bare})
		}
		opts.Attributes = linkify.Const(attrs)
	}

	kinds, err := parseKinds(c.Ignore.Kinds)
	if err != nil {
		return nil, nil, err
	}
	opts.Exclude = excludeRule(exclude, kinds)

	for i, s := range rc.Special {
		st, err := s.compile()
		if err != nil {
			return nil, nil, fmt.Errorf("render.special[%d]: %w", i, err)
		}
		opts.SpecialTransforms = append(opts.SpecialTransforms, st)
	}

	exts := make([]linkify.Extension, 0, len(rc.Extensions))
	for i, e := range rc.Extensions {
		ext, err := e.compile()
		if err != nil {
			return nil, nil, fmt.Errorf("render.extensions[%d]: %w", i, err)
		}
		exts = append(exts, ext)
	}

	return opts, exts, nil
}

func excludeRule(base linkify.Rule[bool], kinds map[linkify.Kind]bool) linkify.Rule[bool] {
	if len(kinds) == 0 {
		return base
	}
	return linkify.Func(func(m linkify.Match) bool {
		if kinds[m.Kind()] {
			return true
		}
		excluded, _ := base.Eval(m)
		return excluded
	})
}

func parseKinds(names []string) (map[linkify.Kind]bool, error) {
	kinds := make(map[linkify.Kind]bool, len(names))
	for _, name := range names {
		k, ok := linkify.ParseKind(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown match kind %q", name)
		}
		kinds[k] = true
	}
	return kinds, nil
}

func (s SpecialConfig) compile() (linkify.SpecialTransform, error) {
	test, err := regexp.Compile(s.Test)
	if err != nil {
		return linkify.SpecialTransform{}, fmt.Errorf("invalid test %q: %w", s.Test, err)
	}
	tmpl, err := template.New("special").Option("missingkey=zero").Parse(s.Template)
	if err != nil {
		return linkify.SpecialTransform{}, fmt.Errorf("invalid template: %w", err)
	}

	return linkify.SpecialTransform{
		Test: test,
		Transform: func(m linkify.Match) string {
			var b strings.Builder
			if err := tmpl.Execute(&b, NewTemplateData(m)); err != nil {
				return m.Bounds().Text
			}
			return b.String()
		},
	}, nil
}

func (e ExtensionConfig) compile() (linkify.Extension, error) {
	test, err := regexp.Compile(e.Test)
	if err != nil {
		return linkify.Extension{}, fmt.Errorf("invalid test %q: %w", e.Test, err)
	}
	return linkify.Extension{Test: test, Template: e.Replace}, nil
}
