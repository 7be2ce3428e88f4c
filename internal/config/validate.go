package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Validate checks c for values that would fail later, reporting all of them.
// supportedTypes lists the file types a parser exists for; nil skips that
// check.
func (c *Config) Validate(supportedTypes []string) error {
	var errs []error

	if supportedTypes != nil {
		for _, t := range c.Types {
			if !slices.Contains(supportedTypes, strings.ToLower(strings.TrimPrefix(t, "."))) {
				errs = append(errs, fmt.Errorf("types: unsupported file type %q", t))
			}
		}
	}

	for _, p := range append(append([]string{}, c.Scan.Include...), c.Scan.Exclude...) {
		if _, err := glob.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("scan: invalid glob %q: %w", p, err))
		}
	}
	for _, p := range c.Ignore.Patterns {
		if _, err := glob.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("ignore.patterns: invalid glob %q: %w", p, err))
		}
	}
	for _, r := range c.Ignore.Regex {
		if _, err := regexp.Compile(r); err != nil {
			errs = append(errs, fmt.Errorf("ignore.regex: invalid regex %q: %w", r, err))
		}
	}
	if _, err := parseKinds(c.Ignore.Kinds); err != nil {
		errs = append(errs, fmt.Errorf("ignore.kinds: %w", err))
	}

	errs = append(errs, c.Render.validate()...)

	if f := c.Output.Format; f != "" && !slices.Contains(OutputFormats, f) {
		errs = append(errs, fmt.Errorf("output.format: unknown format %q (valid: %s)", f, strings.Join(OutputFormats, ", ")))
	}

	return errors.Join(errs...)
}

func (rc RenderConfig) validate() []error {
	var errs []error

	if rc.Truncate < 0 {
		errs = append(errs, fmt.Errorf("render.truncate: must not be negative, got %d", rc.Truncate))
	}
	for i, a := range rc.Attributes {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("render.attributes[%d]: name is required", i))
		}
	}
	for i, s := range rc.Special {
		if _, err := s.compile(); err != nil {
			errs = append(errs, fmt.Errorf("render.special[%d]: %w", i, err))
		}
	}
	for i, e := range rc.Extensions {
		if _, err := e.compile(); err != nil {
			errs = append(errs, fmt.Errorf("render.extensions[%d]: %w", i, err))
		}
	}
	return errs
}
