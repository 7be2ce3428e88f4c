// Package filter decides which matches to leave alone, by domain, glob or
// regular expression.
package filter

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"github.com/leonardomso/anchor/internal/linkify"
)

// IgnoreReason describes why a match was ignored.
type IgnoreReason struct {
	Type string // "domain", "pattern", or "regex"
	Rule string // The rule that matched
	Text string // The matched text
	Kind linkify.Kind
	File string
	Line int
}

// Filter holds ignore rules and records what they ignored. It is safe for
// concurrent use.
type Filter struct {
	// domains also match their subdomains.
	domains map[string]bool

	globPatterns  []compiledGlob
	regexPatterns []compiledRegex

	mu      sync.Mutex
	ignored []IgnoreReason
}

type compiledGlob struct {
	pattern  glob.Glob
	original string
}

type compiledRegex struct {
	pattern  *regexp.Regexp
	original string
}

// Config holds filter configuration.
type Config struct {
	Domains       []string // Domains to ignore (includes subdomains)
	GlobPatterns  []string // Glob patterns (e.g., "*.local/*")
	RegexPatterns []string // Regex patterns (e.g., "^ftp:")
}

// New compiles cfg. Empty entries are skipped; a bad pattern is an error.
func New(cfg Config) (*Filter, error) {
	f := &Filter{domains: map[string]bool{}}

	for _, d := range cfg.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			f.domains[d] = true
		}
	}

	for _, p := range cfg.GlobPatterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		f.globPatterns = append(f.globPatterns, compiledGlob{pattern: g, original: p})
	}

	for _, p := range cfg.RegexPatterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", p, err)
		}
		f.regexPatterns = append(f.regexPatterns, compiledRegex{pattern: r, original: p})
	}

	return f, nil
}

// Match reports whether m is ignored and by which rule. Rules are checked
// cheapest first: domain, glob, regex. Nothing is recorded.
func (f *Filter) Match(m linkify.Match) (IgnoreReason, bool) {
	if f == nil || m == nil {
		return IgnoreReason{}, false
	}
	text := m.Bounds().Text

	if rule, ok := f.matchesDomain(m); ok {
		return IgnoreReason{Type: "domain", Rule: rule, Text: text, Kind: m.Kind()}, true
	}
	if rule, ok := f.matchesGlob(text); ok {
		return IgnoreReason{Type: "pattern", Rule: rule, Text: text, Kind: m.Kind()}, true
	}
	if rule, ok := f.matchesRegex(text); ok {
		return IgnoreReason{Type: "regex", Rule: rule, Text: text, Kind: m.Kind()}, true
	}
	return IgnoreReason{}, false
}

// ShouldIgnore is Match that also records the reason with its location.
func (f *Filter) ShouldIgnore(m linkify.Match, file string, line int) bool {
	reason, ok := f.Match(m)
	if !ok {
		return false
	}
	reason.File = file
	reason.Line = line

	f.mu.Lock()
	f.ignored = append(f.ignored, reason)
	f.mu.Unlock()
	return true
}

// Exclude returns a render rule that leaves ignored matches as plain text.
// A filter without rules returns an unset rule.
func (f *Filter) Exclude() linkify.Rule[bool] {
	if !f.HasRules() {
		return linkify.Rule[bool]{}
	}
	return linkify.Func(func(m linkify.Match) bool {
		_, ok := f.Match(m)
		return ok
	})
}

// matchesDomain checks the host of m, and its parent domains, against the
// ignored domains.
func (f *Filter) matchesDomain(m linkify.Match) (string, bool) {
	if len(f.domains) == 0 {
		return "", false
	}

	host := strings.ToLower(hostOf(m))
	if host == "" {
		return "", false
	}
	if f.domains[host] {
		return host, true
	}

	// "www.example.com" is covered by "example.com".
	for domain := range f.domains {
		if strings.HasSuffix(host, "."+domain) {
			return domain, true
		}
	}
	return "", false
}

// hostOf falls back to parsing the text for URLs only confirmed by their
// protocol, which carry no host.
func hostOf(m linkify.Match) string {
	if h := linkify.Host(m); h != "" {
		return strings.Trim(h, "[]")
	}
	if m.Kind() != linkify.KindURL {
		return ""
	}
	parsed, err := url.Parse(m.Bounds().Text)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

func (f *Filter) matchesGlob(text string) (string, bool) {
	for _, g := range f.globPatterns {
		if g.pattern.Match(text) {
			return g.original, true
		}
	}
	return "", false
}

func (f *Filter) matchesRegex(text string) (string, bool) {
	for _, r := range f.regexPatterns {
		if r.pattern.MatchString(text) {
			return r.original, true
		}
	}
	return "", false
}

// IgnoredCount returns the number of recorded matches.
func (f *Filter) IgnoredCount() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ignored)
}

// Ignored returns a copy of the recorded matches with their reasons.
func (f *Filter) Ignored() []IgnoreReason {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]IgnoreReason(nil), f.ignored...)
}

// Reset clears the recorded matches.
func (f *Filter) Reset() {
	if f == nil {
		return
	}
	f.mu.Lock()
	f.ignored = f.ignored[:0]
	f.mu.Unlock()
}

// HasRules reports whether any rule is defined.
func (f *Filter) HasRules() bool {
	if f == nil {
		return false
	}
	return len(f.domains) > 0 || len(f.globPatterns) > 0 || len(f.regexPatterns) > 0
}

// Stats returns the number of rules of each type.
func (f *Filter) Stats() (domains, globs, regexes int) {
	if f == nil {
		return 0, 0, 0
	}
	return len(f.domains), len(f.globPatterns), len(f.regexPatterns)
}
