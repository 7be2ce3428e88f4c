package linkify

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/leonardomso/anchor/internal/dictionary"
	"github.com/leonardomso/anchor/internal/pattern"
)

// attributeSlack is added to the longest attribute name to size the window
// inspected before a quoted match.
const attributeSlack = 15

var (
	// attrValueRegex matches text ending inside a quoted attribute value.
	attrValueRegex = regexp.MustCompile(`(?i)\s[a-z0-9-]+=['"]$`)

	// cssURLRegex matches text ending inside a CSS url( ) value.
	cssURLRegex = regexp.MustCompile(`(?i): ?url\(['"]?$`)

	attributeWindow = dictionary.MaxAttributeLength() + attributeSlack
)

// extend grows the end of a raw match over characters the pattern stops
// short of: one trailing slash, then at most one closing character per
// parenthesis pair when the match leaves that pair open.
func extend(t *text, start, end int) int {
	if t.at(end) == '/' {
		end++
	}

	if !dictionary.IsClosingParenthesis(t.at(end)) {
		return end
	}
	for _, pair := range dictionary.Parentheses() {
		if t.at(end) != rune(pair.Close) {
			continue
		}
		if unbalanced(t.slice(start, end), pair) {
			end++
		}
	}
	return end
}

// unbalanced reports whether s has exactly one more opening than closing
// character of pair. For quote marks, where both are the same, it reports
// whether s holds an odd number of them.
func unbalanced(s string, pair dictionary.Pair) bool {
	opens := strings.Count(s, string(pair.Open))
	if pair.Open == pair.Close {
		return opens%2 == 1
	}
	return opens-strings.Count(s, string(pair.Close)) == 1
}

// insideAttribute reports whether the match at [start, end) is the quoted
// value of an HTML attribute or a CSS url().
func insideAttribute(t *text, start, end int) bool {
	switch string([]rune{t.at(start - 1), t.at(end)}) {
	case `""`, `''`, `()`:
	default:
		return false
	}

	window := t.slice(start-attributeWindow, start)
	return attrValueRegex.MatchString(window) || cssURLRegex.MatchString(window)
}

// insideAnchor reports whether the match at [start, end) is the visible
// text of an existing <a> element.
func insideAnchor(t *text, start, end int) bool {
	if !strings.Contains(t.slice(end, len(t.runes)), "</a>") ||
		!strings.Contains(t.slice(0, start), "<a") {
		return false
	}

	target := regexp2.Escape(t.slice(start, end))
	re, err := regexp2.Compile(
		`(?=<a)(?![\s\S]*<\/a>`+target+`)[\s\S]*?`+target+`(?!"|')`,
		pattern.Options,
	)
	if err != nil {
		return false
	}

	m, err := re.FindRunesMatch(t.runes)
	for m != nil && err == nil {
		if m.Index+m.Length == end {
			return true
		}
		m, err = re.FindNextMatch(m)
	}
	return false
}
