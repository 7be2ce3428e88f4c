// Package linkify finds URLs, email addresses and file URIs in free text and
// wraps them in anchor markup.
//
// List scans and classifies. Render runs the whole pipeline and splices the
// generated markup back between the untouched parts of the input. Both are
// pure functions and safe for concurrent use.
//
// Awareness of HTML is heuristic: a match that is the quoted value of an
// attribute, or the visible text of an existing anchor, is skipped. No markup
// is parsed.
package linkify

import "strings"

// List returns the matches in input, ordered and non-overlapping.
func List(input string) []Match {
	if input == "" {
		return nil
	}

	t := newText(input)
	var found []Match
	lastEnd := 0

	scan(t, func(r rawMatch) bool {
		// A repaired match can reach past the start of the next raw one.
		if r.start < lastEnd {
			return true
		}

		end := extend(t, r.start, r.end)
		if insideAttribute(t, r.start, end) || insideAnchor(t, r.start, end) {
			return true
		}

		found = append(found, classify(r, t.span(r.start, end)))
		lastEnd = end
		return true
	})

	return found
}

// Render returns input with every match replaced by Transform's output.
// Extensions rewrite the input first, in order. When nothing is found the
// (extended) input is returned as is.
func Render(input string, opts *Options, exts ...Extension) string {
	input = Extend(input, exts...)

	found := List(input)
	if len(found) == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input) * 2)
	last := 0
	for _, m := range found {
		span := m.Bounds()
		b.WriteString(input[last:span.Start])
		b.WriteString(Transform(m, opts))
		last = span.End
	}
	b.WriteString(input[last:])
	return b.String()
}

// Extend applies exts to input in order. It is the first step of Render,
// exposed for callers that need the scanned text itself.
func Extend(input string, exts ...Extension) string {
	for _, ext := range exts {
		input = ext.apply(input)
	}
	return input
}

// Count returns the number of matches of each kind in input.
func Count(input string) map[Kind]int {
	counts := map[Kind]int{}
	for _, m := range List(input) {
		counts[m.Kind()]++
	}
	return counts
}
