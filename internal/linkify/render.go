package linkify

import "strings"

// Ellipsis marks the cut point of truncated text.
const Ellipsis = "…"

// Default protocols for matches written without one.
const (
	DefaultURLProtocol   = "http://"
	DefaultEmailProtocol = "mailto:"
	DefaultFileProtocol  = "file:///"
)

// Transform renders a single match. A nil opts renders a plain anchor.
//
// Special transforms are checked first and win outright. An excluded match
// is returned as its original text.
func Transform(m Match, opts *Options) string {
	if opts == nil {
		opts = &Options{}
	}
	text := m.Bounds().Text

	for _, st := range opts.SpecialTransforms {
		if st.Test != nil && st.Transform != nil && st.Test.MatchString(text) {
			return st.Transform(m)
		}
	}

	if exclude, _ := opts.Exclude.Eval(m); exclude {
		return text
	}

	var b strings.Builder
	b.Grow(len(text)*2 + 16)
	b.WriteString("<a")

	attrs, _ := opts.Attributes.Eval(m)
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		if !attr.Bare {
			b.WriteString(`="`)
			b.WriteString(attr.Value)
			b.WriteByte('"')
		}
	}

	b.WriteString(` href="`)
	b.WriteString(effectiveProtocol(m, opts))
	b.WriteString(text)
	b.WriteString(`">`)
	b.WriteString(visibleText(m, opts))
	b.WriteString("</a>")
	return b.String()
}

// effectiveProtocol is empty when the text already has a protocol, the
// configured one otherwise, falling back to a default per kind.
func effectiveProtocol(m Match, opts *Options) string {
	if Protocol(m) != "" {
		return ""
	}
	if p, _ := opts.Protocol.Eval(m); p != "" {
		return p
	}
	switch m.Kind() {
	case KindEmail:
		return DefaultEmailProtocol
	case KindFile:
		return DefaultFileProtocol
	default:
		return DefaultURLProtocol
	}
}

func visibleText(m Match, opts *Options) string {
	text := m.Bounds().Text
	limit, _ := opts.Truncate.Eval(m)
	if limit <= 0 {
		return text
	}
	middle, _ := opts.MiddleTruncation.Eval(m)
	return Truncate(text, limit, middle)
}

// Truncate shortens s to limit characters plus an ellipsis. With middle set
// it keeps floor(limit/2) leading and ceil(limit/2) trailing characters;
// otherwise it keeps the first limit. Text within the limit is unchanged.
func Truncate(s string, limit int, middle bool) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if !middle {
		return string(runes[:limit]) + Ellipsis
	}
	head := limit / 2
	tail := limit - head
	return string(runes[:head]) + Ellipsis + string(runes[len(runes)-tail:])
}
