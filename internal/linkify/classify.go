package linkify

import "github.com/leonardomso/anchor/internal/pattern"

// fileProtocolLength is the length of "file:///".
const fileProtocolLength = 8

// classify turns a repaired match into its typed variant.
func classify(r rawMatch, span Span) Match {
	if _, ok := r.group(pattern.GroupURL); ok {
		return classifyURL(r, span)
	}
	if _, ok := r.group(pattern.GroupFile); ok {
		return classifyFile(r, span)
	}
	if _, ok := r.group(pattern.GroupEmail); ok {
		return EmailMatch{
			Span:     span,
			Protocol: r.value(pattern.GroupEmailProtocol),
			Local:    r.value(pattern.GroupLocal),
			Host:     r.value(pattern.GroupEmailHost),
		}
	}
	return PlainMatch{Span: span}
}

func classifyURL(r rawMatch, span Span) URLMatch {
	_, byProtocol := r.group(pattern.GroupByProtocol)

	u := URLMatch{
		Span:                span,
		Protocol:            r.value(pattern.GroupProtocol),
		Port:                r.value(pattern.GroupPort),
		IPv4:                r.value(pattern.GroupIPv4),
		IPv6:                r.value(pattern.GroupIPv6),
		Query:               r.value(pattern.GroupQuery),
		Fragment:            r.value(pattern.GroupFragment),
		ConfirmedByProtocol: byProtocol,
	}
	if !byProtocol {
		u.Host = r.value(pattern.GroupHost)
		// The path may be split in two when it ends in non-Latin letters.
		u.Path = r.value(pattern.GroupPath) + r.value(pattern.GroupSecondPath)
	}
	return u
}

func classifyFile(r rawMatch, span Span) FileMatch {
	f := FileMatch{
		Span:     span,
		Protocol: r.value(pattern.GroupFileProtocol),
		FileName: r.value(pattern.GroupFileName),
	}
	if len(span.Text) > fileProtocolLength {
		f.FilePath = span.Text[fileProtocolLength:]
	}
	if n := len(f.FilePath) - len(f.FileName); n > 0 {
		f.FileDirectory = f.FilePath[:n]
	}
	return f
}
