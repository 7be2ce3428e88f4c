package linkify

// Kind identifies the variant of a Match.
type Kind int

// Match kinds.
const (
	KindPlain Kind = iota
	KindURL
	KindEmail
	KindFile
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindFile:
		return "file"
	default:
		return "plain"
	}
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "url":
		return KindURL, true
	case "email":
		return KindEmail, true
	case "file":
		return KindFile, true
	case "plain":
		return KindPlain, true
	default:
		return KindPlain, false
	}
}

// Span locates a match in the scanned input. Start and End are byte offsets,
// End is exclusive, and input[Start:End] == Text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Bounds returns the span itself. It is promoted to every match variant.
func (s Span) Bounds() Span {
	return s
}

// Match is one classified occurrence. The set of implementations is closed:
// URLMatch, EmailMatch, FileMatch and PlainMatch.
type Match interface {
	Bounds() Span
	Kind() Kind
	match()
}

// URLMatch is a web address. Optional fields are empty when absent.
type URLMatch struct {
	Span
	Protocol string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string
	IPv4     string
	IPv6     string

	// ConfirmedByProtocol is set when only the leading protocol made the
	// text a URL. Host and Path are never set in that case.
	ConfirmedByProtocol bool
}

// EmailMatch is an email address, optionally with a mailto: prefix.
type EmailMatch struct {
	Span
	Protocol string
	Local    string
	Host     string
}

// FileMatch is a file:/// URI.
type FileMatch struct {
	Span
	Protocol      string
	FileName      string
	FilePath      string
	FileDirectory string
}

// PlainMatch is a match that fits no other variant.
type PlainMatch struct {
	Span
}

func (URLMatch) Kind() Kind   { return KindURL }
func (EmailMatch) Kind() Kind { return KindEmail }
func (FileMatch) Kind() Kind  { return KindFile }
func (PlainMatch) Kind() Kind { return KindPlain }

func (URLMatch) match()   {}
func (EmailMatch) match() {}
func (FileMatch) match()  {}
func (PlainMatch) match() {}

// Protocol returns the protocol written in the matched text, if any.
func Protocol(m Match) string {
	switch v := m.(type) {
	case URLMatch:
		return v.Protocol
	case EmailMatch:
		return v.Protocol
	case FileMatch:
		return v.Protocol
	default:
		return ""
	}
}

// Field is a named classified value, used for display.
type Field struct {
	Name  string
	Value string
}

// Fields lists the non-empty classified values of m in a stable order.
func Fields(m Match) []Field {
	var fields []Field
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}

	switch v := m.(type) {
	case URLMatch:
		add("protocol", v.Protocol)
		add("host", v.Host)
		add("port", v.Port)
		add("path", v.Path)
		add("query", v.Query)
		add("fragment", v.Fragment)
		add("ipv4", v.IPv4)
		add("ipv6", v.IPv6)
		if v.ConfirmedByProtocol {
			add("confirmed_by_protocol", "true")
		}
	case EmailMatch:
		add("protocol", v.Protocol)
		add("local", v.Local)
		add("host", v.Host)
	case FileMatch:
		add("protocol", v.Protocol)
		add("file_name", v.FileName)
		add("file_path", v.FilePath)
		add("file_directory", v.FileDirectory)
	}
	return fields
}

// Host returns the host of URL and email matches.
func Host(m Match) string {
	switch v := m.(type) {
	case URLMatch:
		return v.Host
	case EmailMatch:
		return v.Host
	default:
		return ""
	}
}
