// Package pattern assembles the regular expressions that recognise URLs,
// email addresses and file URIs in free text.
//
// The expressions use lookahead, which Go's RE2-based regexp package does not
// support, so they are compiled with regexp2 in ECMAScript mode: \b, \w and \d
// only consider ASCII characters. Every field of interest is captured by a
// named group. The same name may appear in several alternatives; those groups
// share one slot, so a field is read the same way whichever branch matched.
package pattern

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/leonardomso/anchor/internal/dictionary"
)

// Named groups exposed by the combined pattern.
const (
	GroupURL           = "url"
	GroupEmail         = "email"
	GroupFile          = "file"
	GroupProtocol      = "protocol"
	GroupByProtocol    = "byProtocol"
	GroupHost          = "host"
	GroupIPv4          = "ipv4"
	GroupIPv6          = "ipv6"
	GroupPort          = "port"
	GroupPath          = "path"
	GroupSecondPath    = "secondPath"
	GroupQuery         = "query"
	GroupFragment      = "fragment"
	GroupEmailProtocol = "emailProtocol"
	GroupLocal         = "local"
	GroupEmailHost     = "emailHost"
	GroupFileProtocol  = "fileProtocol"
	GroupFileName      = "fileName"
)

// Options used for every compiled expression.
const Options = regexp2.ECMAScript | regexp2.IgnoreCase

const (
	emailChars    = "[a-z0-9!#$%&'*+=?^_`{|}~-]+"
	emailLocal    = emailChars + `(?:\.` + emailChars + `)*`
	domainLabel   = `[a-z0-9]+(?:-+[a-z0-9]+)*`
	octet         = `(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`
	ipv4          = `(?:` + octet + `\.){3}` + octet
	ipv6Body      = `(?:[a-f0-9:]+:+)+[a-f0-9]+`
	protocol      = `(?:https?:|ftps?:)\/\/`
	allowedInPath = `a-zA-Z\d\-._~!$&*+,;=:@%'"\[\]()`
	port          = `(?::(?<port>\d{1,5}))?`
)

// DomainWithTLD matches one or more dot-terminated labels followed by a
// known top-level domain.
func DomainWithTLD() string {
	return `(?:` + domainLabel + `\.)+(?:` + dictionary.TLDAlternation() + `)`
}

// DomainWithAnyTLD is DomainWithTLD with an unconstrained final label. It is
// only accepted after an explicit protocol.
func DomainWithAnyTLD() string {
	return fmt.Sprintf(`(?:%s\.)+[a-z0-9][a-z0-9-]{0,%d}[a-z0-9]`,
		domainLabel, dictionary.MaxTLDLength()-2)
}

// fqdn matches the host part of a URL: protocol-optional host with port, or
// anything non-blank following a protocol.
func fqdn() string {
	host := `(?<protocol>` + protocol + `)?` +
		`(?:(?<host>` + DomainWithTLD() + `)` +
		`|(?<host>(?<ipv4>` + ipv4 + `))` +
		`|(?<protocol>` + protocol + `)(?<host>\[(?<ipv6>` + ipv6Body + `)\]|` + DomainWithAnyTLD() + `))`
	byProtocol := `(?<byProtocol>(?<protocol>` + protocol + `)\S+)`

	return `(?:` + host + `(?!@\w)` + port + `|` + byProtocol + `)`
}

// path matches an optional /path, ?query and #fragment. extra is appended
// to the character class of every segment after the first, which lets the
// non-Latin variant accept letters outside ASCII there.
func path(extra string) string {
	return `(?:` +
		`(?<path>\/(?:[` + allowedInPath + `]+(?:\/[` + allowedInPath + extra + `]*)*)?)?` +
		`(?:\?(?<query>[` + allowedInPath + `\/?]*))?` +
		`(?:\#(?<fragment>[` + allowedInPath + `\/?]*))?` +
		`)?`
}

// nonLatinURL lets a URL continue past the last ASCII word boundary with
// non-Latin letters. The tail is captured as secondPath.
func nonLatinURL() string {
	nl := dictionary.NonLatinAlphabetRanges
	tail := `(?<secondPath>(?:[` + allowedInPath + `\/` + nl + `][a-zA-Z\d\-_~+=\/` + nl + `]+)*)`
	return fqdn() + path(nl) + `\b` + tail
}

// URL matches a URL in either of its two forms.
func URL() string {
	return `(?<url>` + nonLatinURL() + `|\b` + fqdn() + path("") + `\b\/*)`
}

// Email matches an address with an optional mailto: prefix.
func Email() string {
	return `(?<email>\b(?<emailProtocol>mailto:)?(?<local>` + emailLocal + `)@` +
		`(?<emailHost>` + DomainWithTLD() + `|` + ipv4 + `)\b)`
}

// File matches a file:/// URI. fileName holds the last path segment.
func File() string {
	return `(?<file>(?<fileProtocol>file:\/\/\/)(?:[a-z]+:(?:\/|\\)+)?(?:(?<fileName>[\w.]+[\/\\]*))+)`
}

// IP matches a dotted-quad or bracketed IPv6 address.
func IP() string {
	return `(?:` + ipv4 + `|\[` + ipv6Body + `\])`
}

// Final is the ordered union URL | Email | File. Leftmost alternatives win.
func Final() string {
	return URL() + `|` + Email() + `|` + File()
}

// anchored wraps expr so it has to match the whole input.
func anchored(expr string) string {
	return `^(?:` + expr + `)\z`
}

// Bundle holds the compiled expressions. It is immutable once built.
type Bundle struct {
	Final *regexp2.Regexp
	IP    *regexp2.Regexp
	Email *regexp2.Regexp
	File  *regexp2.Regexp
	URL   *regexp2.Regexp
}

var (
	compiled     *Bundle
	compiledOnce sync.Once
)

// Compiled returns the process-wide bundle, compiling it on first use.
func Compiled() *Bundle {
	compiledOnce.Do(func() {
		compiled = &Bundle{
			Final: regexp2.MustCompile(Final(), Options),
			IP:    regexp2.MustCompile(anchored(IP()), Options),
			Email: regexp2.MustCompile(anchored(Email()), Options),
			File:  regexp2.MustCompile(anchored(File()), Options),
			URL:   regexp2.MustCompile(anchored(URL()), Options),
		}
	})
	return compiled
}

// matches reports whether re accepts input. regexp2 only fails on timeouts,
// which are not configured, so an error counts as no match.
func matches(re *regexp2.Regexp, input string) bool {
	ok, err := re.MatchString(input)
	return err == nil && ok
}

// ValidateIP reports whether input is exactly an IPv4 or bracketed IPv6 address.
func ValidateIP(input string) bool {
	return matches(Compiled().IP, input)
}

// ValidateEmail reports whether input is exactly an email address.
func ValidateEmail(input string) bool {
	return matches(Compiled().Email, input)
}

// ValidateFile reports whether input is exactly a file:/// URI.
func ValidateFile(input string) bool {
	return matches(Compiled().File, input)
}

// ValidateURL reports whether input is exactly a URL or an IP address.
func ValidateURL(input string) bool {
	b := Compiled()
	return matches(b.URL, input) || matches(b.IP, input)
}
