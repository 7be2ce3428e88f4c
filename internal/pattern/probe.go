package pattern

import (
	"sort"
	"strings"
)

// probeCorpus exercises every branch of Final.
var probeCorpus = strings.Join([]string{
	"file:///some/file/path/filename.pdf",
	"mailto:e+_mail.me@sub.domain.com",
	"http://sub.domain.co.uk:3000/p/a/t/h_(asd)/h?q=abc123#dfdf",
	"http://www.عربي.com",
	"http://127.0.0.1:3000/p/a/t_(asd)/h?q=abc123#dfdf",
	"http://[2a00:1450:4025:401::67]/k/something",
	"a.org/abc/ი_გგ",
}, "\n")

// Probe runs the combined pattern over a fixed corpus and returns the sorted
// names of the groups that captured something. A healthy bundle reports
// every Group* name.
func Probe() []string {
	re := Compiled().Final
	seen := map[string]struct{}{}

	m, err := re.FindStringMatch(probeCorpus)
	for m != nil && err == nil {
		for _, g := range m.Groups() {
			if g.Name == "" || g.Name == "0" || len(g.Captures) == 0 {
				continue
			}
			seen[g.Name] = struct{}{}
		}
		m, err = re.FindNextMatch(m)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupNames returns the named groups declared by the combined pattern.
func GroupNames() []string {
	var names []string
	for _, name := range Compiled().Final.GetGroupNames() {
		if isNumeric(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
