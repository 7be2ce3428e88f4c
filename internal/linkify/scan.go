package linkify

import (
	"github.com/dlclark/regexp2"

	"github.com/leonardomso/anchor/internal/pattern"
)

// text is the scanned input in rune form. regexp2 reports positions in
// runes, so the pipeline works on rune indexes and converts to byte offsets
// only when a Span is built.
type text struct {
	raw     string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(raw)
}

func newText(s string) *text {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return &text{raw: s, runes: runes, offsets: offsets}
}

// at returns the rune at i, or 0 outside the input.
func (t *text) at(i int) rune {
	if i < 0 || i >= len(t.runes) {
		return 0
	}
	return t.runes[i]
}

// slice returns the runes [from, to) as a string, clamping both ends.
func (t *text) slice(from, to int) string {
	from = max(from, 0)
	to = min(to, len(t.runes))
	if from >= to {
		return ""
	}
	return t.raw[t.offsets[from]:t.offsets[to]]
}

func (t *text) span(start, end int) Span {
	return Span{
		Start: t.offsets[start],
		End:   t.offsets[end],
		Text:  t.raw[t.offsets[start]:t.offsets[end]],
	}
}

// rawMatch is one hit of the combined pattern before repair.
type rawMatch struct {
	start int
	end   int
	m     *regexp2.Match
}

// group returns the last capture of the named group and whether the group
// took part in the match.
func (r rawMatch) group(name string) (string, bool) {
	g := r.m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

func (r rawMatch) value(name string) string {
	v, _ := r.group(name)
	return v
}

// scan calls yield for every hit of the combined pattern, left to right.
// Scanning stops early when yield returns false.
func scan(t *text, yield func(rawMatch) bool) {
	re := pattern.Compiled().Final
	m, err := re.FindRunesMatch(t.runes)
	for m != nil && err == nil {
		if !yield(rawMatch{start: m.Index, end: m.Index + m.Length, m: m}) {
			return
		}
		m, err = re.FindNextMatch(m)
	}
}
