package ui

import (
	"fmt"
	"strings"

	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/parser"
)

// MatchItem wraps a parser.Link to implement list.Item interface.
type MatchItem struct {
	Link parser.Link

	// Markup is the anchor the match renders to.
	Markup string
}

// FilterValue returns the string used for filtering.
// Implements list.Item interface.
func (i MatchItem) FilterValue() string {
	return i.Link.Text()
}

// Title returns the main display text for the item.
// Implements list.DefaultItem interface.
func (i MatchItem) Title() string {
	return helpers.TruncateURL(i.Link.Text(), 70)
}

// Description returns secondary text for the item.
// Implements list.DefaultItem interface.
func (i MatchItem) Description() string {
	desc := fmt.Sprintf("%s | %s", i.Link.Kind(), location(i.Link))
	if i.Link.Key != "" {
		desc += " | " + helpers.TruncateText(i.Link.Key, 30)
	}
	return desc
}

func location(l parser.Link) string {
	if l.Line == 0 {
		return l.FilePath
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.Line, l.Column)
}

// DetailView returns an expanded detail view for the selected item.
func (i MatchItem) DetailView() string {
	l := i.Link
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")
	fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Kind:"), KindBadge(l.Kind()))

	for _, f := range linkify.Fields(l.Match) {
		label := helpers.PadRight(f.Name+":", 16)
		fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render(label), f.Value)
	}

	b.WriteString("│\n")
	fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("File:"), location(l))
	if l.Key != "" {
		fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Key:"), l.Key)
	}
	if !l.Exact {
		fmt.Fprintf(&b, "│ %s\n", MutedStyle.Render("Apply leaves this match unchanged."))
	}

	if i.Markup != "" {
		b.WriteString("│\n")
		fmt.Fprintf(&b, "│ %s  %s\n", DetailLabelStyle.Render("Markup:"), MarkupStyle.Render(i.Markup))
	}

	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

// LinksToItems converts links to MatchItems rendered with opts.
func LinksToItems(links []parser.Link, opts *linkify.Options) []MatchItem {
	items := make([]MatchItem, len(links))
	for i, l := range links {
		items[i] = MatchItem{Link: l, Markup: linkify.Transform(l.Match, opts)}
	}
	return items
}
