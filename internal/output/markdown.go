package output

import (
	"fmt"
	"strings"

	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/parser"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	// Pre-grow builder: estimate ~120 bytes per match + ~500 bytes header
	var b strings.Builder
	b.Grow(len(report.Links)*120 + 500)

	s := report.Summary()

	b.WriteString("# Anchor Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Files Scanned:** %d  \n", len(report.Files))
	fmt.Fprintf(&b, "**Total Matches:** %d  \n", s.Total)
	fmt.Fprintf(&b, "**Unique Matches:** %d\n\n", s.Unique)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Kind | Count |\n")
	b.WriteString("|------|-------|\n")
	fmt.Fprintf(&b, "| URL | %d |\n", s.URLs)
	fmt.Fprintf(&b, "| Email | %d |\n", s.Emails)
	fmt.Fprintf(&b, "| File | %d |\n", s.Files)
	if s.Ignored > 0 {
		fmt.Fprintf(&b, "| Ignored | %d |\n", s.Ignored)
	}
	b.WriteString("\n")

	for _, group := range groupByFile(report.Links) {
		fmt.Fprintf(&b, "## %s (%d)\n\n", escapeMarkdown(group[0].FilePath), len(group))
		b.WriteString("| Line | Kind | Match | Key |\n")
		b.WriteString("|------|------|-------|-----|\n")
		for _, l := range group {
			key := ""
			if l.Key != "" {
				key = "`" + escapeMarkdown(l.Key) + "`"
			}
			fmt.Fprintf(&b, "| %d:%d | %s | %s | %s |\n",
				l.Line, l.Column, l.Kind(), escapeMarkdown(helpers.TruncateURL(l.Text(), 60)), key)
		}
		b.WriteString("\n")
	}

	if len(report.Ignored) > 0 {
		fmt.Fprintf(&b, "## Ignored (%d)\n\n", len(report.Ignored))
		b.WriteString("| Match | File | Line | Reason | Rule |\n")
		b.WriteString("|-------|------|------|--------|------|\n")
		for _, ig := range report.Ignored {
			fmt.Fprintf(&b, "| %s | %s | %d | %s | `%s` |\n",
				escapeMarkdown(helpers.TruncateURL(ig.Text, 60)), ig.File, ig.Line, ig.Type, ig.Rule)
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// groupByFile splits links into runs of the same file, keeping their order.
func groupByFile(links []parser.Link) [][]parser.Link {
	var groups [][]parser.Link
	index := map[string]int{}
	for _, l := range links {
		i, ok := index[l.FilePath]
		if !ok {
			i = len(groups)
			index[l.FilePath] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], l)
	}
	return groups
}

// escapeMarkdown escapes special markdown characters in a string.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break tables
	s = strings.ReplaceAll(s, "|", "\\|")
	// Escape backticks
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}
