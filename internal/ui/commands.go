package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/filter"
	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/parser"
	"github.com/leonardomso/anchor/internal/scanner"
)

// ScanFilesCmd returns a command that finds the files selected by opts.
func ScanFilesCmd(opts scanner.ScanOptions) tea.Cmd {
	return func() tea.Msg {
		files, err := scanner.FindFilesWithOptions(opts)
		return FilesFoundMsg{Files: files, Err: err}
	}
}

// ExtractLinksCmd extracts matches from files and drops those flt ignores.
// Reasons recorded by an earlier run of flt are cleared first.
func ExtractLinksCmd(ctx context.Context, files []string, strict bool, flt *filter.Filter, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		links, err := parser.ExtractLinks(ctx, files, strict, logger)
		if err != nil {
			return LinksExtractedMsg{Err: err}
		}

		flt.Reset()
		kept := filterLinks(links, flt)

		texts := make([]string, len(kept))
		for i, l := range kept {
			texts[i] = l.Text()
		}

		return LinksExtractedMsg{
			Links:   kept,
			Unique:  helpers.CountUniqueStrings(texts),
			Ignored: flt.IgnoredCount(),
		}
	}
}

func filterLinks(links []parser.Link, flt *filter.Filter) []parser.Link {
	if flt == nil {
		return links
	}
	kept := make([]parser.Link, 0, len(links))
	for _, l := range links {
		if !flt.ShouldIgnore(l.Match, l.FilePath, l.Line) {
			kept = append(kept, l)
		}
	}
	return kept
}

// CopyCmd copies text to the system clipboard.
func CopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: clipboard.WriteAll(text)}
	}
}
