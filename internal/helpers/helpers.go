// Package helpers provides shared utility functions used across the application.
// Widths are measured in terminal cells, so wide characters count twice.
package helpers

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateText shortens text to maxWidth cells, adding "..." if truncated.
// Returns empty string if input is empty or only whitespace. A maxWidth too
// small to hold the ellipsis leaves the text unchanged.
func TruncateText(text string, maxWidth int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return truncate(text, maxWidth)
}

// TruncateURL is TruncateText without trimming.
func TruncateURL(url string, maxWidth int) string {
	return truncate(url, maxWidth)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= len(ellipsis) || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// CountUniqueStrings returns the number of unique strings in a slice.
func CountUniqueStrings(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	return len(seen)
}
