package ui

import "github.com/leonardomso/anchor/internal/parser"

// FilesFoundMsg is sent when the files to scan have been discovered.
type FilesFoundMsg struct {
	Err   error
	Files []string
}

// LinksExtractedMsg is sent when matches have been extracted from files.
type LinksExtractedMsg struct {
	Err     error
	Links   []parser.Link
	Unique  int // Number of distinct match texts
	Ignored int // Matches dropped by ignore rules
}

// CopiedMsg is sent after the selected markup was copied to the clipboard.
type CopiedMsg struct {
	Err  error
	Text string
}
