// Package rewrite linkifies files in place. Only exact regions of prose
// formats are touched, so code blocks and structured data stay as they are.
package rewrite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/parser"
)

// ErrNotRewritable is returned for files whose format is not rewritten.
var ErrNotRewritable = errors.New("file type cannot be rewritten")

// rewritable are the extensions whose exact regions may receive markup.
var rewritable = []string{".md", ".mdx", ".markdown", ".txt", ".text", ".html", ".htm"}

// Rewritable reports whether path has a format Apply rewrites.
func Rewritable(path string) bool {
	return slices.Contains(rewritable, strings.ToLower(filepath.Ext(path)))
}

// Replacement is one match and the markup it becomes.
type Replacement struct {
	Text   string
	Markup string
}

// Edit replaces one region of a file.
type Edit struct {
	Start  int // byte offset of Old in the file
	End    int
	Line   int
	Column int
	Old    string
	New    string

	Replacements []Replacement
}

// FileChanges groups all edits for a single file.
type FileChanges struct {
	FilePath string
	Edits    []Edit
	Total    int // Total number of replacements
}

// Result represents the outcome of applying changes to a file.
type Result struct {
	Error    error
	FilePath string
	Applied  int
	Skipped  int // Edits whose region changed since planning
	Declined int // Replacements the user chose not to apply
}

// Rewriter plans and applies linkification of files.
type Rewriter struct {
	registry *parser.Registry
	opts     *linkify.Options
	exts     []linkify.Extension
}

// New creates a Rewriter rendering with opts and exts. A nil registry uses
// the default one.
func New(registry *parser.Registry, opts *linkify.Options, exts ...linkify.Extension) *Rewriter {
	if registry == nil {
		registry = parser.DefaultRegistry()
	}
	if opts == nil {
		opts = &linkify.Options{}
	}
	return &Rewriter{registry: registry, opts: opts, exts: exts}
}

// Plan reads path and returns the edits Apply would make. A file with
// nothing to change yields empty changes.
func (r *Rewriter) Plan(path string) (FileChanges, error) {
	fc := FileChanges{FilePath: path}

	if !Rewritable(path) {
		return fc, fmt.Errorf("%s: %w", path, ErrNotRewritable)
	}
	p, ok := r.registry.GetForFile(path)
	if !ok {
		return fc, fmt.Errorf("%s: %w", path, parser.ErrNoParser)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading %s: %w", path, err)
	}
	regions, err := p.ValidateAndParse(path, content)
	if err != nil {
		return fc, fmt.Errorf("parsing %s: %w", path, err)
	}

	markdown := isMarkdown(path)
	lines := parser.BuildLineIndex(content)

	for _, region := range regions {
		if !region.Exact || region.Offset < 0 {
			continue
		}
		edit, ok := r.planRegion(region, markdown)
		if !ok {
			continue
		}
		edit.Start = region.Offset
		edit.End = region.Offset + len(region.Text)
		edit.Line, edit.Column = parser.OffsetToLineCol(lines, region.Offset)
		fc.Edits = append(fc.Edits, edit)
		fc.Total += len(edit.Replacements)
	}

	return fc, nil
}

func (r *Rewriter) planRegion(region parser.Region, markdown bool) (Edit, bool) {
	text := linkify.Extend(region.Text, r.exts...)

	opts := *r.opts
	if markdown {
		opts.Exclude = markdownLinkGuard(text, r.opts.Exclude)
	}

	var replacements []Replacement
	for _, m := range linkify.List(text) {
		markup := linkify.Transform(m, &opts)
		if markup != m.Bounds().Text {
			replacements = append(replacements, Replacement{Text: m.Bounds().Text, Markup: markup})
		}
	}

	rendered := linkify.Render(text, &opts)
	if rendered == region.Text {
		return Edit{}, false
	}
	return Edit{Old: region.Text, New: rendered, Replacements: replacements}, true
}

// markdownLinkGuard excludes matches that already are markdown links:
// destinations, autolinks, link text equal to a URL and reference
// definitions. The guard reads text, the scanned region.
func markdownLinkGuard(text string, base linkify.Rule[bool]) linkify.Rule[bool] {
	return linkify.Func(func(m linkify.Match) bool {
		if excluded, _ := base.Eval(m); excluded {
			return true
		}
		span := m.Bounds()
		before, after := text[:span.Start], text[span.End:]

		switch {
		case strings.HasSuffix(before, "]("):
			return true
		case strings.HasSuffix(before, "<") && strings.HasPrefix(after, ">"):
			return true
		case strings.HasSuffix(before, "[") && strings.HasPrefix(after, "]"):
			return true
		}

		line := before[strings.LastIndexByte(before, '\n')+1:]
		return isReferenceDefinition(line)
	})
}

// isReferenceDefinition reports whether prefix is the start of a line like
// "[name]: " that precedes a reference URL.
func isReferenceDefinition(prefix string) bool {
	trimmed := strings.TrimSpace(prefix)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]:") {
		return false
	}
	return !strings.Contains(trimmed[1:len(trimmed)-2], "]")
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx", ".markdown":
		return true
	default:
		return false
	}
}

// PlanAll plans every file, skipping those with nothing to change. Errors
// are collected per file.
func (r *Rewriter) PlanAll(paths []string) ([]FileChanges, error) {
	var (
		changes []FileChanges
		errs    []error
	)
	for _, path := range paths {
		fc, err := r.Plan(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(fc.Edits) > 0 {
			changes = append(changes, fc)
		}
	}
	return changes, errors.Join(errs...)
}

// Preview returns a formatted string showing what changes would be made.
func Preview(changes []FileChanges) string {
	if len(changes) == 0 {
		return "Nothing to linkify."
	}

	var b strings.Builder
	total := 0
	for _, fc := range changes {
		total += fc.Total
	}

	fmt.Fprintf(&b, "Found %d match(es) to linkify across %d file(s):\n\n", total, len(changes))

	for _, fc := range changes {
		fmt.Fprintf(&b, "%s (%d change(s))\n", fc.FilePath, fc.Total)
		b.WriteString(PreviewFile(fc))
		b.WriteString("\n")
	}

	return b.String()
}

// PreviewFile lists the replacements of a single file.
func PreviewFile(fc FileChanges) string {
	var b strings.Builder
	for _, edit := range fc.Edits {
		for _, rep := range edit.Replacements {
			fmt.Fprintf(&b, "  Line %d: %s\n", edit.Line, helpers.TruncateURL(rep.Text, 60))
			fmt.Fprintf(&b, "          -> %s\n", helpers.TruncateURL(rep.Markup, 90))
		}
	}
	return b.String()
}

// Apply applies all edits to a single file. Edits are applied from the end
// of the file so earlier offsets stay valid; an edit whose region no longer
// holds the planned text is skipped.
func Apply(fc FileChanges) (*Result, error) {
	result := &Result{FilePath: fc.FilePath}

	content, err := os.ReadFile(fc.FilePath)
	if err != nil {
		result.Error = fmt.Errorf("reading file: %w", err)
		return result, result.Error
	}
	original := string(content)
	modified := original

	edits := slices.Clone(fc.Edits)
	slices.SortFunc(edits, func(a, b Edit) int { return b.Start - a.Start })

	for _, edit := range edits {
		if edit.Start < 0 || edit.End > len(modified) || modified[edit.Start:edit.End] != edit.Old {
			result.Skipped++
			continue
		}
		modified = modified[:edit.Start] + edit.New + modified[edit.End:]
		result.Applied += len(edit.Replacements)
	}

	if modified == original {
		return result, nil
	}

	info, err := os.Stat(fc.FilePath)
	if err != nil {
		result.Error = fmt.Errorf("stat file: %w", err)
		return result, result.Error
	}
	if err := os.WriteFile(fc.FilePath, []byte(modified), info.Mode().Perm()); err != nil {
		result.Error = fmt.Errorf("writing file: %w", err)
		return result, result.Error
	}

	return result, nil
}

// ApplyAll applies changes to all files and returns results.
func ApplyAll(changes []FileChanges) []Result {
	results := make([]Result, 0, len(changes))
	for _, fc := range changes {
		result, _ := Apply(fc)
		results = append(results, *result)
	}
	return results
}

// Summary returns a formatted summary of apply results.
func Summary(results []Result) string {
	var b strings.Builder

	totalApplied := 0
	totalSkipped := 0
	filesModified := 0
	var errs []string

	for _, r := range results {
		totalApplied += r.Applied
		totalSkipped += r.Skipped
		if r.Applied > 0 {
			filesModified++
		}
		if r.Error != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", r.FilePath, r.Error))
		}
	}

	if totalApplied == 0 && totalSkipped == 0 && len(errs) == 0 {
		return "No changes made."
	}

	fmt.Fprintf(&b, "Linkified %d match(es) across %d file(s).\n", totalApplied, filesModified)

	if totalSkipped > 0 {
		fmt.Fprintf(&b, "Skipped %d region(s) (file changed since preview).\n", totalSkipped)
	}

	if len(errs) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range errs {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}

	return b.String()
}
