package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/rewrite"
	"github.com/leonardomso/anchor/internal/scanner"
	"github.com/leonardomso/anchor/internal/stats"
)

// Apply command flag variables.
var (
	applyYes       bool
	applyDryRun    bool
	applyShowStats bool
	applyScan      scanFlags
	applyIgnore    ignoreFlags
)

// applyCmd represents the apply command.
var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Rewrite files with their matches turned into anchors",
	Long: `Scan files and wrap every URL, email and file path in an HTML anchor,
writing the result back to the file.

Only markdown, text and HTML files are rewritten. In markdown, code blocks,
code spans and existing links are left alone. Data formats (JSON, YAML,
TOML, XML) are never modified.

By default, the command runs interactively, prompting for each file.
Use --yes to apply all changes automatically (useful for CI/scripts).
Use --dry-run to preview changes without modifying files.

Examples:
  anchor apply                      # Interactive mode, scan current directory
  anchor apply ./docs               # Interactive mode, scan specific directory
  anchor apply --types=md,txt,html  # Rewrite markdown, text and HTML files
  anchor apply --dry-run            # Preview what would change
  anchor apply --yes                # Apply all changes without prompting
  anchor apply --stats              # Show performance statistics

Render options come from the render section of .anchorrc.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false,
		"Apply all changes without prompting")
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false,
		"Preview changes without modifying files")
	applyCmd.Flags().BoolVar(&applyShowStats, "stats", false,
		"Show detailed performance statistics")

	applyScan.register(applyCmd)
	applyIgnore.register(applyCmd)
}

// runApply plans the rewrite of every file and applies it interactively or
// automatically.
func runApply(cmd *cobra.Command, args []string) {
	perf := stats.New()
	path := getPathArg(args)

	cfg, err := loadConfig(path, overrides(cmd, &applyScan, &applyIgnore))
	exitOnError(err, "Error loading config")

	// Phase 1: Scan for files
	perf.StartScan()
	files, err := scanner.FindFilesWithOptions(scanOptions(path, cfg))
	exitOnError(err, "Error scanning directory")
	files = rewritableFiles(files)
	perf.EndScan(len(files))

	fmt.Printf("Found %d rewritable file(s)\n", len(files))

	// Phase 2: Plan
	perf.StartExtract()
	flt, err := newFilter(cfg)
	exitOnError(err, "Error creating filter")
	opts, exts, err := cfg.Options(flt.Exclude())
	exitOnError(err, "Error building render options")

	rw := rewrite.New(nil, opts, exts...)
	changes, err := rw.PlanAll(files)
	if err != nil {
		if cfg.Scan.Strict {
			exitOnError(err, "Error planning changes")
		}
		logger.Warn("skipping files", zap.Error(err))
	}
	perf.EndExtract(countReplacements(changes), 0, 0)

	if len(changes) == 0 {
		fmt.Println("\nNothing to linkify.")
		printApplyStats(perf)
		return
	}

	fmt.Println()
	fmt.Print(rewrite.Preview(changes))

	if applyDryRun {
		fmt.Println("Dry-run mode: no files were modified.")
		printApplyStats(perf)
		return
	}

	// Phase 3: Apply
	perf.StartRender()
	var results []rewrite.Result
	if applyYes {
		results = rewrite.ApplyAll(changes)
		fmt.Println(rewrite.Summary(results))
	} else {
		var quit bool
		results, quit = promptApply(os.Stdin, os.Stdout, changes)
		fmt.Println()
		printPromptResults(os.Stdout, results)
		if quit {
			perf.EndRender(modifiedFiles(results))
			printApplyStats(perf)
			os.Exit(2)
		}
	}
	perf.EndRender(modifiedFiles(results))

	logger.Debug("apply finished", zap.Object("stats", perf))
	printApplyStats(perf)
}

func printApplyStats(perf *stats.Stats) {
	if applyShowStats {
		fmt.Print(perf.String())
	}
}

func rewritableFiles(files []string) []string {
	out := files[:0:0]
	for _, f := range files {
		if rewrite.Rewritable(f) {
			out = append(out, f)
		} else {
			logger.Debug("not rewritable", zap.String("file", f))
		}
	}
	return out
}

func countReplacements(changes []rewrite.FileChanges) int {
	n := 0
	for _, fc := range changes {
		n += fc.Total
	}
	return n
}

func modifiedFiles(results []rewrite.Result) int {
	n := 0
	for _, r := range results {
		if r.Applied > 0 {
			n++
		}
	}
	return n
}

// promptApply asks before rewriting each file. quit reports that the user
// answered q. After q or the end of input the remaining files are recorded
// as declined.
func promptApply(in io.Reader, out io.Writer, changes []rewrite.FileChanges) (results []rewrite.Result, quit bool) {
	reader := bufio.NewReader(in)
	applyAll := false

	for i := 0; i < len(changes); i++ {
		fc := changes[i]

		if applyAll {
			results = append(results, applyOne(out, fc))
			continue
		}

		fmt.Fprintf(out, "\nLinkify %s? (%d change(s)) [y/n/a/q/?] ", fc.FilePath, fc.Total)

		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			// End of input skips what is left.
			fmt.Fprintln(out)
			return append(results, skipped(changes[i:])...), false
		}

		switch strings.TrimSpace(strings.ToLower(input)) {
		case "y", "yes":
			results = append(results, applyOne(out, fc))

		case "n", "no":
			fmt.Fprintf(out, "Skipped %s\n", fc.FilePath)
			results = append(results, rewrite.Result{FilePath: fc.FilePath, Declined: fc.Total})

		case "a", "all":
			results = append(results, applyOne(out, fc))
			applyAll = true

		case "q", "quit":
			fmt.Fprintln(out, "\nQuitting. Remaining files were not modified.")
			return append(results, skipped(changes[i:])...), true

		case "?", "help":
			printPromptHelp(out)
			i-- // Re-prompt for this file

		default:
			fmt.Fprintln(out, "Invalid input. Use y/n/a/q/? (or type 'help')")
			i-- // Retry this file
		}
	}

	return results, false
}

func applyOne(out io.Writer, fc rewrite.FileChanges) rewrite.Result {
	result, err := rewrite.Apply(fc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintf(out, "Linkified %d match(es) in %s\n", result.Applied, fc.FilePath)
	}
	return *result
}

func skipped(changes []rewrite.FileChanges) []rewrite.Result {
	results := make([]rewrite.Result, 0, len(changes))
	for _, fc := range changes {
		results = append(results, rewrite.Result{FilePath: fc.FilePath, Declined: fc.Total})
	}
	return results
}

// printPromptHelp displays help for interactive mode options.
func printPromptHelp(out io.Writer) {
	fmt.Fprintln(out, `
Interactive mode options:
  y, yes  - Linkify this file
  n, no   - Skip this file
  a, all  - Linkify this file and all remaining files
  q, quit - Quit without touching remaining files
  ?, help - Show this help`)
}

// printPromptResults displays a summary of the interactive session.
func printPromptResults(out io.Writer, results []rewrite.Result) {
	applied := 0
	filesModified := 0
	filesSkipped := 0
	stale := 0

	for _, r := range results {
		applied += r.Applied
		stale += r.Skipped
		if r.Applied > 0 {
			filesModified++
		}
		if r.Declined > 0 {
			filesSkipped++
		}
	}

	if applied > 0 {
		fmt.Fprintf(out, "Linkified %d match(es) across %d file(s).\n", applied, filesModified)
	}
	if filesSkipped > 0 {
		fmt.Fprintf(out, "Skipped %d file(s).\n", filesSkipped)
	}
	if stale > 0 {
		fmt.Fprintf(out, "Skipped %d region(s) (file changed since preview).\n", stale)
	}
}
