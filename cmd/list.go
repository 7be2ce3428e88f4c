package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/filter"
	"github.com/leonardomso/anchor/internal/helpers"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/output"
	"github.com/leonardomso/anchor/internal/parser"
	"github.com/leonardomso/anchor/internal/scanner"
	"github.com/leonardomso/anchor/internal/stats"
)

// Flag variables for the list command.
var (
	listFormat      string
	listOutputFile  string
	listKinds       []string
	listShowStats   bool
	listShowIgnored bool
	listScan        scanFlags
	listIgnore      ignoreFlags
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List the URLs, emails and file paths found in files",
	Long: `Scan a directory for files and list every match.

If no path is provided, scans the current directory.
By default, scans only markdown files (.md).
Use --types to scan additional file types.

Examples:
  anchor list                          # Scan current directory (markdown only)
  anchor list ./docs                   # Scan specific directory
  anchor list --types=md,txt,html      # Scan markdown, text and HTML files
  anchor list --types=json,yaml,toml   # Scan string values of data files
  anchor list --kinds=email            # Only list email addresses
  anchor list --format=json            # Output JSON to stdout
  anchor list --output=report.md       # Write Markdown report to file
  anchor list --output=report.msgpack  # Write MessagePack report to file
  anchor list --stats                  # Show performance statistics

Note: --format and --output are mutually exclusive.

Ignore patterns:
  anchor list --ignore-domain=localhost,example.com
  anchor list --ignore-pattern="*.local/*"
  anchor list --ignore-regex="@noreply\\."
  anchor list --show-ignored           # Show which matches were ignored`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"Output format for stdout: "+strings.Join(output.ValidFormats(), ", "))
	listCmd.Flags().StringVarP(&listOutputFile, "output", "o", "",
		"Write report to file (format inferred from extension: .json, .yaml, .xml, .md, .msgpack)")
	listCmd.Flags().StringSliceVarP(&listKinds, "kinds", "k", nil,
		"Only list these kinds: url, email, file")
	listCmd.Flags().BoolVar(&listShowStats, "stats", false,
		"Show detailed performance statistics")
	listCmd.Flags().BoolVar(&listShowIgnored, "show-ignored", false,
		"Show which matches were ignored and why")

	listScan.register(listCmd)
	listIgnore.register(listCmd)
}

// runList is the main entry point for the list command.
func runList(cmd *cobra.Command, args []string) {
	perf := stats.New()
	path := getPathArg(args)

	cfg, err := loadConfig(path, overrides(cmd, &listScan, &listIgnore))
	exitOnError(err, "Error loading config")

	format, outFile := listFormat, listOutputFile
	if format == "" && outFile == "" {
		format, outFile = cfg.Output.Format, cfg.Output.File
	}
	exitOnError(validateListFlags(format, outFile), "Invalid flags")
	structured := format != "" && format != "text"

	keep, err := kindSet(listKinds)
	exitOnError(err, "Invalid kinds")

	// Phase 1: Scan for files
	perf.StartScan()
	opts := scanOptions(path, cfg)
	files, err := scanner.FindFilesWithOptions(opts)
	exitOnError(err, "Error scanning directory")
	perf.EndScan(len(files))

	if !structured {
		fmt.Printf("Found %d file(s) of type(s): %s\n", len(files), strings.Join(opts.Types, ", "))
	}

	// Phase 2: Extract and filter
	perf.StartExtract()
	all, err := extract(cmd.Context(), files, cfg)
	exitOnError(err, "Error parsing files")

	flt, err := newFilter(cfg)
	exitOnError(err, "Error creating filter")
	skip, err := kindSet(cfg.Ignore.Kinds)
	exitOnError(err, "Invalid ignore kinds")

	links := filterLinks(all, flt, keep, skip)
	report := &output.Report{
		GeneratedAt: time.Now(),
		Files:       files,
		Links:       links,
		Ignored:     flt.Ignored(),
	}
	summary := report.Summary()
	perf.EndExtract(len(all), summary.Unique, summary.Ignored)

	logger.Debug("list finished", zap.Object("stats", perf))

	// Phase 3: Output
	switch {
	case structured:
		exitOnError(output.Write(os.Stdout, report, output.Format(strings.ToLower(format))), "Error formatting output")
		if listShowStats {
			enc := json.NewEncoder(os.Stderr)
			enc.SetIndent("", "  ")
			exitOnError(enc.Encode(perf.ToJSON()), "Error writing stats")
		}
	case outFile != "":
		exitOnError(output.WriteToFile(report, outFile), "Error writing file")
		fmt.Printf("Wrote report to %s\n", outFile)
		printSummary(os.Stdout, summary)
		if listShowStats {
			fmt.Print(perf.String())
		}
	default:
		printText(os.Stdout, report, listShowIgnored)
		if listShowStats {
			fmt.Print(perf.String())
		}
	}
}

// validateListFlags checks for invalid flag combinations.
func validateListFlags(format, outFile string) error {
	if format != "" && outFile != "" {
		return fmt.Errorf("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}
	if format != "" && format != "text" && !output.IsValidFormat(format) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			format, strings.Join(output.ValidFormats(), ", "))
	}
	if outFile != "" {
		if _, err := output.InferFormat(outFile); err != nil {
			return err
		}
	}
	return nil
}

var (
	fileColor    = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	ignoredColor = color.New(color.FgYellow)
)

func kindColor(k linkify.Kind) *color.Color {
	switch k {
	case linkify.KindURL:
		return color.New(color.FgBlue)
	case linkify.KindEmail:
		return color.New(color.FgMagenta)
	case linkify.KindFile:
		return color.New(color.FgCyan)
	default:
		return mutedColor
	}
}

// printSummary prints the one-line count of a report.
func printSummary(w io.Writer, s output.Summary) {
	fmt.Fprintf(w, "\nSummary: %d match(es), %d unique | %s | %s | %s",
		s.Total, s.Unique,
		kindColor(linkify.KindURL).Sprintf("%d urls", s.URLs),
		kindColor(linkify.KindEmail).Sprintf("%d emails", s.Emails),
		kindColor(linkify.KindFile).Sprintf("%d files", s.Files))
	if s.Ignored > 0 {
		fmt.Fprintf(w, " | %s", ignoredColor.Sprintf("%d ignored", s.Ignored))
	}
	fmt.Fprintln(w)
}

// printText prints matches grouped by file, in scan order.
func printText(w io.Writer, report *output.Report, showIgnored bool) {
	summary := report.Summary()
	printSummary(w, summary)
	fmt.Fprintln(w)

	if len(report.Links) == 0 {
		if summary.Ignored > 0 {
			fmt.Fprintln(w, "All matches were ignored by filter rules.")
		} else {
			fmt.Fprintln(w, "No matches found.")
		}
	}

	current := ""
	for _, l := range report.Links {
		if l.FilePath != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = l.FilePath
			fileColor.Fprintln(w, current)
		}
		printLink(w, l)
	}

	if showIgnored {
		printIgnored(w, report.Ignored)
	}
}

func printLink(w io.Writer, l parser.Link) {
	pos := helpers.PadRight(fmt.Sprintf("%d:%d", l.Line, l.Column), 9)
	kind := kindColor(l.Kind()).Sprint(helpers.PadRight(l.Kind().String(), 6))
	fmt.Fprintf(w, "  %s %s %s", pos, kind, helpers.TruncateURL(l.Text(), 80))
	if l.Key != "" {
		fmt.Fprintf(w, "  %s", mutedColor.Sprint(helpers.TruncateText(l.Key, 40)))
	}
	fmt.Fprintln(w)
}

// printIgnored displays the matches that were ignored by filter rules.
func printIgnored(w io.Writer, ignored []filter.IgnoreReason) {
	if len(ignored) == 0 {
		return
	}

	fmt.Fprintf(w, "\n=== Ignored (%d) ===\n\n", len(ignored))
	for _, ig := range ignored {
		fmt.Fprintf(w, "  %s %s\n", ignoredColor.Sprint("[IGNORED]"), ig.Text)
		fmt.Fprintf(w, "            File: %s", ig.File)
		if ig.Line > 0 {
			fmt.Fprintf(w, ":%d", ig.Line)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "            Reason: %s %q\n\n", ig.Type, ig.Rule)
	}
}
