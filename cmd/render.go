package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/config"
	"github.com/leonardomso/anchor/internal/linkify"
)

// Flag variables for the render command.
var (
	renderProtocol string
	renderTruncate int
	renderMiddle   bool
	renderAttrs    []string
	renderCopy     bool
	renderIgnore   ignoreFlags
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Print a file or stdin with its matches turned into anchors",
	Long: `Render a single input with every URL, email and file path wrapped
in an HTML anchor. With no argument, or "-", stdin is read.

The input is rendered as is: markdown code blocks are not skipped.
Use 'apply' to rewrite files while leaving code alone.

Examples:
  anchor render notes.txt
  echo "mail me at hi@example.com" | anchor render
  anchor render notes.txt --protocol=https:// --truncate=30 --middle
  anchor render notes.txt --attr target=_blank --attr download
  anchor render notes.txt --copy       # Also copy the result`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderProtocol, "protocol", "",
		"Protocol for matches written without one (default http://, mailto: or file:///)")
	renderCmd.Flags().IntVar(&renderTruncate, "truncate", 0,
		"Truncate visible text to this many characters (0 disables)")
	renderCmd.Flags().BoolVar(&renderMiddle, "middle", false,
		"Truncate in the middle instead of at the end")
	renderCmd.Flags().StringArrayVar(&renderAttrs, "attr", nil,
		"Attribute added to every anchor, as name=value or a bare name (can be repeated)")
	renderCmd.Flags().BoolVar(&renderCopy, "copy", false,
		"Copy the rendered output to the clipboard")

	renderIgnore.register(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	input, err := readInput(source, cmd.InOrStdin())
	exitOnError(err, "Error reading input")

	attrs, err := parseAttributes(renderAttrs)
	exitOnError(err, "Invalid --attr")

	cli := overrides(cmd, nil, &renderIgnore)
	cli.Render = config.RenderConfig{
		Protocol:         renderProtocol,
		Truncate:         renderTruncate,
		MiddleTruncation: renderMiddle,
		Attributes:       attrs,
	}

	cfg, err := loadConfig(configDir(source), cli)
	exitOnError(err, "Error loading config")

	out, err := renderText(input, cfg)
	exitOnError(err, "Error building render options")

	counts := linkify.Count(input)
	logger.Debug("rendered",
		zap.String("source", source),
		zap.Int("urls", counts[linkify.KindURL]),
		zap.Int("emails", counts[linkify.KindEmail]),
		zap.Int("files", counts[linkify.KindFile]))

	fmt.Fprint(cmd.OutOrStdout(), out)

	if renderCopy {
		exitOnError(clipboard.WriteAll(out), "Error copying to clipboard")
		fmt.Fprintln(os.Stderr, "Copied to clipboard.")
	}
}

// renderText renders input with the render and ignore options of cfg.
func renderText(input string, cfg *config.Config) (string, error) {
	flt, err := newFilter(cfg)
	if err != nil {
		return "", err
	}
	opts, exts, err := cfg.Options(flt.Exclude())
	if err != nil {
		return "", err
	}
	return linkify.Render(input, opts, exts...), nil
}

func readInput(source string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// configDir is where config lookup starts for source.
func configDir(source string) string {
	if source == "-" {
		return "."
	}
	return filepath.Dir(source)
}

// parseAttributes reads name=value pairs; a name alone is a bare attribute.
func parseAttributes(raw []string) ([]config.AttributeConfig, error) {
	attrs := make([]config.AttributeConfig, 0, len(raw))
	for _, r := range raw {
		name, value, hasValue := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("attribute %q has no name", r)
		}
		attrs = append(attrs, config.AttributeConfig{Name: name, Value: value, Bare: !hasValue})
	}
	return attrs, nil
}
