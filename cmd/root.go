package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/logging"
)

// version is set by main.go via SetVersion.
var version = "dev"

// Persistent flags shared by every command.
var (
	verbose    bool
	configPath string
	noConfig   bool
)

// logger is built before any command runs.
var logger = zap.NewNop()

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "anchor",
	Short:   "Find URLs, emails and file paths in text and turn them into links",
	Version: version,
	Long: `Anchor finds URLs, email addresses and file:/// paths in plain text
and renders them as HTML anchors.

It reads markdown, text, HTML, JSON, YAML, TOML and XML files. Use 'list'
to report matches, 'render' to linkify a single input, 'apply' to rewrite
files in place and 'interactive' for a terminal UI.

Examples:
  anchor list                       # Scan current directory
  anchor list ./docs --format=json  # Report as JSON
  anchor render notes.txt           # Print linkified text
  echo "see example.com" | anchor render -
  anchor apply --dry-run            # Preview in-place changes
  anchor validate url example.com
  anchor interactive`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log skipped files, config discovery and timings")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file to use instead of the discovered .anchorrc")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"Skip loading .anchorrc config files")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}
