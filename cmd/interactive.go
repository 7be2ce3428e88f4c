package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leonardomso/anchor/internal/ui"
)

var (
	interactiveScan   scanFlags
	interactiveIgnore ignoreFlags
)

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive [path]",
	Short: "Browse found matches in a terminal UI",
	Long: `Launch an interactive terminal UI listing every match found under path.

Each match shows its classified parts and the anchor it renders to,
using the render options of .anchorrc.

Controls:
  ↑/↓ or j/k    Navigate through matches
  /             Search
  f             Cycle kind filter (all, urls, emails, files)
  c             Copy the rendered anchor
  ?             Toggle help
  q             Quit`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := getPathArg(args)

		cfg, err := loadConfig(path, overrides(cmd, &interactiveScan, &interactiveIgnore))
		exitOnError(err, "Error loading config")

		flt, err := newFilter(cfg)
		exitOnError(err, "Error creating filter")
		opts, _, err := cfg.Options(flt.Exclude())
		exitOnError(err, "Error building render options")

		model := ui.New(ui.Options{
			Scan:   scanOptions(path, cfg),
			Filter: flt,
			Render: opts,
			Strict: cfg.Scan.Strict,
			Logger: logger,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running interactive mode: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveScan.register(interactiveCmd)
	interactiveIgnore.register(interactiveCmd)
}
