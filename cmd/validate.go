package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/pattern"
)

// validators maps the validate targets to their checks.
var validators = map[string]func(string) bool{
	"url":   pattern.ValidateURL,
	"email": pattern.ValidateEmail,
	"file":  pattern.ValidateFile,
	"ip":    pattern.ValidateIP,
}

var validateCmd = &cobra.Command{
	Use:   "validate url|email|file|ip <value>...",
	Short: "Check whether values are exactly a URL, email, file path or IP",
	Long: `Check each value against the full pattern for the given kind.
The whole value must match; "see example.com" is not a URL.

A URL may also be a bare IP address.

Exit codes:
  0 - Every value is valid
  1 - At least one value is invalid

Examples:
  anchor validate url example.com https://go.dev/doc
  anchor validate email hi@example.com
  anchor validate file file:///home/user/notes.txt
  anchor validate ip 192.168.0.1`,
	ValidArgs: []string{"url", "email", "file", "ip"},
	Args:      cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		checkPatterns()
		invalid, err := runValidate(cmd.OutOrStdout(), args[0], args[1:])
		exitOnError(err, "")
		if invalid > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// checkPatterns logs when a named group of the combined pattern can no
// longer capture anything.
func checkPatterns() {
	declared, reachable := pattern.GroupNames(), pattern.Probe()
	if len(reachable) == len(declared) {
		logger.Debug("pattern groups reachable", zap.Int("groups", len(declared)))
		return
	}
	logger.Warn("pattern groups unreachable",
		zap.Strings("declared", declared),
		zap.Strings("reachable", reachable))
}

// runValidate prints one line per value and returns how many were invalid.
func runValidate(w io.Writer, kind string, values []string) (int, error) {
	check, ok := validators[strings.ToLower(kind)]
	if !ok {
		return 0, fmt.Errorf("unknown kind %q (valid: url, email, file, ip)", kind)
	}

	valid := color.New(color.FgGreen).Sprint("valid  ")
	bad := color.New(color.FgRed).Sprint("invalid")

	invalid := 0
	for _, v := range values {
		if check(v) {
			fmt.Fprintf(w, "%s %s\n", valid, v)
			continue
		}
		invalid++
		fmt.Fprintf(w, "%s %s\n", bad, v)
	}
	return invalid, nil
}
