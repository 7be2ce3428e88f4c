package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/config"
	"github.com/leonardomso/anchor/internal/filter"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/parser"
	"github.com/leonardomso/anchor/internal/scanner"

	// Import parser subpackages to trigger their init() registration.
	_ "github.com/leonardomso/anchor/internal/parser/json"
	_ "github.com/leonardomso/anchor/internal/parser/markdown"
	_ "github.com/leonardomso/anchor/internal/parser/text"
	_ "github.com/leonardomso/anchor/internal/parser/toml"
	_ "github.com/leonardomso/anchor/internal/parser/xml"
	_ "github.com/leonardomso/anchor/internal/parser/yaml"
)

// defaultTypes are scanned when neither flags nor config select types.
var defaultTypes = []string{"md"}

// scanFlags are the file selection flags of list, apply and interactive.
type scanFlags struct {
	types   []string
	include []string
	exclude []string
	strict  bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.types, "types", "T", defaultTypes,
		"File types to scan (comma-separated): "+strings.Join(parser.SupportedFileTypes(), ", "))
	cmd.Flags().StringSliceVar(&f.include, "include", nil,
		"Only scan files matching these globs (relative to path)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil,
		"Skip files matching these globs (relative to path)")
	cmd.Flags().BoolVar(&f.strict, "strict", false,
		"Fail on malformed files instead of skipping them")
}

// ignoreFlags are the ignore rule flags; they add to the config's rules.
type ignoreFlags struct {
	domains  []string
	patterns []string
	regex    []string
	kinds    []string
}

func (f *ignoreFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.domains, "ignore-domain", nil,
		"Domains to ignore, includes subdomains (can be repeated or comma-separated)")
	cmd.Flags().StringSliceVar(&f.patterns, "ignore-pattern", nil,
		"Glob patterns to ignore (can be repeated)")
	cmd.Flags().StringSliceVar(&f.regex, "ignore-regex", nil,
		"Regex patterns to ignore (can be repeated)")
	cmd.Flags().StringSliceVar(&f.kinds, "ignore-kind", nil,
		"Match kinds to leave alone: url, email, file")
}

// overrides turns the flags into a config that is merged over the file
// config. Types only override when given on the command line.
func overrides(cmd *cobra.Command, sf *scanFlags, inf *ignoreFlags) *config.Config {
	cli := &config.Config{}
	if sf != nil {
		if cmd.Flags().Changed("types") {
			cli.Types = sf.types
		}
		cli.Scan = config.ScanConfig{Include: sf.include, Exclude: sf.exclude, Strict: sf.strict}
	}
	if inf != nil {
		cli.Ignore = config.IgnoreConfig{
			Domains:  inf.domains,
			Patterns: inf.patterns,
			Regex:    inf.regex,
			Kinds:    inf.kinds,
		}
	}
	return cli
}

// loadConfig finds the config for path unless --no-config is set, layers
// cli over it and validates the result.
func loadConfig(path string, cli *config.Config) (*config.Config, error) {
	cfg := &config.Config{}

	if !noConfig {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.FindAndLoad(path)
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		switch {
		case cfg.Path() == "":
			logger.Debug("no config file found", zap.String("from", path))
		case cfg.IsEmpty():
			logger.Debug("config file sets nothing", zap.String("path", cfg.Path()))
		default:
			logger.Debug("loaded config", zap.String("path", cfg.Path()))
		}
	}

	cfg.Merge(cli)

	if err := cfg.Validate(parser.SupportedFileTypes()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// scanOptions selects the files under path that cfg asks for.
func scanOptions(path string, cfg *config.Config) scanner.ScanOptions {
	types := defaultTypes
	if cfg.HasTypes() {
		types = cfg.Types
	}
	return scanner.ScanOptions{
		Root:    path,
		Types:   types,
		Include: cfg.Scan.Include,
		Exclude: cfg.Scan.Exclude,
	}
}

// newFilter builds the ignore filter of cfg. It is never nil.
func newFilter(cfg *config.Config) (*filter.Filter, error) {
	return filter.New(filter.Config{
		Domains:       cfg.Ignore.Domains,
		GlobPatterns:  cfg.Ignore.Patterns,
		RegexPatterns: cfg.Ignore.Regex,
	})
}

// kindSet parses kind names. An empty list yields nil.
func kindSet(names []string) (map[linkify.Kind]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(map[linkify.Kind]bool, len(names))
	for _, name := range names {
		k, ok := linkify.ParseKind(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown match kind %q (valid: url, email, file)", name)
		}
		set[k] = true
	}
	return set, nil
}

// filterLinks drops links the filter ignores, recording them, and links of
// a skipped kind. A nil keep keeps every kind.
func filterLinks(links []parser.Link, flt *filter.Filter, keep, skip map[linkify.Kind]bool) []parser.Link {
	kept := make([]parser.Link, 0, len(links))
	for _, l := range links {
		if skip[l.Kind()] || (keep != nil && !keep[l.Kind()]) {
			continue
		}
		if flt.ShouldIgnore(l.Match, l.FilePath, l.Line) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// extract runs the parsers over files.
func extract(ctx context.Context, files []string, cfg *config.Config) ([]parser.Link, error) {
	links, err := parser.ExtractLinks(ctx, files, cfg.Scan.Strict, logger)
	if err != nil {
		return nil, fmt.Errorf("extracting matches: %w", err)
	}
	return links, nil
}

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// getPathArg returns the path argument or "." as default.
func getPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
