package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoParser is returned for a file whose extension has no parser.
var ErrNoParser = errors.New("no parser for file type")

// ExtractFile reads path and returns its links.
func (r *Registry) ExtractFile(path string) ([]Link, error) {
	p, ok := r.GetForFile(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoParser)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	regions, err := p.ValidateAndParse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return LinksFromRegions(path, content, regions), nil
}

// ExtractLinks extracts the links of every file concurrently. Links keep the
// order of files.
//
// A file that cannot be read or parsed is logged and skipped unless strict
// is set, in which case the first such error is returned.
func (r *Registry) ExtractLinks(ctx context.Context, files []string, strict bool, logger *zap.Logger) ([]Link, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(files) == 0 {
		return nil, nil
	}

	// Each goroutine owns its index.
	perFile := make([][]Link, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			links, err := r.ExtractFile(path)
			if err != nil {
				if strict {
					return err
				}
				logger.Warn("skipping file", zap.String("file", path), zap.Error(err))
				return nil
			}
			perFile[i] = links
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var links []Link
	for _, fl := range perFile {
		links = append(links, fl...)
	}
	return links, nil
}

// ExtractLinks runs Registry.ExtractLinks on the default registry.
func ExtractLinks(ctx context.Context, files []string, strict bool, logger *zap.Logger) ([]Link, error) {
	return defaultRegistry.ExtractLinks(ctx, files, strict, logger)
}
