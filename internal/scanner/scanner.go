// Package scanner finds the files to linkify under a path.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// typeExtensions lists the extensions of types that have more than one.
var typeExtensions = map[string][]string{
	"md":   {".md", ".mdx", ".markdown"},
	"yaml": {".yaml", ".yml"},
	"yml":  {".yaml", ".yml"},
	"txt":  {".txt", ".text"},
	"html": {".html", ".htm"},
	"htm":  {".html", ".htm"},
}

// ExtensionsForType returns the extensions of a type name ("md", "json").
func ExtensionsForType(typeName string) []string {
	typeName = strings.ToLower(strings.TrimPrefix(typeName, "."))
	if exts, ok := typeExtensions[typeName]; ok {
		return exts
	}
	return []string{"." + typeName}
}

// FindFiles walks root and returns the files with one of the given
// extensions, in lexical order. Hidden directories such as .git are skipped.
// A root that is a file is returned as is when its extension matches.
func FindFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, nil
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindFilesByTypes is FindFiles for type names.
func FindFilesByTypes(root string, types []string) ([]string, error) {
	var extensions []string
	seen := map[string]bool{}
	for _, t := range types {
		for _, ext := range ExtensionsForType(t) {
			if !seen[ext] {
				seen[ext] = true
				extensions = append(extensions, ext)
			}
		}
	}
	return FindFiles(root, extensions)
}

// ScanOptions selects the files to scan.
type ScanOptions struct {
	// Root is the directory (or file) to scan.
	Root string

	// Types are the file types to include (e.g. "md", "txt", "html").
	Types []string

	// Include keeps only files matching one of these globs, when set.
	Include []string

	// Exclude drops files matching one of these globs.
	Exclude []string
}

// FindFilesWithOptions finds files by type, then applies the include and
// exclude globs to their paths relative to Root.
func FindFilesWithOptions(opts ScanOptions) ([]string, error) {
	files, err := FindFilesByTypes(opts.Root, opts.Types)
	if err != nil {
		return nil, err
	}

	if len(opts.Include) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Include, true)
		if err != nil {
			return nil, err
		}
	}

	if len(opts.Exclude) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Exclude, false)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// CompileGlobs compiles patterns, naming the first bad one in the error.
func CompileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// filterByGlobPatterns keeps the files matching any pattern when include is
// set, and the files matching none otherwise.
func filterByGlobPatterns(files []string, root string, patterns []string, include bool) ([]string, error) {
	compiled, err := CompileGlobs(patterns)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(files))
	for _, f := range files {
		relPath, err := filepath.Rel(root, f)
		if err != nil || relPath == "." {
			relPath = f
		}
		relPath = filepath.ToSlash(relPath)

		if matchesAnyGlob(relPath, compiled) == include {
			result = append(result, f)
		}
	}

	return result, nil
}

func matchesAnyGlob(path string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}
