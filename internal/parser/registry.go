package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileParser splits a file of one format into regions worth scanning.
type FileParser interface {
	// Extensions returns the extensions handled, with the leading dot.
	Extensions() []string

	// ValidateAndParse checks that content is well formed and returns its
	// regions. Malformed content is an error.
	ValidateAndParse(filename string, content []byte) ([]Region, error)
}

// Registry maps file extensions to parsers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]FileParser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: map[string]FileParser{}}
}

// Register adds p for each of its extensions, replacing any earlier parser.
func (r *Registry) Register(p FileParser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range p.Extensions() {
		r.parsers[normalizeExtension(ext)] = p
	}
}

// Get returns the parser for ext. The leading dot is optional.
func (r *Registry) Get(ext string) (FileParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parsers[normalizeExtension(ext)]
	return p, ok
}

// GetForFile returns the parser for filename's extension.
func (r *Registry) GetForFile(filename string) (FileParser, bool) {
	return r.Get(filepath.Ext(filename))
}

// SupportedTypes returns the registered extensions without their dot, sorted.
func (r *Registry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		types = append(types, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(types)
	return types
}

// HasParser reports whether ext has a parser.
func (r *Registry) HasParser(ext string) bool {
	_, ok := r.Get(ext)
	return ok
}

// ExtensionsForTypes maps type names ("md", "json") to extensions.
// An unknown type is an error.
func (r *Registry) ExtensionsForTypes(types []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extensions := make([]string, 0, len(types))
	for _, typeName := range types {
		ext := normalizeExtension(typeName)
		if _, ok := r.parsers[ext]; !ok {
			return nil, fmt.Errorf("unsupported file type: %s", typeName)
		}
		extensions = append(extensions, ext)
	}
	return extensions, nil
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry the format subpackages register with.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterParser registers p with the default registry.
func RegisterParser(p FileParser) {
	defaultRegistry.Register(p)
}

// GetParserForFile looks filename up in the default registry.
func GetParserForFile(filename string) (FileParser, bool) {
	return defaultRegistry.GetForFile(filename)
}

// SupportedFileTypes returns the types known to the default registry.
func SupportedFileTypes() []string {
	return defaultRegistry.SupportedTypes()
}
