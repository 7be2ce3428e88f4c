package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubParser returns its text as a single exact region.
type stubParser struct {
	extensions []string
	err        error
}

func newStubParser(exts ...string) *stubParser {
	return &stubParser{extensions: exts}
}

func (s *stubParser) Extensions() []string { return s.extensions }

func (s *stubParser) ValidateAndParse(_ string, content []byte) ([]Region, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []Region{{Text: string(content), Offset: 0, Exact: true}}, nil
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("RegistersEveryExtension", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		p := newStubParser(".md", ".mdx", ".markdown")

		r.Register(p)

		for _, ext := range p.Extensions() {
			got, ok := r.Get(ext)
			assert.True(t, ok)
			assert.Same(t, p, got)
		}
	})

	t.Run("OverwritesExisting", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		p1 := newStubParser(".txt")
		p2 := newStubParser(".txt")

		r.Register(p1)
		r.Register(p2)

		got, ok := r.Get(".txt")
		require.True(t, ok)
		assert.Same(t, p2, got)
	})

	t.Run("NormalizesExtension", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		p := newStubParser(".md")
		r.Register(p)

		for _, ext := range []string{".md", "md", ".MD", "MD", " md "} {
			got, ok := r.Get(ext)
			assert.True(t, ok, "extension %q", ext)
			assert.Same(t, p, got)
		}
	})
}

func TestRegistry_GetForFile(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	p := newStubParser(".json")
	r.Register(p)

	tests := []struct {
		name     string
		filename string
		found    bool
	}{
		{"PlainName", "data.json", true},
		{"WithPath", "/a/b/c/data.json", true},
		{"UpperCase", "DATA.JSON", true},
		{"OtherExtension", "data.yaml", false},
		{"NoExtension", "Makefile", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := r.GetForFile(tt.filename)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestRegistry_SupportedTypes(t *testing.T) {
	t.Parallel()

	t.Run("SortedWithoutDots", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		r.Register(newStubParser(".yaml", ".yml"))
		r.Register(newStubParser(".json"))

		assert.Equal(t, []string{"json", "yaml", "yml"}, r.SupportedTypes())
	})

	t.Run("EmptyRegistry", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, NewRegistry().SupportedTypes())
	})
}

func TestRegistry_ExtensionsForTypes(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newStubParser(".md", ".json"))

	t.Run("MapsTypes", func(t *testing.T) {
		t.Parallel()
		exts, err := r.ExtensionsForTypes([]string{"md", "JSON"})
		require.NoError(t, err)
		assert.Equal(t, []string{".md", ".json"}, exts)
	})

	t.Run("UnknownType", func(t *testing.T) {
		t.Parallel()
		_, err := r.ExtensionsForTypes([]string{"md", "rst"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rst")
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		exts, err := r.ExtensionsForTypes(nil)
		require.NoError(t, err)
		assert.Empty(t, exts)
	})
}

func TestRegistry_HasParser(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newStubParser(".toml"))

	assert.True(t, r.HasParser("toml"))
	assert.True(t, r.HasParser(".TOML"))
	assert.False(t, r.HasParser(".xml"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var wg sync.WaitGroup
	for rangeIdx := 0; rangeIdx < 20; rangeIdx++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register(newStubParser(".txt"))
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.HasParser(".txt")
			r.SupportedTypes()
		}()
	}
	wg.Wait()

	assert.True(t, r.HasParser(".txt"))
}

func TestNormalizeExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{".md", ".md"},
		{"md", ".md"},
		{".MD", ".md"},
		{"", "."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeExtension(tt.input))
		})
	}
}
