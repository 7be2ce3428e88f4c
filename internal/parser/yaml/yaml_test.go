package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/anchor/internal/parser"
)

func parseLinks(t *testing.T, content string) []parser.Link {
	t.Helper()
	b := []byte(content)
	regions, err := New().ValidateAndParse("test.yaml", b)
	require.NoError(t, err)
	return parser.LinksFromRegions("test.yaml", b, regions)
}

func TestParser_Extensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".yaml", ".yml"}, New().Extensions())
}

func TestParser_ValidateAndParse(t *testing.T) {
	t.Parallel()

	t.Run("PlainScalar", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "name: demo\nhomepage: https://example.com\n")
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].Text())
		assert.Equal(t, "homepage", links[0].Key)
		assert.Equal(t, 2, links[0].Line)
		assert.Equal(t, 11, links[0].Column)
		assert.True(t, links[0].Exact)
		assert.Equal(t, 21, links[0].Offset)
	})

	t.Run("QuotedScalars", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "a: \"example.com\"\nb: 'example.org'\n")
		require.Len(t, links, 2)
		assert.True(t, links[0].Exact)
		assert.Equal(t, 4, links[0].Offset)
		assert.True(t, links[1].Exact)
		assert.Equal(t, 21, links[1].Offset)
	})

	t.Run("NestedAndSequences", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "project:\n  links:\n    - example.com\n    - mail: team@example.org\n")
		require.Len(t, links, 2)
		assert.Equal(t, "project.links[0]", links[0].Key)
		assert.Equal(t, "team@example.org", links[1].Text())
		assert.Equal(t, "project.links[1].mail", links[1].Key)
	})

	t.Run("BlockScalarIsNotExact", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "description: |\n  See example.com\n  for details\n")
		require.Len(t, links, 1)
		assert.Equal(t, "example.com", links[0].Text())
		assert.False(t, links[0].Exact)
		assert.Equal(t, -1, links[0].Offset)
		assert.Equal(t, 1, links[0].Line)
	})

	t.Run("URLAsKey", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "https://example.com: home\n")
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].Key)
	})

	t.Run("MultipleDocuments", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "url: one.example.com\n---\nurl: two.example.com\n")
		require.Len(t, links, 2)
		assert.Equal(t, 1, links[0].Line)
		assert.Equal(t, 3, links[1].Line)
	})

	t.Run("AliasesNotDuplicated", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, "base: &home example.com\ncopy: *home\n")
		assert.Len(t, links, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		regions, err := New().ValidateAndParse("test.yaml", []byte("\n"))
		require.NoError(t, err)
		assert.Empty(t, regions)
	})
}

func TestParser_Invalid(t *testing.T) {
	t.Parallel()

	_, err := New().ValidateAndParse("test.yaml", []byte("key: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}
