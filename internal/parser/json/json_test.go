package jsonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/anchor/internal/parser"
)

func parseLinks(t *testing.T, content string) []parser.Link {
	t.Helper()
	b := []byte(content)
	regions, err := New().ValidateAndParse("test.json", b)
	require.NoError(t, err)
	return parser.LinksFromRegions("test.json", b, regions)
}

func TestParser_Extensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".json"}, New().Extensions())
}

func TestParser_ValidateAndParse(t *testing.T) {
	t.Parallel()

	t.Run("DocumentOrderAndKeys", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, `{
  "name": "demo",
  "homepage": "https://example.com/docs",
  "links": ["example.org", {"mail": "team@example.net"}]
}`)
		require.Len(t, links, 3)

		assert.Equal(t, "https://example.com/docs", links[0].Text())
		assert.Equal(t, "homepage", links[0].Key)
		assert.Equal(t, 3, links[0].Line)
		assert.Equal(t, 16, links[0].Column)
		assert.True(t, links[0].Exact)

		assert.Equal(t, "example.org", links[1].Text())
		assert.Equal(t, "links[0]", links[1].Key)

		assert.Equal(t, "team@example.net", links[2].Text())
		assert.Equal(t, "links[1].mail", links[2].Key)
	})

	t.Run("URLAsKey", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, `{"https://example.com": true}`)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].Text())
		assert.Equal(t, "https://example.com", links[0].Key)
	})

	t.Run("EscapedValueIsNotExact", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, `{"u": "https:\/\/example.com"}`)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].Text())
		assert.False(t, links[0].Exact)
		assert.Equal(t, -1, links[0].Offset)
		assert.Equal(t, 1, links[0].Line)
		assert.Equal(t, 8, links[0].Column)
	})

	t.Run("TopLevelString", func(t *testing.T) {
		t.Parallel()
		links := parseLinks(t, `"example.com"`)
		require.Len(t, links, 1)
		assert.Equal(t, 1, links[0].Offset)
	})

	t.Run("NonStringValuesIgnored", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parseLinks(t, `{"a": null, "b": true, "c": 1.5, "d": []}`))
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		regions, err := New().ValidateAndParse("test.json", []byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, regions)
	})
}

func TestParser_ExactRegions(t *testing.T) {
	t.Parallel()

	content := []byte(`{"a": "see example.com", "b": ["x\"y", "plain"]}`)
	regions, err := New().ValidateAndParse("test.json", content)
	require.NoError(t, err)

	for _, r := range regions {
		if r.Exact {
			assert.Equal(t, r.Text, string(content[r.Offset:r.Offset+len(r.Text)]))
		} else {
			assert.Equal(t, -1, r.Offset)
		}
	}
}

func TestParser_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"MissingValue", `{"key": }`},
		{"TrailingComma", `{"key": "value",}`},
		{"Unterminated", `{"key": "value"`},
		{"TrailingData", `{} {}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New().ValidateAndParse("test.json", []byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid JSON")
		})
	}
}

func TestOpeningQuote(t *testing.T) {
	t.Parallel()

	content := []byte(`"a\"b"`)
	assert.Equal(t, 0, openingQuote(content, 5))
	assert.Equal(t, -1, openingQuote(content, 2))
	assert.Equal(t, -1, openingQuote(content, 0))
}
