package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/anchor/internal/parser"
)

func linkTexts(content string) []string {
	b := []byte(content)
	var texts []string
	for _, l := range parser.LinksFromRegions("test.md", b, Regions(b)) {
		texts = append(texts, l.Text())
	}
	return texts
}

func TestRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "BareURL",
			content: "Visit https://example.com today.",
			want:    []string{"https://example.com"},
		},
		{
			name:    "InlineLink",
			content: "Read the [docs](https://example.com/docs).",
			want:    []string{"https://example.com/docs"},
		},
		{
			name:    "Email",
			content: "Questions go to team@example.org.",
			want:    []string{"team@example.org"},
		},
		{
			name:    "FencedCodeSkipped",
			content: "Before example.com\n\n```sh\ncurl https://skipped.com\n```\n\nAfter example.org\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "IndentedCodeSkipped",
			content: "Some text\n\n    http://skipped.com\n\nend\n",
			want:    nil,
		},
		{
			name:    "CodeSpanSkipped",
			content: "Use `example.net` or example.org",
			want:    []string{"example.org"},
		},
		{
			name:    "URLInLinkText",
			content: "See [the docs at example.com](https://example.com/docs)",
			want:    []string{"example.com", "https://example.com/docs"},
		},
		{
			name:    "Strikethrough",
			content: "Old host was ~~del.com~~ now.",
			want:    []string{"del.com"},
		},
		{
			name:    "Emphasis",
			content: "Try **bold.com** or _em.org_.",
			want:    []string{"bold.com", "em.org"},
		},
		{
			name:    "NoLinks",
			content: "# Title\n\n- one\n- two\n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, linkTexts(tt.content))
		})
	}
}

func TestRegions_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Regions(nil))
	assert.Empty(t, Regions([]byte("  \n\n ")))
}

func TestRegions_ExactOffsets(t *testing.T) {
	t.Parallel()

	content := []byte("# Title\n\nGo to example.org\n\n```\nx.com\n```\n")
	regions := Regions(content)
	require.NotEmpty(t, regions)

	for _, r := range regions {
		assert.True(t, r.Exact)
		assert.Equal(t, r.Text, string(content[r.Offset:r.Offset+len(r.Text)]))
	}

	links := parser.LinksFromRegions("test.md", content, regions)
	require.Len(t, links, 1)
	assert.Equal(t, 3, links[0].Line)
	assert.Equal(t, 7, links[0].Column)
}

func TestRegions_LinkTextNotExact(t *testing.T) {
	t.Parallel()

	content := []byte("See [the docs at example.com](https://example.com/docs) and ![logo at a.org](x.png).")
	var exact, linked []string
	for _, r := range Regions(content) {
		assert.Equal(t, r.Text, string(content[r.Offset:r.Offset+len(r.Text)]))
		if r.Exact {
			exact = append(exact, r.Text)
		} else {
			linked = append(linked, r.Text)
		}
	}

	assert.Equal(t, []string{"the docs at example.com", "logo at a.org"}, linked)
	assert.Equal(t, []string{"See [", "](https://example.com/docs) and ![", "](x.png)."}, exact)
}

func TestParser_ValidateAndParse(t *testing.T) {
	t.Parallel()

	p := New()
	assert.Equal(t, []string{".md", ".mdx", ".markdown"}, p.Extensions())

	regions, err := p.ValidateAndParse("test.md", []byte("see example.com"))
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, 0, regions[0].Offset)
}

func TestParser_Registered(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.md", "b.mdx", "c.markdown"} {
		p, ok := parser.GetParserForFile(name)
		require.True(t, ok, name)
		assert.IsType(t, &Parser{}, p)
	}
}
