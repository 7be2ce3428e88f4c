package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (slash-separated paths) under a temp dir.
func makeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("see example.com"), 0o644))
	}
	return root
}

func relAll(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestExtensionsForType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typeName string
		want     []string
	}{
		{"md", []string{".md", ".mdx", ".markdown"}},
		{"MD", []string{".md", ".mdx", ".markdown"}},
		{"yaml", []string{".yaml", ".yml"}},
		{"txt", []string{".txt", ".text"}},
		{"html", []string{".html", ".htm"}},
		{"json", []string{".json"}},
		{".xml", []string{".xml"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtensionsForType(tt.typeName))
		})
	}
}

func TestFindFiles(t *testing.T) {
	t.Parallel()

	t.Run("MatchesExtensions", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "a.md", "b.txt", "c.go", "docs/d.md")
		files, err := FindFiles(root, []string{".md", ".txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.txt", "docs/d.md"}, relAll(t, root, files))
	})

	t.Run("SkipsHiddenDirectories", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "visible.md", ".git/hidden.md", ".github/x/y.md")
		files, err := FindFiles(root, []string{".md"})
		require.NoError(t, err)
		assert.Equal(t, []string{"visible.md"}, relAll(t, root, files))
	})

	t.Run("CaseInsensitiveExtensions", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "README.MD", "notes.Txt")
		files, err := FindFiles(root, []string{".md", ".TXT"})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("FileAsRoot", func(t *testing.T) {
		t.Parallel()
		root := makeTree(t, "only.html")
		path := filepath.Join(root, "only.html")
		files, err := FindFiles(path, []string{".html"})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("EmptyExtensions", func(t *testing.T) {
		t.Parallel()
		files, err := FindFiles(makeTree(t, "a.md"), nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("MissingRoot", func(t *testing.T) {
		t.Parallel()
		_, err := FindFiles(filepath.Join(t.TempDir(), "missing"), []string{".md"})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFindFilesByTypes(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "a.md", "b.mdx", "c.markdown", "d.yml", "e.yaml", "f.htm", "g.html", "h.json")

	t.Run("ExpandsTypes", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, []string{"md", "html"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.mdx", "c.markdown", "f.htm", "g.html"}, relAll(t, root, files))
	})

	t.Run("DuplicateTypes", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, []string{"yaml", "yml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"d.yml", "e.yaml"}, relAll(t, root, files))
	})

	t.Run("NoTypes", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByTypes(root, nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestFindFilesWithOptions(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "root.md", "docs/readme.md", "docs/api/ref.md", "vendor/dep.md", "src/code.md")

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name: "AllFiles",
			want: []string{"docs/api/ref.md", "docs/readme.md", "root.md", "src/code.md", "vendor/dep.md"},
		},
		{
			name:    "Include",
			include: []string{"docs/**"},
			want:    []string{"docs/api/ref.md", "docs/readme.md"},
		},
		{
			name:    "Exclude",
			exclude: []string{"vendor/**", "src/**"},
			want:    []string{"docs/api/ref.md", "docs/readme.md", "root.md"},
		},
		{
			name:    "IncludeThenExclude",
			include: []string{"docs/**"},
			exclude: []string{"docs/api/**"},
			want:    []string{"docs/readme.md"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			files, err := FindFilesWithOptions(ScanOptions{
				Root:    root,
				Types:   []string{"md"},
				Include: tt.include,
				Exclude: tt.exclude,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, relAll(t, root, files))
		})
	}

	t.Run("InvalidPattern", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesWithOptions(ScanOptions{Root: root, Types: []string{"md"}, Include: []string{"[invalid"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "[invalid")
	})
}
