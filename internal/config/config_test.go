package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/anchor/internal/linkify"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	for _, file := range []string{"testdata/valid_full.yaml", "testdata/valid_full.toml"} {
		file := file
		t.Run("ValidFullConfig/"+filepath.Ext(file), func(t *testing.T) {
			t.Parallel()
			cfg, err := LoadFrom(file)
			require.NoError(t, err)
			assert.Equal(t, file, cfg.Path())

			assert.Equal(t, []string{"md", "yaml"}, cfg.Types)
			assert.Equal(t, []string{"docs/**"}, cfg.Scan.Include)
			assert.Equal(t, []string{"**/vendor/**"}, cfg.Scan.Exclude)
			assert.True(t, cfg.Scan.Strict)

			assert.Equal(t, []string{"example.com", "localhost", "internal.company.com"}, cfg.Ignore.Domains)
			assert.Equal(t, []string{"*.local/*", "*/internal/*"}, cfg.Ignore.Patterns)
			assert.Equal(t, []string{`.*\.test$`, ".*/draft/.*"}, cfg.Ignore.Regex)
			assert.Equal(t, []string{"file"}, cfg.Ignore.Kinds)

			assert.Equal(t, "https://", cfg.Render.Protocol)
			assert.Equal(t, 40, cfg.Render.Truncate)
			assert.True(t, cfg.Render.MiddleTruncation)
			assert.Equal(t, []AttributeConfig{
				{Name: "target", Value: "_blank"},
				{Name: "download", Bare: true},
			}, cfg.Render.Attributes)
			assert.Equal(t, []SpecialConfig{{Test: `\.png$`, Template: `<img src="{{.Text}}">`}}, cfg.Render.Special)
			assert.Equal(t, []ExtensionConfig{{Test: `#(\w+)`, Replace: "https://tags.example.org/$1"}}, cfg.Render.Extensions)

			assert.Equal(t, OutputConfig{Format: "json", File: "links.json"}, cfg.Output)
			assert.NoError(t, cfg.Validate([]string{"md", "yaml"}))
		})
	}

	t.Run("ValidPartialConfig", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/valid_partial.yaml")
		require.NoError(t, err)

		assert.Equal(t, []string{"example.com"}, cfg.Ignore.Domains)
		assert.Empty(t, cfg.Ignore.Patterns)
		assert.Empty(t, cfg.Ignore.Regex)
		assert.True(t, cfg.Render.IsEmpty())
		assert.False(t, cfg.HasTypes())
	})

	t.Run("EmptyFile", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/empty.yaml")
		require.NoError(t, err)
		assert.True(t, cfg.IsEmpty())
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/invalid.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing testdata/invalid.yaml")
		assert.Nil(t, cfg)
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/invalid.toml")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("FileNotExists", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/nonexistent.yaml")
		require.NoError(t, err) // Not an error, returns empty config
		require.NotNil(t, cfg)
		assert.True(t, cfg.IsEmpty())
		assert.Empty(t, cfg.Path())
	})

	t.Run("ExtraFields", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/extra_fields.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, cfg.Ignore.Domains)
	})
}

func TestLoadFrom_DirectoryInsteadOfFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFrom_PermissionDenied(t *testing.T) {
	if os.Getenv("CI") != "" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced here")
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFileName)
	err := os.WriteFile(configPath, []byte("ignore:\n  domains:\n    - test.com\n"), 0o000)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = os.Chmod(configPath, 0o644)
	})

	cfg, err := LoadFrom(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFindAndLoad(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, dir, name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Run("FindsInCurrentDir", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		write(t, tmpDir, DefaultConfigFileName, "ignore:\n  domains:\n    - test.com\n")

		cfg, err := FindAndLoad(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"test.com"}, cfg.Ignore.Domains)
		assert.Equal(t, filepath.Join(tmpDir, DefaultConfigFileName), cfg.Path())
	})

	t.Run("FindsTOML", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		write(t, tmpDir, ".anchorrc.toml", "[ignore]\ndomains = [\"toml.dev\"]\n")

		cfg, err := FindAndLoad(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"toml.dev"}, cfg.Ignore.Domains)
	})

	t.Run("YAMLBeforeTOML", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		write(t, tmpDir, ".anchorrc.toml", "[ignore]\ndomains = [\"toml.dev\"]\n")
		write(t, tmpDir, ".anchorrc.yml", "ignore:\n  domains:\n    - yml.dev\n")

		cfg, err := FindAndLoad(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"yml.dev"}, cfg.Ignore.Domains)
	})

	t.Run("FindsInParentDir", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		childDir := filepath.Join(tmpDir, "child")
		require.NoError(t, os.MkdirAll(childDir, 0o755))
		write(t, tmpDir, DefaultConfigFileName, "ignore:\n  domains:\n    - parent.com\n")

		cfg, err := FindAndLoad(childDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"parent.com"}, cfg.Ignore.Domains)
	})

	t.Run("StartsFromFile", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		write(t, tmpDir, DefaultConfigFileName, "types: [md]\n")
		write(t, tmpDir, "README.md", "# readme\n")

		cfg, err := FindAndLoad(filepath.Join(tmpDir, "README.md"))
		require.NoError(t, err)
		assert.Equal(t, []string{"md"}, cfg.Types)
	})

	t.Run("CloserConfigTakesPrecedence", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		childDir := filepath.Join(tmpDir, "child")
		require.NoError(t, os.MkdirAll(childDir, 0o755))
		write(t, tmpDir, DefaultConfigFileName, "ignore:\n  domains:\n    - parent.com\n")
		write(t, childDir, DefaultConfigFileName, "ignore:\n  domains:\n    - child.com\n")

		cfg, err := FindAndLoad(childDir)
		require.NoError(t, err)
		assert.Contains(t, cfg.Ignore.Domains, "child.com")
		assert.NotContains(t, cfg.Ignore.Domains, "parent.com")
	})
}

func TestConfig_IsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"EmptyConfig", Config{}, true},
		{"WithTypes", Config{Types: []string{"md"}}, false},
		{"WithStrict", Config{Scan: ScanConfig{Strict: true}}, false},
		{"WithDomains", Config{Ignore: IgnoreConfig{Domains: []string{"example.com"}}}, false},
		{"WithKinds", Config{Ignore: IgnoreConfig{Kinds: []string{"email"}}}, false},
		{"WithProtocol", Config{Render: RenderConfig{Protocol: "https://"}}, false},
		{"WithAttributes", Config{Render: RenderConfig{Attributes: []AttributeConfig{{Name: "rel"}}}}, false},
		{"WithOutput", Config{Output: OutputConfig{Format: "yaml"}}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.config.IsEmpty())
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	t.Parallel()

	t.Run("MergesBothConfigs", func(t *testing.T) {
		t.Parallel()
		cfg1 := &Config{
			Types:  []string{"md"},
			Ignore: IgnoreConfig{Domains: []string{"domain1.com"}, Regex: []string{"regex1"}},
			Render: RenderConfig{Protocol: "http://", Truncate: 10},
			Output: OutputConfig{Format: "text"},
		}
		cfg2 := &Config{
			Types:  []string{"yaml"},
			Scan:   ScanConfig{Exclude: []string{"vendor/**"}, Strict: true},
			Ignore: IgnoreConfig{Domains: []string{"domain2.com"}, Patterns: []string{"pattern2"}},
			Render: RenderConfig{Protocol: "https://", Attributes: []AttributeConfig{{Name: "rel", Value: "nofollow"}}},
			Output: OutputConfig{File: "out.json"},
		}

		cfg1.Merge(cfg2)

		assert.Equal(t, []string{"yaml"}, cfg1.Types)
		assert.Equal(t, []string{"vendor/**"}, cfg1.Scan.Exclude)
		assert.True(t, cfg1.Scan.Strict)
		assert.Equal(t, []string{"domain1.com", "domain2.com"}, cfg1.Ignore.Domains)
		assert.Equal(t, []string{"pattern2"}, cfg1.Ignore.Patterns)
		assert.Equal(t, []string{"regex1"}, cfg1.Ignore.Regex)
		assert.Equal(t, "https://", cfg1.Render.Protocol)
		assert.Equal(t, 10, cfg1.Render.Truncate)
		assert.Len(t, cfg1.Render.Attributes, 1)
		assert.Equal(t, OutputConfig{Format: "text", File: "out.json"}, cfg1.Output)
	})

	t.Run("MergeNilOther", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Ignore: IgnoreConfig{Domains: []string{"domain.com"}}}
		cfg.Merge(nil)
		assert.Equal(t, []string{"domain.com"}, cfg.Ignore.Domains)
	})

	t.Run("MergeEmptyOther", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Types: []string{"md"}, Ignore: IgnoreConfig{Domains: []string{"domain.com"}}}
		cfg.Merge(&Config{})
		assert.Equal(t, []string{"md"}, cfg.Types)
		assert.Len(t, cfg.Ignore.Domains, 1)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	supported := []string{"md", "json", "txt"}

	tests := []struct {
		name    string
		config  Config
		wantErr []string
	}{
		{name: "Empty", config: Config{}},
		{name: "TypesWithDot", config: Config{Types: []string{".MD", "txt"}}},
		{
			name:    "UnsupportedType",
			config:  Config{Types: []string{"md", "docx"}},
			wantErr: []string{`unsupported file type "docx"`},
		},
		{
			name:    "BadGlobs",
			config:  Config{Scan: ScanConfig{Include: []string{"[docs"}}, Ignore: IgnoreConfig{Patterns: []string{"{a"}}},
			wantErr: []string{`scan: invalid glob "[docs"`, `ignore.patterns: invalid glob "{a"`},
		},
		{
			name:    "BadRegex",
			config:  Config{Ignore: IgnoreConfig{Regex: []string{"(open"}}},
			wantErr: []string{`ignore.regex: invalid regex "(open"`},
		},
		{
			name:    "UnknownKind",
			config:  Config{Ignore: IgnoreConfig{Kinds: []string{"phone"}}},
			wantErr: []string{`unknown match kind "phone"`},
		},
		{
			name: "BadRender",
			config: Config{Render: RenderConfig{
				Truncate:   -1,
				Attributes: []AttributeConfig{{Value: "x"}},
				Special:    []SpecialConfig{{Test: ".", Template: "{{.Text"}},
				Extensions: []ExtensionConfig{{Test: "[", Replace: "x"}},
			}},
			wantErr: []string{
				"render.truncate: must not be negative",
				"render.attributes[0]: name is required",
				"render.special[0]: invalid template",
				"render.extensions[0]: invalid test",
			},
		},
		{
			name:    "UnknownFormat",
			config:  Config{Output: OutputConfig{Format: "csv"}},
			wantErr: []string{`output.format: unknown format "csv"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.config.Validate(supported)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	t.Run("NilSupportedSkipsTypes", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Types: []string{"docx"}}
		assert.NoError(t, cfg.Validate(nil))
	})
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("EmptyConfigRendersDefaults", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		opts, exts, err := cfg.Options(linkify.Rule[bool]{})
		require.NoError(t, err)
		assert.Empty(t, exts)
		assert.False(t, opts.Exclude.IsSet())
		assert.Equal(t, `<a href="http://example.com">example.com</a>`, linkify.Render("example.com", opts, exts...))
	})

	t.Run("FullConfig", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom("testdata/valid_full.yaml")
		require.NoError(t, err)

		opts, exts, err := cfg.Options(linkify.Rule[bool]{})
		require.NoError(t, err)
		require.Len(t, exts, 1)

		assert.Equal(t,
			`see <a target="_blank" download href="https://example.org">example.org</a>`,
			linkify.Render("see example.org", opts, exts...))
		assert.Equal(t, `<img src="example.org/logo.png">`, linkify.Render("example.org/logo.png", opts, exts...))
		assert.Equal(t,
			`<a target="_blank" download href="https://tags.example.org/golang">https://tags.example.org/golang</a>`,
			linkify.Render("#golang", opts, exts...))

		file := linkify.FileMatch{Span: linkify.Span{Text: "file:///tmp/notes.txt"}, Protocol: "file:///"}
		assert.Equal(t, "file:///tmp/notes.txt", linkify.Transform(file, opts))
	})

	t.Run("CombinesExcludeWithKinds", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Ignore: IgnoreConfig{Kinds: []string{"email"}}}
		exclude := linkify.Func(func(m linkify.Match) bool {
			return m.Bounds().Text == "skip.dev"
		})

		opts, _, err := cfg.Options(exclude)
		require.NoError(t, err)
		assert.Equal(t,
			`a@b.com skip.dev <a href="http://keep.dev">keep.dev</a>`,
			linkify.Render("a@b.com skip.dev keep.dev", opts))
	})

	t.Run("TemplateErrorFallsBackToText", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Render: RenderConfig{Special: []SpecialConfig{{Test: ".", Template: "{{.Missing}}"}}}}
		opts, _, err := cfg.Options(linkify.Rule[bool]{})
		require.NoError(t, err)
		assert.Equal(t, "example.com", linkify.Render("example.com", opts))
	})

	t.Run("TemplateSeesFields", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Render: RenderConfig{Special: []SpecialConfig{{
			Test:     "@",
			Template: `{{.Kind}}:{{.Host}}:{{index .Fields "local"}}`,
		}}}}
		opts, _, err := cfg.Options(linkify.Rule[bool]{})
		require.NoError(t, err)
		assert.Equal(t, "mail me: email:example.com:team", linkify.Render("mail me: team@example.com", opts))
	})

	t.Run("ExtensionSeesSurroundingText", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Render: RenderConfig{Extensions: []ExtensionConfig{
			{Test: `\Bing\b`, Replace: "ING"},
			{Test: `(?m)^#(\w+)`, Replace: "tags.example.org/$1"},
		}}}
		_, exts, err := cfg.Options(linkify.Rule[bool]{})
		require.NoError(t, err)
		require.Len(t, exts, 2)

		assert.Equal(t, "a singING bird", linkify.Extend("a singing bird", exts[0]))
		assert.Equal(t, "tags.example.org/go\nnot #here", linkify.Extend("#go\nnot #here", exts[1]))
	})

	t.Run("InvalidKind", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Ignore: IgnoreConfig{Kinds: []string{"phone"}}}
		_, _, err := cfg.Options(linkify.Rule[bool]{})
		assert.Error(t, err)
	})

	t.Run("InvalidSpecial", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Render: RenderConfig{Special: []SpecialConfig{{Test: "(", Template: "x"}}}}
		_, _, err := cfg.Options(linkify.Rule[bool]{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render.special[0]")
	})
}
