package toml

import (
	"strconv"
	"strings"
	"testing"
)

// BenchmarkValidateAndParse measures region extraction from a site config.
func BenchmarkValidateAndParse(b *testing.B) {
	content := createSiteConfig(50)
	p := New()

	b.ResetTimer()
	for bn := 0; bn < b.N; bn++ {
		_, _ = p.ValidateAndParse("site.toml", content)
	}
}

// createSiteConfig creates a config with n menu entries.
func createSiteConfig(n int) []byte {
	var sb strings.Builder
	sb.WriteString("baseURL = \"https://example.com/\"\ntitle = \"Demo\"\n\n[params]\ncontact = \"team@example.com\"\n\n")
	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		sb.WriteString("[[menu.main]]\nname = \"Page " + id + "\"\nurl = \"https://example.com/page/" + id + "\"\n\n")
	}
	return []byte(sb.String())
}
