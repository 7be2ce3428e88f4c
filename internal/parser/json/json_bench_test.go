package jsonparser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leonardomso/anchor/internal/parser"
)

// BenchmarkValidateAndParse measures region extraction from a package manifest.
func BenchmarkValidateAndParse(b *testing.B) {
	content := createManifest(50)
	p := New()

	b.ResetTimer()
	for bn := 0; bn < b.N; bn++ {
		_, _ = p.ValidateAndParse("package.json", content)
	}
}

// BenchmarkLinks measures extraction followed by scanning.
func BenchmarkLinks(b *testing.B) {
	content := createManifest(50)
	p := New()

	b.ResetTimer()
	for bn := 0; bn < b.N; bn++ {
		regions, _ := p.ValidateAndParse("package.json", content)
		parser.LinksFromRegions("package.json", content, regions)
	}
}

// createManifest creates a manifest with n contributors, each with a site
// and an email address.
func createManifest(n int) []byte {
	var sb strings.Builder
	sb.WriteString("{\n  \"name\": \"anchor-demo\",\n  \"homepage\": \"https://example.com\",\n  \"contributors\": [\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",\n")
		}
		id := strconv.Itoa(i)
		sb.WriteString("    {\"name\": \"dev " + id + "\", \"url\": \"dev" + id + ".example.org\", \"email\": \"dev" + id + "@example.org\"}")
	}
	sb.WriteString("\n  ]\n}\n")
	return []byte(sb.String())
}
