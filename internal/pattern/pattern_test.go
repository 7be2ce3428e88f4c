package pattern

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatch(t *testing.T, expr, input string) bool {
	t.Helper()
	re, err := regexp2.Compile(anchored(expr), Options)
	require.NoError(t, err)
	ok, err := re.MatchString(input)
	require.NoError(t, err)
	return ok
}

func TestCompiled(t *testing.T) {
	t.Parallel()

	b := Compiled()
	require.NotNil(t, b)
	assert.NotNil(t, b.Final)
	assert.NotNil(t, b.IP)
	assert.NotNil(t, b.Email)
	assert.NotNil(t, b.File)
	assert.NotNil(t, b.URL)
	assert.Same(t, b, Compiled(), "bundle is built once")
}

func TestDomainWithTLD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"example.com", true},
		{"sub.domain.co.uk", true},
		{"EXAMPLE.ORG", true},
		{"my--site.io", true},
		{"example.notatld", false},
		{"-bad.com", false},
		{"bad-.com", false},
		{"com", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, mustMatch(t, DomainWithTLD(), tt.input))
		})
	}
}

func TestDomainWithAnyTLD(t *testing.T) {
	t.Parallel()

	assert.True(t, mustMatch(t, DomainWithAnyTLD(), "example.notatld"))
	assert.True(t, mustMatch(t, DomainWithAnyTLD(), "intranet.corp-net"))
	assert.False(t, mustMatch(t, DomainWithAnyTLD(), "example.-x"))
	assert.False(t, mustMatch(t, DomainWithAnyTLD(), "a.abcdefghijklmnopqrstuvwxyz"),
		"final label is capped at the longest TLD length")
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"e+_mail.me@sub.domain.com", true},
		{"mailto:user@example.com", true},
		{"user@127.0.0.1", true},
		{"first.last@example.org", true},
		{"not an email", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example.notatld", false},
		{"user@example.com ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ValidateEmail(tt.input))
		})
	}
}

func TestValidateIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"127.0.0.1", true},
		{"255.255.255.255", true},
		{"[2a00:1450:4025:401::67]", true},
		{"999.999.999.999", false},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"2a00:1450:4025:401::67", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ValidateIP(tt.input))
		})
	}
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateFile("file:///some/file/path/filename.pdf"))
	assert.True(t, ValidateFile("file:///c:/Users/me/notes.txt"))
	assert.True(t, ValidateFile(`file:///c:\Users\me\notes.txt`))
	assert.False(t, ValidateFile("/etc/passwd"))
	assert.False(t, ValidateFile("file://host/share"))
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/path?x=1#frag", true},
		{"example.com", true},
		{"www.example.co.uk/a/b", true},
		{"http://localhost:8080", true},
		{"ftp://files.example.org", true},
		{"127.0.0.1", true},
		{"[2a00:1450:4025:401::67]", true},
		{"not a url", false},
		{"example", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ValidateURL(tt.input))
		})
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	declared := GroupNames()
	assert.ElementsMatch(t, []string{
		GroupURL, GroupEmail, GroupFile,
		GroupProtocol, GroupByProtocol, GroupHost,
		GroupIPv4, GroupIPv6, GroupPort,
		GroupPath, GroupSecondPath, GroupQuery, GroupFragment,
		GroupEmailProtocol, GroupLocal, GroupEmailHost,
		GroupFileProtocol, GroupFileName,
	}, declared)

	assert.Equal(t, declared, Probe(), "every named group is reachable")
}

func BenchmarkValidateURL(b *testing.B) {
	Compiled()
	for bn := 0; bn < b.N; bn++ {
		ValidateURL("http://sub.domain.co.uk:3000/p/a/t/h_(asd)/h?q=abc123#dfdf")
	}
}
