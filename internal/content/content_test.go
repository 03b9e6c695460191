package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Contacts[0].Label = "changed"
	assert.Equal(t, "Email", Default().Contacts[0].Label)
}

func TestOpensNewContext(t *testing.T) {
	assert.False(t, OpensNewContext("mailto:me@example.com"))
	assert.False(t, OpensNewContext("MAILTO:me@example.com"))
	assert.True(t, OpensNewContext("https://github.com/someone"))
	assert.True(t, OpensNewContext("http://example.com"))
}

func TestContact_HasLink(t *testing.T) {
	assert.False(t, Contact{Label: "Location", Value: "Cebu"}.HasLink())
	assert.False(t, Contact{Label: "Location", Value: "Cebu", Link: "  "}.HasLink())
	assert.True(t, Contact{Label: "Email", Value: "x", Link: "mailto:x@example.com"}.HasLink())
}

func TestParse_ReplacesListsAndKeepsProfile(t *testing.T) {
	site, err := Parse([]byte(`
projects:
  - title: Only One
    tech_stack: [Go]
contacts: []
`))
	require.NoError(t, err)

	require.Len(t, site.Projects, 1)
	assert.Equal(t, "Only One", site.Projects[0].Title)
	assert.Empty(t, site.Contacts)
	assert.Equal(t, "Brett.dev", site.Profile.Brand)
}

func TestParse_RejectsDuplicateKeys(t *testing.T) {
	_, err := Parse([]byte(`
contacts:
  - {icon: mail, label: Email, value: a, link: "mailto:a@example.com"}
  - {icon: mail, label: Email, value: b}
`))
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestParse_RejectsDuplicateTechTags(t *testing.T) {
	_, err := Parse([]byte(`
projects:
  - title: P
    tech_stack: [Go, Go]
`))
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestParse_RejectsMissingRequiredField(t *testing.T) {
	_, err := Parse([]byte(`
skills:
  - title: ""
    icon: code-2
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills[0].title")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("blog: true\n"))
	require.Error(t, err)
}

func TestParse_RejectsMalformedLink(t *testing.T) {
	_, err := Parse([]byte(`
contacts:
  - {icon: github, label: GitHub, value: me, link: "not a url"}
`))
	require.Error(t, err)
}

func TestMarkdown(t *testing.T) {
	html, ok := Markdown("Fixed **missed deadlines**.")
	require.True(t, ok)
	assert.Contains(t, html, "<strong>missed deadlines</strong>")

	html, ok = Markdown("<script>alert(1)</script>")
	require.True(t, ok)
	assert.NotContains(t, html, "<script>")

	html, ok = Markdown("   ")
	assert.True(t, ok)
	assert.Empty(t, html)
}

func TestMarkdown_IsolatesExternalLinks(t *testing.T) {
	html, ok := Markdown("See [the repo](https://github.com/x/y) and https://example.com or [about](#about) or <a@b.c> today")
	require.True(t, ok)

	assert.Contains(t, html, `<a href="https://github.com/x/y" target="_blank" rel="noopener noreferrer">the repo</a>`)
	assert.Contains(t, html, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">`)
	assert.Contains(t, html, `<a href="#about">about</a>`)
	assert.Contains(t, html, `<a href="mailto:a@b.c">`)
	assert.Equal(t, 2, strings.Count(html, `target="_blank"`))
}

func TestSource_ReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contacts: []\n"), 0o644))

	src := NewSource(Default())
	require.NoError(t, src.Reload(path))
	assert.Empty(t, src.Current().Contacts)

	require.NoError(t, os.WriteFile(path, []byte("contacts: [\n"), 0o644))
	require.Error(t, src.Reload(path))
	assert.Empty(t, src.Current().Contacts)
	assert.NotEmpty(t, src.Current().Skills)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects: []\n"), 0o644))

	src := NewSource(Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, src, zerolog.Nop()))

	require.NoError(t, os.WriteFile(path, []byte("projects: []\ncontacts: []\n"), 0o644))

	assert.Eventually(t, func() bool {
		return len(src.Current().Contacts) == 0
	}, 5*time.Second, 50*time.Millisecond)
}
