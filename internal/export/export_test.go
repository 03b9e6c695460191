package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/theme"
)

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	resume := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF"), 0o600))

	err := Write(Options{
		OutDir:     out,
		Site:       content.Default(),
		Theme:      theme.Dark,
		ThemeKey:   theme.DefaultStorageKey,
		Year:       2026,
		ResumePath: resume,
	})
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `class="dark"`)
	assert.Contains(t, string(page), `data-static="true"`)
	assert.Contains(t, string(page), `href="#connect"`)
	assert.Contains(t, string(page), `data-theme-key="`+theme.DefaultStorageKey+`"`)
	assert.Contains(t, string(page), "window.__portfolioTheme", "the saved choice is restored without a server")
	assert.Contains(t, string(page), `id="mobile-menu"`)

	for _, name := range []string{"app.css", "app.js"} {
		assert.FileExists(t, filepath.Join(out, "static", name))
	}
	assert.FileExists(t, filepath.Join(out, "Resume-Arda_BrettWestley 2025.pdf"))
}

func TestWrite_SystemThemeWithoutHintIsLight(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, Write(Options{OutDir: out, Site: content.Default(), Theme: theme.System}))

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `class="light"`)
}

func TestWrite_MissingResumeIsSkipped(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, Write(Options{
		OutDir:     out,
		Site:       content.Default(),
		Theme:      theme.Light,
		ResumePath: filepath.Join(out, "absent.pdf"),
	}))
	assert.NoFileExists(t, filepath.Join(out, "Resume-Arda_BrettWestley 2025.pdf"))
}

func TestWrite_RequiresOutDir(t *testing.T) {
	assert.Error(t, Write(Options{Site: content.Default()}))
}
