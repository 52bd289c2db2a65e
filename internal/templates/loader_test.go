package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedThemes(t *testing.T) {
	tests := []struct {
		format string
		theme  string
		ext    string
	}{
		{"html", "modern", "html"},
		{"html", "minimal", "html"},
		{"markdown", "github", "md"},
		{"markdown", "modern", "md"},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.theme, func(t *testing.T) {
			content, err := Load("", tt.format, tt.theme, tt.ext)
			require.NoError(t, err)
			assert.Contains(t, content, "{{.PersonalInfo.Name}}")
		})
	}
}

func TestLoad_EmbeddedThemeMissing(t *testing.T) {
	_, err := Load("", "html", "corporate", "html")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "corporate", notFound.Theme)
	assert.Equal(t, "html", notFound.Format)
	assert.Contains(t, err.Error(), "html/themes/corporate.html")
}

func TestLoad_DiskOverride(t *testing.T) {
	dir := t.TempDir()
	themeDir := filepath.Join(dir, "html", "themes")
	require.NoError(t, os.MkdirAll(themeDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "custom.html"), []byte("<p>{{.PersonalInfo.Name}}</p>"), 0644))

	content, err := Load(dir, "html", "custom", "html")
	require.NoError(t, err)
	assert.Equal(t, "<p>{{.PersonalInfo.Name}}</p>", content)
}

func TestLoad_DiskMissingNamesPath(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir, "html", "modern", "html")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, filepath.Join(dir, "html", "themes", "modern.html"), notFound.Path)
}

func TestList(t *testing.T) {
	themes, err := List("html", "html")
	require.NoError(t, err)
	assert.Contains(t, themes, "modern")
	assert.Contains(t, themes, "minimal")
}
