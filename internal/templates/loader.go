// Package templates provides theme template lookup for the output builders.
// Default themes are embedded at compile time; a templates directory on disk
// takes precedence when configured.
package templates

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed html/themes/*.html markdown/themes/*.md
var themeFiles embed.FS

// Load returns the template source for a theme.
//
// When dir is non-empty the template is read from
// <dir>/<format>/themes/<theme>.<ext> and the embedded defaults are not
// consulted; this lets a user fully replace a shipped theme. When dir is
// empty the embedded default themes are used.
func Load(dir, format, theme, ext string) (string, error) {
	if dir != "" {
		path := filepath.Join(dir, format, "themes", theme+"."+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", &NotFoundError{Path: path, Format: format, Theme: theme}
			}
			return "", &NotFoundError{Path: path, Format: format, Theme: theme, Cause: err}
		}
		return string(content), nil
	}

	path := format + "/themes/" + theme + "." + ext
	content, err := themeFiles.ReadFile(path)
	if err != nil {
		return "", &NotFoundError{Path: path, Format: format, Theme: theme}
	}
	return string(content), nil
}

// List returns the theme names embedded for a format
func List(format, ext string) ([]string, error) {
	entries, err := themeFiles.ReadDir(format + "/themes")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	suffix := "." + ext
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) == suffix {
			names = append(names, name[:len(name)-len(suffix)])
		}
	}
	return names, nil
}
