// Package pdfbackend selects and drives the PDF rendering engine. Two
// engines are supported: a pure-Go document writer that needs no external
// binaries, and headless Chrome printing the HTML output. The engine is
// resolved once at startup and injected into the PDF builder.
package pdfbackend

import (
	"fmt"
	"os"
	"os/exec"
)

// Kind identifies the resolved PDF engine
type Kind string

const (
	// KindDirect writes the PDF with the pure-Go engine
	KindDirect Kind = "direct"
	// KindChrome prints the HTML rendition through headless Chrome
	KindChrome Kind = "chrome"
	// KindNone means no engine is usable; PDF builds fail with NoBackendError
	KindNone Kind = "none"
)

// BackendEnvVar selects the engine explicitly: "direct", "chrome", or "none".
// Empty or unset means automatic selection.
const BackendEnvVar = "RESUME_PDF_BACKEND"

// ChromePathEnvVar points at the Chrome binary when it is not on PATH
const ChromePathEnvVar = "CHROME_PATH"

var chromeBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
}

// NoBackendError indicates a PDF build was requested but no engine is usable
type NoBackendError struct {
	Requested string
}

func (e *NoBackendError) Error() string {
	if e.Requested != "" {
		return fmt.Sprintf("no PDF backend available: %q was requested but is not usable", e.Requested)
	}
	return "no PDF backend available"
}

// Resolve picks the PDF engine, honoring RESUME_PDF_BACKEND when set.
// Automatic selection prefers the direct engine since it has no external
// dependencies.
func Resolve() Kind {
	return ResolveName(os.Getenv(BackendEnvVar))
}

// ResolveName picks the PDF engine from an explicit name; empty means
// automatic selection
func ResolveName(name string) Kind {
	switch name {
	case "direct":
		return KindDirect
	case "chrome":
		if chromeAvailable() {
			return KindChrome
		}
		return KindNone
	case "none":
		return KindNone
	default:
		return KindDirect
	}
}

// chromeAvailable reports whether a Chrome binary can be found
func chromeAvailable() bool {
	if p := os.Getenv(ChromePathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return true
		}
		return false
	}
	for _, name := range chromeBinaries {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
