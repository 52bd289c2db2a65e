package pdfbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("defaults to direct", func(t *testing.T) {
		t.Setenv(BackendEnvVar, "")
		assert.Equal(t, KindDirect, Resolve())
	})

	t.Run("explicit direct", func(t *testing.T) {
		t.Setenv(BackendEnvVar, "direct")
		assert.Equal(t, KindDirect, Resolve())
	})

	t.Run("explicit none", func(t *testing.T) {
		t.Setenv(BackendEnvVar, "none")
		assert.Equal(t, KindNone, Resolve())
	})

	t.Run("chrome with bogus path falls to none", func(t *testing.T) {
		t.Setenv(BackendEnvVar, "chrome")
		t.Setenv(ChromePathEnvVar, "/nonexistent/chrome")
		assert.Equal(t, KindNone, Resolve())
	})

	t.Run("unknown value falls back to direct", func(t *testing.T) {
		t.Setenv(BackendEnvVar, "wkhtmltopdf")
		assert.Equal(t, KindDirect, Resolve())
	})
}

func TestNoBackendError(t *testing.T) {
	err := &NoBackendError{Requested: "chrome"}
	assert.Contains(t, err.Error(), "chrome")

	bare := &NoBackendError{}
	assert.Equal(t, "no PDF backend available", bare.Error())
}
