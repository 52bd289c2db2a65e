package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")

	config := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestDefaultConfig_EnvOverride(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	config := DefaultConfig()
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierStandard))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{TierStandard: "gemini-2.5-flash"}}
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierLite))
}

func TestWithModel(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")

	base := DefaultConfig()
	custom := base.WithModel(TierLite, "gemini-experimental")

	assert.Equal(t, "gemini-experimental", custom.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash-lite", base.GetModel(TierLite), "original config must not change")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{`{"a": 1}`, `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanJSONBlock(tt.in))
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
