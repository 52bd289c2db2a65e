// Package llm holds the model configuration and client abstraction for the
// AI enhancement flow. Only Gemini is wired today; the interface keeps the
// enhancement code provider-agnostic.
package llm

import "os"

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short rewrites: single bullet points, headlines
	TierLite ModelTier = "lite"
	// TierStandard is for longer rewrites: summaries, project descriptions
	TierStandard ModelTier = "standard"
)

// APIKeyEnvVar supplies the Gemini API key
const APIKeyEnvVar = "GEMINI_API_KEY"

// Config maps tiers to concrete model names
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the stock Gemini model assignment. The
// GEMINI_MODEL environment variable overrides both tiers.
func DefaultConfig() *Config {
	config := &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Models[TierLite] = model
		config.Models[TierStandard] = model
	}
	return config
}

// GetModel returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier reassigned
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
