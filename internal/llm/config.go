// Package llm provides the generative-text client abstraction used for
// best-effort match explanations and recommendation rewrites.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for short structured outputs: match reasons, team dynamics.
	TierLite ModelTier = "lite"
	// TierStandard is for larger structured outputs: full recommendation lists.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the service.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the other
// tier when unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
