package models

// ModelConfig represents configuration options for model calls
type ModelConfig struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Provider represents a generative-language provider (e.g. Google, OpenAI)
type Provider interface {
	Name() string
	SupportsModel(modelName string) bool
	SendPrompt(modelName string, prompt string) (string, error)
	Configure(apiKey string) error
	SetVerbose(verbose bool)
}

// DetectProviderFunc determines the appropriate provider for a model name
type DetectProviderFunc func(modelName string) Provider

// DetectProvider resolves a model name to a provider via the registry.
// It is a variable so tests can substitute fake providers.
var DetectProvider DetectProviderFunc = func(modelName string) Provider {
	return registry.FindProvider(modelName)
}
