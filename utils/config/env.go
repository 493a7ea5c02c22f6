package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model represents a single model configuration
type Model struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Provider represents a provider's configuration
type Provider struct {
	APIKey string  `yaml:"api_key"`
	Models []Model `yaml:"models"`
}

// SolverConfig holds configuration for the logic solver engine
type SolverConfig struct {
	Engine         string `yaml:"engine"`         // "clingo" or "sat"
	ClingoPath     string `yaml:"clingoPath"`     // path to the clingo binary
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // 0 means no timeout
}

// EnvConfig represents the complete environment configuration
type EnvConfig struct {
	Providers map[string]*Provider `yaml:"providers"`
	Server    *ServerConfig        `yaml:"server,omitempty"`
	Solver    *SolverConfig        `yaml:"solver,omitempty"`
}

// GetEnvPath returns the environment file path from LOGICPIPE_ENV or the default
func GetEnvPath() string {
	if envPath := os.Getenv("LOGICPIPE_ENV"); envPath != "" {
		DebugLog("Using environment file from LOGICPIPE_ENV: %s", envPath)
		return envPath
	}
	DebugLog("Using default environment file: .env")
	return ".env"
}

// LoadEnvConfig loads the environment configuration from .env file
func LoadEnvConfig(path string) (*EnvConfig, error) {
	DebugLog("Attempting to load environment configuration from: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		DebugLog("Error reading environment file: %v", err)
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	var config EnvConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		DebugLog("Error parsing environment file: %v", err)
		return nil, fmt.Errorf("error parsing env file: %w", err)
	}

	DebugLog("Successfully loaded environment configuration")
	return &config, nil
}

// SaveEnvConfig saves the environment configuration to .env file
func SaveEnvConfig(path string, config *EnvConfig) error {
	DebugLog("Attempting to save environment configuration to: %s", path)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling env config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing env file: %w", err)
	}

	DebugLog("Successfully saved environment configuration")
	return nil
}

// GetProviderConfig retrieves configuration for a specific provider
func (c *EnvConfig) GetProviderConfig(providerName string) (*Provider, error) {
	provider, exists := c.Providers[providerName]
	if !exists {
		return nil, fmt.Errorf("provider %s not found in configuration", providerName)
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s configuration is nil", providerName)
	}
	return provider, nil
}

// AddProvider adds or updates a provider configuration
func (c *EnvConfig) AddProvider(name string, provider Provider) {
	if c.Providers == nil {
		c.Providers = make(map[string]*Provider)
	}
	providerCopy := provider
	c.Providers[name] = &providerCopy
}

// AddModelToProvider adds a model to a specific provider
func (c *EnvConfig) AddModelToProvider(providerName string, model Model) error {
	provider, exists := c.Providers[providerName]
	if !exists {
		return fmt.Errorf("provider %s not found", providerName)
	}

	for _, m := range provider.Models {
		if m.Name == model.Name {
			return fmt.Errorf("model %s already exists for provider %s", model.Name, providerName)
		}
	}

	provider.Models = append(provider.Models, model)
	return nil
}

// UpdateAPIKey updates the API key for a specific provider
func (c *EnvConfig) UpdateAPIKey(providerName, apiKey string) error {
	provider, exists := c.Providers[providerName]
	if !exists {
		return fmt.Errorf("provider %s not found", providerName)
	}

	provider.APIKey = apiKey
	return nil
}

// DefaultModel returns the first configured model name, preferring a
// provider that has a usable API key.
func (c *EnvConfig) DefaultModel() string {
	for _, name := range []string{"google", "openai"} {
		provider, exists := c.Providers[name]
		if !exists || provider == nil || IsPlaceholderAPIKey(provider.APIKey) {
			continue
		}
		if len(provider.Models) > 0 {
			return provider.Models[0].Name
		}
	}
	return ""
}

// IsPlaceholderAPIKey reports whether a key is missing or still a
// scaffolding placeholder copied out of a template.
func IsPlaceholderAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(key), "YOUR_API")
}

// ValidateAPIKey returns an error if the named provider has no usable key
func (c *EnvConfig) ValidateAPIKey(providerName string) error {
	provider, err := c.GetProviderConfig(providerName)
	if err != nil {
		return err
	}
	if IsPlaceholderAPIKey(provider.APIKey) {
		return fmt.Errorf("API key for provider %s is missing or a placeholder; run 'logicpipe configure'", providerName)
	}
	return nil
}

// GetSolverConfig returns the solver configuration, filling in defaults
func (c *EnvConfig) GetSolverConfig() *SolverConfig {
	solver := c.Solver
	if solver == nil {
		solver = &SolverConfig{}
	}
	if solver.Engine == "" {
		solver.Engine = "clingo"
	}
	if solver.ClingoPath == "" {
		solver.ClingoPath = "clingo"
	}
	return solver
}
