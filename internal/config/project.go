package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig represents a .fnhl.yaml file in a repository
type ProjectConfig struct {
	Version string `yaml:"version"`

	// Language ids to never analyze, even when a profile exists
	DisabledLanguages []string `yaml:"disabled_languages,omitempty"`

	// File patterns
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Highlight rendering preferences
	Highlight HighlightConfig `yaml:"highlight,omitempty"`
}

// HighlightConfig holds rendering preferences consumed downstream
type HighlightConfig struct {
	// Override colors for the rotating palette (hex strings)
	Colors []string `yaml:"colors,omitempty"`
}

// DefaultProjectConfig returns sensible defaults
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Version: "1.0",
		Exclude: []string{
			"**/vendor/**",
			"**/node_modules/**",
			"**/.git/**",
		},
	}
}

// LanguageEnabled reports whether a language id may be analyzed. Unknown ids
// are handled by the engine; this only applies the exclusion set.
func (c *ProjectConfig) LanguageEnabled(languageID string) bool {
	for _, id := range c.DisabledLanguages {
		if id == languageID {
			return false
		}
	}
	return true
}

// LoadProjectConfig loads a .fnhl.yaml from the given directory
func LoadProjectConfig(repoPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(repoPath, ".fnhl.yaml")

	// Check if config exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Also try .fnhl.yml
		configPath = filepath.Join(repoPath, ".fnhl.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveProjectConfig saves the config to .fnhl.yaml
func SaveProjectConfig(repoPath string, cfg *ProjectConfig) error {
	configPath := filepath.Join(repoPath, ".fnhl.yaml")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
