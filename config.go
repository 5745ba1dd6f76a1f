package motionlint

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the motionlint configuration
type Config struct {
	DocsDir    string           `yaml:"docs_dir"`
	RuleFiles  []string         `yaml:"rule_files"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
}

// OutputConfig represents diagnostic output settings
type OutputConfig struct {
	Format      string `yaml:"format"` // "text" or "json"
	ShowSnippet bool   `yaml:"show_snippet"`
	Color       bool   `yaml:"color"`
}

// ValidationConfig represents validation run settings
type ValidationConfig struct {
	// UseDocIndex adds documented classes from DocsDir to the type
	// environment alongside the built-ins.
	UseDocIndex bool `yaml:"use_doc_index"`
}

// DefaultConfigFile is the config file name looked up in the working
// directory.
const DefaultConfigFile = "motionlint.yaml"

// LoadConfig loads configuration from the given path. A missing file yields
// the default configuration. Environment entries from a local .env file are
// loaded first, matching how the CLI is usually run from a project root.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

func validateConfig(config *Config) error {
	switch config.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: output format %q", ErrConfigValidation, config.Output.Format)
	}

	if config.Validation.UseDocIndex && config.DocsDir == "" {
		return fmt.Errorf("%w: use_doc_index requires docs_dir", ErrConfigValidation)
	}

	return nil
}

func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	return nil
}
