// Package config handles application configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Database   DatabaseConfig  `yaml:"database"`
	LLM        LLMConfig       `yaml:"llm"`
	Search     SearchConfig    `yaml:"search"`
	RateLimits RateLimitConfig `yaml:"rate_limits"`
	Logging    LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port     int  `yaml:"port"`
	EnableUI bool `yaml:"enable_ui"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini, openai
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

type SearchConfig struct {
	Backend    string `yaml:"backend"` // serper, duckduckgo
	APIKey     string `yaml:"api_key"` // for serper
	MaxResults int    `yaml:"max_results"`
	Country    string `yaml:"country"`
	Language   string `yaml:"language"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8000,
			EnableUI: true,
		},
		Database: DatabaseConfig{
			Path: "./data/checkmate.db",
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-1.5-flash-8b",
		},
		Search: SearchConfig{
			Backend:    "serper",
			MaxResults: 5,
			Country:    "us",
			Language:   "en",
		},
		RateLimits: RateLimitConfig{
			RequestsPerMinute: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'checkmate init-config' to create one)", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content := interpolateEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GenerateSample creates a sample configuration file.
func GenerateSample(path string) error {
	sample := `# Checkmate Configuration

server:
  port: 8000
  enable_ui: true

database:
  path: ./data/checkmate.db

llm:
  provider: gemini  # gemini or openai
  model: gemini-1.5-flash-8b
  api_key: ${GEMINI_API_KEY}

  # For OpenAI:
  # provider: openai
  # model: gpt-4o-mini
  # api_key: ${OPENAI_API_KEY}

search:
  backend: serper  # serper or duckduckgo
  api_key: ${SERPER_API_KEY}
  max_results: 5
  country: us
  language: en

rate_limits:
  requests_per_minute: 60

logging:
  level: info  # debug, info, warn, error
  format: json # json or console
`
	return os.WriteFile(path, []byte(sample), 0644)
}

// Validate checks that the configuration is valid. Missing credentials
// are a startup failure, not a runtime one.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.LLM.Provider {
	case "gemini":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("Gemini API key is required")
		}
	case "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("OpenAI API key is required")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.LLM.Provider)
	}

	switch c.Search.Backend {
	case "serper":
		if c.Search.APIKey == "" {
			return fmt.Errorf("Serper API key is required")
		}
	case "duckduckgo":
		// keyless
	default:
		return fmt.Errorf("unsupported search backend: %s", c.Search.Backend)
	}

	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be positive")
	}

	return nil
}

// interpolateEnvVars replaces ${VAR_NAME} with environment variable values.
func interpolateEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if not set
	})
}
