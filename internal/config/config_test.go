package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-gemini")
	t.Setenv("TEST_SERPER_KEY", "secret-serper")

	path := writeConfig(t, `
server:
  port: 9000
llm:
  provider: gemini
  api_key: ${TEST_GEMINI_KEY}
search:
  backend: serper
  api_key: ${TEST_SERPER_KEY}
  max_results: 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.LLM.APIKey != "secret-gemini" {
		t.Errorf("Env interpolation failed: %q", cfg.LLM.APIKey)
	}
	if cfg.Search.APIKey != "secret-serper" {
		t.Errorf("Env interpolation failed: %q", cfg.Search.APIKey)
	}
	if cfg.Search.MaxResults != 6 {
		t.Errorf("Expected max_results 6, got %d", cfg.Search.MaxResults)
	}
	// defaults survive partial configs
	if cfg.LLM.Model != "gemini-1.5-flash-8b" {
		t.Errorf("Expected default model, got %q", cfg.LLM.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidate_MissingCredentialsFatal(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error without Gemini key")
	}

	cfg.LLM.APIKey = "k"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error without Serper key")
	}

	cfg.Search.APIKey = "s"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestValidate_DuckDuckGoNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.APIKey = "k"
	cfg.Search.Backend = "duckduckgo"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.APIKey = "k"
	cfg.Search.APIKey = "s"

	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for invalid port")
	}
	cfg.Server.Port = 8000

	cfg.LLM.Provider = "llama-on-a-floppy"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown provider")
	}
	cfg.LLM.Provider = "gemini"

	cfg.Search.Backend = "askjeeves"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown search backend")
	}
}

func TestGenerateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := GenerateSample(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("SERPER_API_KEY", "s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Sample config should load: %v", err)
	}
	if cfg.LLM.APIKey != "g" || cfg.Search.APIKey != "s" {
		t.Errorf("Sample interpolation failed: %+v", cfg.LLM)
	}
}
