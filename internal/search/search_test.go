package search

import (
	"testing"

	"github.com/tshehlatshego/checkmate/internal/config"
)

func TestDomainCredibility(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.cdc.gov/page", "high"},
		{"https://mit.edu/research", "high"},
		{"https://www.bbc.co.uk/news", "high"},
		{"https://reuters.com/article", "high"},
		{"https://wikipedia.org/wiki/x", "medium"},
		{"https://randomblog.net/post", "unknown"},
		{"", "unknown"},
		{"://not a url", "unknown"},
	}

	for _, tt := range tests {
		if got := DomainCredibility(tt.url); got != tt.want {
			t.Errorf("DomainCredibility(%q) = %q, expected %q", tt.url, got, tt.want)
		}
	}
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(&config.SearchConfig{Backend: "serper", APIKey: "k"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Name() != "serper" {
		t.Errorf("Expected serper backend, got %q", c.Name())
	}

	c, err = NewClient(&config.SearchConfig{Backend: "duckduckgo"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Name() != "duckduckgo" || !c.Available() {
		t.Errorf("Unexpected duckduckgo client: %v", c)
	}

	if _, err := NewClient(&config.SearchConfig{Backend: "bing"}); err == nil {
		t.Error("Expected error for unsupported backend")
	}
}
