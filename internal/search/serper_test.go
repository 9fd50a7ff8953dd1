package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tshehlatshego/checkmate/internal/config"
)

func newTestSerperClient(serverURL string) *SerperClient {
	c := NewSerperClient(&config.SearchConfig{
		Backend:  "serper",
		APIKey:   "test-key",
		Country:  "us",
		Language: "en",
	})
	c.baseURL = serverURL
	return c
}

func TestSerperClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("Expected API key header, got %q", got)
		}

		var req serperRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Query != "the moon is made of cheese" {
			t.Errorf("Unexpected query: %q", req.Query)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"answer_box": map[string]string{
				"title":   "Moon composition",
				"snippet": "The moon is made of rock.",
				"link":    "https://nasa.gov/moon",
			},
			"organic": []map[string]string{
				{"title": "Moon facts", "link": "https://space.com/moon", "snippet": "..."},
				{"title": "BBC on the moon", "link": "https://bbc.co.uk/moon", "snippet": "..."},
				{"title": "Extra", "link": "https://extra.com", "snippet": "..."},
			},
		})
	}))
	defer server.Close()

	c := newTestSerperClient(server.URL)

	sources, err := c.Search(context.Background(), "the moon is made of cheese", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(sources) != 3 {
		t.Fatalf("Expected 3 sources, got %d", len(sources))
	}

	// answer_box comes first
	if sources[0].Title != "Moon composition" || sources[0].URL != "https://nasa.gov/moon" {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
	if sources[0].Credibility != "high" {
		t.Errorf("Expected .gov tagged high, got %q", sources[0].Credibility)
	}
	if sources[1].Title != "Moon facts" {
		t.Errorf("Unexpected second source: %+v", sources[1])
	}
	if sources[2].Credibility != "high" {
		t.Errorf("Expected bbc tagged high, got %q", sources[2].Credibility)
	}
}

func TestSerperClient_SearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestSerperClient(server.URL)

	if _, err := c.Search(context.Background(), "anything", 5); err == nil {
		t.Error("Expected error on upstream failure")
	}
}

func TestSerperClient_Available(t *testing.T) {
	c := NewSerperClient(&config.SearchConfig{})
	if c.Available() {
		t.Error("Expected unavailable without API key")
	}
	if _, err := c.Search(context.Background(), "x", 1); err == nil {
		t.Error("Expected error without API key")
	}
}
