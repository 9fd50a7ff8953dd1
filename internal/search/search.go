// Package search provides web search backends used to gather fallback sources.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tshehlatshego/checkmate/internal/config"
	"github.com/tshehlatshego/checkmate/internal/models"
)

// Client defines the interface for search backends.
type Client interface {
	// Search returns up to maxResults sources for the query.
	Search(ctx context.Context, query string, maxResults int) ([]models.Source, error)

	// Name returns the backend name.
	Name() string

	// Available returns whether this client is properly configured.
	Available() bool
}

// NewClient creates a search client based on configuration.
func NewClient(cfg *config.SearchConfig) (Client, error) {
	switch cfg.Backend {
	case "serper":
		return NewSerperClient(cfg), nil
	case "duckduckgo":
		return NewDuckDuckGoClient(), nil
	default:
		return nil, fmt.Errorf("unsupported search backend: %s", cfg.Backend)
	}
}

// trusted news domains for the credibility heuristic
var trustedDomains = []string{
	"nytimes", "bbc", "washingtonpost", "theguardian", "reuters", "apnews", "cnn",
}

// DomainCredibility tags a URL with a rough credibility level based on its
// domain. Intentionally conservative and simplistic. Search backends stamp
// this on their own results; sources returned by the model are not run
// through it.
func DomainCredibility(rawURL string) string {
	if rawURL == "" {
		return "unknown"
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	host := strings.ToLower(parsed.Hostname())

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") {
		return "high"
	}
	for _, t := range trustedDomains {
		if strings.Contains(host, t) {
			return "high"
		}
	}
	if strings.HasSuffix(host, ".org") {
		return "medium"
	}
	return "unknown"
}
