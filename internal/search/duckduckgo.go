// Package search provides the keyless DuckDuckGo fallback backend.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tshehlatshego/checkmate/internal/models"
	"golang.org/x/net/html"
)

// DuckDuckGoClient searches using DuckDuckGo. It needs no API key and is the
// fallback when no Serper key is available.
type DuckDuckGoClient struct {
	httpClient *http.Client
}

// NewDuckDuckGoClient creates a new DuckDuckGo client.
func NewDuckDuckGoClient() *DuckDuckGoClient {
	return &DuckDuckGoClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the backend name.
func (c *DuckDuckGoClient) Name() string {
	return "duckduckgo"
}

// Available returns true as DuckDuckGo requires no API key.
func (c *DuckDuckGoClient) Available() bool {
	return true
}

type ddgResponse struct {
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// result link pattern in the HTML search page
var (
	ddgLinkPattern = regexp.MustCompile(`<a[^>]*class="result__a"[^>]*href="([^"]*)"[^>]*>([^<]+)</a>`)
)

// Search returns up to maxResults sources for the query.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]models.Source, error) {
	var sources []models.Source

	instant, instantErr := c.searchInstantAnswer(ctx, query)
	if instantErr == nil {
		sources = append(sources, instant...)
	}

	htmlResults, htmlErr := c.searchHTML(ctx, query)
	if htmlErr == nil {
		sources = append(sources, htmlResults...)
	}

	if instantErr != nil && htmlErr != nil {
		return nil, htmlErr
	}

	// Deduplicate by URL
	seen := make(map[string]bool)
	var unique []models.Source
	for _, s := range sources {
		if s.URL == "" || seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		unique = append(unique, s)
		if len(unique) >= maxResults {
			break
		}
	}

	return unique, nil
}

// searchInstantAnswer uses the Instant Answer API.
func (c *DuckDuckGoClient) searchInstantAnswer(ctx context.Context, query string) ([]models.Source, error) {
	u := fmt.Sprintf("https://api.duckduckgo.com/?q=%s&format=json&no_html=1&skip_disambig=1",
		url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var data ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	var sources []models.Source

	if data.Abstract != "" && data.AbstractURL != "" {
		title := data.Heading
		if title == "" {
			title = data.Abstract
		}
		sources = append(sources, models.Source{
			Title:       title,
			URL:         data.AbstractURL,
			Credibility: DomainCredibility(data.AbstractURL),
		})
	}

	for _, topic := range data.RelatedTopics {
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		sources = append(sources, models.Source{
			Title:       topic.Text,
			URL:         topic.FirstURL,
			Credibility: DomainCredibility(topic.FirstURL),
		})
	}

	return sources, nil
}

// searchHTML scrapes titles and links from the HTML search page.
func (c *DuckDuckGoClient) searchHTML(ctx context.Context, query string) ([]models.Source, error) {
	u := fmt.Sprintf("https://html.duckduckgo.com/html/?q=%s", url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sources []models.Source
	for _, match := range ddgLinkPattern.FindAllStringSubmatch(string(body), -1) {
		if len(match) < 3 {
			continue
		}
		actualURL := decodeRedirectURL(match[1])
		if actualURL == "" || strings.HasPrefix(actualURL, "//duckduckgo.com") {
			continue
		}
		title := strings.TrimSpace(html.UnescapeString(match[2]))
		if title == "" {
			continue
		}
		sources = append(sources, models.Source{
			Title:       title,
			URL:         actualURL,
			Credibility: DomainCredibility(actualURL),
		})
	}

	return sources, nil
}

// decodeRedirectURL extracts the actual URL from a DuckDuckGo redirect link.
func decodeRedirectURL(rawURL string) string {
	if !strings.Contains(rawURL, "uddg=") {
		return rawURL
	}
	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		return rawURL
	}
	idx := strings.Index(decoded, "uddg=")
	if idx < 0 {
		return rawURL
	}
	actualURL := decoded[idx+5:]
	if ampIdx := strings.Index(actualURL, "&"); ampIdx >= 0 {
		actualURL = actualURL[:ampIdx]
	}
	if decodedURL, err := url.QueryUnescape(actualURL); err == nil {
		return decodedURL
	}
	return actualURL
}
