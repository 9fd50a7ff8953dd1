// Package search provides the Serper (Google search API) backend.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tshehlatshego/checkmate/internal/config"
	"github.com/tshehlatshego/checkmate/internal/models"
)

const serperURL = "https://google.serper.dev/search"

// SerperClient searches using the Serper API.
type SerperClient struct {
	apiKey     string
	country    string
	language   string
	baseURL    string
	httpClient *http.Client
}

// NewSerperClient creates a new Serper client.
func NewSerperClient(cfg *config.SearchConfig) *SerperClient {
	return &SerperClient{
		apiKey:     cfg.APIKey,
		country:    cfg.Country,
		language:   cfg.Language,
		baseURL:    serperURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the backend name.
func (c *SerperClient) Name() string {
	return "serper"
}

// Available returns whether the client has an API key.
func (c *SerperClient) Available() bool {
	return c.apiKey != ""
}

type serperRequest struct {
	Query    string `json:"q"`
	Country  string `json:"gl,omitempty"`
	Language string `json:"hl,omitempty"`
}

type serperResponse struct {
	AnswerBox *struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Answer  string `json:"answer"`
		Link    string `json:"link"`
	} `json:"answer_box"`
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search returns up to maxResults sources for the query.
func (c *SerperClient) Search(ctx context.Context, query string, maxResults int) ([]models.Source, error) {
	if !c.Available() {
		return nil, fmt.Errorf("Serper API key not configured")
	}

	reqBody := serperRequest{
		Query:    query,
		Country:  c.country,
		Language: c.language,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Serper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Serper returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data serperResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var sources []models.Source

	// answer_box is a single high-value hit, listed first
	if ab := data.AnswerBox; ab != nil {
		snippet := ab.Snippet
		if snippet == "" {
			snippet = ab.Answer
		}
		title := ab.Title
		if title == "" && len(snippet) > 0 {
			if len(snippet) > 60 {
				title = snippet[:60]
			} else {
				title = snippet
			}
		}
		if title != "" {
			sources = append(sources, models.Source{
				Title:       title,
				URL:         ab.Link,
				Credibility: DomainCredibility(ab.Link),
			})
		}
	}

	for _, item := range data.Organic {
		if len(sources) >= maxResults {
			break
		}
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		sources = append(sources, models.Source{
			Title:       title,
			URL:         item.Link,
			Credibility: DomainCredibility(item.Link),
		})
	}

	return sources, nil
}
