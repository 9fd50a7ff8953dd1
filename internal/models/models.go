// Package models defines the core data structures used throughout the application.
package models

import (
	"time"
)

// CheckStatus represents the lifecycle state of a fact-check row.
type CheckStatus string

const (
	StatusPending   CheckStatus = "pending"
	StatusCompleted CheckStatus = "completed"
)

// Verdict is the four-way outcome label returned to callers.
type Verdict string

const (
	VerdictTrue          Verdict = "true"
	VerdictFalse         Verdict = "false"
	VerdictUnclear       Verdict = "unclear"
	VerdictPartiallyTrue Verdict = "partially-true"
)

// Source is a supporting reference for a verdict.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Credibility string `json:"credibility"` // high, medium, low, unknown
}

// FactCheck represents a persisted fact-check request and its result.
// A row is created in pending status with only the claim set, then
// updated exactly once on completion.
type FactCheck struct {
	ID          int64       `json:"id"`
	Claim       string      `json:"claim"`
	Status      CheckStatus `json:"status"`
	Verdict     Verdict     `json:"verdict,omitempty"`
	Credibility int         `json:"credibility,omitempty"` // 0-100
	Analysis    string      `json:"analysis,omitempty"`
	Sources     []Source    `json:"sources,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CheckResponse is the API response for a fact-check request.
type CheckResponse struct {
	Claim            string   `json:"claim"`
	Verdict          Verdict  `json:"verdict"`
	CredibilityScore int      `json:"credibilityScore"`
	Summary          string   `json:"summary"`
	Sources          []Source `json:"sources"`
	CheckedAt        string   `json:"checkedAt"` // DD-MM-YYYY
	RelatedClaims    []string `json:"relatedClaims"`
}
