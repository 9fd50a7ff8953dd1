// Package check orchestrates the fact-checking pipeline.
package check

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tshehlatshego/checkmate/internal/database"
	"github.com/tshehlatshego/checkmate/internal/llm"
	"github.com/tshehlatshego/checkmate/internal/models"
	"github.com/tshehlatshego/checkmate/internal/search"
	"github.com/tshehlatshego/checkmate/internal/verdict"
)

// Engine runs the full pipeline for one claim: persist a pending row, gather
// search sources, ask the model for a verdict, normalize its reply, and
// complete the row. Each invocation is strictly sequential with no retries;
// upstream failures degrade the payload instead of failing the request.
type Engine struct {
	provider   llm.Provider
	search     search.Client
	store      database.Store
	maxSources int
}

// NewEngine creates a new fact-checking engine.
func NewEngine(provider llm.Provider, searchClient search.Client, store database.Store, maxSources int) *Engine {
	if maxSources <= 0 {
		maxSources = 5
	}
	return &Engine{
		provider:   provider,
		search:     searchClient,
		store:      store,
		maxSources: maxSources,
	}
}

// Check fact-checks a single claim. It returns an error only on persistence
// failure; search and model failures are absorbed into a degraded verdict.
func (e *Engine) Check(ctx context.Context, claim string) (*models.CheckResponse, error) {
	id, err := e.store.CreatePending(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("failed to create fact-check row: %w", err)
	}

	sources := e.lookupSources(ctx, claim)

	payload := e.askModel(ctx, claim, sources)

	score, label := verdict.Map(payload.Result)
	formatted := verdict.FormatSources(payload.Sources)

	if err := e.store.Complete(ctx, id, label, payload.Analysis, score, formatted); err != nil {
		return nil, fmt.Errorf("failed to complete fact-check row: %w", err)
	}

	log.Info().
		Int64("id", id).
		Str("verdict", string(label)).
		Int("credibility", score).
		Int("sources", len(formatted)).
		Msg("Fact-check complete")

	return &models.CheckResponse{
		Claim:            claim,
		Verdict:          label,
		CredibilityScore: score,
		Summary:          payload.Analysis,
		Sources:          formatted,
		CheckedAt:        time.Now().UTC().Format("02-01-2006"),
		RelatedClaims:    []string{},
	}, nil
}

// lookupSources gathers search results for the claim. A failed or empty
// search yields an empty list, never an error.
func (e *Engine) lookupSources(ctx context.Context, claim string) []models.Source {
	sources, err := e.search.Search(ctx, claim, e.maxSources)
	if err != nil {
		log.Warn().Err(err).Str("backend", e.search.Name()).Msg("Source lookup failed")
		return nil
	}
	log.Debug().Int("count", len(sources)).Str("backend", e.search.Name()).Msg("Sources gathered")
	return sources
}

// askModel sends the verdict prompt and normalizes the reply. A failed model
// call produces a synthetic Uncertain payload carrying the error text.
func (e *Engine) askModel(ctx context.Context, claim string, sources []models.Source) verdict.Payload {
	prompt := buildPrompt(claim, sources)

	opts := llm.DefaultCompletionOptions()
	raw, err := e.provider.Complete(ctx, prompt, opts)
	if err != nil {
		log.Error().Err(err).Str("provider", e.provider.Name()).Msg("Model call failed")
		return verdict.Payload{
			Result:   "Uncertain",
			Analysis: "Error during AI processing: " + truncateError(err, 200),
			Sources:  verdict.RawTextSources(verdict.BulletLines(sources)),
		}
	}

	return verdict.Normalize(raw, sources)
}

func truncateError(err error, n int) string {
	msg := err.Error()
	runes := []rune(msg)
	if len(runes) <= n {
		return msg
	}
	return string(runes[:n])
}
