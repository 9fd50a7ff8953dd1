// Package verdict normalizes free-form model replies into a fixed verdict payload.
package verdict

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tshehlatshego/checkmate/internal/models"
)

// Payload is the normalized verdict shape. Result and Analysis are always
// non-empty; Sources always holds a usable variant.
type Payload struct {
	Result   string
	Analysis string
	Sources  SourceList
}

// candidateOrigin identifies which extraction step produced the JSON candidate.
type candidateOrigin int

const (
	originTaggedFence candidateOrigin = iota
	originUntaggedFence
	originBareText
)

var (
	taggedFenceRe   = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	untaggedFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

const (
	defaultResult   = "Uncertain"
	defaultAnalysis = "Analysis unavailable."

	// synthetic analysis keeps at most this many characters of the raw reply
	rawAnalysisLimit = 500
)

// Normalize turns a raw model reply into a well-formed payload. It never
// fails: any input, including empty or garbage text, ends in the synthetic
// fallback built from the search results gathered before the model call.
func Normalize(raw string, fallback []models.Source) Payload {
	trimmed := strings.TrimSpace(raw)

	candidate, _ := extractCandidate(trimmed)

	obj, ok := parseObject(candidate)
	if !ok {
		return syntheticPayload(trimmed, fallback)
	}

	return Payload{
		Result:   stringField(obj, "result", defaultResult),
		Analysis: stringField(obj, "analysis", defaultAnalysis),
		Sources:  classifySources(obj["sources"], fallback),
	}
}

// extractCandidate picks the JSON candidate out of the reply: a ```json
// fenced block first, then any fenced block, then the whole text.
func extractCandidate(text string) (string, candidateOrigin) {
	if strings.Contains(text, "```json") {
		if m := taggedFenceRe.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1]), originTaggedFence
		}
	} else if strings.Contains(text, "```") {
		if m := untaggedFenceRe.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1]), originUntaggedFence
		}
	}
	return text, originBareText
}

// parseObject attempts a strict JSON parse of the candidate, then retries on
// the outermost brace-delimited span.
func parseObject(candidate string) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
		return obj, true
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(candidate[start:end+1]), &obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

// syntheticPayload is the terminal fallback when no JSON could be recovered.
func syntheticPayload(trimmed string, fallback []models.Source) Payload {
	analysis := truncate(trimmed, rawAnalysisLimit)
	if analysis == "" {
		analysis = defaultAnalysis
	}
	return Payload{
		Result:   defaultResult,
		Analysis: analysis,
		Sources:  RawTextSources(BulletLines(fallback)),
	}
}

// classifySources maps the parsed sources field onto the SourceList union.
// String values are discarded in favor of the search results: the model is
// known to sometimes echo the prompt's instructions there instead of data.
func classifySources(v interface{}, fallback []models.Source) SourceList {
	list, ok := v.([]interface{})
	if !ok {
		return FromSearchResults(fallback)
	}

	var entries []SourceRef
	var lines []string
	for _, item := range list {
		switch it := item.(type) {
		case map[string]interface{}:
			entries = append(entries, SourceRef{
				Title: stringField(it, "title", ""),
				URL:   firstStringField(it, "url", "URL"),
			})
		case string:
			lines = append(lines, it)
		}
	}

	if len(entries) > 0 {
		return SourceList{Kind: StructuredList, Entries: entries, Lines: lines}
	}
	return SourceList{Kind: StringList, Lines: lines}
}

// BulletLines renders search results the way they appear in the prompt.
func BulletLines(sources []models.Source) string {
	var b strings.Builder
	for i, s := range sources {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + s.Title + "  " + s.URL)
	}
	return b.String()
}

func stringField(obj map[string]interface{}, key, def string) string {
	if v, ok := obj[key].(string); ok && v != "" {
		return v
	}
	return def
}

func firstStringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// truncate cuts a string to at most n characters, not bytes, so a cut never
// lands inside a multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
