// Package verdict re-parses the model's sources field into uniform entries.
package verdict

import (
	"strings"

	"github.com/tshehlatshego/checkmate/internal/models"
)

// SourceListKind tags the shape the model returned for its sources field.
type SourceListKind int

const (
	// RawText is a multi-line blob of bullet points.
	RawText SourceListKind = iota
	// StringList is a list whose items are loose strings.
	StringList
	// StructuredList is a list containing title/url objects, possibly with
	// stray string items mixed in.
	StructuredList
)

// SourceRef is a raw title/url pair as the model returned it, before
// defaults are applied.
type SourceRef struct {
	Title string
	URL   string
}

// SourceList is a tagged union over the shapes the sources field can take.
type SourceList struct {
	Kind    SourceListKind
	Text    string      // RawText
	Lines   []string    // StringList, and stray strings in a StructuredList
	Entries []SourceRef // StructuredList
}

// RawTextSources wraps a text blob.
func RawTextSources(text string) SourceList {
	return SourceList{Kind: RawText, Text: text}
}

// FromSearchResults wraps search results as a structured list.
func FromSearchResults(sources []models.Source) SourceList {
	entries := make([]SourceRef, len(sources))
	for i, s := range sources {
		entries[i] = SourceRef{Title: s.Title, URL: s.URL}
	}
	return SourceList{Kind: StructuredList, Entries: entries}
}

// FormatSources is a total function over the SourceList union: it always
// returns at least one entry. Structured entries are tagged "high" without
// inspecting the domain; only the placeholder gets "medium".
func FormatSources(list SourceList) []models.Source {
	var out []models.Source

	switch list.Kind {
	case RawText:
		for _, line := range strings.Split(list.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			title, url, ok := splitAtHTTP(line)
			if !ok {
				continue
			}
			title = strings.ReplaceAll(title, "-", "")
			title = strings.ReplaceAll(title, "*", "")
			title = strings.TrimSpace(title)
			if title == "" {
				title = "Source"
			}
			out = append(out, models.Source{Title: title, URL: url, Credibility: "high"})
		}

	case StringList, StructuredList:
		for _, e := range list.Entries {
			title := e.Title
			if title == "" {
				title = "Untitled"
			}
			out = append(out, models.Source{Title: title, URL: e.URL, Credibility: "high"})
		}
		for _, line := range list.Lines {
			title, url, ok := splitAtHTTP(line)
			if !ok {
				continue
			}
			title = strings.TrimSpace(strings.ReplaceAll(title, "-", ""))
			out = append(out, models.Source{Title: title, URL: url, Credibility: "high"})
		}
	}

	if len(out) == 0 {
		out = append(out, models.Source{
			Title:       "No sources available",
			URL:         "",
			Credibility: "medium",
		})
	}
	return out
}

// splitAtHTTP splits a line at the first "http" occurrence. The text before
// becomes the title, the rest the url. Lines without "http" are dropped by
// callers. A stray "http" inside the title still splits there; the input is
// too loose to validate further.
func splitAtHTTP(line string) (title, url string, ok bool) {
	idx := strings.Index(line, "http")
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], strings.TrimSpace(line[idx:]), true
}
