package check

import (
	"fmt"
	"strings"

	"github.com/tshehlatshego/checkmate/internal/models"
	"github.com/tshehlatshego/checkmate/internal/verdict"
)

// buildPrompt assembles the single-turn verdict prompt: the claim, the
// gathered sources as bullet lines, and the required output schema.
func buildPrompt(claim string, sources []models.Source) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the truthfulness of this claim: %q\n\n", claim)

	b.WriteString("SOURCES TO CONSIDER:\n")
	b.WriteString(verdict.BulletLines(sources))
	b.WriteString("\n\n")

	b.WriteString(`Provide your response in this exact JSON format (NO markdown, just pure JSON):
{
    "result": "Verified|Unverified|Uncertain|Partially true",
    "analysis": "Your detailed analysis here (3-5 sentences)",
    "sources": [{"title": "Source title", "url": "https://..."}]
}

IMPORTANT: Return ONLY the JSON object, no additional text or markdown formatting.`)

	return b.String()
}
