package verdict

import (
	"strings"

	"github.com/tshehlatshego/checkmate/internal/models"
)

// Map converts the model's verdict label into a credibility score and the
// display verdict. Matching is case-insensitive. Anything unrecognized,
// including "Partially true", falls through to the partially-true row: that
// default is a deliberate catch-all for whatever phrasing the model invents,
// not an error path.
func Map(result string) (int, models.Verdict) {
	switch strings.ToLower(result) {
	case "verified":
		return 90, models.VerdictTrue
	case "unverified":
		return 40, models.VerdictFalse
	case "uncertain":
		return 60, models.VerdictUnclear
	default:
		return 70, models.VerdictPartiallyTrue
	}
}
