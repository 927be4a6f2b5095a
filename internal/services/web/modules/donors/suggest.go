package donors

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// closestLocation picks the donor location nearest to query by edit
// distance. Matches further than two edits or a third of the query length,
// whichever is larger, are dropped.
func closestLocation(query string, donors []storage.Donor) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}
	limit := max(2, utf8.RuneCountInString(query)/3)

	best, bestDist := "", limit+1
	for _, donor := range donors {
		candidate := strings.TrimSpace(donor.Location)
		if candidate == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(query, strings.ToLower(candidate))
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}
	if best == "" || bestDist > limit {
		return "", false
	}
	return best, true
}
