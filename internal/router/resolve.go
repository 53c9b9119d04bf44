package router

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxResolveDistance = 3

// Resolve maps free text typed by the user to a page. Exact ids and labels
// (any segment, case-insensitive) win; otherwise the closest id or label
// within maxResolveDistance edits is returned.
func (r *Router) Resolve(query string) (PageID, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	for _, p := range r.pages {
		for _, cand := range candidates(p.ID) {
			if cand == q {
				return p.ID, true
			}
		}
	}

	best, bestDist := PageID(""), maxResolveDistance+1
	for _, p := range r.pages {
		for _, cand := range candidates(p.ID) {
			d := levenshtein.ComputeDistance(q, cand)
			if d < bestDist {
				best, bestDist = p.ID, d
			}
		}
	}
	if bestDist > maxResolveDistance {
		return "", false
	}
	return best, true
}

func candidates(id PageID) []string {
	out := []string{strings.ToLower(string(id)), strings.ToLower(Label(id))}
	for _, seg := range strings.Split(Label(id), breadcrumbSeparator) {
		out = append(out, strings.ToLower(seg))
	}
	return out
}
