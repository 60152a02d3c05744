package selection

import (
	"strings"

	"github.com/apetrenko/contentgen/internal/api"
)

// Criteria filters a content list. Zero values mean "any". Every set
// criterion must match: the search term narrows the result together with the
// status, language and owner filters, never instead of them.
type Criteria struct {
	Status     string
	Language   string
	OwnerID    int64
	SearchTerm string
}

// Apply returns the items matching every set criterion. The input is never
// mutated, so applying the same criteria again yields the same result.
func (c Criteria) Apply(items []api.Content) []api.Content {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	result := make([]api.Content, 0, len(items))
	for _, item := range items {
		if c.Status != "" && item.Status != c.Status {
			continue
		}
		if c.Language != "" && item.Language != c.Language {
			continue
		}
		if c.OwnerID != 0 && item.OwnerID != c.OwnerID {
			continue
		}
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesTerm(item api.Content, term string) bool {
	return strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Body), term)
}

// FilterUsers narrows an account list by username or email substring.
func FilterUsers(items []api.User, term string) []api.User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	result := make([]api.User, 0, len(items))
	for _, u := range items {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			result = append(result, u)
		}
	}
	return result
}
