package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apetrenko/contentgen/internal/api"
)

var sampleContents = []api.Content{
	{ID: 1, Title: "Budget Report", Body: "numbers", Status: api.StatusDraft, Language: "en", OwnerID: 1},
	{ID: 2, Title: "Budget Summary", Body: "totals", Status: api.StatusPublished, Language: "en", OwnerID: 1},
	{ID: 3, Title: "Meeting Notes", Body: "budget discussion", Status: api.StatusPublished, Language: "de", OwnerID: 2},
	{ID: 4, Title: "Holiday Plan", Body: "beach", Status: api.StatusDraft, Language: "en", OwnerID: 2},
}

func ids(items []api.Content) []int64 {
	result := make([]int64, 0, len(items))
	for _, item := range items {
		result = append(result, item.ID)
	}
	return result
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []int64
	}{
		{"no criteria", Criteria{}, []int64{1, 2, 3, 4}},
		{"status", Criteria{Status: api.StatusDraft}, []int64{1, 4}},
		{"language", Criteria{Language: "de"}, []int64{3}},
		{"owner", Criteria{OwnerID: 2}, []int64{3, 4}},
		{"search matches title and body", Criteria{SearchTerm: "budget"}, []int64{1, 2, 3}},
		{"search is case-insensitive", Criteria{SearchTerm: "BUDGET"}, []int64{1, 2, 3}},
		{"search plus status narrows, never replaces", Criteria{SearchTerm: "budget", Status: api.StatusPublished}, []int64{2, 3}},
		{"all criteria combined", Criteria{SearchTerm: "budget", Status: api.StatusPublished, Language: "en", OwnerID: 1}, []int64{2}},
		{"no match", Criteria{SearchTerm: "nonexistent"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Apply(sampleContents)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// A draft matching the search term must still be hidden by a published-only
// status filter.
func TestSearchDoesNotBypassOtherFilters(t *testing.T) {
	c := Criteria{SearchTerm: "budget report", Status: api.StatusPublished}
	got := c.Apply(sampleContents)
	assert.Empty(t, got)
}

func TestApplyIdempotent(t *testing.T) {
	c := Criteria{Status: api.StatusPublished, SearchTerm: "budget"}

	once := c.Apply(sampleContents)
	twice := c.Apply(once)
	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := make([]api.Content, len(sampleContents))
	copy(before, sampleContents)

	_ = Criteria{Status: api.StatusDraft}.Apply(sampleContents)
	assert.Equal(t, before, sampleContents)
}

func TestFilterUsers(t *testing.T) {
	users := []api.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@corp.io"},
	}

	assert.Len(t, FilterUsers(users, ""), 2)
	assert.Len(t, FilterUsers(users, "ali"), 1)
	assert.Len(t, FilterUsers(users, "CORP"), 1)
	assert.Empty(t, FilterUsers(users, "zzz"))
}
