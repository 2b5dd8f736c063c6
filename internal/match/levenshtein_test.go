package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"customerid", "customerID", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("RelationID", "relation_id"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("Name", "Nme"), 1e-9)
	assert.Less(t, Similarity("Name", "Principal"), SuggestThreshold)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"ID", "Name", "RelationID", "Relation"}

	got, ok := Suggest("Nane", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Name", got)

	got, ok = Suggest("relation_id", candidates)
	assert.True(t, ok)
	assert.Equal(t, "RelationID", got)

	_, ok = Suggest("Principal", candidates)
	assert.False(t, ok)

	_, ok = Suggest("x", nil)
	assert.False(t, ok)
}

func BenchmarkLevenshtein(b *testing.B) {
	for b.Loop() {
		Levenshtein("Desglose.Principal", "desglose_principal")
	}
}
