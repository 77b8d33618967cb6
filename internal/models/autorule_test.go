package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoRuleMatches(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		mode        MatchMode
		description string
		want        bool
	}{
		{"exact match", "netflix.com", MatchExact, "netflix.com", true},
		{"exact is not substring", "netflix", MatchExact, "netflix.com", false},
		{"exact ignores pattern case", "NETFLIX.COM", MatchExact, "netflix.com", true},
		{"prefix match", "uber", MatchPrefix, "uber trip 1234", true},
		{"prefix no match", "uber", MatchPrefix, "my uber trip", false},
		{"prefix ignores pattern case", "UBER", MatchPrefix, "uber trip", true},
		{"empty prefix matches everything", "", MatchPrefix, "anything at all", true},
		{"empty exact matches only empty", "", MatchExact, "anything", false},
		{"unknown mode never matches", "uber", MatchMode("glob"), "uber trip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := AutoRule{Pattern: tt.pattern, MatchMode: tt.mode}
			assert.Equal(t, tt.want, rule.Matches(tt.description))
		})
	}
}

func TestAutoRuleIsInert(t *testing.T) {
	category := CategoryFood
	ignore := true

	inert := AutoRule{Pattern: "x", MatchMode: MatchExact}
	assert.True(t, inert.IsInert())

	withCategory := AutoRule{Pattern: "x", MatchMode: MatchExact, TargetCategory: &category}
	assert.False(t, withCategory.IsInert())

	withIgnore := AutoRule{Pattern: "x", MatchMode: MatchExact, ForceIgnore: &ignore}
	assert.False(t, withIgnore.IsInert())
}
