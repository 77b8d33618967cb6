package models

import "strings"

// MatchMode selects how an AutoRule pattern is compared against a
// transaction description.
type MatchMode string

const (
	// MatchExact requires full equality of the lower-cased description
	// and pattern.
	MatchExact MatchMode = "exact"
	// MatchPrefix requires the lower-cased description to start with
	// the lower-cased pattern. An empty pattern therefore matches every
	// description; that is accepted behavior, not rejected.
	MatchPrefix MatchMode = "prefix"
)

// AutoRule is a user-defined classification override. TargetCategory
// and ForceIgnore are both optional; a rule with neither set is valid
// but inert. Rules are immutable once created.
type AutoRule struct {
	ID             string    `json:"id"`
	Pattern        string    `json:"pattern"`
	MatchMode      MatchMode `json:"matchMode"`
	TargetCategory *Category `json:"targetCategory,omitempty"`
	ForceIgnore    *bool     `json:"forceIgnore,omitempty"`
}

// Matches reports whether the rule applies to the given lower-cased
// description. Callers are expected to lower-case the description once
// and reuse it across the rule scan.
func (r *AutoRule) Matches(loweredDescription string) bool {
	pattern := strings.ToLower(r.Pattern)
	switch r.MatchMode {
	case MatchExact:
		return loweredDescription == pattern
	case MatchPrefix:
		return strings.HasPrefix(loweredDescription, pattern)
	default:
		return false
	}
}

// IsInert reports whether the rule has no effect on match.
func (r *AutoRule) IsInert() bool {
	return r.TargetCategory == nil && r.ForceIgnore == nil
}
