// Package rules implements the deterministic classification engine:
// an ordered scan over user-defined auto-rules followed by a built-in
// keyword fallback.
package rules

import (
	"strings"

	"github.com/jbqneto/financial-flow/internal/models"
)

// Classify assigns category and visibility to one transaction. It is a
// pure function: the input is returned by value, possibly modified.
//
// The scan order is authoritative. User rules are evaluated first, in
// list order, and the first match wins outright: its target category
// and forced-ignore flag are applied when present, and neither further
// rules nor the keyword fallback are considered, even when the
// matching rule is inert. Only when no rule matched, and the category
// is still the default Other, does the keyword table get a chance; the
// fallback never touches the ignored flag.
func Classify(tx models.Transaction, ruleList []models.AutoRule) models.Transaction {
	lowered := strings.ToLower(tx.Description)

	if rule, ok := firstMatch(lowered, ruleList); ok {
		if rule.TargetCategory != nil {
			tx.Category = *rule.TargetCategory
		}
		if rule.ForceIgnore != nil {
			tx.Ignored = *rule.ForceIgnore
		}
		return tx
	}

	if tx.Category != models.CategoryOther {
		return tx
	}

	if category, ok := keywordCategory(lowered); ok {
		tx.Category = category
	}

	return tx
}

// ClassifyAll applies Classify to every transaction and returns a new
// slice; the input is left untouched so callers can swap collections
// atomically.
func ClassifyAll(transactions []models.Transaction, ruleList []models.AutoRule) []models.Transaction {
	classified := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		classified[i] = Classify(tx, ruleList)
	}
	return classified
}

// firstMatch returns the first rule in list order matching the
// lower-cased description, as a discrete result rather than control
// flow.
func firstMatch(loweredDescription string, ruleList []models.AutoRule) (models.AutoRule, bool) {
	for _, rule := range ruleList {
		if rule.Matches(loweredDescription) {
			return rule, true
		}
	}
	return models.AutoRule{}, false
}
