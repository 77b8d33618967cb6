// Package session holds the in-memory working set: the transaction
// ledger and the auto-rule list, plus the operations that mutate them.
// Every rule-set change reclassifies the whole ledger and swaps the
// collection in one step, so readers never observe a half-applied rule.
//
// A Session is not safe for concurrent use.
package session

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/normalizer"
	"github.com/jbqneto/financial-flow/internal/parser"
	"github.com/jbqneto/financial-flow/internal/rules"
)

// Session owns the ledger and rule list.
type Session struct {
	logger       logging.Logger
	transactions []models.Transaction
	rules        []models.AutoRule
}

// New creates an empty session.
func New(logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Session{logger: logger}
}

// NewWithData creates a session over previously persisted state. The
// data is taken as-is; no reclassification happens on load.
func NewWithData(transactions []models.Transaction, ruleList []models.AutoRule, logger logging.Logger) *Session {
	s := New(logger)
	s.transactions = append(s.transactions, transactions...)
	s.rules = append(s.rules, ruleList...)
	return s
}

// Transactions returns a copy of the ledger in insertion order.
func (s *Session) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Rules returns a copy of the rule list in evaluation order.
func (s *Session) Rules() []models.AutoRule {
	out := make([]models.AutoRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Import parses a file with the given parser, classifies each new
// transaction against the current rules, and appends the batch to the
// ledger. It returns the number of transactions added.
func (s *Session) Import(p parser.Parser, r io.Reader) (int, error) {
	parsed, err := p.Parse(r)
	if err != nil {
		return 0, err
	}

	for _, tx := range parsed {
		s.transactions = append(s.transactions, rules.Classify(tx, s.rules))
	}

	s.logger.WithFields(
		logging.Field{Key: "source", Value: p.Source()},
		logging.Field{Key: "count", Value: len(parsed)},
	).Info("Imported transactions")
	return len(parsed), nil
}

// AddManual records a hand-entered transaction. When category is empty
// the entry starts as Other and goes through the usual classification;
// an explicit category is kept unless a rule overrides it.
func (s *Session) AddManual(date models.Date, description string, amount decimal.Decimal, txType models.TransactionType, category models.Category) (models.Transaction, error) {
	if description == "" {
		return models.Transaction{}, fmt.Errorf("manual transaction needs a description")
	}
	if amount.IsNegative() {
		return models.Transaction{}, fmt.Errorf("manual transaction amount must not be negative; use the type to mark expenses")
	}
	if category == "" {
		category = models.CategoryOther
	}
	if !category.IsValid() {
		return models.Transaction{}, fmt.Errorf("unknown category %q", category)
	}
	if txType != models.TypeExpense && txType != models.TypeIncome {
		return models.Transaction{}, fmt.Errorf("unknown transaction type %q", txType)
	}

	tx := rules.Classify(models.Transaction{
		ID:          normalizer.NewID(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Source:      models.SourceManual,
		Type:        txType,
	}, s.rules)

	s.transactions = append(s.transactions, tx)
	return tx, nil
}

// AddRule validates and appends a rule, then reclassifies the whole
// ledger under the extended rule list. The rule keeps its position at
// the end of the evaluation order.
func (s *Session) AddRule(rule models.AutoRule) (models.AutoRule, error) {
	if err := validateRule(rule); err != nil {
		return models.AutoRule{}, err
	}
	if rule.ID == "" {
		rule.ID = normalizer.NewID()
	}

	s.rules = append(s.rules, rule)
	s.reclassify()

	s.logger.WithFields(
		logging.Field{Key: "rule", Value: rule.ID},
		logging.Field{Key: "pattern", Value: rule.Pattern},
	).Info("Added auto-rule")
	return rule, nil
}

// RemoveRule deletes a rule by id and reclassifies the ledger under
// the reduced rule list.
func (s *Session) RemoveRule(id string) error {
	for i, rule := range s.rules {
		if rule.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			s.reclassify()
			return nil
		}
	}
	return fmt.Errorf("no rule with id %q", id)
}

// ToggleIgnore flips the ignored flag of one transaction and returns
// its new state.
func (s *Session) ToggleIgnore(id string) (bool, error) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i].Ignored = !s.transactions[i].Ignored
			return s.transactions[i].Ignored, nil
		}
	}
	return false, fmt.Errorf("no transaction with id %q", id)
}

// Remove deletes one transaction from the ledger.
func (s *Session) Remove(id string) error {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %q", id)
}

// SetCategory assigns a category directly to one transaction, outside
// the rule engine.
func (s *Session) SetCategory(id string, category models.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("unknown category %q", category)
	}
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i].Category = category
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %q", id)
}

// RuleFromTransaction builds and adds an exact-match rule from an
// existing transaction's description, so future imports of the same
// merchant line classify themselves.
func (s *Session) RuleFromTransaction(txID string, target *models.Category, forceIgnore *bool) (models.AutoRule, error) {
	for i := range s.transactions {
		if s.transactions[i].ID == txID {
			return s.AddRule(models.AutoRule{
				Pattern:        s.transactions[i].Description,
				MatchMode:      models.MatchExact,
				TargetCategory: target,
				ForceIgnore:    forceIgnore,
			})
		}
	}
	return models.AutoRule{}, fmt.Errorf("no transaction with id %q", txID)
}

// reclassify rebuilds the whole ledger under the current rules and
// swaps it in as one assignment.
func (s *Session) reclassify() {
	s.transactions = rules.ClassifyAll(s.transactions, s.rules)
	s.logger.WithField("count", len(s.transactions)).Debug("Reclassified ledger")
}

func validateRule(rule models.AutoRule) error {
	if rule.MatchMode != models.MatchExact && rule.MatchMode != models.MatchPrefix {
		return fmt.Errorf("unknown match mode %q", rule.MatchMode)
	}
	if rule.TargetCategory != nil && !rule.TargetCategory.IsValid() {
		return fmt.Errorf("unknown category %q", *rule.TargetCategory)
	}
	return nil
}
