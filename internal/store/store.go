// Package store persists the ledger and rule list as YAML files in a
// data directory. A missing file loads as an empty collection, so a
// fresh install needs no setup step.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
)

const (
	transactionsFile = "transactions.yaml"
	rulesFile        = "rules.yaml"
)

// Store reads and writes the persisted collections.
type Store struct {
	dir    string
	logger logging.Logger
}

// New creates a store rooted at dir. The directory is created on the
// first save, not here.
func New(dir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{dir: dir, logger: logger}
}

// transactionRecord is the on-disk shape of a transaction. Dates and
// amounts are stored as strings so the files stay hand-editable and
// the YAML layer needs no custom marshaling.
type transactionRecord struct {
	ID          string `yaml:"id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Category    string `yaml:"category"`
	Source      string `yaml:"source"`
	Type        string `yaml:"type"`
	Ignored     bool   `yaml:"ignored,omitempty"`
}

type ruleRecord struct {
	ID             string `yaml:"id"`
	Pattern        string `yaml:"pattern"`
	MatchMode      string `yaml:"matchMode"`
	TargetCategory string `yaml:"targetCategory,omitempty"`
	ForceIgnore    *bool  `yaml:"forceIgnore,omitempty"`
}

// LoadTransactions reads the persisted ledger. A missing file is an
// empty ledger, not an error.
func (s *Store) LoadTransactions() ([]models.Transaction, error) {
	path := filepath.Join(s.dir, transactionsFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.WithField("path", path).Debug("No transactions file, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var records []transactionRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for i, record := range records {
		tx, err := record.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("error in %s entry %d: %w", path, i, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// SaveTransactions writes the whole ledger, replacing the previous
// file.
func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	records := make([]transactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = transactionRecord{
			ID:          tx.ID,
			Date:        tx.Date.String(),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Category:    string(tx.Category),
			Source:      string(tx.Source),
			Type:        string(tx.Type),
			Ignored:     tx.Ignored,
		}
	}
	return s.writeYAML(transactionsFile, records)
}

// LoadRules reads the persisted rule list in evaluation order. A
// missing file is an empty list, not an error.
func (s *Store) LoadRules() ([]models.AutoRule, error) {
	path := filepath.Join(s.dir, rulesFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.WithField("path", path).Debug("No rules file, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var records []ruleRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	ruleList := make([]models.AutoRule, 0, len(records))
	for i, record := range records {
		rule, err := record.toRule()
		if err != nil {
			return nil, fmt.Errorf("error in %s entry %d: %w", path, i, err)
		}
		ruleList = append(ruleList, rule)
	}
	return ruleList, nil
}

// SaveRules writes the whole rule list, replacing the previous file.
func (s *Store) SaveRules(ruleList []models.AutoRule) error {
	records := make([]ruleRecord, len(ruleList))
	for i, rule := range ruleList {
		records[i] = ruleRecord{
			ID:          rule.ID,
			Pattern:     rule.Pattern,
			MatchMode:   string(rule.MatchMode),
			ForceIgnore: rule.ForceIgnore,
		}
		if rule.TargetCategory != nil {
			records[i].TargetCategory = string(*rule.TargetCategory)
		}
	}
	return s.writeYAML(rulesFile, records)
}

func (s *Store) writeYAML(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("error creating data directory %s: %w", s.dir, err)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	s.logger.WithField("path", path).Debug("Saved collection")
	return nil
}

func (r transactionRecord) toTransaction() (models.Transaction, error) {
	var date models.Date
	if err := date.UnmarshalText([]byte(r.Date)); err != nil {
		return models.Transaction{}, err
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	category := models.Category(r.Category)
	if category == "" {
		category = models.CategoryOther
	}
	if !category.IsValid() {
		return models.Transaction{}, fmt.Errorf("unknown category %q", r.Category)
	}

	return models.Transaction{
		ID:          r.ID,
		Date:        date,
		Description: r.Description,
		Amount:      amount.Abs(),
		Category:    category,
		Source:      models.Source(r.Source),
		Type:        models.TransactionType(r.Type),
		Ignored:     r.Ignored,
	}, nil
}

func (r ruleRecord) toRule() (models.AutoRule, error) {
	rule := models.AutoRule{
		ID:          r.ID,
		Pattern:     r.Pattern,
		MatchMode:   models.MatchMode(r.MatchMode),
		ForceIgnore: r.ForceIgnore,
	}
	if rule.MatchMode != models.MatchExact && rule.MatchMode != models.MatchPrefix {
		return models.AutoRule{}, fmt.Errorf("unknown match mode %q", r.MatchMode)
	}
	if r.TargetCategory != "" {
		category, ok := models.ParseCategory(r.TargetCategory)
		if !ok {
			return models.AutoRule{}, fmt.Errorf("unknown category %q", r.TargetCategory)
		}
		rule.TargetCategory = &category
	}
	return rule, nil
}
