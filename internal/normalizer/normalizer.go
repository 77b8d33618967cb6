// Package normalizer converts the raw records produced by the field
// extractors into canonical transactions.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jbqneto/financial-flow/internal/dateutils"
	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/parsererror"
)

// RawRecord is the best-effort triple an extractor produces for one
// usable row: the raw date field, the display description, and the
// amount magnitude with its direction already resolved from the
// format's sign convention.
type RawRecord struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
}

// Normalize wraps each raw record into a Transaction: a fresh id
// scoped to the import batch, the default Other category, the source
// tag, and a parsed calendar date. Records whose date cannot be parsed
// are dropped, keeping the row-level skip policy of the extractors.
// Output order follows input order.
func Normalize(records []RawRecord, source models.Source, logger logging.Logger) []models.Transaction {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	transactions := make([]models.Transaction, 0, len(records))
	for i, record := range records {
		date, err := dateutils.ParseDate(record.Date)
		if err != nil {
			perr := &parsererror.ParseError{Source: string(source), Row: i, Field: "date", Err: err}
			logger.WithError(perr).Debug("Skipping record with unparseable date")
			continue
		}

		transactions = append(transactions, models.Transaction{
			ID:          NewTransactionID(source, i),
			Date:        date,
			Description: record.Description,
			Amount:      record.Amount.Abs(),
			Category:    models.CategoryOther,
			Source:      source,
			Type:        record.Type,
		})
	}

	return transactions
}

// NewTransactionID builds an id unique within an import batch: source
// tag, row index, and a random disambiguator.
func NewTransactionID(source models.Source, index int) string {
	return fmt.Sprintf("%s-%d-%s", strings.ToLower(string(source)), index, shortUUID())
}

// NewID returns an opaque unique id for manual entries and rules.
func NewID() string {
	return uuid.NewString()
}

func shortUUID() string {
	return uuid.NewString()[:8]
}
