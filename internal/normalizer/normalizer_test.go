package normalizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
)

func TestNormalize(t *testing.T) {
	records := []RawRecord{
		{Date: "2024-01-05", Description: "Uber Trip", Amount: decimal.RequireFromString("7.80"), Type: models.TypeExpense},
		{Date: "not a date", Description: "Dropped", Amount: decimal.RequireFromString("1"), Type: models.TypeExpense},
		{Date: "06-01-2024", Description: "Salary", Amount: decimal.RequireFromString("1000"), Type: models.TypeIncome},
	}

	logger := logging.NewMockLogger()
	transactions := Normalize(records, models.SourceCard, logger)
	require.Len(t, transactions, 2)

	// Output order follows input order.
	assert.Equal(t, "Uber Trip", transactions[0].Description)
	assert.Equal(t, "Salary", transactions[1].Description)

	for _, tx := range transactions {
		assert.Equal(t, models.CategoryOther, tx.Category)
		assert.Equal(t, models.SourceCard, tx.Source)
		assert.False(t, tx.Amount.IsNegative())
		assert.NotEmpty(t, tx.ID)
	}

	assert.NotEmpty(t, logger.Messages("debug"), "dropped record is logged")
}

func TestNormalizeForcesAmountMagnitude(t *testing.T) {
	records := []RawRecord{
		{Date: "2024-01-05", Description: "x", Amount: decimal.RequireFromString("-9.99"), Type: models.TypeExpense},
	}

	transactions := Normalize(records, models.SourceBank, logging.NewMockLogger())
	require.Len(t, transactions, 1)
	assert.Equal(t, "9.99", transactions[0].Amount.String())
}

func TestNewTransactionIDIsUniquePerRecord(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewTransactionID(models.SourceCard, i)
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Contains(t, NewTransactionID(models.SourceCard, 3), "cardcsv-3-")
}
