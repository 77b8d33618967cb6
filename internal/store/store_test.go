package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
)

func TestLoadMissingFilesReturnEmpty(t *testing.T) {
	s := New(t.TempDir(), logging.NewMockLogger())

	transactions, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)

	ruleList, err := s.LoadRules()
	require.NoError(t, err)
	assert.Empty(t, ruleList)
}

func TestTransactionsRoundTrip(t *testing.T) {
	s := New(t.TempDir(), logging.NewMockLogger())

	original := []models.Transaction{
		{
			ID:          "card-0-abc",
			Date:        models.NewDate(2024, 1, 5),
			Description: "Uber Trip",
			Amount:      decimal.RequireFromString("7.80"),
			Category:    models.CategoryTransport,
			Source:      models.SourceCard,
			Type:        models.TypeExpense,
			Ignored:     true,
		},
		{
			ID:          "manual-1",
			Date:        models.NewDate(2024, 2, 29),
			Description: "Salary",
			Amount:      decimal.RequireFromString("1000"),
			Category:    models.CategoryIncome,
			Source:      models.SourceManual,
			Type:        models.TypeIncome,
		},
	}

	require.NoError(t, s.SaveTransactions(original))

	loaded, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, original[0].ID, loaded[0].ID)
	assert.Equal(t, "2024-01-05", loaded[0].Date.String())
	assert.True(t, original[0].Amount.Equal(loaded[0].Amount))
	assert.Equal(t, original[0].Category, loaded[0].Category)
	assert.True(t, loaded[0].Ignored)

	assert.Equal(t, "2024-02-29", loaded[1].Date.String(), "leap day survives the round trip")
	assert.False(t, loaded[1].Ignored)
}

func TestRulesRoundTrip(t *testing.T) {
	s := New(t.TempDir(), logging.NewMockLogger())

	food := models.CategoryFood
	ignore := true
	original := []models.AutoRule{
		{ID: "r1", Pattern: "pingo doce", MatchMode: models.MatchPrefix, TargetCategory: &food},
		{ID: "r2", Pattern: "transfer to savings", MatchMode: models.MatchExact, ForceIgnore: &ignore},
		{ID: "r3", Pattern: "inert", MatchMode: models.MatchExact},
	}

	require.NoError(t, s.SaveRules(original))

	loaded, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	require.NotNil(t, loaded[0].TargetCategory)
	assert.Equal(t, models.CategoryFood, *loaded[0].TargetCategory)
	assert.Nil(t, loaded[0].ForceIgnore)

	require.NotNil(t, loaded[1].ForceIgnore)
	assert.True(t, *loaded[1].ForceIgnore)
	assert.Nil(t, loaded[1].TargetCategory)

	assert.True(t, loaded[2].IsInert())
}

func TestLoadRejectsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, logging.NewMockLogger())

	bad := "- id: x\n  date: not-a-date\n  amount: \"1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.yaml"), []byte(bad), 0o644))

	_, err := s.LoadTransactions()
	assert.Error(t, err)

	badRule := "- id: r\n  pattern: x\n  matchMode: glob\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(badRule), 0o644))

	_, err = s.LoadRules()
	assert.Error(t, err)
}

func TestSaveCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir, logging.NewMockLogger())

	require.NoError(t, s.SaveTransactions(nil))
	_, err := os.Stat(filepath.Join(dir, "transactions.yaml"))
	assert.NoError(t, err)
}
