// Package report aggregates the ledger into summaries and exports it
// as CSV.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/jbqneto/financial-flow/internal/models"
)

// Summary is the rollup over the visible (non-ignored) ledger.
type Summary struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Balance    decimal.Decimal
	ByCategory map[models.Category]decimal.Decimal
	Monthly    []MonthlyTotal
}

// MonthlyTotal is one month's income, expenses and net, keyed by
// YYYY-MM.
type MonthlyTotal struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Summarize aggregates the ledger. Ignored transactions are excluded
// entirely. ByCategory sums expense magnitudes per category; income is
// reported in the totals and monthly rows. Monthly rows come back
// sorted by month.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		Balance:    decimal.Zero,
		ByCategory: make(map[models.Category]decimal.Decimal),
	}
	months := make(map[string]*MonthlyTotal)

	for _, tx := range transactions {
		if tx.Ignored {
			continue
		}

		key := tx.Date.MonthKey()
		month, ok := months[key]
		if !ok {
			month = &MonthlyTotal{
				Month:    key,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			months[key] = month
		}

		if tx.IsExpense() {
			summary.Expenses = summary.Expenses.Add(tx.Amount)
			summary.ByCategory[tx.Category] = summary.ByCategory[tx.Category].Add(tx.Amount)
			month.Expenses = month.Expenses.Add(tx.Amount)
		} else {
			summary.Income = summary.Income.Add(tx.Amount)
			month.Income = month.Income.Add(tx.Amount)
		}
	}

	summary.Balance = summary.Income.Sub(summary.Expenses)

	summary.Monthly = make([]MonthlyTotal, 0, len(months))
	for _, month := range months {
		month.Balance = month.Income.Sub(month.Expenses)
		summary.Monthly = append(summary.Monthly, *month)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		return summary.Monthly[i].Month < summary.Monthly[j].Month
	})

	return summary
}

// WriteTransactionsCSV writes the ledger, ignored entries included, as
// CSV with a header row.
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	if err := gocsv.Marshal(&transactions, w); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
