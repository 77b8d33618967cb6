// Package models provides the data structures shared across the application.
package models

import "github.com/shopspring/decimal"

// TransactionType tells which direction money moved. The amount itself
// is always a non-negative magnitude; direction lives here only.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// Source identifies where a transaction was imported from.
type Source string

const (
	SourceCard   Source = "CardCSV"
	SourceBank   Source = "BankCSV"
	SourceSheet  Source = "Sheet"
	SourceManual Source = "Manual"
)

// Transaction is the canonical normalized financial movement record.
// Description keeps its original casing for display; all matching is
// done case-insensitively by the rule engine.
type Transaction struct {
	ID          string          `json:"id" csv:"ID"`
	Date        Date            `json:"date" csv:"Date"`
	Description string          `json:"description" csv:"Description"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`
	Category    Category        `json:"category" csv:"Category"`
	Source      Source          `json:"source" csv:"Source"`
	Type        TransactionType `json:"type" csv:"Type"`
	Ignored     bool            `json:"ignored,omitempty" csv:"Ignored"`
}

// IsExpense reports whether the transaction is an outflow.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome reports whether the transaction is an inflow.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// SignedAmount returns the amount with direction applied, for display
// and balance arithmetic only. The stored Amount stays non-negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}
