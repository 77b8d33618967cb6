package bankparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		`Data;Conta;Descricao;Debito;Credito`,
		`05-01-2024;001;PINGO DOCE;12,50;`,
		`06-01-2024;001;SALARIO;;1000,00`,
		`;001;NO DATE;5,00;`,
		`07-01-2024;001;BOTH BAD;abc;xyz`,
		`short;row`,
	}, "\n")

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	expense := transactions[0]
	assert.Equal(t, "2024-01-05", expense.Date.String())
	assert.Equal(t, "PINGO DOCE", expense.Description)
	assert.Equal(t, "12.5", expense.Amount.String())
	assert.Equal(t, models.TypeExpense, expense.Type)
	assert.Equal(t, models.SourceBank, expense.Source)

	income := transactions[1]
	assert.Equal(t, "SALARIO", income.Description)
	assert.Equal(t, "1000", income.Amount.String())
	assert.Equal(t, models.TypeIncome, income.Type)
}

func TestParseEmptyMoneyFieldsCountAsZero(t *testing.T) {
	input := `08-01-2024;001;ADJUSTMENT;;`

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TypeIncome, transactions[0].Type)
	assert.True(t, transactions[0].Amount.IsZero())
}

func TestParseRejectsRowWhenBothMoneyFieldsInvalid(t *testing.T) {
	input := `08-01-2024;001;GARBAGE;x;y`

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSource(t *testing.T) {
	assert.Equal(t, models.SourceBank, New(nil).Source())
}
