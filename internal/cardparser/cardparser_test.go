package cardparser

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
		`,,,2024-01-05,"Uber Trip",-7.80`,
		`,,,2024-01-06,"Salary",1000.00`,
		`short,row`,
		`,,,2024-01-07,"Bad Amount",abc`,
	}, "\n")

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "2024-01-05", first.Date.String())
	assert.Equal(t, "Uber Trip", first.Description)
	assert.Equal(t, "7.8", first.Amount.String())
	assert.Equal(t, models.TypeExpense, first.Type)
	assert.Equal(t, models.CategoryOther, first.Category)
	assert.Equal(t, models.SourceCard, first.Source)
	assert.NotEmpty(t, first.ID)

	second := transactions[1]
	assert.Equal(t, "Salary", second.Description)
	assert.Equal(t, "1000", second.Amount.String())
	assert.Equal(t, models.TypeIncome, second.Type)
}

func TestParseDateFallbackColumn(t *testing.T) {
	// Date column empty: the description column doubles as the date.
	input := `,,,,2024-01-09,-3.20`

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "2024-01-09", transactions[0].Date.String())
}

func TestParseStripsEmbeddedQuotes(t *testing.T) {
	input := `,,,2024-02-01,He said "hi" cafe,-5.00`

	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "He said hi cafe", transactions[0].Description)
}

func TestParseEmptyInput(t *testing.T) {
	p := New(logging.NewMockLogger())
	transactions, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSource(t *testing.T) {
	assert.Equal(t, models.SourceCard, New(nil).Source())
}
