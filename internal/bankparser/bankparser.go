// Package bankparser extracts transactions from the semicolon-delimited
// bank statement format. Rows carry at least five columns: the date in
// column 0 (day-month-year with dashes), the description in column 2,
// and separate debit and credit columns (3 and 4) using a comma as the
// decimal separator. A positive debit is an expense; otherwise the
// credit column supplies an income amount.
package bankparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/normalizer"
	"github.com/jbqneto/financial-flow/internal/parser"
)

const minColumns = 5

// Parser reads the bank statement format.
type Parser struct {
	parser.BaseParser
}

// New builds a bank statement parser with the given logger.
func New(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

// Source implements parser.Parser.
func (p *Parser) Source() models.Source {
	return models.SourceBank
}

// Parse implements parser.Parser. Rows with an empty date, or whose
// debit and credit fields both fail to parse, are skipped. Header and
// footer rows fall out naturally under the same policy.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	records, err := p.extract(r)
	if err != nil {
		return nil, err
	}
	return normalizer.Normalize(records, models.SourceBank, p.Logger()), nil
}

func (p *Parser) extract(r io.Reader) ([]normalizer.RawRecord, error) {
	var records []normalizer.RawRecord

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		record, ok := extractRow(scanner.Text())
		if !ok {
			p.Logger().WithField("row", row).Debug("Skipping unusable statement row")
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading bank statement: %w", err)
	}

	p.Logger().WithField("count", len(records)).Debug("Extracted statement rows")
	return records, nil
}

func extractRow(line string) (normalizer.RawRecord, bool) {
	fields := strings.Split(line, ";")
	if len(fields) < minColumns {
		return normalizer.RawRecord{}, false
	}

	date := strings.TrimSpace(fields[0])
	if date == "" {
		return normalizer.RawRecord{}, false
	}

	debit, debitOK := parseMoneyField(fields[3])
	credit, creditOK := parseMoneyField(fields[4])
	if !debitOK && !creditOK {
		return normalizer.RawRecord{}, false
	}

	amount := credit
	txType := models.TypeIncome
	if debit.IsPositive() {
		amount = debit
		txType = models.TypeExpense
	}

	return normalizer.RawRecord{
		Date:        date,
		Description: strings.TrimSpace(fields[2]),
		Amount:      amount.Abs(),
		Type:        txType,
	}, true
}

// parseMoneyField parses one debit/credit cell. A missing field counts
// as zero; only a non-empty, non-numeric field fails.
func parseMoneyField(raw string) (decimal.Decimal, bool) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, true
	}
	return models.ParseAmount(raw)
}
