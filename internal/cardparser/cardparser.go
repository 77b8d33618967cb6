// Package cardparser extracts transactions from the comma-delimited
// card export format. Rows carry at least six columns: the amount as a
// decimal literal in column 5, the date in column 3 (column 4 as a
// fallback), and the description in column 4 with embedded quote
// characters stripped. A negative amount is an expense, a non-negative
// amount income.
package cardparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/normalizer"
	"github.com/jbqneto/financial-flow/internal/parser"
)

const minColumns = 6

// Parser reads the card CSV format.
type Parser struct {
	parser.BaseParser
}

// New builds a card parser with the given logger.
func New(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

// Source implements parser.Parser.
func (p *Parser) Source() models.Source {
	return models.SourceCard
}

// Parse implements parser.Parser. Malformed rows (too few columns,
// non-numeric amount) are skipped; only a failed read fails the call.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	records, err := p.extract(r)
	if err != nil {
		return nil, err
	}
	return normalizer.Normalize(records, models.SourceCard, p.Logger()), nil
}

func (p *Parser) extract(r io.Reader) ([]normalizer.RawRecord, error) {
	var records []normalizer.RawRecord

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		record, ok := extractRow(scanner.Text())
		if !ok {
			p.Logger().WithField("row", row).Debug("Skipping unusable card row")
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading card CSV: %w", err)
	}

	p.Logger().WithField("count", len(records)).Debug("Extracted card rows")
	return records, nil
}

// extractRow turns one line into a raw record. The format uses plain
// comma positions, not CSV quoting, so the split is literal and quote
// characters are stripped from the description afterwards.
func extractRow(line string) (normalizer.RawRecord, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < minColumns {
		return normalizer.RawRecord{}, false
	}

	amount, ok := models.ParseAmount(fields[5])
	if !ok {
		return normalizer.RawRecord{}, false
	}

	date := strings.TrimSpace(fields[3])
	if date == "" {
		date = strings.TrimSpace(fields[4])
	}

	description := strings.TrimSpace(strings.ReplaceAll(fields[4], `"`, ""))

	txType := models.TypeIncome
	if amount.IsNegative() {
		txType = models.TypeExpense
	}

	return normalizer.RawRecord{
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        txType,
	}, true
}
