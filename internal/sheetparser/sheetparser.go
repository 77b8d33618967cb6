// Package sheetparser extracts transactions from generic tabular rows
// keyed by column header, such as a spreadsheet export. Column roles
// are resolved from the headers by a ranked keyword lookup with
// positional fallbacks: first column for the date, second for the
// description, third for the amount.
package sheetparser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/normalizer"
	"github.com/jbqneto/financial-flow/internal/parser"
	"github.com/jbqneto/financial-flow/internal/parsererror"
)

// Ranked keyword lists for header role resolution. Earlier entries win
// over later ones; matching is case-insensitive substring containment.
var (
	dateKeywords        = []string{"date", "data", "dia"}
	descriptionKeywords = []string{"descri", "description", "hist", "memo", "merchant", "estabelecimento"}
	amountKeywords      = []string{"amount", "valor", "montante", "value", "total"}
)

// Columns is the resolved mapping from column role to header name. An
// empty field means the role could not be resolved because the sheet
// has too few columns.
type Columns struct {
	Date        string
	Description string
	Amount      string
}

// ResolveColumns locates the date, description and amount columns in a
// header row.
func ResolveColumns(headers []string) Columns {
	return Columns{
		Date:        resolveRole(headers, dateKeywords, 0),
		Description: resolveRole(headers, descriptionKeywords, 1),
		Amount:      resolveRole(headers, amountKeywords, 2),
	}
}

func resolveRole(headers []string, keywords []string, fallbackIndex int) string {
	for _, keyword := range keywords {
		for _, header := range headers {
			if strings.Contains(strings.ToLower(header), keyword) {
				return header
			}
		}
	}
	if fallbackIndex < len(headers) {
		return headers[fallbackIndex]
	}
	return ""
}

// Parser reads header-keyed tabular rows.
type Parser struct {
	parser.BaseParser
}

// New builds a sheet parser with the given logger.
func New(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

// Source implements parser.Parser.
func (p *Parser) Source() models.Source {
	return models.SourceSheet
}

// Parse implements parser.Parser for a headered delimited rendering of
// the sheet. The first record supplies the headers; remaining records
// become row mappings and go through ParseRows.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{Source: string(models.SourceSheet), Reason: err.Error()}
	}
	if len(all) == 0 {
		return nil, nil
	}

	headers := all[0]
	rows := make([]map[string]string, 0, len(all)-1)
	for _, record := range all[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return p.ParseRows(headers, rows), nil
}

// ParseRows converts header-keyed rows into transactions. Rows whose
// amount does not parse as a finite number, or whose description is
// empty, are dropped. The sign convention matches the card format:
// negative amounts are expenses.
func (p *Parser) ParseRows(headers []string, rows []map[string]string) []models.Transaction {
	columns := ResolveColumns(headers)
	p.Logger().WithFields(
		logging.Field{Key: "date_column", Value: columns.Date},
		logging.Field{Key: "description_column", Value: columns.Description},
		logging.Field{Key: "amount_column", Value: columns.Amount},
	).Debug("Resolved sheet columns")

	var records []normalizer.RawRecord
	for i, row := range rows {
		record, ok := extractRow(columns, row)
		if !ok {
			p.Logger().WithField("row", i).Debug("Skipping unusable sheet row")
			continue
		}
		records = append(records, record)
	}

	return normalizer.Normalize(records, models.SourceSheet, p.Logger())
}

func extractRow(columns Columns, row map[string]string) (normalizer.RawRecord, bool) {
	description := strings.TrimSpace(row[columns.Description])
	if description == "" {
		return normalizer.RawRecord{}, false
	}

	amount, ok := models.ParseAmount(row[columns.Amount])
	if !ok {
		return normalizer.RawRecord{}, false
	}

	txType := models.TypeIncome
	if amount.IsNegative() {
		txType = models.TypeExpense
	}

	return normalizer.RawRecord{
		Date:        strings.TrimSpace(row[columns.Date]),
		Description: description,
		Amount:      amount.Abs(),
		Type:        txType,
	}, true
}
