// Package importer dispatches an uploaded file to the right format
// parser. Detection goes filename first, content sniff second, and the
// configured default format last.
package importer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbqneto/financial-flow/internal/bankparser"
	"github.com/jbqneto/financial-flow/internal/cardparser"
	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/parser"
	"github.com/jbqneto/financial-flow/internal/parsererror"
	"github.com/jbqneto/financial-flow/internal/session"
	"github.com/jbqneto/financial-flow/internal/sheetparser"
)

// Format names accepted by --format flags and config.
const (
	FormatCard  = "card"
	FormatBank  = "bank"
	FormatSheet = "sheet"
)

// Importer resolves formats to parsers and runs imports into a
// session.
type Importer struct {
	logger        logging.Logger
	defaultFormat string
}

// New builds an importer. defaultFormat is used when neither the
// filename nor the content identifies a format; an empty value means
// card.
func New(defaultFormat string, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if defaultFormat == "" {
		defaultFormat = FormatCard
	}
	return &Importer{logger: logger, defaultFormat: defaultFormat}
}

// ParserFor returns the parser for an explicit format name.
func (im *Importer) ParserFor(format string) (parser.Parser, error) {
	switch strings.ToLower(format) {
	case FormatCard:
		return cardparser.New(im.logger), nil
	case FormatBank:
		return bankparser.New(im.logger), nil
	case FormatSheet:
		return sheetparser.New(im.logger), nil
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
}

// DetectFormat guesses the format of a file. The filename wins when it
// names a format; otherwise the first line of content decides by
// delimiter, and the configured default breaks the tie.
func (im *Importer) DetectFormat(filename string, content []byte) string {
	lowered := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.Contains(lowered, "card"):
		return FormatCard
	case strings.Contains(lowered, "bank"), strings.Contains(lowered, "statement"), strings.Contains(lowered, "extrato"):
		return FormatBank
	case strings.Contains(lowered, "sheet"), strings.Contains(lowered, "planilha"):
		return FormatSheet
	}

	firstLine := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}
	switch {
	case bytes.Contains(firstLine, []byte(";")):
		return FormatBank
	case looksLikeHeader(firstLine):
		return FormatSheet
	case bytes.Contains(firstLine, []byte(",")):
		return FormatCard
	}

	return im.defaultFormat
}

// looksLikeHeader reports whether a comma-delimited first line reads
// as column headers rather than data. The sheet format is the only one
// that carries a header row.
func looksLikeHeader(line []byte) bool {
	if !bytes.Contains(line, []byte(",")) {
		return false
	}
	lowered := strings.ToLower(string(line))
	for _, keyword := range []string{"date", "data", "descri", "hist", "amount", "valor", "montante"} {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// ImportReader imports already-read content under an explicit format.
// Producing zero transactions is an error so the caller can tell the
// user the file was not understood.
func (im *Importer) ImportReader(s *session.Session, format, filename string, r io.Reader) (int, error) {
	p, err := im.ParserFor(format)
	if err != nil {
		return 0, err
	}

	count, err := s.Import(p, r)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, &parsererror.EmptyImportError{Filename: filename}
	}
	return count, nil
}

// ImportFile reads a file, detects its format when none is given, and
// imports it into the session. It returns the number of transactions
// added and the format used.
func (im *Importer) ImportFile(s *session.Session, path, format string) (int, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, "", fmt.Errorf("error reading %s: %w", path, err)
	}

	if format == "" {
		format = im.DetectFormat(path, content)
		im.logger.WithFields(
			logging.Field{Key: "file", Value: path},
			logging.Field{Key: "format", Value: format},
		).Debug("Detected import format")
	}

	count, err := im.ImportReader(s, format, filepath.Base(path), bytes.NewReader(content))
	if err != nil {
		return 0, format, err
	}
	return count, format, nil
}

// Sources lists the source tag for each known format name.
func Sources() map[string]models.Source {
	return map[string]models.Source{
		FormatCard:  models.SourceCard,
		FormatBank:  models.SourceBank,
		FormatSheet: models.SourceSheet,
	}
}
