package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/parsererror"
	"github.com/jbqneto/financial-flow/internal/session"
)

func TestParserFor(t *testing.T) {
	im := New("", logging.NewMockLogger())

	for format, source := range Sources() {
		p, err := im.ParserFor(format)
		require.NoError(t, err)
		assert.Equal(t, source, p.Source())
	}

	_, err := im.ParserFor("pdf")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	im := New(FormatCard, logging.NewMockLogger())

	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"card in filename", "my-card-export.csv", "", FormatCard},
		{"bank in filename", "bank-2024.csv", "", FormatBank},
		{"extrato in filename", "extrato_jan.csv", "", FormatBank},
		{"sheet in filename", "sheet-export.csv", "", FormatSheet},
		{"semicolons mean bank", "jan.csv", "05-01-2024;001;PINGO DOCE;12,50;", FormatBank},
		{"header row means sheet", "jan.csv", "Date,Description,Amount\n2024-01-05,Uber,-7.80", FormatSheet},
		{"bare commas mean card", "jan.csv", ",,,2024-01-05,\"Uber Trip\",-7.80", FormatCard},
		{"unknown falls back to default", "jan.txt", "nothing to see", FormatCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, im.DetectFormat(tt.filename, []byte(tt.content)))
		})
	}
}

func TestImportReaderRejectsEmptyResult(t *testing.T) {
	im := New("", logging.NewMockLogger())
	s := session.New(logging.NewMockLogger())

	_, err := im.ImportReader(s, FormatCard, "empty.csv", strings.NewReader(""))
	require.Error(t, err)

	var emptyErr *parsererror.EmptyImportError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "empty.csv", emptyErr.Filename)
	assert.Contains(t, err.Error(), "unrecognized or empty file")
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "january.csv")
	content := `,,,2024-01-05,"Uber Trip",-7.80` + "\n" + `,,,2024-01-06,"Salary",1000.00`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	im := New("", logging.NewMockLogger())
	s := session.New(logging.NewMockLogger())

	count, format, err := im.ImportFile(s, path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, FormatCard, format)

	transactions := s.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, models.SourceCard, transactions[0].Source)
	assert.Equal(t, models.CategoryTransport, transactions[0].Category, "imports are classified on the way in")
}

func TestImportFileMissing(t *testing.T) {
	im := New("", logging.NewMockLogger())
	s := session.New(logging.NewMockLogger())

	_, _, err := im.ImportFile(s, filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Error(t, err)
}
