package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorUnwraps(t *testing.T) {
	cause := errors.New("bad digit")
	err := &ParseError{Source: "CardCSV", Row: 3, Field: "amount", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "CardCSV: row 3: failed to parse amount: bad digit", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{Source: "Sheet", Reason: "bare quote in field"}
	assert.Equal(t, "invalid Sheet input: bare quote in field", err.Error())
}

func TestEmptyImportError(t *testing.T) {
	assert.Equal(t, "unrecognized or empty file", (&EmptyImportError{}).Error())
	assert.Equal(t, "unrecognized or empty file: jan.csv", (&EmptyImportError{Filename: "jan.csv"}).Error())
}
