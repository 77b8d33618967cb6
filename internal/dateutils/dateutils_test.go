package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso", "2024-01-05", "2024-01-05"},
		{"dashed day first", "05-01-2024", "2024-01-05"},
		{"slashed day first", "05/01/2024", "2024-01-05"},
		{"dotted day first", "05.01.2024", "2024-01-05"},
		{"slashed year first", "2024/01/05", "2024-01-05"},
		{"iso with time", "2024-01-05 13:45:00", "2024-01-05"},
		{"surrounding whitespace", " 2024-01-05 ", "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "2024-13-40", "05-2024"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestParseDateAmbiguousFormsAreDayFirst(t *testing.T) {
	got, err := ParseDate("03/04/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-03", got.String())
}
