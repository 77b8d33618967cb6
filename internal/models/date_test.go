package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	assert.Equal(t, "2024-01-05", d.String())
	assert.Equal(t, "2024-01", d.MonthKey())
}

func TestDateJSONRoundTrip(t *testing.T) {
	original := NewDate(2024, time.March, 31)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-31"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalText([]byte("05/01/2024")))
	assert.Error(t, json.Unmarshal([]byte(`2024`), &d))
}

func TestDateCSVRoundTrip(t *testing.T) {
	original := NewDate(2023, time.December, 1)

	csv, err := original.MarshalCSV()
	require.NoError(t, err)

	var decoded Date
	require.NoError(t, decoded.UnmarshalCSV(csv))
	assert.Equal(t, original, decoded)
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	d := DateOf(time.Date(2024, time.June, 15, 23, 45, 0, 0, loc))
	assert.Equal(t, "2024-06-15", d.String())
}
