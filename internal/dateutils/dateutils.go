// Package dateutils provides the date parsing helpers shared by the
// import pipeline.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/jbqneto/financial-flow/internal/models"
)

// Layouts accepted by ParseDate, tried in order. Ambiguous delimiter
// forms are interpreted day-first, which matches every supported bank
// export.
var CommonLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
}

// ParseDate parses a raw date field into a naive calendar date. The
// result carries no timezone shift: the day, month and year components
// of the input are the components of the output.
func ParseDate(raw string) (models.Date, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return models.Date{}, fmt.Errorf("empty date field")
	}

	for _, layout := range CommonLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return models.DateOf(t), nil
		}
	}

	return models.Date{}, fmt.Errorf("unable to parse date: %q", raw)
}
