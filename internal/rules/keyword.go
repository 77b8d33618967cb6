package rules

import (
	"strings"

	"github.com/jbqneto/financial-flow/internal/models"
)

// keywordMapping pairs a merchant/service keyword with the category it
// implies. The table is a slice, not a map: the scan order is part of
// the contract, and the first keyword contained in the description
// wins. More specific keywords must come before their prefixes
// ("uber eats" before "uber").
type keywordMapping struct {
	Keyword  string
	Category models.Category
}

var fallbackKeywords = []keywordMapping{
	// Food
	{"uber eats", models.CategoryFood},
	{"pingo doce", models.CategoryFood},
	{"continente", models.CategoryFood},
	{"mercadona", models.CategoryFood},
	{"lidl", models.CategoryFood},
	{"aldi", models.CategoryFood},
	{"mcdonald", models.CategoryFood},
	{"ifood", models.CategoryFood},
	{"restaurante", models.CategoryFood},

	// Transport
	{"uber", models.CategoryTransport},
	{"bolt", models.CategoryTransport},
	{"metro", models.CategoryTransport},
	{"cp comboios", models.CategoryTransport},
	{"galp", models.CategoryTransport},

	// Entertainment
	{"netflix", models.CategoryEntertainment},
	{"spotify", models.CategoryEntertainment},
	{"cinema", models.CategoryEntertainment},
	{"hbo", models.CategoryEntertainment},
	{"steam", models.CategoryEntertainment},

	// Shopping
	{"amazon", models.CategoryShopping},
	{"fnac", models.CategoryShopping},
	{"worten", models.CategoryShopping},
	{"zara", models.CategoryShopping},

	// Utilities
	{"edp", models.CategoryUtilities},
	{"meo", models.CategoryUtilities},
	{"vodafone", models.CategoryUtilities},
	{"nos ", models.CategoryUtilities},
	{"aguas", models.CategoryUtilities},

	// Income
	{"salario", models.CategoryIncome},
	{"ordenado", models.CategoryIncome},
	{"vencimento", models.CategoryIncome},
	{"transferencia recebida", models.CategoryIncome},
}

// keywordCategory scans the built-in fallback table in its fixed order
// and returns the category of the first keyword contained anywhere in
// the lower-cased description.
func keywordCategory(loweredDescription string) (models.Category, bool) {
	for _, mapping := range fallbackKeywords {
		if strings.Contains(loweredDescription, mapping.Keyword) {
			return mapping.Category, true
		}
	}
	return "", false
}
