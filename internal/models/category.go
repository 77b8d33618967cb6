package models

// Category is one of the closed set of spending categories. Every
// transaction carries exactly one; CategoryOther is the default for
// anything not yet classified.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryUtilities     Category = "Utilities"
	CategoryIncome        Category = "Income"
	CategoryEducation     Category = "Education"
	CategoryFeira         Category = "Feira"
	CategoryOther         Category = "Other"
)

var allCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryUtilities,
	CategoryIncome,
	CategoryEducation,
	CategoryFeira,
	CategoryOther,
}

// Categories returns the full category set in display order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether the category belongs to the known set.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a name to a known category. Matching is exact
// on the canonical spelling.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if c.IsValid() {
		return c, true
	}
	return "", false
}
