package domain

import "strings"

// Category represents the spending or income category of a transaction
type Category string

const (
	CategorySalary           Category = "SALARY"
	CategoryBusiness         Category = "BUSINESS"
	CategoryGifts            Category = "GIFTS"
	CategoryHousing          Category = "HOUSING"
	CategoryTransportation   Category = "TRANSPORTATION"
	CategoryFood             Category = "FOOD"
	CategoryUtilities        Category = "UTILITIES"
	CategoryHealthcare       Category = "HEALTHCARE"
	CategoryEntertainment    Category = "ENTERTAINMENT"
	CategoryShopping         Category = "SHOPPING"
	CategoryEducation        Category = "EDUCATION"
	CategoryDiningOut        Category = "DINING_OUT"
	CategorySubscriptions    Category = "SUBSCRIPTIONS"
	CategoryPersonalCare     Category = "PERSONAL_CARE"
	CategoryTravel           Category = "TRAVEL"
	CategoryEmergencyFund    Category = "EMERGENCY_FUND"
	CategoryRetirement       Category = "RETIREMENT"
	CategoryVacation         Category = "VACATION"
	CategoryEducationSavings Category = "EDUCATION_SAVINGS"
	CategoryInvestments      Category = "INVESTMENTS"
	CategoryOther            Category = "OTHER"
)

var allCategories = []Category{
	CategorySalary,
	CategoryBusiness,
	CategoryGifts,
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryDiningOut,
	CategorySubscriptions,
	CategoryPersonalCare,
	CategoryTravel,
	CategoryEmergencyFund,
	CategoryRetirement,
	CategoryVacation,
	CategoryEducationSavings,
	CategoryInvestments,
	CategoryOther,
}

// Categories returns every known category in declaration order
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// In reports whether c is one of the given categories
func (c Category) In(set ...Category) bool {
	for _, candidate := range set {
		if c == candidate {
			return true
		}
	}
	return false
}

// ParseCategory converts a case-insensitive name into a Category.
// Both "DINING_OUT" and "dining-out" are accepted.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	c := Category(normalized)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
