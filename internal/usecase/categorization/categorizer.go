package categorization

import (
	"strings"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

type keywordRule struct {
	category domain.Category
	keywords []string
}

// Rules are tried in order; the first keyword found in a description wins.
// "gas" is listed under TRANSPORTATION before UTILITIES on purpose.
var defaultRules = []keywordRule{
	{domain.CategorySalary, []string{"salary", "paycheck", "wages", "income", "direct deposit"}},
	{domain.CategoryBusiness, []string{"client", "invoice", "consulting", "freelance"}},
	{domain.CategoryGifts, []string{"gift", "present", "donation"}},
	{domain.CategoryHousing, []string{"rent", "mortgage", "property", "lease", "apartment"}},
	{domain.CategoryTransportation, []string{"gas", "fuel", "car", "auto", "vehicle", "uber", "lyft", "taxi", "bus", "transit"}},
	{domain.CategoryFood, []string{"grocery", "supermarket", "food", "market", "walmart", "target"}},
	{domain.CategoryUtilities, []string{"electric", "water", "gas", "internet", "phone", "bill", "utility"}},
	{domain.CategoryHealthcare, []string{"doctor", "hospital", "medical", "pharmacy", "prescription", "health"}},
	{domain.CategoryEntertainment, []string{"movie", "theatre", "netflix", "spotify", "hulu", "disney", "concert", "ticket", "entertainment"}},
	{domain.CategoryShopping, []string{"amazon", "store", "mall", "retail", "clothing", "shoes", "shop"}},
	{domain.CategoryEducation, []string{"tuition", "school", "college", "university", "course", "books", "education", "student"}},
	{domain.CategoryDiningOut, []string{"restaurant", "cafe", "coffee", "bar", "diner", "starbucks", "mcdonalds", "grubhub", "doordash"}},
	{domain.CategorySubscriptions, []string{"subscription", "membership", "monthly", "annual"}},
}

// Categorizer assigns categories to uncategorized transactions by keyword matching.
// It is not safe for concurrent use; each session owns its own.
type Categorizer struct {
	rules   []keywordRule
	trained map[string]domain.Category
}

// NewCategorizer creates a categorizer with the built-in keyword table
func NewCategorizer() *Categorizer {
	return &Categorizer{
		rules:   defaultRules,
		trained: make(map[string]domain.Category),
	}
}

// Categorize suggests a category for tx without changing it.
// Logic:
//  1. An already categorized transaction keeps its category
//  2. A description the user trained wins over keywords
//  3. The first matching keyword rule
//  4. INCOME falls back to SALARY, everything else stays OTHER
func (c *Categorizer) Categorize(tx *domain.Transaction) domain.Category {
	if tx.Category != domain.CategoryOther {
		return tx.Category
	}

	description := strings.ToLower(tx.Description)
	if category, ok := c.trained[description]; ok {
		return category
	}

	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(description, keyword) {
				return rule.category
			}
		}
	}

	if tx.Type == domain.TransactionTypeIncome {
		return domain.CategorySalary
	}
	return domain.CategoryOther
}

// Train remembers the category for a description, case-insensitively
func (c *Categorizer) Train(description string, category domain.Category) error {
	if !category.IsValid() {
		return domain.ErrInvalidCategory
	}
	c.trained[strings.ToLower(description)] = category
	return nil
}

// BulkCategorize rewrites the category of every OTHER transaction that can be categorized.
// Returns the number of transactions changed.
func (c *Categorizer) BulkCategorize(transactions []*domain.Transaction) int {
	changed := 0
	for _, tx := range transactions {
		if tx.Category != domain.CategoryOther {
			continue
		}
		if tx.Recategorize(c.Categorize(tx)) {
			changed++
		}
	}
	return changed
}

// SimilarTransactions returns the transactions whose description contains, or is contained in, tx's
func (c *Categorizer) SimilarTransactions(tx *domain.Transaction, all []*domain.Transaction) []*domain.Transaction {
	description := strings.ToLower(tx.Description)
	var similar []*domain.Transaction
	for _, candidate := range all {
		other := strings.ToLower(candidate.Description)
		if strings.Contains(other, description) || strings.Contains(description, other) {
			similar = append(similar, candidate)
		}
	}
	return similar
}
