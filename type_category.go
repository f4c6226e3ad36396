package aggie

import (
	"fmt"
	"strings"
)

// Category identifies one of the expense buckets AggieEnterprise breaks
// a project's expenses into on the Detail sheet.
type Category int

const (
	// Salary covers salaries and wages.
	Salary Category = iota
	// Travel covers travel expenses.
	Travel
	// Supplies covers supplies, services and other direct expenses.
	Supplies
	// Fringe covers fringe benefits.
	Fringe
	// Fellowship covers fellowships and scholarships.
	Fellowship
	// Indirect covers indirect costs.
	Indirect
)

// Categories lists all expense buckets in their canonical order.
var Categories = []Category{Salary, Travel, Supplies, Fringe, Fellowship, Indirect}

func (c Category) String() string {
	switch c {
	case Salary:
		return "salary"
	case Travel:
		return "travel"
	case Supplies:
		return "supplies"
	case Fringe:
		return "fringe"
	case Fellowship:
		return "fellowship"
	case Indirect:
		return "indirect"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown expense category: %q", s)
}

// categoryKeywords maps each bucket to the phrase that identifies it in
// the free-text "Expenditure Category Name" column. The report wording
// varies around these phrases ("Salaries and Wages - Academic", ...) so
// matching is by containment, first hit wins in canonical order.
var categoryKeywords = []struct {
	keyword  string
	category Category
}{
	{"Salaries and Wages", Salary},
	{"Travel", Travel},
	{"Supplies / Services / Other Expenses", Supplies},
	{"Fringe Benefits", Fringe},
	{"Fellowship & Scholarships", Fellowship},
	{"Indirect Costs", Indirect},
}

// ClassifyCategory maps the free-text category label of a Detail row to
// its expense bucket. The second return value is false when the label
// matches no known bucket; callers log those and keep going, so that a
// new upstream category does not abort a whole report.
func ClassifyCategory(label string) (Category, bool) {
	for _, k := range categoryKeywords {
		if strings.Contains(label, k.keyword) {
			return k.category, true
		}
	}
	return 0, false
}
