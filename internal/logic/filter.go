package logic

import (
	"sort"
	"strings"

	"tooldeck/internal/domain"
)

// AllCategoriesLabel is the label of the implicit "no category" option
const AllCategoriesLabel = "All Categories"

// CategoryOption is one choice in a category selector.
// The empty Value selects every category.
type CategoryOption struct {
	Value string
	Label string
}

// NormalizeSearch turns raw input into a search term
func NormalizeSearch(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches reports whether an entry passes both the search and the category constraint
func Matches(entry domain.Entry, searchTerm string, category string) bool {
	return MatchesCategory(entry, category) && MatchesSearch(entry, searchTerm)
}

// MatchesCategory checks the category constraint. The comparison is exact
// and case-sensitive; an empty category admits everything.
func MatchesCategory(entry domain.Entry, category string) bool {
	return category == "" || entry.Category == category
}

// MatchesSearch checks whether name, description or category contain the term
func MatchesSearch(entry domain.Entry, searchTerm string) bool {
	if searchTerm == "" {
		return true
	}

	query := strings.ToLower(searchTerm)

	// Absent fields are empty and never contain a non-empty query
	return containsFold(entry.Name, query) ||
		containsFold(entry.Description, query) ||
		containsFold(entry.Category, query)
}

func containsFold(field, lowerQuery string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerQuery)
}

// Filter returns the entries of all that match, in the order of all.
// It always works over the full list, so narrowing and widening are not cumulative.
func Filter(all []domain.Entry, searchTerm string, category string) []domain.Entry {
	visible := make([]domain.Entry, 0, len(all))
	for _, entry := range all {
		if Matches(entry, searchTerm, category) {
			visible = append(visible, entry)
		}
	}
	return visible
}

// DeriveCategories returns the distinct non-empty categories, sorted ascending
func DeriveCategories(all []domain.Entry) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, entry := range all {
		if entry.Category == "" || seen[entry.Category] {
			continue
		}
		seen[entry.Category] = true
		categories = append(categories, entry.Category)
	}
	sort.Strings(categories)
	return categories
}

// CategoryOptions builds the selector choices, "All Categories" first
func CategoryOptions(categories []string) []CategoryOption {
	options := make([]CategoryOption, 0, len(categories)+1)
	options = append(options, CategoryOption{Value: "", Label: AllCategoriesLabel})
	for _, c := range categories {
		options = append(options, CategoryOption{Value: c, Label: c})
	}
	return options
}

// CategoryLabel returns the label shown for a selected category value
func CategoryLabel(category string) string {
	if category == "" {
		return AllCategoriesLabel
	}
	return category
}
