package docreview

import "strings"

// Category is one aspect of documentation quality graded independently.
type Category string

// Supported categories.
const (
	CategoryReadability  Category = "readability"
	CategoryStructure    Category = "structure"
	CategoryCompleteness Category = "completeness"
	CategoryStyle        Category = "style"
)

// AllCategories returns every supported category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryReadability,
		CategoryStructure,
		CategoryCompleteness,
		CategoryStyle,
	}
}

// Title returns a human-readable label for the category.
func (c Category) Title() string {
	switch c {
	case CategoryReadability:
		return "Readability"
	case CategoryStructure:
		return "Structure"
	case CategoryCompleteness:
		return "Completeness"
	case CategoryStyle:
		return "Style Guidelines"
	}
	return string(c)
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryReadability, CategoryStructure, CategoryCompleteness, CategoryStyle:
		return true
	}
	return false
}

// ParseCategory converts user input into a Category.
// Matching is case-insensitive and accepts "style_guidelines" as an alias for style.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	if name == "style_guidelines" {
		return CategoryStyle, nil
	}
	c := Category(name)
	if !c.Valid() {
		return "", Errorf(EINVALID, "unknown category %q", s)
	}
	return c, nil
}
