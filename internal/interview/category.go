package interview

import "strings"

// Category is the interview type selected at setup. It keys both the prompt
// construction and the built-in fallback question bank.
type Category string

const (
	CategoryBehavioral Category = "behavioral"
	CategoryTechnical  Category = "technical"
	CategoryGeneral    Category = "general"
	CategoryCaseStudy  Category = "case-study"
	CategoryLeadership Category = "leadership"
)

// Categories returns all interview categories in menu order.
func Categories() []Category {
	return []Category{
		CategoryBehavioral,
		CategoryTechnical,
		CategoryGeneral,
		CategoryCaseStudy,
		CategoryLeadership,
	}
}

// ParseCategory resolves free-form input to a known category,
// defaulting to the general one.
func ParseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	for _, c := range Categories() {
		if normalized == string(c) {
			return c
		}
	}

	return CategoryGeneral
}

func (c Category) String() string {
	return string(c)
}

// Describe returns the human-readable menu label for the category.
func (c Category) Describe() string {
	switch c {
	case CategoryBehavioral:
		return "Behavioral interview (STAR method questions)"
	case CategoryTechnical:
		return "Technical interview (role-specific technical questions)"
	case CategoryCaseStudy:
		return "Case study interview (problem-solving scenarios)"
	case CategoryLeadership:
		return "Leadership interview (management and leadership questions)"
	default:
		return "General interview (mix of common questions)"
	}
}
