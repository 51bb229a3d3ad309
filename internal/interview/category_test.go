package interview

import "testing"

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Category
	}{
		{input: "behavioral", want: CategoryBehavioral},
		{input: "  Technical ", want: CategoryTechnical},
		{input: "case study", want: CategoryCaseStudy},
		{input: "case_study", want: CategoryCaseStudy},
		{input: "CASE-STUDY", want: CategoryCaseStudy},
		{input: "leadership", want: CategoryLeadership},
		{input: "something else", want: CategoryGeneral},
		{input: "", want: CategoryGeneral},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.input); got != tt.want {
			t.Fatalf("ParseCategory(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestEveryCategoryHasBankAndLabel(t *testing.T) {
	for _, c := range Categories() {
		if len(bankQuestions(c)) == 0 {
			t.Fatalf("category %q has no fallback questions", c)
		}
		if c.Describe() == "" {
			t.Fatalf("category %q has no menu label", c)
		}
	}
}
