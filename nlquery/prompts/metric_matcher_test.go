package prompts

import (
	"strings"
	"testing"
)

func TestFindTargetTables(t *testing.T) {
	mm := NewMetricMatcher()

	tests := []struct {
		query string
		want  string
	}{
		{"total chocolate sales by country", "chocolate_sales_clean"},
		{"death percentage in nigeria", "covid_deaths"},
		{"rolling vaccinations for germany", "covid_vaccinations"},
		{"csat by product category", "ecommerce_reviews"},
		{"how many rows were flagged as outliers", "quality_flags"},
	}

	for _, tt := range tests {
		got := mm.FindTargetTables(tt.query)
		if len(got) == 0 {
			t.Errorf("FindTargetTables(%q) = none, want %s first", tt.query, tt.want)
			continue
		}
		if got[0] != tt.want {
			t.Errorf("FindTargetTables(%q) = %v, want %s first", tt.query, got, tt.want)
		}
	}
}

func TestFindTargetTablesUnknown(t *testing.T) {
	mm := NewMetricMatcher()
	if got := mm.FindTargetTables("what is the meaning of life"); len(got) != 0 {
		t.Errorf("expected no tables, got %v", got)
	}
}

func TestBuildQueryPromptIncludesSchema(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildQueryPrompt("total sales by country")

	for _, want := range []string{
		"chocolate_sales_clean",
		"covid_deaths",
		"ecommerce_reviews",
		"total sales by country",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("query prompt missing %q", want)
		}
	}
}
