package nlquery

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func textPart(s string) genai.Text { return genai.Text(s) }

func TestGenerateSQL(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantFrom string
		wantErr  bool
	}{
		{"sales by country", "total chocolate sales by country", "chocolate_sales_clean", false},
		{"top sellers", "who are the top salespersons", "chocolate_sales_clean", false},
		{"covid deaths", "covid death percentage by location", "covid_deaths", false},
		{"vaccinations", "total vaccinations by location", "covid_vaccinations", false},
		{"reviews", "review score distribution", "ecommerce_reviews", false},
		{"flags", "how many rows were flagged per rule", "quality_flags", false},
		{"unknown", "what is the meaning of life", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSQL(tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateSQL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.Contains(got, "FROM "+tt.wantFrom) {
				t.Errorf("GenerateSQL() = %q, want FROM %s", got, tt.wantFrom)
			}
		})
	}
}

func TestExtractSQLFromResponse(t *testing.T) {
	// fenced block
	got, err := extractSQLFromResponse(textPart("```sql\nSELECT 1;\n```"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SELECT 1;" {
		t.Errorf("got %q, want %q", got, "SELECT 1;")
	}

	// bare statement
	got, err = extractSQLFromResponse(textPart("SELECT 2;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SELECT 2;" {
		t.Errorf("got %q, want %q", got, "SELECT 2;")
	}

	// empty after stripping the fence
	if _, err = extractSQLFromResponse(textPart("```sql\n```")); err == nil {
		t.Error("expected error for empty query")
	}
}
