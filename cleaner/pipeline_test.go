package cleaner

import (
	"strings"
	"testing"
)

func TestIQRBounds(t *testing.T) {
	testCases := []struct {
		name      string
		q1, q3    float64
		wantLower float64
		wantUpper float64
	}{
		{name: "typical quartiles", q1: 100, q3: 300, wantLower: -200, wantUpper: 600},
		{name: "zero spread", q1: 50, q3: 50, wantLower: 50, wantUpper: 50},
		{name: "sales-like values", q1: 2390.5, q3: 8225.5, wantLower: -6362, wantUpper: 16978},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lower, upper := IQRBounds(tc.q1, tc.q3)
			if lower != tc.wantLower {
				t.Errorf("lower = %v, want %v", lower, tc.wantLower)
			}
			if upper != tc.wantUpper {
				t.Errorf("upper = %v, want %v", upper, tc.wantUpper)
			}
		})
	}
}

func TestRulesAreDistinctAndFlagOnly(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range Rules() {
		if seen[rule.Name] {
			t.Errorf("duplicate rule name %s", rule.Name)
		}
		seen[rule.Name] = true

		if !strings.Contains(rule.SQL, "INSERT INTO quality_flags") {
			t.Errorf("rule %s does not write to quality_flags", rule.Name)
		}
		if !strings.Contains(rule.SQL, "'"+rule.Name+"'") {
			t.Errorf("rule %s does not tag its flags with its own name", rule.Name)
		}
		// Rules flag rows; they never mutate the source table.
		for _, verb := range []string{"UPDATE ", "DELETE ", "DROP "} {
			if strings.Contains(rule.SQL, verb) {
				t.Errorf("rule %s contains destructive statement %q", rule.Name, verb)
			}
		}
	}

	for _, required := range []string{
		"duplicate_row", "missing_required", "nonpositive_amount",
		"negative_boxes", "date_out_of_range",
	} {
		if !seen[required] {
			t.Errorf("missing required rule %s", required)
		}
	}
}

func TestPublishViewFilters(t *testing.T) {
	predicates := []string{
		"CREATE OR REPLACE VIEW chocolate_sales_clean",
		"dup_rank = 1",
		"salesperson IS NOT NULL",
		"amount_value > 0",
		"COALESCE(boxes_shipped, 0) >= 0",
		"sale_date BETWEEN DATE '2000-01-01' AND CURRENT_DATE",
	}

	for _, pred := range predicates {
		if !strings.Contains(publishViewSQL, pred) {
			t.Errorf("published view missing predicate %q", pred)
		}
	}
}

func TestTransformStatementsRerunnable(t *testing.T) {
	stmts := transformStatements()
	if len(stmts) == 0 {
		t.Fatal("no transform statements defined")
	}

	var addedAmount, addedDate bool
	for _, stmt := range stmts {
		if strings.Contains(stmt.SQL, "ALTER TABLE") && !strings.Contains(stmt.SQL, "IF NOT EXISTS") {
			t.Errorf("transform %q adds a column without IF NOT EXISTS", stmt.Description)
		}
		if strings.Contains(stmt.SQL, "amount_value NUMERIC") {
			addedAmount = true
		}
		if strings.Contains(stmt.SQL, "sale_date DATE") {
			addedDate = true
		}
	}

	if !addedAmount {
		t.Error("transform does not add the numeric amount column")
	}
	if !addedDate {
		t.Error("transform does not add the typed date column")
	}
}
