package profiler

import (
	"strings"
	"testing"
)

func TestBuildProfileQuery(t *testing.T) {
	columns := []ColumnInfo{
		{Name: "salesperson", DataType: "character varying"},
		{Name: "amount_value", DataType: "numeric"},
		{Name: "sale_date", DataType: "date"},
	}

	query := BuildProfileQuery("chocolate_sales", columns)

	// Every column appears exactly once as a profiled branch
	for _, col := range columns {
		marker := "'" + col.Name + "' AS column_name"
		if got := strings.Count(query, marker); got != 1 {
			t.Errorf("column %s appears %d times in profile query, want 1", col.Name, got)
		}
	}

	if got := strings.Count(query, "UNION ALL"); got != len(columns)-1 {
		t.Errorf("profile query has %d UNION ALL branches, want %d", got, len(columns)-1)
	}

	if !strings.HasSuffix(query, "ORDER BY ordinal") {
		t.Error("profile query must end with ORDER BY ordinal")
	}

	if !strings.Contains(query, `COUNT(DISTINCT "amount_value")`) {
		t.Error("profile query missing distinct count for amount_value")
	}
	if !strings.Contains(query, `MIN("sale_date"::text)`) {
		t.Error("profile query missing text-cast min for sale_date")
	}
}

func TestBuildProfileQuerySingleColumn(t *testing.T) {
	query := BuildProfileQuery("quality_flags", []ColumnInfo{{Name: "rule", DataType: "character varying"}})

	if strings.Contains(query, "UNION ALL") {
		t.Error("single-column profile query should not contain UNION ALL")
	}
	if !strings.Contains(query, "FROM quality_flags") {
		t.Error("profile query missing FROM clause")
	}
}
