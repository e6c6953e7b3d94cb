package importer

import (
	"testing"
	"time"
)

func TestTransformCurrency(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    float64
		wantNil bool
		wantErr bool
	}{
		{name: "dollar with thousands separator", input: "$5,320.00", want: 5320.00},
		{name: "plain number", input: "7684", want: 7684},
		{name: "leading spaces", input: "  $12.50", want: 12.50},
		{name: "euro symbol", input: "€1,000", want: 1000},
		{name: "empty value", input: "", wantNil: true},
		{name: "whitespace only", input: "   ", wantNil: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "symbol only", input: "$", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transformCurrency(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("transformCurrency(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if tc.wantNil {
				if got != nil {
					t.Errorf("transformCurrency(%q) = %v, want nil", tc.input, got)
				}
				return
			}
			if got.(float64) != tc.want {
				t.Errorf("transformCurrency(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTransformDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{name: "chocolate export layout", input: "04-Jan-22", want: time.Date(2022, time.January, 4, 0, 0, 0, 0, time.UTC)},
		{name: "single digit day", input: "4-Jan-22", want: time.Date(2022, time.January, 4, 0, 0, 0, 0, time.UTC)},
		{name: "iso layout", input: "2021-07-15", want: time.Date(2021, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{name: "us layout", input: "01/15/2020", want: time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{name: "empty value", input: "", wantNil: true},
		{name: "nonsense", input: "sometime last week", wantErr: true},
		{name: "impossible day", input: "45-Jan-22", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transformDate(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("transformDate(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if tc.wantNil {
				if got != nil {
					t.Errorf("transformDate(%q) = %v, want nil", tc.input, got)
				}
				return
			}
			if !got.(time.Time).Equal(tc.want) {
				t.Errorf("transformDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTransformScore(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int
		wantNil bool
		wantErr bool
	}{
		{name: "lowest", input: "1", want: 1},
		{name: "highest", input: "5", want: 5},
		{name: "empty", input: "", wantNil: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "too high", input: "6", wantErr: true},
		{name: "not a number", input: "five", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transformScore(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("transformScore(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr || tc.wantNil {
				return
			}
			if got.(int) != tc.want {
				t.Errorf("transformScore(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	testCases := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"boxes", "", 5},
		{"boxes", "boxes", 0},
		{"boxesshipped", "boxeshipped", 1},
		{"salesperson", "salesman", 5},
	}

	for _, tc := range testCases {
		if got := levenshteinDistance(tc.s1, tc.s2); got != tc.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tc.s1, tc.s2, got, tc.want)
		}
	}
}

func TestGetColumnIndex(t *testing.T) {
	headers := []string{"Sales Person", "Country", "Product", "Date", "Amount", "Boxes Shipped"}

	testCases := []struct {
		column string
		want   int
	}{
		{"Sales Person", 0},
		{"sales_person", 0},
		{"salesperson", 0},
		{"boxes shipped", 5},
		{"Boxes_Shipped", 5},
		{"amount", 4},
		{"missing", -1},
	}

	for _, tc := range testCases {
		if got := getColumnIndex(headers, tc.column); got != tc.want {
			t.Errorf("getColumnIndex(%q) = %d, want %d", tc.column, got, tc.want)
		}
	}
}

func TestFindBestColumnMatch(t *testing.T) {
	d := NewDataImporter(nil, SalesConfig("sales.csv"))

	headers := []string{"SalesPerson", "Country", "Product", "Date", "Amount", "BoxesShipped"}
	matches := d.findBestColumnMatch("Boxes Shipped", headers)

	if len(matches) == 0 {
		t.Fatal("expected at least one match for 'Boxes Shipped'")
	}
	if matches[0].DestinationColumn != "BoxesShipped" {
		t.Errorf("best match = %q, want %q", matches[0].DestinationColumn, "BoxesShipped")
	}
	if matches[0].Confidence <= 0.8 {
		t.Errorf("confidence = %.2f, want > 0.8 for an exact normalized match", matches[0].Confidence)
	}
}

func TestBuildUpdateClause(t *testing.T) {
	columns := []string{"location", "report_date", "new_cases", "total_cases"}
	got := buildUpdateClause(columns, []string{"location", "report_date"})
	want := "new_cases = EXCLUDED.new_cases, total_cases = EXCLUDED.total_cases"
	if got != want {
		t.Errorf("buildUpdateClause() = %q, want %q", got, want)
	}
}

func TestTransformRecordSales(t *testing.T) {
	d := NewDataImporter(nil, SalesConfig("sales.csv"))

	headers := []string{"Sales Person", "Country", "Product", "Date", "Amount", "Boxes Shipped"}
	record := []string{"Jehu Rudeforth", "UK", "Mint Chip Choco", "04-Jan-22", "$5,320.00", "180"}

	values, err := d.transformRecord(headers, record)
	if err != nil {
		t.Fatalf("transformRecord() error = %v", err)
	}
	if len(values) != 6 {
		t.Fatalf("transformRecord() returned %d values, want 6", len(values))
	}
	if values[0].(string) != "Jehu Rudeforth" {
		t.Errorf("salesperson = %v, want Jehu Rudeforth", values[0])
	}
	// Raw columns stay text; the cleaning pipeline derives typed values.
	if values[4].(string) != "$5,320.00" {
		t.Errorf("amount_raw = %v, want $5,320.00", values[4])
	}
	if values[5].(int) != 180 {
		t.Errorf("boxes_shipped = %v, want 180", values[5])
	}
}

func TestTransformRecordBadBoxes(t *testing.T) {
	d := NewDataImporter(nil, SalesConfig("sales.csv"))

	headers := []string{"Sales Person", "Country", "Product", "Date", "Amount", "Boxes Shipped"}
	record := []string{"Jehu Rudeforth", "UK", "Mint Chip Choco", "04-Jan-22", "$5,320.00", "lots"}

	if _, err := d.transformRecord(headers, record); err == nil {
		t.Error("transformRecord() expected error for non-numeric boxes shipped")
	}
}
