package importer

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts seen across the source CSVs. The chocolate sales export
// uses "04-Jan-22"; the COVID and review exports use ISO dates.
var dateLayouts = []string{
	"02-Jan-06",
	"2-Jan-06",
	"2006-01-02",
	"01/02/2006",
	"02 Jan 2006",
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func transformString(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return s, nil
}

func transformInt(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return strconv.Atoi(s)
}

func transformFloat(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return strconv.ParseFloat(s, 64)
}

// transformCurrency strips currency formatting ("$5,320.00") and parses
// the remainder as a number.
func transformCurrency(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', ',', ' ':
			return -1
		}
		return r
	}, s)

	if cleaned == "" {
		return nil, fmt.Errorf("invalid currency value: %s", s)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid currency value: %s", s)
	}
	return value, nil
}

func transformDate(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date format: %s", s)
}

func transformTimestamp(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp format: %s", s)
}

// transformScore parses a review score and enforces the 1-5 range
func transformScore(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	score, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid review score: %s", s)
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("review score out of range: %d", score)
	}
	return score, nil
}

// SalesConfig builds the import configuration for the chocolate sales CSV.
// Date and amount land in their raw text columns; the cleaning pipeline
// derives the typed columns afterwards.
func SalesConfig(sourceFile string) ImportConfig {
	return ImportConfig{
		Table:      "chocolate_sales",
		SourceFile: sourceFile,
		RequiredColumns: []string{
			"Sales Person", "Country", "Product", "Date", "Amount", "Boxes Shipped",
		},
		ColumnMappings: []ColumnMapping{
			{"Sales Person", "salesperson", transformString},
			{"Country", "country", transformString},
			{"Product", "product", transformString},
			{"Date", "sale_date_raw", transformString},
			{"Amount", "amount_raw", transformString},
			{"Boxes Shipped", "boxes_shipped", transformInt},
		},
	}
}

// CovidDeathsConfig builds the import configuration for the COVID deaths CSV
func CovidDeathsConfig(sourceFile string) ImportConfig {
	return ImportConfig{
		Table:      "covid_deaths",
		SourceFile: sourceFile,
		RequiredColumns: []string{
			"location", "date",
		},
		ColumnMappings: []ColumnMapping{
			{"iso_code", "iso_code", transformString},
			{"continent", "continent", transformString},
			{"location", "location", transformString},
			{"date", "report_date", transformDate},
			{"population", "population", transformInt},
			{"total_cases", "total_cases", transformInt},
			{"new_cases", "new_cases", transformInt},
			{"total_deaths", "total_deaths", transformInt},
			{"new_deaths", "new_deaths", transformInt},
			{"icu_patients", "icu_patients", transformFloat},
		},
		ConflictKey: []string{"location", "report_date"},
	}
}

// CovidVaccinationsConfig builds the import configuration for the COVID
// vaccinations CSV
func CovidVaccinationsConfig(sourceFile string) ImportConfig {
	return ImportConfig{
		Table:      "covid_vaccinations",
		SourceFile: sourceFile,
		RequiredColumns: []string{
			"location", "date",
		},
		ColumnMappings: []ColumnMapping{
			{"iso_code", "iso_code", transformString},
			{"continent", "continent", transformString},
			{"location", "location", transformString},
			{"date", "report_date", transformDate},
			{"new_vaccinations", "new_vaccinations", transformInt},
			{"total_vaccinations", "total_vaccinations", transformInt},
		},
		ConflictKey: []string{"location", "report_date"},
	}
}

// ReviewsConfig builds the import configuration for the e-commerce
// reviews CSV
func ReviewsConfig(sourceFile string) ImportConfig {
	return ImportConfig{
		Table:      "ecommerce_reviews",
		SourceFile: sourceFile,
		RequiredColumns: []string{
			"review_id", "review_score",
		},
		ColumnMappings: []ColumnMapping{
			{"review_id", "review_id", transformString},
			{"order_id", "order_id", transformString},
			{"product_category", "product_category", transformString},
			{"review_score", "review_score", transformScore},
			{"price", "price", transformFloat},
			{"freight_value", "freight_value", transformFloat},
			{"order_purchase_timestamp", "purchase_date", transformTimestamp},
			{"order_delivered_customer_date", "delivered_date", transformTimestamp},
		},
		ConflictKey: []string{"review_id"},
	}
}

// ComputeDeliveryDays backfills ecommerce_reviews.delivery_days from the
// purchase and delivery timestamps. Re-running recomputes every row.
func ComputeDeliveryDays(ctx context.Context, db *sql.DB) (int64, error) {
	result, err := db.ExecContext(ctx, `
		UPDATE ecommerce_reviews
		SET delivery_days = DATE_PART('day', delivered_date - purchase_date)
		WHERE delivered_date IS NOT NULL AND purchase_date IS NOT NULL
	`)
	if err != nil {
		return 0, fmt.Errorf("error computing delivery days: %w", err)
	}
	return result.RowsAffected()
}
