package migrations

import (
	"database/sql"
	"fmt"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS chocolate_sales (
		id SERIAL PRIMARY KEY,
		salesperson VARCHAR(100),
		country VARCHAR(60),
		product VARCHAR(100),
		sale_date_raw VARCHAR(20),
		amount_raw VARCHAR(20),
		boxes_shipped INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS covid_deaths (
		id SERIAL PRIMARY KEY,
		iso_code VARCHAR(10),
		continent VARCHAR(30),
		location VARCHAR(100) NOT NULL,
		report_date DATE NOT NULL,
		population BIGINT,
		total_cases BIGINT,
		new_cases BIGINT,
		total_deaths BIGINT,
		new_deaths BIGINT,
		icu_patients NUMERIC,
		UNIQUE (location, report_date)
	)`,
	`CREATE TABLE IF NOT EXISTS covid_vaccinations (
		id SERIAL PRIMARY KEY,
		iso_code VARCHAR(10),
		continent VARCHAR(30),
		location VARCHAR(100) NOT NULL,
		report_date DATE NOT NULL,
		new_vaccinations BIGINT,
		total_vaccinations BIGINT,
		UNIQUE (location, report_date)
	)`,
	`CREATE TABLE IF NOT EXISTS ecommerce_reviews (
		review_id VARCHAR(40) PRIMARY KEY,
		order_id VARCHAR(40),
		product_category VARCHAR(80),
		review_score SMALLINT,
		price NUMERIC(12,2),
		freight_value NUMERIC(12,2),
		purchase_date TIMESTAMP,
		delivered_date TIMESTAMP,
		delivery_days INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS quality_flags (
		id SERIAL PRIMARY KEY,
		table_name VARCHAR(60) NOT NULL,
		row_id INTEGER NOT NULL,
		rule VARCHAR(40) NOT NULL,
		detail TEXT,
		flagged_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

// InitSchema creates the project tables and verifies they exist.
// The cleaning pipeline later adds derived columns (sale_date,
// amount_value) to chocolate_sales; they are not part of the base schema.
func InitSchema(db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}

	tables := []string{
		"chocolate_sales",
		"covid_deaths",
		"covid_vaccinations",
		"ecommerce_reviews",
		"quality_flags",
	}

	for _, table := range tables {
		var exists bool
		query := `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = 'public'
				AND table_name = $1
			)`

		err := db.QueryRow(query, table).Scan(&exists)
		if err != nil {
			return err
		}

		if !exists {
			return fmt.Errorf("required table %s does not exist", table)
		}
	}

	return nil
}
