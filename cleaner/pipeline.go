package cleaner

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/wunmi-ade/analytics_db/models"
	"github.com/wunmi-ade/analytics_db/profiler"
)

const (
	SalesTable = "chocolate_sales"
	CleanView  = "chocolate_sales_clean"

	// Sanity window for sale dates; anything outside is flagged and
	// excluded from the published view.
	MinSaleDate = "2000-01-01"
)

// Pipeline runs the chocolate sales cleaning steps. Every step is
// independently re-runnable; running the whole pipeline twice converges
// to the same flags, columns and view.
type Pipeline struct {
	db *sql.DB
}

func NewPipeline(db *sql.DB) *Pipeline {
	return &Pipeline{db: db}
}

// Run executes all six steps in order
func (p *Pipeline) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"Inspect", p.Inspect},
		{"Transform", p.Transform},
		{"Profile", p.Profile},
		{"Validate", func(ctx context.Context) error { _, err := p.Validate(ctx); return err }},
		{"Flag Outliers", func(ctx context.Context) error { _, err := p.FlagOutliers(ctx); return err }},
		{"Publish", p.Publish},
	}

	for i, step := range steps {
		color.Cyan("\n[%d/%d] %s", i+1, len(steps), step.name)
		start := time.Now()
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("step %s failed: %w", step.name, err)
		}
		log.Printf("%s completed in %s", step.name, time.Since(start).Round(time.Millisecond))
	}

	color.Green("\nCleaning pipeline completed.")
	return nil
}

// Inspect reports row count, columns and a handful of sample rows
func (p *Pipeline) Inspect(ctx context.Context) error {
	var rowCount int64
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chocolate_sales").Scan(&rowCount); err != nil {
		return fmt.Errorf("error counting rows: %w", err)
	}

	columns, err := profiler.TableColumns(ctx, p.db, SalesTable)
	if err != nil {
		return err
	}

	fmt.Printf("\nTable: %s, %d rows, %d columns\n", SalesTable, rowCount, len(columns))
	for _, col := range columns {
		fmt.Printf("  %-16s %s\n", col.Name, col.DataType)
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, salesperson, country, product, sale_date_raw, amount_raw, boxes_shipped
		FROM chocolate_sales
		ORDER BY id
		LIMIT 5
	`)
	if err != nil {
		return fmt.Errorf("error reading sample rows: %w", err)
	}
	defer rows.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Salesperson", "Country", "Product", "Date", "Amount", "Boxes"})

	for rows.Next() {
		var sale models.ChocolateSale

		if err := rows.Scan(&sale.ID, &sale.Salesperson, &sale.Country, &sale.Product,
			&sale.SaleDateRaw, &sale.AmountRaw, &sale.BoxesShipped); err != nil {
			return err
		}

		table.Append([]string{
			fmt.Sprintf("%d", sale.ID),
			nullString(sale.Salesperson),
			nullString(sale.Country),
			nullString(sale.Product),
			nullString(sale.SaleDateRaw),
			nullString(sale.AmountRaw),
			fmt.Sprintf("%d", sale.BoxesShipped.Int64),
		})
	}

	fmt.Println("\nSample rows:")
	table.Render()
	return rows.Err()
}

// transformStatement is one re-runnable transform step against the
// sales table.
type transformStatement struct {
	Description string
	SQL         string
}

func transformStatements() []transformStatement {
	return []transformStatement{
		{
			Description: "add numeric amount column",
			SQL:         `ALTER TABLE chocolate_sales ADD COLUMN IF NOT EXISTS amount_value NUMERIC(12,2)`,
		},
		{
			Description: "add typed date column",
			SQL:         `ALTER TABLE chocolate_sales ADD COLUMN IF NOT EXISTS sale_date DATE`,
		},
		{
			Description: "strip currency formatting and cast amounts",
			SQL: `UPDATE chocolate_sales
				SET amount_value = NULLIF(REGEXP_REPLACE(amount_raw, '[^0-9.-]', '', 'g'), '')::numeric
				WHERE amount_raw IS NOT NULL
				  AND REGEXP_REPLACE(amount_raw, '[^0-9.-]', '', 'g') ~ '^-?[0-9]+(\.[0-9]+)?$'`,
		},
		{
			Description: "parse DD-Mon-YY dates",
			SQL: `UPDATE chocolate_sales
				SET sale_date = TO_DATE(sale_date_raw, 'DD-Mon-YY')
				WHERE sale_date_raw ~ '^[0-9]{1,2}-[A-Za-z]{3}-[0-9]{2}$'`,
		},
		{
			Description: "parse ISO dates",
			SQL: `UPDATE chocolate_sales
				SET sale_date = TO_DATE(sale_date_raw, 'YYYY-MM-DD')
				WHERE sale_date_raw ~ '^[0-9]{4}-[0-9]{2}-[0-9]{2}$'`,
		},
		{
			Description: "parse MM/DD/YYYY dates",
			SQL: `UPDATE chocolate_sales
				SET sale_date = TO_DATE(sale_date_raw, 'MM/DD/YYYY')
				WHERE sale_date_raw ~ '^[0-9]{2}/[0-9]{2}/[0-9]{4}$'`,
		},
	}
}

// Transform adds the derived columns and recomputes them from the raw
// text columns
func (p *Pipeline) Transform(ctx context.Context) error {
	for _, stmt := range transformStatements() {
		result, err := p.db.ExecContext(ctx, stmt.SQL)
		if err != nil {
			return fmt.Errorf("error in transform (%s): %w", stmt.Description, err)
		}
		if affected, err := result.RowsAffected(); err == nil {
			log.Printf("%s: %d rows", stmt.Description, affected)
		}
	}
	return nil
}

// Profile runs the column profiler over the sales table
func (p *Pipeline) Profile(ctx context.Context) error {
	profiles, err := profiler.ProfileTable(ctx, p.db, SalesTable)
	if err != nil {
		return err
	}

	duplicates, err := profiler.DuplicateCount(ctx, p.db, SalesTable, naturalKey)
	if err != nil {
		return err
	}

	profiler.Render(SalesTable, profiles, duplicates)

	// Frequency summary for the categorical columns
	for _, column := range []string{"country", "product", "salesperson"} {
		values, err := profiler.TopValues(ctx, p.db, SalesTable, column, 5)
		if err != nil {
			return err
		}

		fmt.Printf("\nTop values: %s\n", column)
		for _, vc := range values {
			fmt.Printf("  %-30s %d\n", vc.Value, vc.Count)
		}
	}
	return nil
}

const publishViewSQL = `
CREATE OR REPLACE VIEW chocolate_sales_clean AS
WITH ranked AS (
	SELECT *,
		ROW_NUMBER() OVER (
			PARTITION BY salesperson, country, product, sale_date, amount_value
			ORDER BY id
		) AS dup_rank
	FROM chocolate_sales
)
SELECT id, salesperson, country, product, sale_date, amount_value, boxes_shipped
FROM ranked
WHERE dup_rank = 1
  AND salesperson IS NOT NULL
  AND country IS NOT NULL
  AND product IS NOT NULL
  AND sale_date IS NOT NULL
  AND amount_value > 0
  AND COALESCE(boxes_shipped, 0) >= 0
  AND sale_date BETWEEN DATE '2000-01-01' AND CURRENT_DATE`

// Publish creates or replaces the cleaned view consumed by the BI tools
func (p *Pipeline) Publish(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, publishViewSQL); err != nil {
		return fmt.Errorf("error publishing view: %w", err)
	}

	var total, clean int64
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chocolate_sales").Scan(&total); err != nil {
		return err
	}
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chocolate_sales_clean").Scan(&clean); err != nil {
		return err
	}

	log.Printf("Published %s: %d of %d rows pass the filters (%.2f%%)",
		CleanView, clean, total, float64(clean)/float64(max(total, 1))*100)
	return nil
}

func nullString(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return "N/A"
}

func max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
