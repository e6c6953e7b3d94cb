package cleaner

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// naturalKey identifies a sale for duplicate detection; the source CSV
// has no row identifier of its own.
var naturalKey = []string{"salesperson", "country", "product", "sale_date", "amount_value"}

// QualityRule is one validation rule. SQL inserts the violating rows
// into quality_flags; the runner deletes the rule's previous flags
// first, so re-runs converge.
type QualityRule struct {
	Name        string
	Description string
	SQL         string
}

// RuleCount reports how many rows one rule flagged
type RuleCount struct {
	Rule  string
	Count int64
}

// Rules returns the validation rules for the sales table
func Rules() []QualityRule {
	return []QualityRule{
		{
			Name:        "duplicate_row",
			Description: "repeat occurrences of the natural key",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'duplicate_row',
					'repeat of salesperson/country/product/date/amount'
				FROM (
					SELECT id, ROW_NUMBER() OVER (
						PARTITION BY salesperson, country, product, sale_date, amount_value
						ORDER BY id
					) AS rn
					FROM chocolate_sales
				) t
				WHERE rn > 1`,
		},
		{
			Name:        "missing_required",
			Description: "null salesperson, country, product or date",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'missing_required',
					CONCAT_WS(', ',
						CASE WHEN salesperson IS NULL THEN 'salesperson' END,
						CASE WHEN country IS NULL THEN 'country' END,
						CASE WHEN product IS NULL THEN 'product' END,
						CASE WHEN sale_date IS NULL THEN 'sale_date' END)
				FROM chocolate_sales
				WHERE salesperson IS NULL OR country IS NULL
				   OR product IS NULL OR sale_date IS NULL`,
		},
		{
			Name:        "unparsed_amount",
			Description: "raw amount present but cast failed",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'unparsed_amount', amount_raw
				FROM chocolate_sales
				WHERE amount_raw IS NOT NULL AND amount_value IS NULL`,
		},
		{
			Name:        "unparsed_date",
			Description: "raw date present but parse failed",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'unparsed_date', sale_date_raw
				FROM chocolate_sales
				WHERE sale_date_raw IS NOT NULL AND sale_date IS NULL`,
		},
		{
			Name:        "nonpositive_amount",
			Description: "amount of zero or less",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'nonpositive_amount', amount_value::text
				FROM chocolate_sales
				WHERE amount_value IS NOT NULL AND amount_value <= 0`,
		},
		{
			Name:        "negative_boxes",
			Description: "negative boxes shipped",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'negative_boxes', boxes_shipped::text
				FROM chocolate_sales
				WHERE boxes_shipped < 0`,
		},
		{
			Name:        "date_out_of_range",
			Description: "sale date outside the sanity window",
			SQL: `INSERT INTO quality_flags (table_name, row_id, rule, detail)
				SELECT 'chocolate_sales', id, 'date_out_of_range', sale_date::text
				FROM chocolate_sales
				WHERE sale_date < DATE '2000-01-01' OR sale_date > CURRENT_DATE`,
		},
	}
}

// Validate applies every quality rule and reports flag counts per rule
func (p *Pipeline) Validate(ctx context.Context) ([]RuleCount, error) {
	var summary []RuleCount

	for _, rule := range Rules() {
		if _, err := p.db.ExecContext(ctx,
			"DELETE FROM quality_flags WHERE table_name = $1 AND rule = $2",
			SalesTable, rule.Name); err != nil {
			return nil, fmt.Errorf("error clearing flags for %s: %w", rule.Name, err)
		}

		result, err := p.db.ExecContext(ctx, rule.SQL)
		if err != nil {
			return nil, fmt.Errorf("error applying rule %s: %w", rule.Name, err)
		}

		count, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		summary = append(summary, RuleCount{Rule: rule.Name, Count: count})
	}

	renderRuleSummary("Validation Summary", summary)
	return summary, nil
}

// IQRBounds returns the outlier fences for the given quartiles:
// 1.5 times the interquartile range beyond Q1 and Q3.
func IQRBounds(q1, q3 float64) (lower, upper float64) {
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// FlagOutliers flags amounts beyond the IQR fences. Outlier rows are
// flagged but stay in the published view.
func (p *Pipeline) FlagOutliers(ctx context.Context) (RuleCount, error) {
	var q1, q3 sql.NullFloat64
	err := p.db.QueryRowContext(ctx, `
		SELECT
			percentile_cont(0.25) WITHIN GROUP (ORDER BY amount_value),
			percentile_cont(0.75) WITHIN GROUP (ORDER BY amount_value)
		FROM chocolate_sales
		WHERE amount_value IS NOT NULL
	`).Scan(&q1, &q3)
	if err != nil {
		return RuleCount{}, fmt.Errorf("error computing quartiles: %w", err)
	}

	if !q1.Valid || !q3.Valid {
		log.Printf("No parsed amounts yet; skipping outlier detection")
		return RuleCount{Rule: "amount_outlier"}, nil
	}

	lower, upper := IQRBounds(q1.Float64, q3.Float64)
	log.Printf("Amount quartiles: Q1=%.2f Q3=%.2f, fences [%.2f, %.2f]",
		q1.Float64, q3.Float64, lower, upper)

	if _, err := p.db.ExecContext(ctx,
		"DELETE FROM quality_flags WHERE table_name = $1 AND rule = 'amount_outlier'",
		SalesTable); err != nil {
		return RuleCount{}, fmt.Errorf("error clearing outlier flags: %w", err)
	}

	result, err := p.db.ExecContext(ctx, `
		INSERT INTO quality_flags (table_name, row_id, rule, detail)
		SELECT 'chocolate_sales', id, 'amount_outlier',
			'amount ' || amount_value || ' outside [' || ROUND($1::numeric, 2) || ', ' || ROUND($2::numeric, 2) || ']'
		FROM chocolate_sales
		WHERE amount_value < $1 OR amount_value > $2
	`, lower, upper)
	if err != nil {
		return RuleCount{}, fmt.Errorf("error flagging outliers: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return RuleCount{}, err
	}

	log.Printf("Flagged %d outlier amounts", count)
	return RuleCount{Rule: "amount_outlier", Count: count}, nil
}

func renderRuleSummary(title string, summary []RuleCount) {
	color.Yellow("\n%s", title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rule", "Flagged Rows"})

	for _, rc := range summary {
		table.Append([]string{rc.Rule, fmt.Sprintf("%d", rc.Count)})
	}

	table.Render()
}
