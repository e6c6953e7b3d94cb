package profiler

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/wunmi-ade/analytics_db/models"
)

// ColumnInfo describes one column of the profiled table
type ColumnInfo struct {
	Name     string
	DataType string
}

// ValueCount is one entry of a top-values listing
type ValueCount struct {
	Value string
	Count int64
}

// TableColumns reads the column list for a public-schema table
func TableColumns(ctx context.Context, db *sql.DB, table string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		return nil, fmt.Errorf("error reading columns for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		if err := rows.Scan(&col.Name, &col.DataType); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns", table)
	}
	return columns, rows.Err()
}

// BuildProfileQuery generates one UNION ALL query computing row count,
// null count, distinct count and text-cast min/max for every column of
// the table, in ordinal order.
func BuildProfileQuery(table string, columns []ColumnInfo) string {
	selects := make([]string, 0, len(columns))
	for i, col := range columns {
		quoted := fmt.Sprintf("%q", col.Name)
		selects = append(selects, fmt.Sprintf(
			`SELECT %d AS ordinal, '%s' AS column_name, '%s' AS data_type,
	COUNT(*) AS total_rows,
	COUNT(*) - COUNT(%s) AS null_count,
	COUNT(DISTINCT %s) AS distinct_count,
	MIN(%s::text) AS min_value,
	MAX(%s::text) AS max_value
FROM %s`,
			i+1, col.Name, col.DataType, quoted, quoted, quoted, quoted, table))
	}
	return strings.Join(selects, "\nUNION ALL\n") + "\nORDER BY ordinal"
}

// ProfileTable profiles every column of the table
func ProfileTable(ctx context.Context, db *sql.DB, table string) ([]models.ColumnProfile, error) {
	columns, err := TableColumns(ctx, db, table)
	if err != nil {
		return nil, err
	}

	query := BuildProfileQuery(table, columns)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error profiling %s: %w", table, err)
	}
	defer rows.Close()

	var profiles []models.ColumnProfile
	for rows.Next() {
		var ordinal int
		var p models.ColumnProfile
		if err := rows.Scan(&ordinal, &p.ColumnName, &p.DataType,
			&p.TotalRows, &p.NullCount, &p.DistinctCount,
			&p.MinValue, &p.MaxValue); err != nil {
			return nil, err
		}
		if p.TotalRows > 0 {
			p.NullPercent = float64(p.NullCount) / float64(p.TotalRows) * 100
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DuplicateCount counts rows beyond the first occurrence of each
// distinct combination of the key columns.
func DuplicateCount(ctx context.Context, db *sql.DB, table string, keyColumns []string) (int64, error) {
	if len(keyColumns) == 0 {
		return 0, fmt.Errorf("no key columns given for %s", table)
	}

	quoted := make([]string, len(keyColumns))
	for i, col := range keyColumns {
		quoted[i] = fmt.Sprintf("%q", col)
	}
	keyList := strings.Join(quoted, ", ")

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(dup_count - 1), 0)
		FROM (
			SELECT COUNT(*) AS dup_count
			FROM %s
			GROUP BY %s
			HAVING COUNT(*) > 1
		) d`, table, keyList)

	var count int64
	if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting duplicates in %s: %w", table, err)
	}
	return count, nil
}

// TopValues returns the n most frequent values of a column, the
// high-cardinality summary used in place of a full value listing.
func TopValues(ctx context.Context, db *sql.DB, table, column string, n int) ([]ValueCount, error) {
	query := fmt.Sprintf(`
		SELECT %q::text, COUNT(*)
		FROM %s
		WHERE %q IS NOT NULL
		GROUP BY %q
		ORDER BY COUNT(*) DESC
		LIMIT $1`, column, table, column, column)

	rows, err := db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("error reading top values of %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []ValueCount
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, err
		}
		values = append(values, vc)
	}
	return values, rows.Err()
}

// Render prints the profile report in the table format used elsewhere
func Render(table string, profiles []models.ColumnProfile, duplicates int64) {
	fmt.Printf("\nColumn Profile: %s\n", table)

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Column", "Type", "Rows", "Nulls", "Null %", "Distinct", "Min", "Max"})

	for _, p := range profiles {
		w.Append([]string{
			p.ColumnName,
			p.DataType,
			fmt.Sprintf("%d", p.TotalRows),
			fmt.Sprintf("%d", p.NullCount),
			fmt.Sprintf("%.2f%%", p.NullPercent),
			fmt.Sprintf("%d", p.DistinctCount),
			nullableString(p.MinValue),
			nullableString(p.MaxValue),
		})
	}

	w.Render()
	fmt.Printf("Duplicate rows (beyond first occurrence): %d\n", duplicates)
}

func nullableString(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return "N/A"
}
