package models

import (
	"database/sql"
	"time"
)

// QualityFlag represents a single quality_flags row: one rule violation
// recorded against one row of a profiled table.
type QualityFlag struct {
	ID        int            `db:"id" json:"id"`
	TableName string         `db:"table_name" json:"table_name"`
	RowID     int            `db:"row_id" json:"row_id"`
	Rule      string         `db:"rule" json:"rule"`
	Detail    sql.NullString `db:"detail" json:"detail,omitempty"`
	FlaggedAt time.Time      `db:"flagged_at" json:"flagged_at"`
}
