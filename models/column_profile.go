package models

import "database/sql"

// ColumnProfile holds per-column statistics produced by the profiler
type ColumnProfile struct {
	ColumnName    string         `json:"column_name"`
	DataType      string         `json:"data_type"`
	TotalRows     int64          `json:"total_rows"`
	NullCount     int64          `json:"null_count"`
	NullPercent   float64        `json:"null_percent"`
	DistinctCount int64          `json:"distinct_count"`
	MinValue      sql.NullString `json:"min_value,omitempty"`
	MaxValue      sql.NullString `json:"max_value,omitempty"`
}
