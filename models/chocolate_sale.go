package models

import "database/sql"

// ChocolateSale represents the chocolate_sales table
type ChocolateSale struct {
	ID           int             `db:"id" json:"id"`
	Salesperson  sql.NullString  `db:"salesperson" json:"salesperson,omitempty"`
	Country      sql.NullString  `db:"country" json:"country,omitempty"`
	Product      sql.NullString  `db:"product" json:"product,omitempty"`
	SaleDateRaw  sql.NullString  `db:"sale_date_raw" json:"sale_date_raw,omitempty"`
	SaleDate     sql.NullTime    `db:"sale_date" json:"sale_date,omitempty"`
	AmountRaw    sql.NullString  `db:"amount_raw" json:"amount_raw,omitempty"`
	AmountValue  sql.NullFloat64 `db:"amount_value" json:"amount_value,omitempty"`
	BoxesShipped sql.NullInt64   `db:"boxes_shipped" json:"boxes_shipped,omitempty"`
}
