package models

import "database/sql"

// Review represents the ecommerce_reviews table
type Review struct {
	ReviewID        string          `db:"review_id" json:"review_id"`
	OrderID         sql.NullString  `db:"order_id" json:"order_id,omitempty"`
	ProductCategory sql.NullString  `db:"product_category" json:"product_category,omitempty"`
	ReviewScore     sql.NullInt64   `db:"review_score" json:"review_score,omitempty"`
	Price           sql.NullFloat64 `db:"price" json:"price,omitempty"`
	FreightValue    sql.NullFloat64 `db:"freight_value" json:"freight_value,omitempty"`
	PurchaseDate    sql.NullTime    `db:"purchase_date" json:"purchase_date,omitempty"`
	DeliveredDate   sql.NullTime    `db:"delivered_date" json:"delivered_date,omitempty"`
	DeliveryDays    sql.NullInt64   `db:"delivery_days" json:"delivery_days,omitempty"`
}
