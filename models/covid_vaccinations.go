package models

import (
	"database/sql"
	"time"
)

// CovidVaccinations represents the covid_vaccinations table
type CovidVaccinations struct {
	ID                sql.NullInt64  `db:"id" json:"id"`
	ISOCode           sql.NullString `db:"iso_code" json:"iso_code,omitempty"`
	Continent         sql.NullString `db:"continent" json:"continent,omitempty"`
	Location          string         `db:"location" json:"location"`
	ReportDate        time.Time      `db:"report_date" json:"report_date"`
	NewVaccinations   sql.NullInt64  `db:"new_vaccinations" json:"new_vaccinations,omitempty"`
	TotalVaccinations sql.NullInt64  `db:"total_vaccinations" json:"total_vaccinations,omitempty"`
}
