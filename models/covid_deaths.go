package models

import (
	"database/sql"
	"time"
)

// CovidDeaths represents the covid_deaths table
type CovidDeaths struct {
	ID          int             `db:"id" json:"id"`
	ISOCode     sql.NullString  `db:"iso_code" json:"iso_code,omitempty"`
	Continent   sql.NullString  `db:"continent" json:"continent,omitempty"`
	Location    string          `db:"location" json:"location"`
	ReportDate  time.Time       `db:"report_date" json:"report_date"`
	Population  sql.NullInt64   `db:"population" json:"population,omitempty"`
	TotalCases  sql.NullInt64   `db:"total_cases" json:"total_cases,omitempty"`
	NewCases    sql.NullInt64   `db:"new_cases" json:"new_cases,omitempty"`
	TotalDeaths sql.NullInt64   `db:"total_deaths" json:"total_deaths,omitempty"`
	NewDeaths   sql.NullInt64   `db:"new_deaths" json:"new_deaths,omitempty"`
	ICUPatients sql.NullFloat64 `db:"icu_patients" json:"icu_patients,omitempty"`
}
