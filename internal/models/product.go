package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the database row for the products table. Laptops and desktops
// share one table discriminated by ProductType; the subtype columns are
// nullable and populated only for the matching type.
type Product struct {
	ID              int64           `db:"id"`
	ProductType     string          `db:"product_type"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	IsActive        bool            `db:"is_active"`
	DateAdded       time.Time       `db:"date_added"`
	ProcessorBrand  string          `db:"processor_brand"`
	ProcessorModel  string          `db:"processor_model"`
	ProcessorCores  int             `db:"processor_core_count"`
	ProcessorClock  float64         `db:"processor_clock_speed_ghz"`
	RAMSize         int             `db:"ram_size"`
	StorageValue    int             `db:"storage_value"`
	StorageUnit     string          `db:"storage_unit"`
	OperatingSystem string          `db:"operating_system"`
	GraphicsCard    string          `db:"graphics_card"`

	// laptop-only columns
	ScreenSize    sql.NullFloat64 `db:"screen_size"`
	BatteryLife   sql.NullInt32   `db:"battery_life"`
	WebcamQuality sql.NullString  `db:"webcam_quality"`

	// desktop-only column
	CaseType sql.NullString `db:"case_type"`
}
