package entities

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter narrows the admin orders report.
type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Statuses []string
	Page     int
	PerPage  int
}

// ReportItem is a flattened row for the orders report and XLSX export.
type ReportItem struct {
	OrderNumber   string
	Title         string
	Status        string
	OrderTypeName sql.NullString
	CustomerName  sql.NullString
	WriterName    sql.NullString
	Pages         int
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
