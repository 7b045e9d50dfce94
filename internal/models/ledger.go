package models

import (
	"gorm.io/datatypes"
)

// Ledger rows are created by external ingestion and are immutable from
// this service's point of view; every row carries the numeric stockist
// join key plus the free-text name for display.

// StockEntry records material physically deposited into a warehouse.
type StockEntry struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         datatypes.Date `gorm:"not null" json:"date"`
	RstNo        string         `gorm:"size:50;not null" json:"rst_no"`
	Warehouse    string         `gorm:"size:120;not null;index" json:"warehouse"`
	StockistID   uint           `gorm:"index;not null" json:"stockist_id"`
	StockistName string         `gorm:"size:120;not null" json:"stockist_name"`
	Mobile       string         `gorm:"size:20" json:"mobile"`
	Commodity    string         `gorm:"size:50" json:"commodity"`
	Quantity     *float64       `json:"quantity"` // kg
	Reduction    *float64       `json:"reduction"`
	NetQty       *float64       `json:"net_qty"`
	Rate         *float64       `json:"rate"`
	Cost         *float64       `json:"cost"`
	Handling     *float64       `json:"handling"`
	NetCost      *float64       `json:"net_cost"`
	Quality      string         `gorm:"size:40" json:"quality"`
	KindOfStock  string         `gorm:"size:20;default:self" json:"kind_of_stock"`
}

// StockExit records material withdrawn from a warehouse. Quantity is
// always non-negative; a withdrawal reduces the net holding.
type StockExit struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         datatypes.Date `gorm:"not null" json:"date"`
	Warehouse    string         `gorm:"size:120;not null;index" json:"warehouse"`
	StockistID   uint           `gorm:"index;not null" json:"stockist_id"`
	StockistName string         `gorm:"size:120;not null" json:"stockist_name"`
	Mobile       string         `gorm:"size:20" json:"mobile"`
	Commodity    string         `gorm:"size:50;not null" json:"commodity"`
	Quantity     *float64       `json:"quantity"` // kg
	Reduction    *float64       `json:"reduction"`
	NetQty       *float64       `json:"net_qty"`
	Rate         *float64       `json:"rate"`
	Cost         *float64       `json:"cost"`
	Handling     *float64       `json:"handling"`
	NetCost      *float64       `json:"net_cost"`
	Quality      string         `gorm:"size:40" json:"quality"`
}

// Loan types as stored on LoanEntry rows. A "margin" loan is a
// disbursement; it is distinct from a MarginEntry, which is a margin
// payment made by the stockist.
const (
	LoanTypeCash   = "Cash"
	LoanTypeMargin = "Margin"
)

// LoanEntry records a disbursement to a stockist secured against stock.
type LoanEntry struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         datatypes.Date `gorm:"not null" json:"date"`
	StockistID   uint           `gorm:"index;not null" json:"stockist_id"`
	StockistName string         `gorm:"size:100;not null" json:"stockist_name"`
	Warehouse    string         `gorm:"size:120" json:"warehouse"`
	Commodity    string         `gorm:"size:50" json:"commodity"`
	LoanType     string         `gorm:"size:30" json:"loan_type"`
	Amount       *float64       `json:"amount"`
}

// MarginEntry records a margin payment made by a stockist, reducing the
// interest-bearing principal.
type MarginEntry struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         datatypes.Date `gorm:"not null" json:"date"`
	StockistID   uint           `gorm:"index;not null" json:"stockist_id"`
	StockistName string         `gorm:"size:100;not null" json:"stockist_name"`
	Warehouse    string         `gorm:"size:120;not null" json:"warehouse"`
	Commodity    string         `gorm:"size:50;not null" json:"commodity"`
	Amount       *float64       `json:"amount"`
}
