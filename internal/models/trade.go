package models

import (
	"gorm.io/datatypes"
)

// Purchase records a seller delivery bought by the company.
type Purchase struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Date       datatypes.Date `json:"date"`
	RstNo      string         `gorm:"size:50;uniqueIndex:uix_rstno_warehouse" json:"rst_no"`
	Warehouse  string         `gorm:"size:100;uniqueIndex:uix_rstno_warehouse" json:"warehouse"`
	SellerID   uint           `gorm:"index" json:"seller_id"`
	SellerName string         `gorm:"size:100" json:"seller_name"`
	Mobile     string         `gorm:"size:20" json:"mobile"`
	Commodity  string         `gorm:"size:50" json:"commodity"`
	Quantity   *float64       `json:"quantity"`
	Reduction  *float64       `json:"reduction"`
	NetQty     *float64       `json:"net_qty"`
	Rate       *float64       `json:"rate"`
	Cost       *float64       `json:"cost"`
	Handling   *float64       `json:"handling"`
	NetCost    *float64       `json:"net_cost"`
	Quality    string         `gorm:"size:20" json:"quality"`
}

// Payment records money paid out to a seller.
type Payment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Date          datatypes.Date `gorm:"not null" json:"date"`
	SellerID      uint           `gorm:"index;not null" json:"seller_id"`
	SellerName    string         `gorm:"size:100;not null" json:"seller_name"`
	Warehouse     string         `gorm:"size:100;not null" json:"warehouse"`
	Commodity     string         `gorm:"size:50;not null" json:"commodity"`
	BankingName   string         `gorm:"size:100;not null" json:"banking_name"`
	AccountNumber string         `gorm:"size:30;not null" json:"account_number"`
	IFSC          string         `gorm:"size:20;not null" json:"ifsc"`
	AmountPaid    *float64       `json:"amount_paid"`
	BankReference string         `gorm:"size:100;not null" json:"bank_reference"`
}
