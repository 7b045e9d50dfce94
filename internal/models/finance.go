package models

import (
	"gorm.io/datatypes"
)

// CompanyLoan records a loan taken by the company itself.
type CompanyLoan struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Date               datatypes.Date `gorm:"not null" json:"date"`
	LoanAmount         *float64       `json:"loan_amount"`
	ProcessingFee      *float64       `json:"processing_fee"`
	GST                *float64       `json:"gst"`
	TotalProcessingFee *float64       `json:"total_processing_fee"`
	TotalDisbursement  *float64       `json:"total_disbursement"`
	InterestRate       *float64       `json:"interest_rate"`
}

// LoanRepayment records a repayment against company loans.
type LoanRepayment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Date         datatypes.Date `gorm:"not null" json:"date"`
	Amount       *float64       `json:"amount"`
	InterestRate *float64       `json:"interest_rate"`
}

// Expenditure records a company expense; Comments is only meaningful
// when the type is "Others".
type Expenditure struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Date            datatypes.Date `gorm:"not null" json:"date"`
	ExpenditureType string         `gorm:"size:50;not null" json:"expenditure_type"`
	Amount          *float64       `json:"amount"`
	Comments        string         `gorm:"size:255" json:"comments"`
}
