package dashboard

import (
	"context"
	"errors"
	"time"

	"godown-backend/internal/accrual"
	"godown-backend/internal/ledger"
	"godown-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUnknownSeller   = errors.New("No seller profile for this mobile")
	ErrUnknownStockist = errors.New("No stockist profile for this mobile")
)

// Service assembles the per-party dashboards. All reads; the asOf date
// comes in from the handler so the assembly is deterministic under test.
type Service struct {
	DB     *gorm.DB
	Ledger *ledger.Store
	Engine *accrual.Engine
}

const displayDate = "02/01/2006"

// TradeSummary mirrors the seller screen's purchase totals row.
type TradeSummary struct {
	Quantity  float64 `json:"quantity"`
	Reduction float64 `json:"reduction"`
	NetQty    float64 `json:"net_qty"`
	Cost      float64 `json:"cost"`
	Handling  float64 `json:"handling"`
	NetCost   float64 `json:"net_cost"`
}

// SellerDashboard is everything the seller screen shows.
type SellerDashboard struct {
	Purchases       []models.Purchase `json:"purchases"`
	Payments        []models.Payment  `json:"payments"`
	PurchaseSummary TradeSummary      `json:"purchase_summary"`
	AmountPaid      float64           `json:"amount_paid"`
	PaymentDue      float64           `json:"payment_due"`
	Today           string            `json:"today"`
}

// Seller builds the seller dashboard for the profile matching the mobile.
func (s *Service) Seller(ctx context.Context, mobile string, asOf time.Time) (*SellerDashboard, error) {
	var seller models.Seller
	if err := s.DB.WithContext(ctx).Where("mobile = ?", mobile).First(&seller).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnknownSeller
		}
		return nil, err
	}

	var purchases []models.Purchase
	if err := s.DB.WithContext(ctx).
		Where("seller_id = ?", seller.ID).
		Order("date, id").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := s.DB.WithContext(ctx).
		Where("seller_id = ?", seller.ID).
		Order("date, id").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	out := &SellerDashboard{
		Purchases: purchases,
		Payments:  payments,
		Today:     asOf.Format(displayDate),
	}
	for _, p := range purchases {
		out.PurchaseSummary.Quantity += val(p.Quantity)
		out.PurchaseSummary.Reduction += val(p.Reduction)
		out.PurchaseSummary.NetQty += val(p.NetQty)
		out.PurchaseSummary.Cost += val(p.Cost)
		out.PurchaseSummary.Handling += val(p.Handling)
		out.PurchaseSummary.NetCost += val(p.NetCost)
	}
	for _, p := range payments {
		out.AmountPaid += val(p.AmountPaid)
	}
	out.PaymentDue = out.PurchaseSummary.NetCost - out.AmountPaid
	return out, nil
}

// StockistDashboard is the stockist screen: raw ledger rows plus the
// accrual statement computed from the same rows.
type StockistDashboard struct {
	StockEntries []models.StockEntry  `json:"stock_data"`
	StockExits   []models.StockExit   `json:"stock_exits"`
	LoanEntries  []models.LoanEntry   `json:"loan_data"`
	MarginRows   []models.MarginEntry `json:"margin_data"`
	Statement    *accrual.Statement   `json:"statement"`
}

// Stockist builds the stockist dashboard: one fetch per ledger table,
// then in-memory accrual as of the given date.
func (s *Service) Stockist(ctx context.Context, mobile string, asOf time.Time) (*StockistDashboard, error) {
	var stockist models.Stockist
	if err := s.DB.WithContext(ctx).Where("mobile = ?", mobile).First(&stockist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnknownStockist
		}
		return nil, err
	}

	entries, err := s.Ledger.StockEntries(ctx, stockist.ID)
	if err != nil {
		return nil, err
	}
	exits, err := s.Ledger.StockExits(ctx, stockist.ID)
	if err != nil {
		return nil, err
	}
	loans, err := s.Ledger.Loans(ctx, stockist.ID)
	if err != nil {
		return nil, err
	}
	margins, err := s.Ledger.Margins(ctx, stockist.ID)
	if err != nil {
		return nil, err
	}

	return &StockistDashboard{
		StockEntries: entries,
		StockExits:   exits,
		LoanEntries:  loans,
		MarginRows:   margins,
		Statement:    s.Engine.FromRows(entries, exits, loans, margins, asOf),
	}, nil
}

// CompanyDashboard rolls up company-level finance rows.
type CompanyDashboard struct {
	TotalLoanAmount    float64            `json:"total_loan_amount"`
	TotalProcessingFee float64            `json:"total_processing_fee"`
	TotalDisbursement  float64            `json:"total_disbursement"`
	TotalRepaid        float64            `json:"total_repaid"`
	Outstanding        float64            `json:"outstanding"`
	ExpenditureByType  map[string]float64 `json:"expenditure_by_type"`
	TotalExpenditure   float64            `json:"total_expenditure"`
	Today              string             `json:"today"`
}

// Company builds the admin company dashboard.
func (s *Service) Company(ctx context.Context, asOf time.Time) (*CompanyDashboard, error) {
	var loans []models.CompanyLoan
	if err := s.DB.WithContext(ctx).Order("date, id").Find(&loans).Error; err != nil {
		return nil, err
	}
	var repayments []models.LoanRepayment
	if err := s.DB.WithContext(ctx).Order("date, id").Find(&repayments).Error; err != nil {
		return nil, err
	}
	var expenditures []models.Expenditure
	if err := s.DB.WithContext(ctx).Order("date, id").Find(&expenditures).Error; err != nil {
		return nil, err
	}

	out := &CompanyDashboard{
		ExpenditureByType: make(map[string]float64),
		Today:             asOf.Format(displayDate),
	}
	for _, l := range loans {
		out.TotalLoanAmount += val(l.LoanAmount)
		out.TotalProcessingFee += val(l.TotalProcessingFee)
		out.TotalDisbursement += val(l.TotalDisbursement)
	}
	for _, r := range repayments {
		out.TotalRepaid += val(r.Amount)
	}
	for _, e := range expenditures {
		out.ExpenditureByType[e.ExpenditureType] += val(e.Amount)
		out.TotalExpenditure += val(e.Amount)
	}
	out.Outstanding = out.TotalLoanAmount - out.TotalRepaid
	return out, nil
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
