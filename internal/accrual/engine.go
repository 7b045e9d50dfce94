package accrual

import (
	"context"
	"strings"
	"time"

	"godown-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Rates holds the tariff the engine accrues with. Values come from
// configuration so a tariff change does not require a redeploy.
type Rates struct {
	RentPerMTDay      decimal.Decimal // rupees per metric ton per day
	AnnualInterestPct decimal.Decimal // percent per 365-day year
}

// NewRates builds Rates from configured float values.
func NewRates(rentPerMTDay, annualInterestPct float64) Rates {
	return Rates{
		RentPerMTDay:      decimal.NewFromFloat(rentPerMTDay),
		AnnualInterestPct: decimal.NewFromFloat(annualInterestPct),
	}
}

// Ledger is the engine's data access contract: one fetch per table for a
// party, filtered by the numeric stockist key. Implementations are
// read-only; the engine never writes.
type Ledger interface {
	StockEntries(ctx context.Context, stockistID uint) ([]models.StockEntry, error)
	StockExits(ctx context.Context, stockistID uint) ([]models.StockExit, error)
	Loans(ctx context.Context, stockistID uint) ([]models.LoanEntry, error)
	Margins(ctx context.Context, stockistID uint) ([]models.MarginEntry, error)
}

// LoanSplit is the per-warehouse cash/margin disbursement split.
// Loan rows with any other type count toward interest principal but
// toward neither bucket.
type LoanSplit struct {
	Cash   float64 `json:"cash"`
	Margin float64 `json:"margin"`
}

// Statement is everything the stockist dashboard shows for one party,
// computed as of a single reference date.
type Statement struct {
	// Today is the reference date all day counts were taken against,
	// formatted for display.
	Today string `json:"today"`

	// Materials maps warehouse → commodity → net stored mass in metric
	// tons. Not rounded; a negative value signals more withdrawn than
	// deposited and is surfaced as-is.
	Materials map[string]map[string]float64 `json:"material_summary"`

	// Loans maps warehouse → cash/margin disbursement totals.
	Loans map[string]LoanSplit `json:"loan_summary"`

	// Margins maps warehouse → total margin payments made.
	Margins map[string]float64 `json:"margin_summary"`

	// RentDue maps warehouse → commodity → rent owed, rounded to 2
	// decimals (banker's rounding).
	RentDue map[string]map[string]decimal.Decimal `json:"rental_due"`

	// InterestDue maps warehouse → interest owed on outstanding
	// principal, rounded to 2 decimals (banker's rounding).
	InterestDue map[string]decimal.Decimal `json:"interest_due"`
}

// Engine computes rent and interest accrual from ledger state. It is a
// pure function of the rows, the rates and the asOf date: no clock, no
// caching, no writes.
type Engine struct {
	Rates Rates
}

const (
	kgPerMT     = 1000
	daysPerYear = 365
)

// Statement aggregates a party's ledger and accrues rent and interest as
// of the given date. Missing data yields empty maps, never an error;
// only store failures propagate.
func (e *Engine) Statement(ctx context.Context, ledger Ledger, stockistID uint, asOf time.Time) (*Statement, error) {
	entries, err := ledger.StockEntries(ctx, stockistID)
	if err != nil {
		return nil, err
	}
	exits, err := ledger.StockExits(ctx, stockistID)
	if err != nil {
		return nil, err
	}
	loans, err := ledger.Loans(ctx, stockistID)
	if err != nil {
		return nil, err
	}
	margins, err := ledger.Margins(ctx, stockistID)
	if err != nil {
		return nil, err
	}
	return e.FromRows(entries, exits, loans, margins, asOf), nil
}

// FromRows accrues over already-fetched rows. Callers that also need the
// raw rows (the stockist dashboard) fetch once and pass them here.
func (e *Engine) FromRows(entries []models.StockEntry, exits []models.StockExit, loans []models.LoanEntry, margins []models.MarginEntry, asOf time.Time) *Statement {
	asOf = dateOnly(asOf)
	st := &Statement{
		Today:       asOf.Format("02/01/2006"),
		Materials:   make(map[string]map[string]float64),
		Loans:       make(map[string]LoanSplit),
		Margins:     make(map[string]float64),
		RentDue:     make(map[string]map[string]decimal.Decimal),
		InterestDue: make(map[string]decimal.Decimal),
	}

	e.aggregateStock(st, entries, exits, asOf)
	e.aggregateLoans(st, loans, margins, asOf)
	return st
}

type groupKey struct {
	warehouse string
	commodity string
}

// aggregateStock computes net quantities and rent per (warehouse,
// commodity). The key set comes strictly from stock entries: a group
// that only ever appears in exits is excluded from both the material
// summary and rent.
func (e *Engine) aggregateStock(st *Statement, entries []models.StockEntry, exits []models.StockExit, asOf time.Time) {
	netKg := make(map[groupKey]float64)
	firstDate := make(map[groupKey]time.Time)

	for _, row := range entries {
		key := groupKey{row.Warehouse, row.Commodity}
		netKg[key] += val(row.Quantity)
		d := dateOnly(time.Time(row.Date))
		if first, ok := firstDate[key]; !ok || d.Before(first) {
			firstDate[key] = d
		}
	}
	for _, row := range exits {
		key := groupKey{row.Warehouse, row.Commodity}
		if _, ok := netKg[key]; ok {
			netKg[key] -= val(row.Quantity)
		}
	}

	for key, kg := range netKg {
		netMT := kg / kgPerMT
		if st.Materials[key.warehouse] == nil {
			st.Materials[key.warehouse] = make(map[string]float64)
		}
		st.Materials[key.warehouse][key.commodity] = netMT

		rent := decimal.Zero
		if netMT > 0 {
			days := daysInclusive(firstDate[key], asOf)
			rent = decimal.NewFromFloat(kg).
				Div(decimal.NewFromInt(kgPerMT)).
				Mul(e.Rates.RentPerMTDay).
				Mul(decimal.NewFromInt(int64(days))).
				RoundBank(2)
		}
		if st.RentDue[key.warehouse] == nil {
			st.RentDue[key.warehouse] = make(map[string]decimal.Decimal)
		}
		st.RentDue[key.warehouse][key.commodity] = rent
	}
}

// aggregateLoans computes the loan split, margin totals and per-warehouse
// interest. Interest principal nets margin payments against all loan
// disbursements regardless of loan type.
func (e *Engine) aggregateLoans(st *Statement, loans []models.LoanEntry, margins []models.MarginEntry, asOf time.Time) {
	loanTotal := make(map[string]float64)
	firstLoan := make(map[string]time.Time)

	for _, row := range loans {
		wh := row.Warehouse
		amt := val(row.Amount)
		split := st.Loans[wh]
		switch {
		case strings.EqualFold(row.LoanType, models.LoanTypeCash):
			split.Cash += amt
		case strings.EqualFold(row.LoanType, models.LoanTypeMargin):
			split.Margin += amt
		}
		st.Loans[wh] = split

		loanTotal[wh] += amt
		d := dateOnly(time.Time(row.Date))
		if first, ok := firstLoan[wh]; !ok || d.Before(first) {
			firstLoan[wh] = d
		}
	}

	for _, row := range margins {
		st.Margins[row.Warehouse] += val(row.Amount)
	}

	for wh, total := range loanTotal {
		principal := total - st.Margins[wh]
		days := daysInclusive(firstLoan[wh], asOf)
		interest := decimal.Zero
		if principal > 0 && days > 0 {
			interest = decimal.NewFromFloat(principal).
				Mul(e.Rates.AnnualInterestPct).
				Div(decimal.NewFromInt(100)).
				Mul(decimal.NewFromInt(int64(days))).
				Div(decimal.NewFromInt(daysPerYear)).
				RoundBank(2)
		}
		st.InterestDue[wh] = interest
	}
}

// daysInclusive counts calendar days from first to asOf, both endpoints
// included: an entry dated asOf itself accrues for 1 day.
func daysInclusive(first, asOf time.Time) int {
	days := int(asOf.Sub(first).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// val coalesces a nullable numeric column to zero.
func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
