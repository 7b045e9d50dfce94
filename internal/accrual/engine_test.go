package accrual

import (
	"context"
	"errors"
	"testing"
	"time"

	"godown-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// fakeLedger serves fixed rows; the engine must not care where they come from.
type fakeLedger struct {
	entries []models.StockEntry
	exits   []models.StockExit
	loans   []models.LoanEntry
	margins []models.MarginEntry
	err     error
}

func (f *fakeLedger) StockEntries(ctx context.Context, id uint) ([]models.StockEntry, error) {
	return f.entries, f.err
}
func (f *fakeLedger) StockExits(ctx context.Context, id uint) ([]models.StockExit, error) {
	return f.exits, f.err
}
func (f *fakeLedger) Loans(ctx context.Context, id uint) ([]models.LoanEntry, error) {
	return f.loans, f.err
}
func (f *fakeLedger) Margins(ctx context.Context, id uint) ([]models.MarginEntry, error) {
	return f.margins, f.err
}

var asOf = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return &Engine{Rates: NewRates(3.334, 13.75)}
}

func ledgerDate(daysAgo int) datatypes.Date {
	return datatypes.Date(asOf.AddDate(0, 0, -daysAgo))
}

func fptr(v float64) *float64 { return &v }

func TestStatement_EmptyParty(t *testing.T) {
	st, err := testEngine().Statement(context.Background(), &fakeLedger{}, 1, asOf)
	require.NoError(t, err)
	assert.Empty(t, st.Materials)
	assert.Empty(t, st.Loans)
	assert.Empty(t, st.Margins)
	assert.Empty(t, st.RentDue)
	assert.Empty(t, st.InterestDue)
	assert.Equal(t, "20/03/2024", st.Today)
}

func TestStatement_RentSingleDeposit(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(10), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(5000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, st.Materials["W"]["Wheat"], 1e-9)
	// 5.0 MT x 3.334 x 11 days (both endpoints counted)
	assert.Equal(t, "183.37", st.RentDue["W"]["Wheat"].String())
}

func TestStatement_DayCountInclusive(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(0), Warehouse: "W", Commodity: "Maize", Quantity: fptr(1000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	// Deposited today: 1 day of rent, not 0.
	assert.Equal(t, "3.33", st.RentDue["W"]["Maize"].String())
}

func TestStatement_Interest(t *testing.T) {
	ledger := &fakeLedger{
		loans: []models.LoanEntry{
			{Date: ledgerDate(30), Warehouse: "W", LoanType: models.LoanTypeCash, Amount: fptr(100000)},
		},
		margins: []models.MarginEntry{
			{Date: ledgerDate(5), Warehouse: "W", Commodity: "Wheat", Amount: fptr(20000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	// principal 80000, 31 days at 13.75% over 365
	assert.Equal(t, "934.25", st.InterestDue["W"].String())
	assert.InDelta(t, 20000, st.Margins["W"], 1e-9)
}

func TestStatement_NegativeNetSurfacedRentClamped(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(0), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(1000)},
		},
		exits: []models.StockExit{
			{Date: ledgerDate(0), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(1500)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	// Inconsistent data is visible, but never billed.
	assert.InDelta(t, -0.5, st.Materials["W"]["Wheat"], 1e-9)
	assert.Equal(t, "0", st.RentDue["W"]["Wheat"].String())
}

func TestStatement_LoanSplitDistinctFromMargins(t *testing.T) {
	ledger := &fakeLedger{
		loans: []models.LoanEntry{
			{Date: ledgerDate(3), Warehouse: "W", LoanType: "cash", Amount: fptr(5000)},
			{Date: ledgerDate(2), Warehouse: "W", LoanType: "margin", Amount: fptr(3000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	// Margin-type loans are disbursements; margin payments live in Margins.
	assert.Equal(t, LoanSplit{Cash: 5000, Margin: 3000}, st.Loans["W"])
	assert.Empty(t, st.Margins)
	// Both loans bear interest from the earliest loan date.
	assert.Equal(t, "12.05", st.InterestDue["W"].String())
}

func TestStatement_OverpaidMarginNoInterest(t *testing.T) {
	ledger := &fakeLedger{
		loans: []models.LoanEntry{
			{Date: ledgerDate(100), Warehouse: "W", LoanType: models.LoanTypeCash, Amount: fptr(10000)},
		},
		margins: []models.MarginEntry{
			{Date: ledgerDate(50), Warehouse: "W", Commodity: "Wheat", Amount: fptr(12000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)
	assert.Equal(t, "0", st.InterestDue["W"].String())
}

func TestStatement_ExitOnlyGroupExcluded(t *testing.T) {
	// A group that only ever appears in exits (bad data) is not billed
	// and not listed: group keys come from stock entries alone.
	ledger := &fakeLedger{
		exits: []models.StockExit{
			{Date: ledgerDate(4), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(700)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)
	assert.Empty(t, st.Materials)
	assert.Empty(t, st.RentDue)
}

func TestStatement_NullAmountsCoalesce(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(5), Warehouse: "W", Commodity: "Wheat", Quantity: nil},
			{Date: ledgerDate(5), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(2000)},
		},
		loans: []models.LoanEntry{
			{Date: ledgerDate(5), Warehouse: "W", LoanType: models.LoanTypeCash, Amount: nil},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, st.Materials["W"]["Wheat"], 1e-9)
	assert.Equal(t, "0", st.InterestDue["W"].String())
}

func TestStatement_GroupsAreIndependent(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(10), Warehouse: "W1", Commodity: "Wheat", Quantity: fptr(5000)},
			{Date: ledgerDate(2), Warehouse: "W1", Commodity: "Maize", Quantity: fptr(3000)},
			{Date: ledgerDate(7), Warehouse: "W2", Commodity: "Wheat", Quantity: fptr(1000)},
		},
		exits: []models.StockExit{
			{Date: ledgerDate(1), Warehouse: "W1", Commodity: "Wheat", Quantity: fptr(2000)},
		},
	}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, st.Materials["W1"]["Wheat"], 1e-9)
	assert.InDelta(t, 3.0, st.Materials["W1"]["Maize"], 1e-9)
	assert.InDelta(t, 1.0, st.Materials["W2"]["Wheat"], 1e-9)
	// Day count runs from each group's own first entry.
	assert.Equal(t, "110.02", st.RentDue["W1"]["Wheat"].String()) // 3 x 3.334 x 11
	assert.Equal(t, "30.01", st.RentDue["W1"]["Maize"].String())  // 3 x 3.334 x 3
	assert.Equal(t, "26.67", st.RentDue["W2"]["Wheat"].String())  // 1 x 3.334 x 8
}

func TestStatement_Idempotent(t *testing.T) {
	ledger := &fakeLedger{
		entries: []models.StockEntry{
			{Date: ledgerDate(10), Warehouse: "W", Commodity: "Wheat", Quantity: fptr(5000)},
		},
		loans: []models.LoanEntry{
			{Date: ledgerDate(30), Warehouse: "W", LoanType: models.LoanTypeCash, Amount: fptr(100000)},
		},
	}
	eng := testEngine()
	first, err := eng.Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)
	second, err := eng.Statement(context.Background(), ledger, 1, asOf)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatement_LedgerErrorPropagates(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("store unavailable")}
	st, err := testEngine().Statement(context.Background(), ledger, 1, asOf)
	assert.Nil(t, st)
	assert.EqualError(t, err, "store unavailable")
}
