package ledger

import (
	"context"

	"godown-backend/internal/models"

	"gorm.io/gorm"
)

// Store is the GORM-backed ledger reader. Each method fetches a party's
// full row set in one query; grouping happens in memory downstream.
type Store struct {
	DB *gorm.DB
}

func (s *Store) StockEntries(ctx context.Context, stockistID uint) ([]models.StockEntry, error) {
	var rows []models.StockEntry
	err := s.DB.WithContext(ctx).
		Where("stockist_id = ?", stockistID).
		Order("date, id").
		Find(&rows).Error
	return rows, err
}

func (s *Store) StockExits(ctx context.Context, stockistID uint) ([]models.StockExit, error) {
	var rows []models.StockExit
	err := s.DB.WithContext(ctx).
		Where("stockist_id = ?", stockistID).
		Order("date, id").
		Find(&rows).Error
	return rows, err
}

func (s *Store) Loans(ctx context.Context, stockistID uint) ([]models.LoanEntry, error) {
	var rows []models.LoanEntry
	err := s.DB.WithContext(ctx).
		Where("stockist_id = ?", stockistID).
		Order("date, id").
		Find(&rows).Error
	return rows, err
}

func (s *Store) Margins(ctx context.Context, stockistID uint) ([]models.MarginEntry, error) {
	var rows []models.MarginEntry
	err := s.DB.WithContext(ctx).
		Where("stockist_id = ?", stockistID).
		Order("date, id").
		Find(&rows).Error
	return rows, err
}
