package database

import (
	"godown-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// when using connection poolers (e.g. PgBouncer).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Seller{},
		&models.Stockist{},
		&models.Purchase{},
		&models.Payment{},
		&models.StockEntry{},
		&models.StockExit{},
		&models.LoanEntry{},
		&models.MarginEntry{},
		&models.CompanyLoan{},
		&models.LoanRepayment{},
		&models.Expenditure{},
	)
}
