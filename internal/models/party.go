package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seller is a party that delivers commodities to a warehouse.
// The numeric ID is the stable join key carried on ledger rows;
// Name is a display label only.
type Seller struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100" json:"name"`
	Mobile        string         `gorm:"size:15;uniqueIndex" json:"mobile"`
	Address       string         `gorm:"size:200" json:"address"`
	BankingName   string         `gorm:"size:100" json:"banking_name"`
	AccountNumber string         `gorm:"size:30" json:"account_number"`
	IFSCCode      string         `gorm:"size:20" json:"ifsc_code"`
	BankName      string         `gorm:"size:100" json:"bank_name"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Stockist is a party that stores commodities and may take loans
// against stored stock.
type Stockist struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100" json:"name"`
	Mobile        string         `gorm:"size:15;uniqueIndex" json:"mobile"`
	Address       string         `gorm:"size:200" json:"address"`
	BankingName   string         `gorm:"size:100" json:"banking_name"`
	AccountNumber string         `gorm:"size:30" json:"account_number"`
	IFSCCode      string         `gorm:"size:20" json:"ifsc_code"`
	BankName      string         `gorm:"size:100" json:"bank_name"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// User is an administrative account with password login.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100" json:"name"`
	Email        string         `gorm:"size:100;uniqueIndex" json:"email"`
	Mobile       string         `gorm:"size:15" json:"mobile"`
	PasswordHash string         `gorm:"size:128" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
