package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a customer record in the database.
type Customer struct {
	SSN       string    `gorm:"primaryKey;size:20"`
	Title     string    `gorm:"size:10"`
	FirstName string    `gorm:"size:50"`
	LastName  string    `gorm:"size:50;not null"`
	Accounts  []Account `gorm:"foreignKey:CustomerSSN;references:SSN"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Account represents an account record in the database.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      string          `gorm:"uniqueIndex;size:20;not null"`
	CustomerSSN string          `gorm:"index;size:20;not null"`
	Type        string          `gorm:"size:10;not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
