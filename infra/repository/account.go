package repository

import (
	"context"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided *gorm.DB.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// ListByCustomer implements repository.AccountRepository.
func (r *accountRepository) ListByCustomer(ctx context.Context, ssn string) ([]*account.Account, error) {
	var rows []Account
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("customer_ssn = ?", ssn).
			Order("number").
			Find(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*account.Account, 0, len(rows))
	for i := range rows {
		result = append(result, mapAccountModelToDomain(&rows[i]))
	}
	return result, nil
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	row := Account{
		ID:          uuid.New(),
		Number:      a.Number,
		CustomerSSN: a.CustomerSSN,
		Type:        string(a.Type),
		Balance:     a.Balance,
		Currency:    a.Currency,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func mapAccountModelToDomain(a *Account) *account.Account {
	return &account.Account{
		Number:      a.Number,
		CustomerSSN: a.CustomerSSN,
		Type:        account.Type(a.Type),
		Balance:     a.Balance,
		Currency:    a.Currency,
	}
}

var _ repository.AccountRepository = (*accountRepository)(nil)
