package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/itsobank/pkg/domain"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository using the provided *gorm.DB.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// GetBySSN implements repository.CustomerRepository.
func (r *customerRepository) GetBySSN(ctx context.Context, ssn string) (*customer.Customer, error) {
	var c Customer
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Where("ssn = ?", ssn).First(&c).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, customer.NotFound(ssn)
	}
	if err != nil {
		return nil, err
	}
	return mapCustomerModelToDomain(&c), nil
}

// List implements repository.CustomerRepository.
func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var rows []Customer
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Order("ssn").Find(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		result = append(result, mapCustomerModelToDomain(&rows[i]))
	}
	return result, nil
}

// Create implements repository.CustomerRepository.
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	row := Customer{
		SSN:       c.SSN,
		Title:     c.Title,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// Count implements repository.CustomerRepository.
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Model(&Customer{}).Count(&n).Error
	})
	return n, err
}

func mapCustomerModelToDomain(c *Customer) *customer.Customer {
	return &customer.Customer{
		SSN:       c.SSN,
		Title:     c.Title,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

var _ repository.CustomerRepository = (*customerRepository)(nil)
