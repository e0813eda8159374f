package repository

import (
	"context"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// GetBySSN returns customer.ErrCustomerNotFound when no row matches.
	GetBySSN(ctx context.Context, ssn string) (*customer.Customer, error)
	List(ctx context.Context) ([]*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Count(ctx context.Context) (int64, error)
}

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// ListByCustomer returns the customer's accounts ordered by account number.
	ListByCustomer(ctx context.Context, ssn string) ([]*account.Account, error)
	Create(ctx context.Context, a *account.Account) error
}
