// Package bank provides the banking facade used by the web layer: customer
// lookups by customer number and the accounts each customer owns.
//
// Every read runs inside a unit of work so the customer check and the account
// listing see the same snapshot.
package bank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/go-playground/validator/v10"
)

// customerNumberRules are the validator tags applied to a customer number.
const customerNumberRules = "required,max=32,printascii"

// Service is the bank facade.
type Service struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a new bank Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:      uow,
		validate: validator.New(),
		logger:   logger,
	}
}

// FindCustomerByIdentifier returns the customer with the given customer number.
// It fails with customer.ErrInvalidCustomerNumber for a blank or malformed number
// and customer.ErrCustomerNotFound when nobody matches.
func (s *Service) FindCustomerByIdentifier(
	ctx context.Context,
	id string,
) (c *customer.Customer, err error) {
	logger := s.logger.With("customerNumber", id)
	logger.Debug("FindCustomerByIdentifier started")
	defer func() {
		if err != nil {
			logger.Warn("FindCustomerByIdentifier failed", "error", err)
		} else {
			logger.Debug("FindCustomerByIdentifier successful")
		}
	}()

	if err = s.validateCustomerNumber(id); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err = repo.GetBySSN(ctx, id)
		return err
	})
	if err != nil {
		c = nil
	}
	return
}

// ListAccountsForCustomer returns the accounts owned by the customer, ordered
// by account number. The customer must exist.
func (s *Service) ListAccountsForCustomer(
	ctx context.Context,
	id string,
) (accounts []*account.Account, err error) {
	logger := s.logger.With("customerNumber", id)
	logger.Debug("ListAccountsForCustomer started")
	defer func() {
		if err != nil {
			logger.Warn("ListAccountsForCustomer failed", "error", err)
		} else {
			logger.Debug("ListAccountsForCustomer successful", "count", len(accounts))
		}
	}()

	if err = s.validateCustomerNumber(id); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		if _, err = customers.GetBySSN(ctx, id); err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		all, err := repo.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		accounts = make([]*account.Account, 0, len(all))
		for _, a := range all {
			if a.OwnedBy(id) {
				accounts = append(accounts, a)
			}
		}
		return nil
	})
	if err != nil {
		accounts = nil
	}
	return
}

func (s *Service) validateCustomerNumber(id string) error {
	if err := s.validate.Var(id, customerNumberRules); err != nil {
		return fmt.Errorf("customer number %q: %w", id, customer.ErrInvalidCustomerNumber)
	}
	return nil
}
