// Package mocks holds testify mocks for the repository and facade interfaces.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock of repository.UnitOfWork. Do runs the callback
// against the mock itself unless DoErr is set.
type MockUnitOfWork struct {
	mock.Mock
	Customers repository.CustomerRepository
	Accounts  repository.AccountRepository
	DoErr     error
}

// NewMockUnitOfWork creates a MockUnitOfWork wired to the given repositories.
func NewMockUnitOfWork(
	customers repository.CustomerRepository,
	accounts repository.AccountRepository,
) *MockUnitOfWork {
	return &MockUnitOfWork{Customers: customers, Accounts: accounts}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(m)
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.CustomerRepository)(nil)).Elem():
		return m.Customers, nil
	case reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():
		return m.Accounts, nil
	}
	return nil, nil
}

func (m *MockUnitOfWork) CustomerRepository() (repository.CustomerRepository, error) {
	return m.Customers, nil
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return m.Accounts, nil
}

// MockCustomerRepository is a mock of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock and asserts its expectations on cleanup.
func NewMockCustomerRepository(t testingT) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) GetBySSN(ctx context.Context, ssn string) (*customer.Customer, error) {
	args := m.Called(ctx, ssn)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*customer.Customer)
	return cs, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock and asserts its expectations on cleanup.
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, ssn string) ([]*account.Account, error) {
	args := m.Called(ctx, ssn)
	as, _ := args.Get(0).([]*account.Account)
	return as, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

// MockBank is a mock of the bank facade as seen by the listing handler.
type MockBank struct {
	mock.Mock
}

// NewMockBank creates a mock and asserts its expectations on cleanup.
func NewMockBank(t testingT) *MockBank {
	m := &MockBank{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBank) FindCustomerByIdentifier(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockBank) ListAccountsForCustomer(ctx context.Context, id string) ([]*account.Account, error) {
	args := m.Called(ctx, id)
	as, _ := args.Get(0).([]*account.Account)
	return as, args.Error(1)
}

var (
	_ repository.UnitOfWork         = (*MockUnitOfWork)(nil)
	_ repository.CustomerRepository = (*MockCustomerRepository)(nil)
	_ repository.AccountRepository  = (*MockAccountRepository)(nil)
)
