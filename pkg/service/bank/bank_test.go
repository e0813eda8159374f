package bank_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/itsobank/internal/fixtures/mocks"
	"github.com/amirasaad/itsobank/pkg/domain"
	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/service/bank"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ssn = "123-45-6789"

func newService(t *testing.T) (*bank.Service, *mocks.MockUnitOfWork, *mocks.MockCustomerRepository, *mocks.MockAccountRepository) {
	customers := mocks.NewMockCustomerRepository(t)
	accounts := mocks.NewMockAccountRepository(t)
	uow := mocks.NewMockUnitOfWork(customers, accounts)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return bank.New(uow, logger), uow, customers, accounts
}

func mustAccount(t *testing.T, number, owner string) *account.Account {
	t.Helper()
	a, err := account.New(number, owner, account.Checking, decimal.NewFromInt(100), "USD")
	require.NoError(t, err)
	return a
}

func TestFindCustomerByIdentifier_Success(t *testing.T) {
	svc, _, customers, _ := newService(t)
	want := &customer.Customer{SSN: ssn, FirstName: "Ueli", LastName: "Wahli"}
	customers.On("GetBySSN", mock.Anything, ssn).Return(want, nil).Once()

	got, err := svc.FindCustomerByIdentifier(context.Background(), ssn)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindCustomerByIdentifier_NotFound(t *testing.T) {
	svc, _, customers, _ := newService(t)
	customers.On("GetBySSN", mock.Anything, "000-00-0000").
		Return(nil, customer.NotFound("000-00-0000")).Once()

	got, err := svc.FindCustomerByIdentifier(context.Background(), "000-00-0000")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestFindCustomerByIdentifier_InvalidNumber(t *testing.T) {
	svc, _, _, _ := newService(t)

	for _, id := range []string{"", "123-45-6789-123-45-6789-123-45-6789", "12\x0045"} {
		_, err := svc.FindCustomerByIdentifier(context.Background(), id)
		assert.ErrorIs(t, err, customer.ErrInvalidCustomerNumber, "id %q", id)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestFindCustomerByIdentifier_StoreUnavailable(t *testing.T) {
	svc, uow, _, _ := newService(t)
	uow.DoErr = domain.ErrUnavailable

	_, err := svc.FindCustomerByIdentifier(context.Background(), ssn)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestListAccountsForCustomer_FiltersToOwner(t *testing.T) {
	svc, _, customers, accounts := newService(t)
	customers.On("GetBySSN", mock.Anything, ssn).Return(&customer.Customer{SSN: ssn}, nil).Once()
	accounts.On("ListByCustomer", mock.Anything, ssn).Return([]*account.Account{
		mustAccount(t, "001-999000777", ssn),
		mustAccount(t, "001-999000888", ssn),
		mustAccount(t, "002-999000999", "111-11-1111"),
	}, nil).Once()

	got, err := svc.ListAccountsForCustomer(context.Background(), ssn)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, ssn, a.CustomerSSN)
	}
}

func TestListAccountsForCustomer_UnknownCustomer(t *testing.T) {
	svc, _, customers, _ := newService(t)
	customers.On("GetBySSN", mock.Anything, "000-00-0000").
		Return(nil, customer.NotFound("000-00-0000")).Once()

	got, err := svc.ListAccountsForCustomer(context.Background(), "000-00-0000")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestListAccountsForCustomer_RepoError(t *testing.T) {
	svc, _, customers, accounts := newService(t)
	customers.On("GetBySSN", mock.Anything, ssn).Return(&customer.Customer{SSN: ssn}, nil).Once()
	accounts.On("ListByCustomer", mock.Anything, ssn).Return(nil, errors.New("db down")).Once()

	got, err := svc.ListAccountsForCustomer(context.Background(), ssn)
	assert.Nil(t, got)
	assert.EqualError(t, err, "db down")
}

func TestListAccountsForCustomer_NoAccounts(t *testing.T) {
	svc, _, customers, accounts := newService(t)
	customers.On("GetBySSN", mock.Anything, ssn).Return(&customer.Customer{SSN: ssn}, nil).Once()
	accounts.On("ListByCustomer", mock.Anything, ssn).Return([]*account.Account{}, nil).Once()

	got, err := svc.ListAccountsForCustomer(context.Background(), ssn)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
