package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/itsobank/pkg/domain"
	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCustomerRepository_GetBySSN(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"ssn", "title", "first_name", "last_name", "created_at", "updated_at"}).
		AddRow("123-45-6789", "Mr", "Ueli", "Wahli", time.Now().UTC(), time.Now().UTC())
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE ssn = \$1`).
		WithArgs("123-45-6789", 1).
		WillReturnRows(rows)

	c, err := repo.GetBySSN(ctx, "123-45-6789")
	require.NoError(err)
	assert.Equal("123-45-6789", c.SSN)
	assert.Equal("Mr Ueli Wahli", c.FullName())

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE ssn = \$1`).
		WithArgs("000-00-0000", 1).
		WillReturnRows(sqlmock.NewRows([]string{"ssn"}))

	_, err = repo.GetBySSN(ctx, "000-00-0000")
	assert.ErrorIs(err, customer.ErrCustomerNotFound)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE ssn = \$1`).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.GetBySSN(ctx, "123-45-6789")
	assert.ErrorIs(err, domain.ErrUnavailable)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestCustomerRepository_ListAndCount(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"ssn", "title", "first_name", "last_name"}).
		AddRow("111-11-1111", "Mr", "Henry", "Cui").
		AddRow("123-45-6789", "Mr", "Ueli", "Wahli")
	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY ssn`).WillReturnRows(rows)

	customers, err := repo.List(ctx)
	require.NoError(err)
	require.Len(customers, 2)
	assert.Equal("111-11-1111", customers[0].SSN)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.Count(ctx)
	require.NoError(err)
	assert.Equal(int64(2), n)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestCustomerRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)
	c := &customer.Customer{SSN: "123-45-6789", Title: "Mr", FirstName: "Ueli", LastName: "Wahli"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), c))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers" (.+) VALUES (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), c)
	require.ErrorIs(err, domain.ErrAlreadyExists)
}

func TestAccountRepository_ListByCustomer(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	rows := sqlmock.NewRows([]string{"number", "customer_ssn", "type", "balance", "currency"}).
		AddRow("001-999000777", "123-45-6789", "CHECKING", "1234.50", "USD").
		AddRow("001-999000888", "123-45-6789", "SAVINGS", "6543.21", "USD")
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE customer_ssn = \$1 ORDER BY number`).
		WithArgs("123-45-6789").
		WillReturnRows(rows)

	accounts, err := repo.ListByCustomer(context.Background(), "123-45-6789")
	require.NoError(err)
	require.Len(accounts, 2)
	for _, a := range accounts {
		assert.True(a.OwnedBy("123-45-6789"))
	}
	assert.Equal(account.Savings, accounts[1].Type)
	assert.True(decimal.RequireFromString("1234.5").Equal(accounts[0].Balance))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_ListByCustomer_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE customer_ssn = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"number"}))

	accounts, err := repo.ListByCustomer(context.Background(), "999-99-9999")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	a, err := account.New("001-999000777", "123-45-6789", account.Checking, decimal.NewFromInt(10), "USD")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoAndGetRepository(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		customers, err := txUow.CustomerRepository()
		require.NoError(err)
		_, ok := customers.(*customerRepository)
		assert.True(ok)

		accounts, err := txUow.AccountRepository()
		require.NoError(err)
		_, ok = accounts.(*accountRepository)
		assert.True(ok)
		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_UnsupportedRepository(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(reflect.TypeOf(0))
	assert.Error(t, err)
}
