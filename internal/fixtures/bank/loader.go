// Package bank loads the demo customers and accounts the bank starts with.
package bank

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/shopspring/decimal"
)

//go:embed customers.csv
var customersCSV string

//go:embed accounts.csv
var accountsCSV string

const (
	customerColumns = 4
	accountColumns  = 5
)

// Data is a set of customers and the accounts they own.
type Data struct {
	Customers []*customer.Customer
	Accounts  []*account.Account
}

// Load parses the customer and account CSV files. Empty paths use the
// embedded fixtures.
func Load(customersPath, accountsPath string) (*Data, error) {
	cr, closeCustomers, err := open(customersPath, customersCSV)
	if err != nil {
		return nil, err
	}
	defer closeCustomers()
	ar, closeAccounts, err := open(accountsPath, accountsCSV)
	if err != nil {
		return nil, err
	}
	defer closeAccounts()

	customers, err := parseCustomers(cr)
	if err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	accounts, err := parseAccounts(ar)
	if err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}
	return &Data{Customers: customers, Accounts: accounts}, nil
}

// Seed writes data in a single unit of work. It does nothing when the store
// already holds customers.
func Seed(ctx context.Context, uow repository.UnitOfWork, data *Data, logger *slog.Logger) error {
	return uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		count, err := customers.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Skipping bank fixtures; customers already present", "existing_count", count)
			return nil
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		for _, c := range data.Customers {
			if err := customers.Create(ctx, c); err != nil {
				return fmt.Errorf("seed customer %s: %w", c.SSN, err)
			}
		}
		for _, a := range data.Accounts {
			if err := accounts.Create(ctx, a); err != nil {
				return fmt.Errorf("seed account %s: %w", a.Number, err)
			}
		}
		logger.Info("Loaded bank fixtures",
			"customers", len(data.Customers),
			"accounts", len(data.Accounts))
		return nil
	})
}

func open(path, embedded string) (io.Reader, func(), error) {
	if path == "" {
		return strings.NewReader(embedded), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readRecords(r io.Reader, columns int) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) < columns {
		return nil, fmt.Errorf(
			"invalid CSV format: expected at least %d columns, got %d",
			columns,
			len(records[0]),
		)
	}
	return records[1:], nil
}

func parseCustomers(r io.Reader) ([]*customer.Customer, error) {
	records, err := readRecords(r, customerColumns)
	if err != nil {
		return nil, err
	}
	result := make([]*customer.Customer, 0, len(records))
	for i, rec := range records {
		c, err := customer.New(rec[0], rec[1], rec[2], rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		result = append(result, c)
	}
	return result, nil
}

func parseAccounts(r io.Reader) ([]*account.Account, error) {
	records, err := readRecords(r, accountColumns)
	if err != nil {
		return nil, err
	}
	result := make([]*account.Account, 0, len(records))
	for i, rec := range records {
		balance, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: balance: %w", i+2, err)
		}
		a, err := account.New(rec[0], rec[1], account.Type(strings.ToUpper(strings.TrimSpace(rec[2]))), balance, rec[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		result = append(result, a)
	}
	return result, nil
}
