package account

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNumberRequired is returned when an account is built without a number.
	ErrAccountNumberRequired = errors.New("account number is required")
	// ErrOwnerRequired is returned when an account is built without an owning customer.
	ErrOwnerRequired = errors.New("account owner is required")
)

// Type is the kind of bank account.
type Type string

const (
	Checking Type = "CHECKING"
	Savings  Type = "SAVINGS"
	Fixed    Type = "FIXED"
)

// DefaultCurrency is used when an account is created without one.
const DefaultCurrency = "USD"

// Account is a bank account owned by exactly one customer.
//
// Invariants:
// - Number and CustomerSSN are never empty.
// - Balance carries two decimal places.
type Account struct {
	Number      string          `json:"number"`
	CustomerSSN string          `json:"customer_ssn"`
	Type        Type            `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
}

// New builds an Account. An empty currency falls back to DefaultCurrency and an
// empty type to Checking.
func New(number, customerSSN string, typ Type, balance decimal.Decimal, currency string) (*Account, error) {
	number = strings.TrimSpace(number)
	customerSSN = strings.TrimSpace(customerSSN)
	if number == "" {
		return nil, ErrAccountNumberRequired
	}
	if customerSSN == "" {
		return nil, ErrOwnerRequired
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if typ == "" {
		typ = Checking
	}
	return &Account{
		Number:      number,
		CustomerSSN: customerSSN,
		Type:        typ,
		Balance:     balance.Round(2),
		Currency:    strings.ToUpper(currency),
	}, nil
}

// OwnedBy reports whether the account belongs to the given customer number.
func (a *Account) OwnedBy(ssn string) bool {
	return a.CustomerSSN == ssn
}

// FormattedBalance renders the balance with two decimals and the currency code.
func (a *Account) FormattedBalance() string {
	return a.Balance.StringFixed(2) + " " + a.Currency
}
