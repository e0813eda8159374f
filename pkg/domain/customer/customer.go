package customer

import (
	"fmt"
	"strings"

	"github.com/amirasaad/itsobank/pkg/domain"
)

var (
	// ErrCustomerNotFound is returned when no customer matches a customer number.
	ErrCustomerNotFound = fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	// ErrInvalidCustomerNumber is returned for a blank or malformed customer number.
	ErrInvalidCustomerNumber = fmt.Errorf("invalid customer number: %w", domain.ErrValidation)
)

// Customer is a bank customer, identified by an SSN-like customer number.
type Customer struct {
	SSN       string `json:"ssn"`
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// New creates a Customer, trimming surrounding whitespace from every field.
func New(ssn, title, firstName, lastName string) (*Customer, error) {
	ssn = strings.TrimSpace(ssn)
	if ssn == "" {
		return nil, ErrInvalidCustomerNumber
	}
	return &Customer{
		SSN:       ssn,
		Title:     strings.TrimSpace(title),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}, nil
}

// FullName joins title, first and last name, skipping empty parts.
func (c *Customer) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Title, c.FirstName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// NotFound returns ErrCustomerNotFound annotated with the customer number.
func NotFound(ssn string) error {
	return fmt.Errorf("customer %q: %w", ssn, ErrCustomerNotFound)
}
