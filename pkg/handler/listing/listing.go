// Package listing resolves the active customer number for a request, fetches
// that customer and their accounts from the bank, and selects the view that
// renders the outcome.
//
// Handle is a pure function of the request parameters and a session snapshot.
// It never touches the session itself: the caller applies Result.SessionDelta.
package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
)

// View names selected by Handle.
const (
	ViewAccountListing = "accountListing"
	ViewError          = "error"
)

// Context keys populated by Handle.
const (
	KeyCustomer = "customer"
	KeyAccounts = "accounts"
	KeyMessage  = "message"
	KeyForward  = "forward"
)

// ParamCustomerNumber is both the request parameter and the session key.
const ParamCustomerNumber = "customerNumber"

// EntryPage is where the error view sends the user back to.
const EntryPage = "index.html"

// Bank is the part of the bank facade the handler needs.
type Bank interface {
	FindCustomerByIdentifier(ctx context.Context, id string) (*customer.Customer, error)
	ListAccountsForCustomer(ctx context.Context, id string) ([]*account.Account, error)
}

// Request carries the optional customerNumber parameter. A parameter that was
// sent empty is still present.
type Request struct {
	CustomerNumber    string
	HasCustomerNumber bool
}

// Snapshot is the session state visible to one invocation.
type Snapshot struct {
	CustomerNumber string
	Present        bool
}

// Listing is a successful lookup.
type Listing struct {
	Customer *customer.Customer
	Accounts []*account.Account
}

// Result is the outcome of one invocation.
type Result struct {
	View    string
	Context map[string]any
	// SessionDelta is the new session customerNumber, nil when unchanged.
	SessionDelta *string
}

// Handler selects the account listing or the error view for a request.
type Handler struct {
	bank   Bank
	logger *slog.Logger
}

// New creates a Handler backed by the given bank facade.
func New(bank Bank, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{bank: bank, logger: logger}
}

// Resolve returns the effective customer number and the session delta. An
// explicit parameter wins and is written back; otherwise the session value is
// used as is.
func Resolve(req Request, snap Snapshot) (string, *string) {
	if req.HasCustomerNumber {
		id := req.CustomerNumber
		return id, &id
	}
	if snap.Present {
		return snap.CustomerNumber, nil
	}
	return "", nil
}

// Handle runs one request. Every failure, including a panic in the bank,
// ends in the error view.
func (h *Handler) Handle(ctx context.Context, req Request, snap Snapshot) Result {
	id, delta := Resolve(req, snap)
	logger := h.logger.With(ParamCustomerNumber, id)

	l, err := h.Lookup(ctx, id)
	if err != nil {
		logger.Info("Account listing failed", "error", err)
		return Result{
			View:         ViewError,
			Context:      map[string]any{KeyMessage: message(err), KeyForward: EntryPage},
			SessionDelta: delta,
		}
	}
	logger.Info("Account listing", "accounts", len(l.Accounts))
	return Result{
		View:         ViewAccountListing,
		Context:      map[string]any{KeyCustomer: l.Customer, KeyAccounts: l.Accounts},
		SessionDelta: delta,
	}
}

// Lookup fetches the customer and their accounts. Partial results are
// discarded on failure.
func (h *Handler) Lookup(ctx context.Context, id string) (l *Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			l = nil
			err = fmt.Errorf("bank lookup for %q failed: %v", id, r)
		}
	}()

	c, err := h.bank.FindCustomerByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, customer.NotFound(id)
	}
	accounts, err := h.bank.ListAccountsForCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}
	return &Listing{Customer: c, Accounts: accounts}, nil
}

func message(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "account lookup failed"
}
