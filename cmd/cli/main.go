package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/itsobank/infra"
	infra_repository "github.com/amirasaad/itsobank/infra/repository"
	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/amirasaad/itsobank/pkg/domain/account"
	"github.com/amirasaad/itsobank/pkg/domain/customer"
	"github.com/amirasaad/itsobank/pkg/service/bank"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = "Usage: cli accounts [customerNumber]"

var errUsage = errors.New(usage)

// facade is the part of the bank service the CLI talks to.
type facade interface {
	FindCustomerByIdentifier(ctx context.Context, id string) (*customer.Customer, error)
	ListAccountsForCustomer(ctx context.Context, id string) ([]*account.Account, error)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if os.Args[1] != "accounts" {
		color.Red("Unknown command: %s", os.Args[1])
		fmt.Println(usage)
		os.Exit(2)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := bank.New(infra_repository.NewUoW(db), logger)

	id, err := customerNumber(os.Args[2:])
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := listAccounts(ctx, svc, id, os.Stdout); err != nil {
		color.Red("Error listing accounts: %v", err)
		os.Exit(1)
	}
}

// customerNumber takes the number from args or, failing that, prompts for it
// without echoing.
func customerNumber(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errUsage
	}
	fmt.Print("Customer number: ")
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read customer number: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func listAccounts(ctx context.Context, svc facade, id string, w io.Writer) error {
	c, err := svc.FindCustomerByIdentifier(ctx, id)
	if err != nil {
		return err
	}
	accounts, err := svc.ListAccountsForCustomer(ctx, id)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	_, _ = header.Fprintf(w, "%s (%s)\n", c.FullName(), c.SSN)
	if len(accounts) == 0 {
		_, _ = color.New(color.FgYellow).Fprintln(w, "No accounts")
		return nil
	}
	amount := color.New(color.FgGreen)
	for _, a := range accounts {
		_, _ = fmt.Fprintf(w, "  %-16s %-9s ", a.Number, a.Type)
		_, _ = amount.Fprintln(w, a.FormattedBalance())
	}
	return nil
}
