// Command demo exercises the ledger end to end: it opens a checking and a
// savings account, runs a deposit and a withdrawal, applies the monthly
// updates, and prints the resulting report. Validation failures during
// setup are reported to stderr; the process exits 0 either way.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/lcorreia/bankledger/internal/domain"
	"github.com/lcorreia/bankledger/internal/usecase/ledger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Banking Error: %v\n", err)
	}
}

func run() error {
	bank := ledger.NewLedgerService(domain.DefaultCheckingTerms(), domain.DefaultSavingsTerms())

	checking, err := domain.NewCheckingAccount("CH001", "John Doe", decimal.NewFromInt(500), domain.DefaultCheckingTerms())
	if err != nil {
		return err
	}
	bank.Register(checking)

	savings, err := domain.NewSavingsAccount("SV001", "Jane Smith", decimal.NewFromInt(1000), domain.DefaultSavingsTerms())
	if err != nil {
		return err
	}
	bank.Register(savings)

	johnAccount, err := bank.Find("CH001")
	if err != nil {
		return err
	}
	fmt.Printf("Initial John's Account Balance: $%s\n", johnAccount.Balance().StringFixed(2))

	if err := johnAccount.Deposit(decimal.NewFromInt(200)); err != nil {
		return err
	}
	if _, err := johnAccount.Withdraw(decimal.NewFromInt(50)); err != nil {
		return err
	}
	fmt.Printf("Updated John's Account Balance: $%s\n", johnAccount.Balance().StringFixed(2))

	bank.ProcessMonthlyUpdates()

	fmt.Println("\nAccounts after monthly updates:")
	fmt.Print(ledger.RenderReport(bank.GenerateReport()))
	return nil
}
