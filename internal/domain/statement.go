package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Statement is a point-in-time snapshot of an account for reporting.
// MonthlyFee is populated for checking accounts, InterestRate for
// savings accounts.
type Statement struct {
	Number       string
	Holder       string
	Balance      decimal.Decimal
	Kind         AccountKind
	MonthlyFee   decimal.Decimal
	InterestRate decimal.Decimal
}

// String renders the human-readable report block for the statement:
//
//	Account Number: CH001
//	Account Holder: John Doe
//	Balance: $640.00
//	Account Type: Checking
//	Monthly Fee: $10.00
//
// Savings statements show "Interest Rate: 5%" instead of the fee line.
func (s Statement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Number: %s\n", s.Number)
	fmt.Fprintf(&b, "Account Holder: %s\n", s.Holder)
	fmt.Fprintf(&b, "Balance: $%s\n", s.Balance.StringFixed(2))
	switch s.Kind {
	case KindChecking:
		fmt.Fprintf(&b, "Account Type: Checking\n")
		fmt.Fprintf(&b, "Monthly Fee: $%s\n", s.MonthlyFee.StringFixed(2))
	case KindSavings:
		fmt.Fprintf(&b, "Account Type: Savings\n")
		fmt.Fprintf(&b, "Interest Rate: %s%%\n", s.InterestRate.Mul(decimal.NewFromInt(100)).String())
	}
	return b.String()
}
