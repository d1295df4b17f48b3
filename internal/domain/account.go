package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind identifies the account variant
type AccountKind string

const (
	KindChecking AccountKind = "CHECKING"
	KindSavings  AccountKind = "SAVINGS"
)

// Account is the capability shared by every account variant.
// The variant set is closed: CheckingAccount and SavingsAccount are the
// only implementations.
type Account interface {
	// Number returns the account number, immutable after creation.
	Number() string

	// Holder returns the account holder's name, immutable after creation.
	Holder() string

	// Balance returns the current balance.
	Balance() decimal.Decimal

	// Deposit increases the balance by amount.
	// Returns ErrInvalidAmount if amount is zero or negative.
	Deposit(amount decimal.Decimal) error

	// Withdraw decreases the balance by amount and returns true on success.
	// A false return means the amount exceeds the variant's withdrawal limit;
	// the balance is left unchanged. Insufficient funds is an expected
	// business outcome, not an error — the error return is reserved for
	// ErrInvalidAmount (amount zero or negative).
	Withdraw(amount decimal.Decimal) (bool, error)

	// ApplyMonthlyUpdate applies the variant's periodic adjustment:
	// a fee for checking, interest for savings. It cannot fail.
	ApplyMonthlyUpdate()

	// Describe returns a point-in-time snapshot for reporting. Pure, no side effects.
	Describe() Statement
}

// baseAccount holds the identity and balance shared by both variants.
type baseAccount struct {
	number  string
	holder  string
	balance decimal.Decimal
}

// newBaseAccount validates the shared construction rule: the initial
// balance must not be negative.
func newBaseAccount(number, holder string, initial decimal.Decimal) (baseAccount, error) {
	if initial.IsNegative() {
		return baseAccount{}, ErrNegativeInitialBalance
	}
	return baseAccount{number: number, holder: holder, balance: initial}, nil
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Holder() string {
	return a.holder
}

func (a *baseAccount) Balance() decimal.Decimal {
	return a.balance
}

// Deposit increases the balance by amount.
// Returns ErrInvalidAmount if amount is zero or negative.
func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// withdrawWithin performs a withdrawal against the given limit.
// Each variant supplies its own limit: the plain balance for savings,
// balance plus overdraft for checking.
func (a *baseAccount) withdrawWithin(amount, limit decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrInvalidAmount
	}
	if amount.GreaterThan(limit) {
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	return true, nil
}

// NewAccountNumber generates an account number for the given kind,
// e.g. "CHK-9F2A41C7". Used when an account is opened without an
// explicit number.
func NewAccountNumber(kind AccountKind) string {
	prefix := "CHK"
	if kind == KindSavings {
		prefix = "SAV"
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}
