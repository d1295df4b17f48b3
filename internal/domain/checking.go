package domain

import "github.com/shopspring/decimal"

// CheckingTerms are the fixed terms applied to a checking account.
type CheckingTerms struct {
	MonthlyFee     decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// DefaultCheckingTerms returns the standard checking terms:
// a 10.00 monthly fee and a 100.00 overdraft limit.
func DefaultCheckingTerms() CheckingTerms {
	return CheckingTerms{
		MonthlyFee:     decimal.NewFromInt(10),
		OverdraftLimit: decimal.NewFromInt(100),
	}
}

// CheckingAccount is an account that may run a limited negative balance
// and is charged a monthly fee.
type CheckingAccount struct {
	baseAccount
	terms CheckingTerms
}

// NewCheckingAccount opens a checking account.
// Returns ErrNegativeInitialBalance if the initial balance is negative.
func NewCheckingAccount(number, holder string, initial decimal.Decimal, terms CheckingTerms) (*CheckingAccount, error) {
	base, err := newBaseAccount(number, holder, initial)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{baseAccount: base, terms: terms}, nil
}

// Withdraw allows the balance to go negative, but never below the
// negated overdraft limit.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	return a.withdrawWithin(amount, a.balance.Add(a.terms.OverdraftLimit))
}

// ApplyMonthlyUpdate charges the monthly fee. When the balance cannot
// cover the fee it is waived entirely, never partially applied.
func (a *CheckingAccount) ApplyMonthlyUpdate() {
	if a.balance.GreaterThanOrEqual(a.terms.MonthlyFee) {
		a.balance = a.balance.Sub(a.terms.MonthlyFee)
	}
}

// Describe returns a reporting snapshot including the monthly fee.
func (a *CheckingAccount) Describe() Statement {
	return Statement{
		Number:     a.number,
		Holder:     a.holder,
		Balance:    a.balance,
		Kind:       KindChecking,
		MonthlyFee: a.terms.MonthlyFee,
	}
}
