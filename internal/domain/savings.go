package domain

import "github.com/shopspring/decimal"

// SavingsTerms are the fixed terms applied to a savings account.
type SavingsTerms struct {
	InterestRate          decimal.Decimal
	MinimumInitialBalance decimal.Decimal
}

// DefaultSavingsTerms returns the standard savings terms:
// 5% monthly interest and a 100.00 minimum opening balance.
func DefaultSavingsTerms() SavingsTerms {
	return SavingsTerms{
		InterestRate:          decimal.NewFromFloat(0.05),
		MinimumInitialBalance: decimal.NewFromInt(100),
	}
}

// SavingsAccount is an account that earns monthly interest and cannot
// be overdrawn.
type SavingsAccount struct {
	baseAccount
	terms SavingsTerms
}

// NewSavingsAccount opens a savings account.
// Returns ErrNegativeInitialBalance if the initial balance is negative,
// or ErrBelowMinimumBalance if it is below the required minimum.
func NewSavingsAccount(number, holder string, initial decimal.Decimal, terms SavingsTerms) (*SavingsAccount, error) {
	base, err := newBaseAccount(number, holder, initial)
	if err != nil {
		return nil, err
	}
	if initial.LessThan(terms.MinimumInitialBalance) {
		return nil, ErrBelowMinimumBalance
	}
	return &SavingsAccount{baseAccount: base, terms: terms}, nil
}

// Withdraw never exceeds the current balance; savings accounts have no
// overdraft.
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	return a.withdrawWithin(amount, a.balance)
}

// ApplyMonthlyUpdate credits interest instead of charging a fee:
// balance grows by balance times the interest rate, unconditionally.
func (a *SavingsAccount) ApplyMonthlyUpdate() {
	a.balance = a.balance.Add(a.balance.Mul(a.terms.InterestRate))
}

// Describe returns a reporting snapshot including the interest rate.
func (a *SavingsAccount) Describe() Statement {
	return Statement{
		Number:       a.number,
		Holder:       a.holder,
		Balance:      a.balance,
		Kind:         KindSavings,
		InterestRate: a.terms.InterestRate,
	}
}
