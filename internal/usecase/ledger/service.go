package ledger

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lcorreia/bankledger/internal/domain"
)

// OpenAccountInput represents the input for opening an account.
// Number is optional; a fresh one is generated when it is empty.
type OpenAccountInput struct {
	Kind           domain.AccountKind
	Number         string
	Holder         string
	InitialBalance decimal.Decimal
}

// LedgerService owns the bank's account collection. Accounts are kept in
// registration order and never removed. The mutex serializes access so the
// HTTP surface can call in from multiple goroutines; the domain types
// themselves stay lock-free.
type LedgerService struct {
	mu            sync.Mutex
	accounts      []domain.Account
	checkingTerms domain.CheckingTerms
	savingsTerms  domain.SavingsTerms
}

// NewLedgerService creates a new LedgerService instance. The terms are
// applied to every account the service opens.
func NewLedgerService(checkingTerms domain.CheckingTerms, savingsTerms domain.SavingsTerms) *LedgerService {
	return &LedgerService{
		checkingTerms: checkingTerms,
		savingsTerms:  savingsTerms,
	}
}

// OpenAccount constructs the requested variant, registers it, and returns
// its opening statement.
// Logic:
//  1. Generate an account number if the input omits one
//  2. Construct the variant with the service's terms (validation happens there)
//  3. Append to the collection and snapshot it under the lock
//
// Account numbers are not checked for uniqueness; Find returns the first
// match when duplicates exist.
func (s *LedgerService) OpenAccount(input OpenAccountInput) (domain.Statement, error) {
	number := input.Number
	if number == "" {
		number = domain.NewAccountNumber(input.Kind)
	}

	var (
		acct domain.Account
		err  error
	)
	switch input.Kind {
	case domain.KindChecking:
		acct, err = domain.NewCheckingAccount(number, input.Holder, input.InitialBalance, s.checkingTerms)
	case domain.KindSavings:
		acct, err = domain.NewSavingsAccount(number, input.Holder, input.InitialBalance, s.savingsTerms)
	default:
		return domain.Statement{}, fmt.Errorf("unknown account kind %q", input.Kind)
	}
	if err != nil {
		return domain.Statement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, acct)
	return acct.Describe(), nil
}

// Register appends an already-constructed account to the collection.
func (s *LedgerService) Register(acct domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, acct)
}

// Find returns the first registered account with the given number, or
// ErrAccountNotFound. The returned account is the live one: mutations
// through it are visible to later calls. It is not synchronized;
// concurrent callers must go through GetStatement, Deposit, and Withdraw
// instead of touching the account directly.
func (s *LedgerService) Find(number string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(number)
}

func (s *LedgerService) findLocked(number string) (domain.Account, error) {
	for _, acct := range s.accounts {
		if acct.Number() == number {
			return acct, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// GetStatement snapshots the named account while holding the collection
// lock, so readers never observe a balance mid-update.
func (s *LedgerService) GetStatement(number string) (domain.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findLocked(number)
	if err != nil {
		return domain.Statement{}, err
	}
	return acct.Describe(), nil
}

// Deposit credits the named account while holding the collection lock.
// Returns the statement after the deposit.
func (s *LedgerService) Deposit(number string, amount decimal.Decimal) (domain.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findLocked(number)
	if err != nil {
		return domain.Statement{}, err
	}
	if err := acct.Deposit(amount); err != nil {
		return domain.Statement{}, err
	}
	return acct.Describe(), nil
}

// Withdraw debits the named account while holding the collection lock.
// The bool mirrors domain.Account.Withdraw: false means the variant's
// limit refused the withdrawal, which is an expected outcome, not an error.
func (s *LedgerService) Withdraw(number string, amount decimal.Decimal) (bool, domain.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.findLocked(number)
	if err != nil {
		return false, domain.Statement{}, err
	}
	ok, err := acct.Withdraw(amount)
	if err != nil {
		return false, domain.Statement{}, err
	}
	return ok, acct.Describe(), nil
}

// ProcessMonthlyUpdates applies every account's periodic adjustment in
// registration order: checking accounts are charged their fee, savings
// accounts earn interest. Individual updates cannot fail.
func (s *LedgerService) ProcessMonthlyUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.accounts {
		acct.ApplyMonthlyUpdate()
	}
}

// Count returns the number of registered accounts.
func (s *LedgerService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// GenerateReport returns a statement for every account in registration
// order. Read-only.
func (s *LedgerService) GenerateReport() []domain.Statement {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := make([]domain.Statement, 0, len(s.accounts))
	for _, acct := range s.accounts {
		report = append(report, acct.Describe())
	}
	return report
}
