package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckingAccount_NegativeInitialBalance(t *testing.T) {
	_, err := NewCheckingAccount("CH001", "John Doe", decimal.NewFromInt(-1), DefaultCheckingTerms())
	assert.ErrorIs(t, err, ErrNegativeInitialBalance)
}

func TestCheckingAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		initial     decimal.Decimal
		amount      decimal.Decimal
		wantOK      bool
		wantErr     error
		wantBalance decimal.Decimal
	}{
		{
			name:        "Within balance succeeds",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.NewFromInt(50),
			wantOK:      true,
			wantBalance: decimal.NewFromInt(450),
		},
		{
			name:        "Into overdraft succeeds",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.NewFromInt(550),
			wantOK:      true,
			wantBalance: decimal.NewFromInt(-50),
		},
		{
			name:        "Exactly balance plus overdraft succeeds",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.NewFromInt(600),
			wantOK:      true,
			wantBalance: decimal.NewFromInt(-100),
		},
		{
			name:        "Beyond overdraft limit is refused without state change",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.NewFromFloat(600.01),
			wantOK:      false,
			wantBalance: decimal.NewFromInt(500),
		},
		{
			name:        "Zero amount is invalid",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.Zero,
			wantErr:     ErrInvalidAmount,
			wantBalance: decimal.NewFromInt(500),
		},
		{
			name:        "Negative amount is invalid",
			initial:     decimal.NewFromInt(500),
			amount:      decimal.NewFromInt(-10),
			wantErr:     ErrInvalidAmount,
			wantBalance: decimal.NewFromInt(500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := NewCheckingAccount("CH001", "John Doe", tt.initial, DefaultCheckingTerms())
			require.NoError(t, err)

			ok, err := acct.Withdraw(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			}
			assert.True(t, acct.Balance().Equal(tt.wantBalance),
				"balance should be %s, got %s", tt.wantBalance, acct.Balance())
		})
	}
}

func TestCheckingAccount_ApplyMonthlyUpdate(t *testing.T) {
	tests := []struct {
		name        string
		initial     decimal.Decimal
		wantBalance decimal.Decimal
	}{
		{
			name:        "Balance above fee is charged exactly the fee",
			initial:     decimal.NewFromInt(500),
			wantBalance: decimal.NewFromInt(490),
		},
		{
			name:        "Balance equal to fee is charged down to zero",
			initial:     decimal.NewFromInt(10),
			wantBalance: decimal.Zero,
		},
		{
			name:        "Balance below fee is left untouched",
			initial:     decimal.NewFromFloat(9.99),
			wantBalance: decimal.NewFromFloat(9.99),
		},
		{
			name:        "Zero balance is left untouched",
			initial:     decimal.Zero,
			wantBalance: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := NewCheckingAccount("CH001", "John Doe", tt.initial, DefaultCheckingTerms())
			require.NoError(t, err)

			acct.ApplyMonthlyUpdate()
			assert.True(t, acct.Balance().Equal(tt.wantBalance),
				"balance should be %s, got %s", tt.wantBalance, acct.Balance())
		})
	}
}

func TestCheckingAccount_ApplyMonthlyUpdate_OverdrawnBalance(t *testing.T) {
	// The constructor rejects negative balances, so reach one through the
	// overdraft path before applying the fee.
	acct, err := NewCheckingAccount("CH001", "John Doe", decimal.Zero, DefaultCheckingTerms())
	require.NoError(t, err)

	ok, err := acct.Withdraw(decimal.NewFromInt(50))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, acct.Balance().Equal(decimal.NewFromInt(-50)))

	// The fee is waived while the account is overdrawn.
	acct.ApplyMonthlyUpdate()
	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(-50)),
		"overdrawn balance should be untouched, got %s", acct.Balance())
}

func TestCheckingAccount_Describe(t *testing.T) {
	acct, err := NewCheckingAccount("CH001", "John Doe", decimal.NewFromFloat(640), DefaultCheckingTerms())
	require.NoError(t, err)

	st := acct.Describe()
	assert.Equal(t, "CH001", st.Number)
	assert.Equal(t, "John Doe", st.Holder)
	assert.Equal(t, KindChecking, st.Kind)
	assert.True(t, st.Balance.Equal(decimal.NewFromInt(640)))
	assert.True(t, st.MonthlyFee.Equal(decimal.NewFromInt(10)))

	rendered := st.String()
	assert.Contains(t, rendered, "Account Number: CH001")
	assert.Contains(t, rendered, "Account Holder: John Doe")
	assert.Contains(t, rendered, "Balance: $640.00")
	assert.Contains(t, rendered, "Account Type: Checking")
	assert.Contains(t, rendered, "Monthly Fee: $10.00")
}
