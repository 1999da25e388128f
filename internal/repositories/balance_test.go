package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
)

func testBalanceRepository(t *testing.T) BalanceRepository {
	t.Helper()

	repo, err := NewInMemoryBalanceRepository(map[string]string{
		"checking": "12450.75",
		"savings":  "48920.00",
		"crypto":   "3.2451",
	})
	require.NoError(t, err)
	return repo
}

func TestInMemoryBalanceRepository_GetAll(t *testing.T) {
	t.Parallel()
	repo := testBalanceRepository(t)

	balances, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 3)

	// Sorted by account name for a stable listing.
	assert.Equal(t, "checking", balances[0].Account)
	assert.Equal(t, "crypto", balances[1].Account)
	assert.Equal(t, "savings", balances[2].Account)
	assert.Equal(t, "12450.75", balances[0].Amount.String())
}

func TestInMemoryBalanceRepository_Debit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		account     string
		amount      string
		wantErr     error
		wantBalance string
	}{
		{
			name:        "success",
			account:     "checking",
			amount:      "500.25",
			wantBalance: "11950.5",
		},
		{
			name:        "exact balance is allowed",
			account:     "savings",
			amount:      "48920.00",
			wantBalance: "0",
		},
		{
			name:    "insufficient balance",
			account: "crypto",
			amount:  "10",
			wantErr: common.ErrInsufficientBalance,
		},
		{
			name:    "unknown account",
			account: "bonds",
			amount:  "1",
			wantErr: common.ErrBalanceAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := testBalanceRepository(t)

			balance, err := repo.Debit(context.Background(), tt.account, common.MustDecimal(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, balance.Amount.String())

			got, err := repo.Get(context.Background(), tt.account)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, got.Amount.String())
		})
	}
}

func TestNewInMemoryBalanceRepository_InvalidSeed(t *testing.T) {
	t.Parallel()

	_, err := NewInMemoryBalanceRepository(map[string]string{"checking": "not-a-number"})
	assert.Error(t, err)

	// An empty value is a broken seed, not a zero balance.
	_, err = NewInMemoryBalanceRepository(map[string]string{"checking": ""})
	assert.Error(t, err)
}
