package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// BalanceRepository holds the demo account balances. Seeded from config at
// startup, debited by successful simulated commits, reset on restart.
type BalanceRepository interface {
	GetAll(ctx context.Context) ([]models.Balance, error)
	Get(ctx context.Context, account string) (models.Balance, error)

	// Debit subtracts amount from the account and returns the new balance.
	Debit(ctx context.Context, account string, amount decimal.Decimal) (models.Balance, error)
}

type inMemoryBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
	accounts []string
}

var _ BalanceRepository = (*inMemoryBalanceRepository)(nil)

func NewInMemoryBalanceRepository(seed map[string]string) (BalanceRepository, error) {
	balances := make(map[string]decimal.Decimal, len(seed))
	accounts := make([]string, 0, len(seed))

	for account, amount := range seed {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid balance seed for %q: %w", account, err)
		}
		balances[account] = value
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	return &inMemoryBalanceRepository{
		balances: balances,
		accounts: accounts,
	}, nil
}

func (b *inMemoryBalanceRepository) GetAll(_ context.Context) ([]models.Balance, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	res := make([]models.Balance, 0, len(b.accounts))
	for _, account := range b.accounts {
		res = append(res, models.Balance{
			Account: account,
			Amount:  models.Decimal{Decimal: b.balances[account]},
		})
	}
	return res, nil
}

func (b *inMemoryBalanceRepository) Get(_ context.Context, account string) (models.Balance, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	amount, ok := b.balances[account]
	if !ok {
		return models.Balance{}, common.ErrBalanceAccountNotFound
	}

	return models.Balance{Account: account, Amount: models.Decimal{Decimal: amount}}, nil
}

func (b *inMemoryBalanceRepository) Debit(_ context.Context, account string, amount decimal.Decimal) (models.Balance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.balances[account]
	if !ok {
		return models.Balance{}, common.ErrBalanceAccountNotFound
	}

	updated := current.Sub(amount)
	if updated.IsNegative() {
		return models.Balance{}, common.ErrInsufficientBalance
	}

	b.balances[account] = updated
	return models.Balance{Account: account, Amount: models.Decimal{Decimal: updated}}, nil
}
