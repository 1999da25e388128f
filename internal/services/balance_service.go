package services

import (
	"context"

	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// BalanceService serves the demo account balances.
type BalanceService interface {
	GetList(ctx context.Context) ([]models.Balance, int, error)
	Get(ctx context.Context, account string) (*models.Balance, error)
}

type balance service

var _ BalanceService = (*balance)(nil)

func (b *balance) GetList(ctx context.Context) ([]models.Balance, int, error) {
	balances, err := b.srv.balanceRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return balances, len(balances), nil
}

func (b *balance) Get(ctx context.Context, account string) (*models.Balance, error) {
	res, err := b.srv.balanceRepo.Get(ctx, account)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
