package services

import (
	"context"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// WalletAccountService manages the external wallet connection used by
// delegated commits.
type WalletAccountService interface {
	Connect(ctx context.Context, req models.ConnectWalletRequest) (*models.WalletInfoResponse, error)
	Disconnect(ctx context.Context) error
	Status(ctx context.Context) (connected bool)
}

type walletAccount service

var _ WalletAccountService = (*walletAccount)(nil)

func (w *walletAccount) Connect(ctx context.Context, req models.ConnectWalletRequest) (*models.WalletInfoResponse, error) {
	provider := models.WalletProvider(req.WalletType)
	switch provider {
	case models.ProviderMetaMask, models.ProviderWalletConnect:
	default:
		return nil, common.ErrUnsupportedWalletProvider
	}

	info, err := w.srv.walletClient.Connect(ctx, provider)
	if err != nil {
		return nil, err
	}

	res := info.ToResponse()
	return &res, nil
}

func (w *walletAccount) Disconnect(ctx context.Context) error {
	return w.srv.walletClient.Disconnect(ctx)
}

func (w *walletAccount) Status(_ context.Context) bool {
	return w.srv.walletClient.Connected()
}
