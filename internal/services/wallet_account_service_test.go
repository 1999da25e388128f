package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

func TestWalletAccount_Connect(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ConnectWalletRequest
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "metamask",
			req:  models.ConnectWalletRequest{WalletType: "MetaMask"},
			doMock: func(h testServiceHelper) {
				h.mockWalletClient.EXPECT().
					Connect(gomock.Any(), models.ProviderMetaMask).
					Return(&models.WalletInfo{
						Address: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb",
						ChainID: 1,
						Balance: *mustModelDecimal(t, "3.2451"),
					}, nil)
			},
		},
		{
			name:    "unsupported provider",
			req:     models.ConnectWalletRequest{WalletType: "Ledger"},
			wantErr: common.ErrUnsupportedWalletProvider,
		},
		{
			name: "provider rejects",
			req:  models.ConnectWalletRequest{WalletType: "WalletConnect"},
			doMock: func(h testServiceHelper) {
				h.mockWalletClient.EXPECT().
					Connect(gomock.Any(), models.ProviderWalletConnect).
					Return(nil, common.ErrConnectionRejected)
			},
			wantErr: common.ErrConnectionRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := serviceTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			res, err := testHelper.walletAccountService.Connect(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "walletInfo", res.Kind)
			assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb", res.Address)
			assert.Equal(t, int64(1), res.ChainID)
		})
	}
}

func TestWalletAccount_DisconnectWithoutConnection(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockWalletClient.EXPECT().Disconnect(gomock.Any()).Return(common.ErrNoWalletConnected)

	err := testHelper.walletAccountService.Disconnect(context.Background())
	assert.ErrorIs(t, err, common.ErrNoWalletConnected)
}

func TestWalletAccount_Status(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockWalletClient.EXPECT().Connected().Return(true)

	assert.True(t, testHelper.walletAccountService.Status(context.Background()))
}
