package models

// WalletProvider is the external wallet flavor the user picked on the
// connect screen.
type WalletProvider string

const (
	ProviderMetaMask      WalletProvider = "MetaMask"
	ProviderWalletConnect WalletProvider = "WalletConnect"
)

// WalletInfo describes a connected wallet account.
type WalletInfo struct {
	Address string  `json:"address"`
	ChainID int64   `json:"chainId"`
	Balance Decimal `json:"balance"`
}

type (
	ConnectWalletRequest struct {
		WalletType string `json:"walletType" validate:"required"`
	}

	WalletInfoResponse struct {
		Kind    string  `json:"kind"`
		Address string  `json:"address"`
		ChainID int64   `json:"chainId"`
		Balance Decimal `json:"balance"`
	}
)

func (w WalletInfo) ToResponse() WalletInfoResponse {
	return WalletInfoResponse{
		Kind:    "walletInfo",
		Address: w.Address,
		ChainID: w.ChainID,
		Balance: w.Balance,
	}
}
