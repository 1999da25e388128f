package walletclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/common/metrics"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

var logMessage = "[WALLET-CLIENT]"

// Client talks JSON-RPC to an EVM node acting as the external wallet
// provider. A single account may be connected at a time; delegated
// transfers are signed on the node's side.
type Client interface {
	// Connect opens a wallet session for the given provider and returns
	// the primary account.
	Connect(ctx context.Context, provider models.WalletProvider) (*models.WalletInfo, error)

	// SendTransfer asks the connected wallet to broadcast a transfer and
	// returns the transaction hash.
	SendTransfer(ctx context.Context, to string, amount decimal.Decimal) (string, error)

	// Disconnect drops the current wallet session.
	Disconnect(ctx context.Context) error

	// Connected reports whether a wallet session is active.
	Connected() bool
}

type client struct {
	endpoint   string
	httpClient *resty.Client
	metrics    metrics.Metrics

	mu      sync.RWMutex
	account string
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

var weiPerEther = decimal.New(1, 18)

func New(configuration config.WalletConfig, metrics metrics.Metrics) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New().
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return &client{
		endpoint:   configuration.RPCEndpoint,
		httpClient: restyClient,
		metrics:    metrics,
	}
}

func (c *client) Connect(ctx context.Context, provider models.WalletProvider) (*models.WalletInfo, error) {
	switch provider {
	case models.ProviderMetaMask, models.ProviderWalletConnect:
	default:
		return nil, common.ErrUnsupportedWalletProvider
	}

	var accounts []string
	if err := c.call(ctx, "eth_requestAccounts", nil, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		log.Warn(ctx, logMessage, log.String("provider", string(provider)),
			log.String("message", "wallet exposed no accounts"))
		return nil, common.ErrConnectionRejected
	}
	account := accounts[0]

	var chainIDHex string
	if err := c.call(ctx, "eth_chainId", nil, &chainIDHex); err != nil {
		return nil, err
	}
	chainID, err := parseHexInt(chainIDHex)
	if err != nil {
		return nil, common.WrapError{Causer: common.ErrWalletUnavailable, Err: err}
	}

	var balanceHex string
	if err := c.call(ctx, "eth_getBalance", []interface{}{account, "latest"}, &balanceHex); err != nil {
		return nil, err
	}
	balance, err := weiHexToEther(balanceHex)
	if err != nil {
		return nil, common.WrapError{Causer: common.ErrWalletUnavailable, Err: err}
	}

	c.mu.Lock()
	c.account = account
	c.mu.Unlock()

	log.Info(ctx, logMessage,
		log.String("provider", string(provider)),
		log.String("address", account),
		log.Int("chainId", int(chainID)))

	return &models.WalletInfo{
		Address: account,
		ChainID: chainID,
		Balance: models.Decimal{Decimal: balance},
	}, nil
}

func (c *client) SendTransfer(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	c.mu.RLock()
	from := c.account
	c.mu.RUnlock()

	if from == "" {
		return "", common.ErrNoWalletConnected
	}

	tx := map[string]string{
		"from":  from,
		"to":    to,
		"value": etherToWeiHex(amount),
	}

	var txHash string
	if err := c.call(ctx, "eth_sendTransaction", []interface{}{tx}, &txHash); err != nil {
		return "", err
	}

	log.Info(ctx, logMessage,
		log.String("to", to),
		log.String("amount", amount.String()),
		log.String("txHash", txHash))

	return txHash, nil
}

func (c *client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == "" {
		return common.ErrNoWalletConnected
	}

	log.Info(ctx, logMessage, log.String("address", c.account),
		log.String("message", "wallet disconnected"))
	c.account = ""
	return nil
}

func (c *client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account != ""
}

func (c *client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	startTime := time.Now()

	if params == nil {
		params = []interface{}{}
	}

	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params}).
		Post(c.endpoint)

	if err != nil {
		log.Error(ctx, logMessage, log.String("method", method), log.Err(err))
		return common.WrapError{Causer: common.ErrWalletUnavailable, Err: err}
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			"wallet-rpc",
			http.MethodPost,
			c.endpoint,
			httpRes.StatusCode(),
		)
	}

	if httpRes.StatusCode() != http.StatusOK {
		log.Error(ctx, logMessage,
			log.String("method", method),
			log.String("httpStatusCode", httpRes.Status()))
		return common.WrapError{
			Causer: common.ErrWalletUnavailable,
			Err:    fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode()),
		}
	}

	var res rpcResponse
	if err := json.Unmarshal(httpRes.Body(), &res); err != nil {
		return common.WrapError{Causer: common.ErrWalletUnavailable, Err: err}
	}

	if res.Error != nil {
		log.Warn(ctx, logMessage,
			log.String("method", method),
			log.Int("rpcCode", res.Error.Code),
			log.String("rpcMessage", res.Error.Message))
		return translateRPCError(method, res.Error)
	}

	if err := json.Unmarshal(res.Result, result); err != nil {
		return common.WrapError{Causer: common.ErrWalletUnavailable, Err: err}
	}

	return nil
}

func translateRPCError(method string, rpcErr *rpcError) error {
	wrapped := fmt.Errorf("rpc error %d: %s", rpcErr.Code, rpcErr.Message)

	switch method {
	case "eth_requestAccounts":
		return common.WrapError{Causer: common.ErrConnectionRejected, Err: wrapped}
	case "eth_sendTransaction":
		return common.WrapError{Causer: common.ErrTransferRejected, Err: wrapped}
	default:
		return common.WrapError{Causer: common.ErrWalletUnavailable, Err: wrapped}
	}
}

func parseHexInt(s string) (int64, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return 0, fmt.Errorf("empty hex quantity")
	}
	return strconv.ParseInt(trimmed, 16, 64)
}

func weiHexToEther(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	wei, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid hex quantity %q", s)
	}
	return decimal.NewFromBigInt(wei, -18), nil
}

func etherToWeiHex(amount decimal.Decimal) string {
	wei := amount.Mul(weiPerEther).Truncate(0)
	return "0x" + wei.BigInt().Text(16)
}
