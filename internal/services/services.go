package services

import (
	"github.com/fintechlabs/go-wallet-gate/internal/common/cache"
	"github.com/fintechlabs/go-wallet-gate/internal/common/idgenerator"
	"github.com/fintechlabs/go-wallet-gate/internal/common/marketdata"
	"github.com/fintechlabs/go-wallet-gate/internal/common/metrics"
	"github.com/fintechlabs/go-wallet-gate/internal/common/walletclient"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	ledgerRepo  repositories.LedgerRepository
	balanceRepo repositories.BalanceRepository
	ratesRepo   repositories.RatesRepository

	walletClient     walletclient.Client
	marketDataClient marketdata.Client
	quoteCache       cache.Client[[]models.Quote]

	idgenerator idgenerator.Generator
	metrics     metrics.Metrics

	common service

	Gate          *gate
	Executor      *executor
	Ledger        *ledger
	Balance       *balance
	Quote         *quote
	WalletAccount *walletAccount
}

func New(
	conf config.Config,
	ledgerRepo repositories.LedgerRepository,
	balanceRepo repositories.BalanceRepository,
	ratesRepo repositories.RatesRepository,
	walletClient walletclient.Client,
	marketDataClient marketdata.Client,
	quoteCache cache.Client[[]models.Quote],
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:             conf,
		ledgerRepo:       ledgerRepo,
		balanceRepo:      balanceRepo,
		ratesRepo:        ratesRepo,
		walletClient:     walletClient,
		marketDataClient: marketDataClient,
		quoteCache:       quoteCache,
		idgenerator:      idgenerator,
		metrics:          metrics,
	}
	srv.common.srv = srv
	srv.Gate = newGate(&srv.common)
	srv.Executor = (*executor)(&srv.common)
	srv.Ledger = (*ledger)(&srv.common)
	srv.Balance = (*balance)(&srv.common)
	srv.Quote = (*quote)(&srv.common)
	srv.WalletAccount = (*walletAccount)(&srv.common)

	return srv
}
