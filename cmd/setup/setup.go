package setup

import (
	"context"
	"fmt"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/fintechlabs/go-wallet-gate/internal/common/cache"
	"github.com/fintechlabs/go-wallet-gate/internal/common/graceful"
	"github.com/fintechlabs/go-wallet-gate/internal/common/idgenerator"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/common/marketdata"
	"github.com/fintechlabs/go-wallet-gate/internal/common/metrics"
	"github.com/fintechlabs/go-wallet-gate/internal/common/retry"
	"github.com/fintechlabs/go-wallet-gate/internal/common/walletclient"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/repositories"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type SetupData struct {
	Config  config.Config
	Metrics metrics.Metrics
	Service *services.Services
}

// Init wires configuration, logging, repositories, clients and services.
// Returned stoppers must be run on shutdown even when err is non-nil.
func Init(appName string) (*SetupData, []graceful.ProcessStopper, error) {
	var stoppers []graceful.ProcessStopper

	conf, err := config.Load()
	if err != nil {
		return nil, stoppers, fmt.Errorf("failed to load config: %w", err)
	}

	s := &SetupData{Config: conf}

	if err := log.Init(fmt.Sprintf("%s-%s", conf.App.Name, appName), conf.App.LogLevel); err != nil {
		return s, stoppers, fmt.Errorf("failed to init logger: %w", err)
	}
	stoppers = append(stoppers, func(_ context.Context) error {
		log.Sync()
		return nil
	})

	m := metrics.New()
	s.Metrics = m

	var quoteCache cache.Client[[]models.Quote]
	if conf.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(conf.Redis.Host, conf.Redis.Port),
			Password: conf.Redis.Password,
			DB:       conf.Redis.Db,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return s, stoppers, fmt.Errorf("failed to connect redis: %w", err)
		}
		stoppers = append(stoppers, func(_ context.Context) error {
			return redisClient.Close()
		})

		if err := m.RegisterRedis(redisClient, conf.App.Name, ""); err != nil {
			return s, stoppers, fmt.Errorf("failed to register redis metrics: %w", err)
		}

		quoteCache = cache.NewRedisClient[[]models.Quote](redisClient)
	} else {
		inMemoryCache := cache.NewInMemoryClient[[]models.Quote]()
		stoppers = append(stoppers, func(_ context.Context) error {
			inMemoryCache.Close()
			return nil
		})
		quoteCache = inMemoryCache
	}

	ledgerRepo := repositories.NewInMemoryLedgerRepository()
	balanceRepo, err := repositories.NewInMemoryBalanceRepository(conf.BalanceSeed)
	if err != nil {
		return s, stoppers, fmt.Errorf("failed to seed balances: %w", err)
	}
	ratesRepo := repositories.NewStaticRatesRepository()

	retryer := retry.NewExponentialBackOff(&conf.ExponentialBackoff)
	walletClient := walletclient.New(conf.Wallet, m)
	marketDataClient := marketdata.New(conf.MarketData, m, retryer)

	s.Service = services.New(
		conf,
		ledgerRepo,
		balanceRepo,
		ratesRepo,
		walletClient,
		marketDataClient,
		quoteCache,
		idgenerator.New(),
		m,
	)

	return s, stoppers, nil
}
