package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/fintechlabs/go-wallet-gate/internal/common/graceful"
	commonhttp "github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/common/http/middleware"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/common/metrics"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/health"
	"github.com/fintechlabs/go-wallet-gate/internal/services"

	v1balances "github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/v1/balances"
	v1quotes "github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/v1/quotes"
	v1session "github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/v1/session"
	v1transaction "github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/v1/transaction"
	v1wallet "github.com/fintechlabs/go-wallet-gate/internal/deliveries/http/v1/wallet"
)

type svc struct {
	app             *fiber.App
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.app.Listen(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.app.ShutdownWithContext(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	conf config.Config,
	gateService services.GateService,
	ledgerService services.LedgerService,
	balanceService services.BalanceService,
	quoteService services.QuoteService,
	walletAccountService services.WalletAccountService,
	metrics metrics.Metrics,
) *svc {
	app := fiber.New(fiber.Config{
		AppName:      conf.App.Name,
		ReadTimeout:  conf.App.HTTPTimeout,
		WriteTimeout: conf.App.HTTPTimeout,
	})

	svc := &svc{
		app:             app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(m.Logger())

	if metrics != nil {
		app.Use(metrics.RegisterFiberMiddleware(app, "/metrics", conf.App.Name, ""))
	}

	apiGroup := app.Group("/api")

	health.New(apiGroup)

	v1Group := apiGroup.Group("/v1")
	v1Group.Use(m.InternalAuth())

	v1session.New(conf, v1Group, gateService)
	v1transaction.New(v1Group, ledgerService)
	v1balances.New(v1Group, balanceService)
	v1quotes.New(v1Group, quoteService)
	v1wallet.New(v1Group, walletAccountService)

	app.Use(func(c *fiber.Ctx) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.OriginalURL())
		return commonhttp.RestErrorResponse(c, fiber.StatusNotFound, errorMessage)
	})

	return svc
}
