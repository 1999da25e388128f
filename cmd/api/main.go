package main

import (
	"context"
	"sync"
	"time"

	"github.com/fintechlabs/go-wallet-gate/cmd/setup"
	"github.com/fintechlabs/go-wallet-gate/internal/common/graceful"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(
		s.Config,
		s.Service.Gate,
		s.Service.Ledger,
		s.Service.Balance,
		s.Service.Quote,
		s.Service.WalletAccount,
		s.Metrics,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}
