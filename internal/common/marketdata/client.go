package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/common/metrics"
	"github.com/fintechlabs/go-wallet-gate/internal/common/retry"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

var logMessage = "[MARKET-DATA-CLIENT]"

// Client fetches asset quotes from the upstream market data provider.
type Client interface {
	// GetAssetQuotes fetches quotes for the given symbols. The result keeps
	// the input order.
	GetAssetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error)

	// Subscribe streams quote refreshes for the given symbols until the
	// subscription is closed or ctx is done.
	Subscribe(ctx context.Context, symbols []string) (Subscription, error)
}

// Subscription is a live quote feed. Updates are dropped when the consumer
// lags a full poll cycle behind.
type Subscription interface {
	Updates() <-chan []models.Quote
	Close()
}

type client struct {
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	httpClient   *resty.Client
	metrics      metrics.Metrics
	retryer      retry.Retryer
}

type quoteResponse struct {
	Quote models.Quote `json:"quote"`
}

func New(configuration config.MarketDataConfig, metrics metrics.Metrics, retryer retry.Retryer) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New().
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return &client{
		baseURL:      configuration.BaseURL,
		apiKey:       configuration.APIKey,
		pollInterval: configuration.PollInterval,
		httpClient:   restyClient,
		metrics:      metrics,
		retryer:      retryer,
	}
}

func (c *client) GetAssetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	quotes := make([]models.Quote, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		g.Go(func() error {
			quote, err := c.getQuote(gctx, symbol)
			if err != nil {
				return err
			}
			quotes[i] = *quote
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func (c *client) getQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote *models.Quote

	err := c.retryer.Retry(ctx, func() error {
		q, err := c.fetchQuote(ctx, symbol)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

func (c *client) fetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	startTime := time.Now()
	url := fmt.Sprintf("%s/api/v1/quotes/%s", c.baseURL, symbol)

	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-API-Key", c.apiKey).
		Get(url)

	if err != nil {
		log.Warn(ctx, logMessage, log.String("symbol", symbol), log.Err(err))
		return nil, common.WrapError{Causer: common.ErrDataSourceUnavailable, Err: err}
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			"market-data",
			http.MethodGet,
			url,
			httpRes.StatusCode(),
		)
	}

	if httpRes.StatusCode() == http.StatusNotFound {
		return nil, c.retryer.StopRetryWithErr(
			common.WrapError{Causer: common.ErrDataNotFound, Err: fmt.Errorf("unknown symbol %s", symbol)})
	}

	if httpRes.StatusCode() != http.StatusOK {
		log.Warn(ctx, logMessage,
			log.String("symbol", symbol),
			log.String("httpStatusCode", httpRes.Status()))
		return nil, common.WrapError{
			Causer: common.ErrDataSourceUnavailable,
			Err:    fmt.Errorf("invalid response http code: got %d", httpRes.StatusCode()),
		}
	}

	var res quoteResponse
	if err := json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, c.retryer.StopRetryWithErr(
			common.WrapError{Causer: common.ErrDataSourceUnavailable, Err: err})
	}

	return &res.Quote, nil
}

type subscription struct {
	updates chan []models.Quote
	cancel  context.CancelFunc
}

func (s *subscription) Updates() <-chan []models.Quote { return s.updates }

func (s *subscription) Close() { s.cancel() }

func (c *client) Subscribe(ctx context.Context, symbols []string) (Subscription, error) {
	if len(symbols) == 0 {
		return nil, common.ErrValidation
	}

	// Prime the feed so a broken upstream fails the subscribe call instead
	// of an empty channel.
	initial, err := c.GetAssetQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		updates: make(chan []models.Quote, 1),
		cancel:  cancel,
	}
	sub.updates <- initial

	go c.poll(subCtx, symbols, sub.updates)

	return sub, nil
}

func (c *client) poll(ctx context.Context, symbols []string, updates chan<- []models.Quote) {
	defer close(updates)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			quotes, err := c.GetAssetQuotes(ctx, symbols)
			if err != nil {
				log.Warn(ctx, logMessage, log.Err(err),
					log.String("message", "poll failed, keeping last quotes"))
				continue
			}

			select {
			case updates <- quotes:
			default:
				// Consumer lagged, drop the stale refresh.
			}
		}
	}
}
