package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/cache"
	"github.com/fintechlabs/go-wallet-gate/internal/common/marketdata"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// QuoteService serves market quotes and conversion previews.
type QuoteService interface {
	// GetQuotes returns quotes for the requested symbols, cached for the
	// configured TTL.
	GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, int, error)

	// Subscribe opens a live quote feed.
	Subscribe(ctx context.Context, symbols []string) (marketdata.Subscription, error)

	// PreviewConversion quotes a currency conversion without opening a
	// session.
	PreviewConversion(ctx context.Context, from, to string, amount models.Decimal) (*models.ConversionPreview, error)
}

type quote service

var _ QuoteService = (*quote)(nil)

func (q *quote) GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, int, error) {
	if len(symbols) == 0 {
		return nil, 0, common.ErrValidation
	}

	quotes, err := q.srv.quoteCache.GetOrSet(ctx, cache.GetOrSetOpts[[]models.Quote]{
		Key: quoteCacheKey(symbols),
		TTL: q.srv.conf.MarketData.QuoteTTL,
		Callback: func() ([]models.Quote, error) {
			return q.srv.marketDataClient.GetAssetQuotes(ctx, symbols)
		},
	})
	if err != nil {
		return nil, 0, err
	}

	return quotes, len(quotes), nil
}

func (q *quote) Subscribe(ctx context.Context, symbols []string) (marketdata.Subscription, error) {
	return q.srv.marketDataClient.Subscribe(ctx, symbols)
}

func (q *quote) PreviewConversion(ctx context.Context, from, to string, amount models.Decimal) (*models.ConversionPreview, error) {
	if from == "" || to == "" {
		return nil, common.ErrMissingCurrencyPair
	}
	if !amount.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	rate, err := q.srv.ratesRepo.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &models.ConversionPreview{
		Kind:            "conversionPreview",
		FromCurrency:    strings.ToUpper(from),
		ToCurrency:      strings.ToUpper(to),
		Amount:          amount,
		Rate:            models.Decimal{Decimal: rate.Rate},
		ConvertedAmount: models.Decimal{Decimal: amount.Mul(rate.Rate)},
		Synthetic:       rate.Synthetic,
	}, nil
}

func quoteCacheKey(symbols []string) string {
	sorted := make([]string, len(symbols))
	for i, s := range symbols {
		sorted[i] = strings.ToUpper(s)
	}
	sort.Strings(sorted)
	return fmt.Sprintf("quotes:%s", strings.Join(sorted, ","))
}
