package repositories

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a quoted conversion rate. Synthetic marks a rate produced
// by the last-resort fallback instead of the table.
type ExchangeRate struct {
	Rate      decimal.Decimal
	Synthetic bool
}

// RatesRepository resolves exchange rates for currency conversions. Lookup
// order: direct pair, inverse of the reverse pair, then a synthetic rate in
// [0.5, 2.5) so every pair converts to something.
type RatesRepository interface {
	GetRate(ctx context.Context, from, to string) (ExchangeRate, error)
}

type staticRatesRepository struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	randF func() float64
}

var _ RatesRepository = (*staticRatesRepository)(nil)

func NewStaticRatesRepository() RatesRepository {
	return &staticRatesRepository{
		rates: defaultRates(),
		randF: rand.Float64,
	}
}

func (r *staticRatesRepository) GetRate(_ context.Context, from, to string) (ExchangeRate, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return ExchangeRate{Rate: decimal.NewFromInt(1)}, nil
	}

	if rate, ok := r.rates[pairKey(from, to)]; ok {
		return ExchangeRate{Rate: rate}, nil
	}

	if reverse, ok := r.rates[pairKey(to, from)]; ok {
		return ExchangeRate{Rate: decimal.NewFromInt(1).Div(reverse)}, nil
	}

	r.mu.Lock()
	synthetic := r.randF()*2 + 0.5
	r.mu.Unlock()

	return ExchangeRate{
		Rate:      decimal.NewFromFloat(synthetic),
		Synthetic: true,
	}, nil
}

func pairKey(from, to string) string {
	return fmt.Sprintf("%s-%s", from, to)
}

func defaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		// Fiat to fiat
		"USD-EUR": decimal.NewFromFloat(0.85),
		"USD-GBP": decimal.NewFromFloat(0.73),
		"USD-JPY": decimal.NewFromFloat(110.0),
		"USD-CAD": decimal.NewFromFloat(1.25),
		"USD-AUD": decimal.NewFromFloat(1.35),
		"EUR-USD": decimal.NewFromFloat(1.18),
		"GBP-USD": decimal.NewFromFloat(1.37),
		// Fiat to crypto
		"USD-BTC":  decimal.NewFromFloat(0.000023),
		"USD-ETH":  decimal.NewFromFloat(0.00041),
		"USD-ALGO": decimal.NewFromFloat(0.45),
		"USD-ADA":  decimal.NewFromFloat(2.5),
		"USD-SOL":  decimal.NewFromFloat(0.0085),
		// Crypto to fiat
		"BTC-USD":  decimal.NewFromFloat(43500),
		"ETH-USD":  decimal.NewFromFloat(2450),
		"ALGO-USD": decimal.NewFromFloat(2.22),
		"ADA-USD":  decimal.NewFromFloat(0.4),
		"SOL-USD":  decimal.NewFromFloat(118),
		// Crypto to crypto
		"BTC-ETH":  decimal.NewFromFloat(17.8),
		"ETH-BTC":  decimal.NewFromFloat(0.056),
		"BTC-ALGO": decimal.NewFromFloat(19595),
		"ALGO-BTC": decimal.NewFromFloat(0.000051),
	}
}
