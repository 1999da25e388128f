package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/repositories"
)

func testQuotes(t *testing.T) []models.Quote {
	t.Helper()
	return []models.Quote{
		{
			Symbol:        "BTC",
			Name:          "Bitcoin",
			Price:         *mustModelDecimal(t, "43500"),
			Change:        *mustModelDecimal(t, "1250"),
			ChangePercent: *mustModelDecimal(t, "2.96"),
			Volume:        "28.5B",
		},
		{
			Symbol:        "ETH",
			Name:          "Ethereum",
			Price:         *mustModelDecimal(t, "2450"),
			Change:        *mustModelDecimal(t, "-85"),
			ChangePercent: *mustModelDecimal(t, "-3.35"),
			Volume:        "12.1B",
		},
	}
}

func TestQuote_GetQuotes_SecondCallServedFromCache(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()
	symbols := []string{"BTC", "ETH"}

	testHelper.mockMarketDataClient.EXPECT().
		GetAssetQuotes(gomock.Any(), symbols).
		Return(testQuotes(t), nil).
		Times(1)

	quotes, total, err := testHelper.quoteService.GetQuotes(ctx, symbols)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "BTC", quotes[0].Symbol)

	// Served from cache, the client must not be hit again.
	quotes, total, err = testHelper.quoteService.GetQuotes(ctx, symbols)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "43500", quotes[0].Price.String())
}

func TestQuote_GetQuotes_EmptySymbols(t *testing.T) {
	testHelper := serviceTestHelper(t)

	_, _, err := testHelper.quoteService.GetQuotes(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestQuote_GetQuotes_UpstreamUnavailable(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockMarketDataClient.EXPECT().
		GetAssetQuotes(gomock.Any(), gomock.Any()).
		Return(nil, common.ErrDataSourceUnavailable)

	_, _, err := testHelper.quoteService.GetQuotes(context.Background(), []string{"BTC"})
	assert.ErrorIs(t, err, common.ErrDataSourceUnavailable)
}

func TestQuote_PreviewConversion(t *testing.T) {
	tests := []struct {
		name          string
		from          string
		to            string
		amount        string
		doMock        func(h testServiceHelper)
		wantErr       error
		wantRate      string
		wantConverted string
		wantSynthetic bool
	}{
		{
			name:   "table rate",
			from:   "USD",
			to:     "EUR",
			amount: "100",
			doMock: func(h testServiceHelper) {
				h.mockRatesRepository.EXPECT().
					GetRate(gomock.Any(), "USD", "EUR").
					Return(repositories.ExchangeRate{Rate: common.MustDecimal("0.85")}, nil)
			},
			wantRate:      "0.85",
			wantConverted: "85",
		},
		{
			name:   "synthetic rate flagged",
			from:   "XAU",
			to:     "XAG",
			amount: "10",
			doMock: func(h testServiceHelper) {
				h.mockRatesRepository.EXPECT().
					GetRate(gomock.Any(), "XAU", "XAG").
					Return(repositories.ExchangeRate{Rate: common.MustDecimal("1.34"), Synthetic: true}, nil)
			},
			wantRate:      "1.34",
			wantConverted: "13.4",
			wantSynthetic: true,
		},
		{
			name:    "missing pair",
			from:    "USD",
			to:      "",
			amount:  "100",
			wantErr: common.ErrMissingCurrencyPair,
		},
		{
			name:    "non-positive amount",
			from:    "USD",
			to:      "EUR",
			amount:  "0",
			wantErr: common.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := serviceTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			preview, err := testHelper.quoteService.PreviewConversion(
				context.Background(), tt.from, tt.to, *mustModelDecimal(t, tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, preview.Rate.String())
			assert.Equal(t, tt.wantConverted, preview.ConvertedAmount.String())
			assert.Equal(t, tt.wantSynthetic, preview.Synthetic)
		})
	}
}
