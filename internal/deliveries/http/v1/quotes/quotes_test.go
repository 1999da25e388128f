package quotes

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/services/mock"
)

func mustDecimal(t *testing.T, value string) models.Decimal {
	t.Helper()

	d, err := models.NewDecimal(value)
	require.NoError(t, err)
	return d
}

func Test_Handler_getList(t *testing.T) {
	testHelper := quotesTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		target      string
		expectation Expectation
		doMock      func()
	}{
		{
			name:   "success get quotes",
			target: "/api/v1/quotes?symbols=btc,%20eth",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"symbol":"BTC","name":"Bitcoin","price":43500,"change":1250.5,"changePercent":2.96,"volume":"28.5B"},{"symbol":"ETH","name":"Ethereum","price":2450,"change":-31.2,"changePercent":-1.26,"volume":"12.1B"}],"total_rows":2}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetQuotes(gomock.AssignableToTypeOf(context.Background()), []string{"BTC", "ETH"}).
					Return([]models.Quote{
						{
							Symbol:        "BTC",
							Name:          "Bitcoin",
							Price:         mustDecimal(t, "43500"),
							Change:        mustDecimal(t, "1250.5"),
							ChangePercent: mustDecimal(t, "2.96"),
							Volume:        "28.5B",
						},
						{
							Symbol:        "ETH",
							Name:          "Ethereum",
							Price:         mustDecimal(t, "2450"),
							Change:        mustDecimal(t, "-31.2"),
							ChangePercent: mustDecimal(t, "-1.26"),
							Volume:        "12.1B",
						},
					}, 2, nil)
			},
		},
		{
			name:   "missing symbols query",
			target: "/api/v1/quotes",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"query parameter symbols is required"}`,
				wantCode: 400,
			},
		},
		{
			name:   "upstream unavailable",
			target: "/api/v1/quotes?symbols=BTC",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":503,"message":"market data source unavailable"}`,
				wantCode: 503,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetQuotes(gomock.AssignableToTypeOf(context.Background()), []string{"BTC"}).
					Return(nil, 0, common.ErrDataSourceUnavailable)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer

			req := httptest.NewRequest(http.MethodGet, tc.target, &b)
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, string(body))
		})
	}
}

func Test_Handler_previewConversion(t *testing.T) {
	testHelper := quotesTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		target      string
		expectation Expectation
		doMock      func()
	}{
		{
			name:   "success preview conversion",
			target: "/api/v1/rates/preview?from=USD&to=EUR&amount=100",
			expectation: Expectation{
				wantRes:  `{"kind":"conversionPreview","fromCurrency":"USD","toCurrency":"EUR","amount":100,"rate":0.85,"convertedAmount":85,"synthetic":false}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					PreviewConversion(gomock.AssignableToTypeOf(context.Background()), "USD", "EUR", mustDecimal(t, "100")).
					Return(&models.ConversionPreview{
						Kind:            "conversionPreview",
						FromCurrency:    "USD",
						ToCurrency:      "EUR",
						Amount:          mustDecimal(t, "100"),
						Rate:            mustDecimal(t, "0.85"),
						ConvertedAmount: mustDecimal(t, "85"),
					}, nil)
			},
		},
		{
			name:   "synthetic rate is flagged",
			target: "/api/v1/rates/preview?from=XXX&to=YYY&amount=10",
			expectation: Expectation{
				wantRes:  `{"kind":"conversionPreview","fromCurrency":"XXX","toCurrency":"YYY","amount":10,"rate":1.34,"convertedAmount":13.4,"synthetic":true}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					PreviewConversion(gomock.AssignableToTypeOf(context.Background()), "XXX", "YYY", mustDecimal(t, "10")).
					Return(&models.ConversionPreview{
						Kind:            "conversionPreview",
						FromCurrency:    "XXX",
						ToCurrency:      "YYY",
						Amount:          mustDecimal(t, "10"),
						Rate:            mustDecimal(t, "1.34"),
						ConvertedAmount: mustDecimal(t, "13.4"),
						Synthetic:       true,
					}, nil)
			},
		},
		{
			name:   "unparseable amount",
			target: "/api/v1/rates/preview?from=USD&to=EUR&amount=1OO",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"amount must be greater than zero"}`,
				wantCode: 400,
			},
		},
		{
			name:   "missing currency pair",
			target: "/api/v1/rates/preview?amount=100",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"missing currency pair"}`,
				wantCode: 400,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					PreviewConversion(gomock.AssignableToTypeOf(context.Background()), "", "", mustDecimal(t, "100")).
					Return(nil, common.ErrMissingCurrencyPair)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer

			req := httptest.NewRequest(http.MethodGet, tc.target, &b)
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tc.expectation.wantRes, string(body))
		})
	}
}

type testQuotesHelper struct {
	router      *fiber.App
	mockCtrl    *gomock.Controller
	mockService *mock.MockQuoteService
}

func quotesTestHelper(t *testing.T) testQuotesHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockQuoteService(mockCtrl)

	app := fiber.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testQuotesHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
