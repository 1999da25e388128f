package balances

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
	testHelper := balancesTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "success get balance list",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"account":"checking","amount":12450.75},{"account":"savings","amount":48920}],"total_rows":2}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background())).
					Return([]models.Balance{
						{Account: "checking", Amount: mustDecimal(t, "12450.75")},
						{Account: "savings", Amount: mustDecimal(t, "48920.00")},
					}, 2, nil)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer

			req := httptest.NewRequest(http.MethodGet, "/api/v1/balances", &b)
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

func Test_Handler_get(t *testing.T) {
	testHelper := balancesTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "success get balance",
			expectation: Expectation{
				wantRes:  `{"account":"checking","amount":12450.75}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "checking").
					Return(&models.Balance{Account: "checking", Amount: mustDecimal(t, "12450.75")}, nil)
			},
		},
		{
			name: "unknown account",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"balance account not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "checking").
					Return(nil, common.ErrBalanceAccountNotFound)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer

			req := httptest.NewRequest(http.MethodGet, "/api/v1/balances/checking", &b)
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

type testBalancesHelper struct {
	router      *fiber.App
	mockCtrl    *gomock.Controller
	mockService *mock.MockBalanceService
}

func balancesTestHelper(t *testing.T) testBalancesHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockBalanceService(mockCtrl)

	app := fiber.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testBalancesHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
