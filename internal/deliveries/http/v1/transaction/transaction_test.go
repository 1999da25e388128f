package transaction

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/services/mock"
)

func Test_Handler_getList(t *testing.T) {
	testHelper := transactionTestHelper(t)
	ct := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	amount, err := models.NewDecimal("500")
	require.NoError(t, err)
	fee, err := models.NewDecimal("0.25")
	require.NoError(t, err)

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
			name: "success get transaction list",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"kind":"transactionRecord","id":"tx-1","transactionKind":"bankTransfer","amount":500,"counterparty":"Alex Johnson","status":"pending","fee":0.25,"timestamp":"2025-04-20T00:00:00Z","details":{}}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background())).
					Return([]models.TransactionRecordResponse{
						{
							Kind:         "transactionRecord",
							ID:           "tx-1",
							Transaction:  models.KindBankTransfer,
							Amount:       amount,
							Counterparty: "Alex Johnson",
							Status:       models.StatusPending,
							Fee:          fee,
							Timestamp:    ct,
						},
					}, 1, nil)
			},
		},
		{
			name: "empty ledger",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background())).
					Return([]models.TransactionRecordResponse{}, 0, nil)
			},
		},
		{
			name: "failed to get data",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.
					EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background())).
					Return(nil, 0, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			var b bytes.Buffer

			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", &b)
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

type testTransactionHelper struct {
	router      *fiber.App
	mockCtrl    *gomock.Controller
	mockService *mock.MockLedgerService
}

func transactionTestHelper(t *testing.T) testTransactionHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockLedgerService(mockCtrl)

	app := fiber.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testTransactionHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
