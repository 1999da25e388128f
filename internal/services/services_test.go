package services_test

import (
	"os"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/common/cache"
	mockIDGenerator "github.com/fintechlabs/go-wallet-gate/internal/common/idgenerator/mock"
	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	mockMarketData "github.com/fintechlabs/go-wallet-gate/internal/common/marketdata/mock"
	mockWallet "github.com/fintechlabs/go-wallet-gate/internal/common/walletclient/mock"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/repositories/mock"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl              *gomock.Controller
	config                config.Config
	mockLedgerRepository  *mock.MockLedgerRepository
	mockBalanceRepository *mock.MockBalanceRepository
	mockRatesRepository   *mock.MockRatesRepository
	mockWalletClient      *mockWallet.MockClient
	mockMarketDataClient  *mockMarketData.MockClient
	mockIDGenerator       *mockIDGenerator.MockGenerator

	gateService          services.GateService
	executorService      services.ExecutorService
	ledgerService        services.LedgerService
	balanceService       services.BalanceService
	quoteService         services.QuoteService
	walletAccountService services.WalletAccountService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockLedgerRepository := mock.NewMockLedgerRepository(mockCtrl)
	mockBalanceRepository := mock.NewMockBalanceRepository(mockCtrl)
	mockRatesRepository := mock.NewMockRatesRepository(mockCtrl)
	mockWalletClient := mockWallet.NewMockClient(mockCtrl)
	mockMarketDataClient := mockMarketData.NewMockClient(mockCtrl)
	mockGenerator := mockIDGenerator.NewMockGenerator(mockCtrl)

	quoteCache := cache.NewInMemoryClient[[]models.Quote]()
	t.Cleanup(quoteCache.Close)

	conf := config.Config{
		CommitConfig: config.CommitConfig{
			BankDelay:    time.Millisecond,
			MobileDelay:  time.Millisecond,
			GenericDelay: time.Millisecond,

			BankFee:       "0.25",
			TradeFee:      "2.95",
			ConversionFee: "2.50",
			NetworkFee:    "0.001",
		},
		MarketData: config.MarketDataConfig{
			QuoteTTL: time.Minute,
		},
	}

	serv := services.New(
		conf,
		mockLedgerRepository,
		mockBalanceRepository,
		mockRatesRepository,
		mockWalletClient,
		mockMarketDataClient,
		quoteCache,
		mockGenerator,
		nil,
	)

	return testServiceHelper{
		mockCtrl:              mockCtrl,
		config:                conf,
		mockLedgerRepository:  mockLedgerRepository,
		mockBalanceRepository: mockBalanceRepository,
		mockRatesRepository:   mockRatesRepository,
		mockWalletClient:      mockWalletClient,
		mockMarketDataClient:  mockMarketDataClient,
		mockIDGenerator:       mockGenerator,

		gateService:          serv.Gate,
		executorService:      serv.Executor,
		ledgerService:        serv.Ledger,
		balanceService:       serv.Balance,
		quoteService:         serv.Quote,
		walletAccountService: serv.WalletAccount,
	}
}
