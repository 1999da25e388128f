package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

func TestLedger_GetList(t *testing.T) {
	testHelper := serviceTestHelper(t)

	records := []models.TransactionRecord{
		{
			ID:           "tx-2",
			Kind:         models.KindTrade,
			Amount:       *mustModelDecimal(t, "300"),
			Counterparty: "AAPL",
			Status:       models.StatusCompleted,
			Fee:          *mustModelDecimal(t, "2.95"),
			Timestamp:    time.Now(),
		},
		{
			ID:           "tx-1",
			Kind:         models.KindBankTransfer,
			Amount:       *mustModelDecimal(t, "500"),
			Counterparty: "Alex Johnson",
			Status:       models.StatusPending,
			Fee:          *mustModelDecimal(t, "0.25"),
			Timestamp:    time.Now().Add(-time.Minute),
		},
	}
	testHelper.mockLedgerRepository.EXPECT().List(gomock.Any()).Return(records, nil)
	testHelper.mockLedgerRepository.EXPECT().CountAll(gomock.Any()).Return(len(records), nil)

	res, total, err := testHelper.ledgerService.GetList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "transactionRecord", res[0].Kind)
	assert.Equal(t, "tx-2", res[0].ID)
	assert.Equal(t, models.KindTrade, res[0].Transaction)
	assert.Equal(t, "tx-1", res[1].ID)
}

func TestBalance_GetList(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockBalanceRepository.EXPECT().GetAll(gomock.Any()).Return([]models.Balance{
		{Account: "checking", Amount: *mustModelDecimal(t, "12450.75")},
		{Account: "crypto", Amount: *mustModelDecimal(t, "3.2451")},
	}, nil)

	balances, total, err := testHelper.balanceService.GetList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "checking", balances[0].Account)
}
