package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

func ledgerRecord(id string, kind models.TransactionKind, amount string) models.TransactionRecord {
	return models.TransactionRecord{
		ID:           id,
		Kind:         kind,
		Amount:       models.Decimal{Decimal: common.MustDecimal(amount)},
		Counterparty: "Alex Johnson",
		Status:       models.StatusCompleted,
		Fee:          models.Decimal{Decimal: common.MustDecimal("0.25")},
		Timestamp:    time.Now(),
	}
}

func TestInMemoryLedgerRepository_AppendNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryLedgerRepository()

	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-1", models.KindBankTransfer, "500")))
	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-2", models.KindTrade, "300")))
	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-3", models.KindRecharge, "45")))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "tx-3", records[0].ID)
	assert.Equal(t, "tx-2", records[1].ID)
	assert.Equal(t, "tx-1", records[2].ID)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestInMemoryLedgerRepository_ListReturnsSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryLedgerRepository()

	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-1", models.KindBankTransfer, "500")))

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-2", models.KindTrade, "300")))

	// The earlier snapshot must not see the later append.
	assert.Len(t, snapshot, 1)

	snapshot[0].ID = "mutated"
	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx-2", fresh[0].ID)
	assert.Equal(t, "tx-1", fresh[1].ID)
}

func TestInMemoryLedgerRepository_DuplicateIDsAccepted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryLedgerRepository()

	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-1", models.KindBankTransfer, "500")))
	require.NoError(t, repo.Append(ctx, ledgerRecord("tx-1", models.KindBankTransfer, "500")))

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
