package repositories

import (
	"context"
	"sync"

	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// LedgerRepository is the append-only record store backing the activity
// feed. Records live for the process lifetime only.
type LedgerRepository interface {
	// Append prepends a record so List returns newest first. Duplicate ids
	// are accepted; the ledger never rewrites history.
	Append(ctx context.Context, record models.TransactionRecord) error

	// List returns a snapshot copy of all records, newest first.
	List(ctx context.Context) ([]models.TransactionRecord, error)

	CountAll(ctx context.Context) (int, error)
}

type inMemoryLedgerRepository struct {
	mu      sync.RWMutex
	records []models.TransactionRecord
}

var _ LedgerRepository = (*inMemoryLedgerRepository)(nil)

func NewInMemoryLedgerRepository() LedgerRepository {
	return &inMemoryLedgerRepository{}
}

func (l *inMemoryLedgerRepository) Append(_ context.Context, record models.TransactionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]models.TransactionRecord{record}, l.records...)
	return nil
}

func (l *inMemoryLedgerRepository) List(_ context.Context) ([]models.TransactionRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]models.TransactionRecord, len(l.records))
	copy(snapshot, l.records)
	return snapshot, nil
}

func (l *inMemoryLedgerRepository) CountAll(_ context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records), nil
}
