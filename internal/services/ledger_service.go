package services

import (
	"context"

	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// LedgerService serves the activity feed.
type LedgerService interface {
	// GetList returns all records newest first plus the total count.
	GetList(ctx context.Context) ([]models.TransactionRecordResponse, int, error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

func (l *ledger) GetList(ctx context.Context) ([]models.TransactionRecordResponse, int, error) {
	records, err := l.srv.ledgerRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total, err := l.srv.ledgerRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	res := make([]models.TransactionRecordResponse, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToResponse())
	}

	return res, total, nil
}
