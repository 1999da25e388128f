package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

// debitAccount is the demo account funding simulated commits.
const debitAccount = "checking"

// ExecutorService turns a confirmed intent into a ledger record. Wallet
// mediated kinds delegate to the external wallet; everything else runs a
// simulated settlement delay and debits the demo balance.
type ExecutorService interface {
	Execute(ctx context.Context, intent models.TransactionIntent) (*models.TransactionRecord, error)
}

type executor service

var _ ExecutorService = (*executor)(nil)

func (e *executor) Execute(ctx context.Context, intent models.TransactionIntent) (*models.TransactionRecord, error) {
	startTime := time.Now()

	var (
		record *models.TransactionRecord
		err    error
	)
	if intent.Kind.IsDelegated() {
		record, err = e.executeDelegated(ctx, intent)
	} else {
		record, err = e.executeSimulated(ctx, intent)
	}

	status := "succeeded"
	if err != nil {
		status = "failed"
	}
	if e.srv.metrics != nil {
		e.srv.metrics.GetCommitPrometheus().Record(string(intent.Kind), status, time.Since(startTime))
	}

	if err != nil {
		return nil, err
	}

	if err := e.srv.ledgerRepo.Append(ctx, *record); err != nil {
		return nil, err
	}

	return record, nil
}

func (e *executor) executeDelegated(ctx context.Context, intent models.TransactionIntent) (*models.TransactionRecord, error) {
	txHash, err := e.srv.walletClient.SendTransfer(ctx, intent.Metadata.ToAddress, intent.Amount.Decimal)
	if err != nil {
		return nil, err
	}

	networkFee, err := parseFee(e.srv.conf.CommitConfig.NetworkFee)
	if err != nil {
		return nil, err
	}

	record := e.newRecord(intent, models.StatusPending, networkFee)
	record.Details.TransactionHash = txHash
	return record, nil
}

func (e *executor) executeSimulated(ctx context.Context, intent models.TransactionIntent) (*models.TransactionRecord, error) {
	commitConf := e.srv.conf.CommitConfig

	delay := commitConf.GenericDelay
	switch intent.Kind {
	case models.KindBankTransfer:
		delay = commitConf.BankDelay
	case models.KindMobileTransfer:
		delay = commitConf.MobileDelay
	}

	if err := waitDelay(ctx, delay); err != nil {
		return nil, err
	}

	var record *models.TransactionRecord

	switch intent.Kind {
	case models.KindBankTransfer:
		fee, err := parseFee(commitConf.BankFee)
		if err != nil {
			return nil, err
		}
		record = e.newRecord(intent, models.StatusPending, fee)

	case models.KindTrade:
		fee, err := parseFee(commitConf.TradeFee)
		if err != nil {
			return nil, err
		}
		record = e.newRecord(intent, models.StatusCompleted, fee)

		// Trade value is quantity times price regardless of the submitted
		// amount.
		quantity := intent.Metadata.Quantity
		price := intent.Metadata.Price
		record.Amount = models.Decimal{Decimal: quantity.Mul(price.Decimal)}
		record.Details.Symbol = intent.Metadata.Symbol
		record.Details.Quantity = quantity
		record.Details.Price = price
		record.Details.OrderType = intent.Metadata.OrderType
		record.Details.Side = string(intent.Metadata.Side)

	case models.KindCurrencyConversion:
		fee, err := parseFee(commitConf.ConversionFee)
		if err != nil {
			return nil, err
		}

		rate, err := e.srv.ratesRepo.GetRate(ctx, intent.Metadata.FromCurrency, intent.Metadata.ToCurrency)
		if err != nil {
			return nil, err
		}
		converted := intent.Amount.Mul(rate.Rate)

		record = e.newRecord(intent, models.StatusCompleted, fee)
		record.Details.FromCurrency = intent.Metadata.FromCurrency
		record.Details.ToCurrency = intent.Metadata.ToCurrency
		record.Details.Rate = &models.Decimal{Decimal: rate.Rate}
		record.Details.ConvertedAmount = &models.Decimal{Decimal: converted}

	default:
		record = e.newRecord(intent, models.StatusCompleted, decimal.Zero)
	}

	if e.shouldDebit(intent) {
		total := record.Amount.Add(record.Fee.Decimal)
		if _, err := e.srv.balanceRepo.Debit(ctx, debitAccount, total); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// shouldDebit excludes sell trades, those release an asset instead of
// spending from the funding account.
func (e *executor) shouldDebit(intent models.TransactionIntent) bool {
	if intent.Kind == models.KindTrade && intent.Metadata.Side == models.TradeSideSell {
		return false
	}
	return true
}

func (e *executor) newRecord(intent models.TransactionIntent, status models.RecordStatus, fee decimal.Decimal) *models.TransactionRecord {
	return &models.TransactionRecord{
		ID:           e.srv.idgenerator.Generate("tx"),
		Kind:         intent.Kind,
		Amount:       intent.Amount,
		Counterparty: intent.Counterparty,
		Status:       status,
		Fee:          models.Decimal{Decimal: fee},
		Timestamp:    time.Now(),
	}
}

func parseFee(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	fee, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid fee %q in commit config: %w", value, err)
	}
	return fee, nil
}

func waitDelay(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Warn(ctx, "[EXECUTOR]", log.Err(ctx.Err()),
			log.String("message", "commit interrupted before settlement"))
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
