package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrDataNotFound        = errors.New("data not found")

	ErrInvalidIntent        = errors.New("intent is missing required fields or amount is not greater than zero")
	ErrPinFormatInvalid     = errors.New("pin must be exactly 6 digits")
	ErrIllegalCancellation  = errors.New("session can only be cancelled while awaiting pin")
	ErrSessionAlreadyActive = errors.New("another confirmation session is already active")
	ErrSessionNotFound      = errors.New("confirmation session not found")
	ErrCommitFailed         = errors.New("commit failed")

	ErrInvalidAmount             = errors.New("amount must be greater than zero")
	ErrInvalidTransactionKind    = errors.New("invalid transaction kind")
	ErrMissingCounterparty       = errors.New("missing counterparty")
	ErrMissingAccountNumber      = errors.New("missing account number")
	ErrMissingRoutingNumber      = errors.New("missing routing number")
	ErrMissingPhoneNumber        = errors.New("missing phone number")
	ErrMissingCurrencyPair       = errors.New("missing currency pair")
	ErrMissingTradeSymbol        = errors.New("missing trade symbol")
	ErrInvalidTradeQuantity      = errors.New("trade quantity must be greater than zero")
	ErrInvalidTradePrice         = errors.New("trade price must be greater than zero")
	ErrInvalidTradeSide          = errors.New("trade side must be buy or sell")
	ErrMissingRecipientAddress   = errors.New("missing recipient address")
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrBalanceAccountNotFound    = errors.New("balance account not found")
	ErrUnsupportedWalletProvider = errors.New("unsupported wallet provider")

	ErrWalletUnavailable     = errors.New("wallet unavailable")
	ErrConnectionRejected    = errors.New("wallet connection rejected")
	ErrNoWalletConnected     = errors.New("no wallet connected")
	ErrTransferRejected      = errors.New("transfer rejected by wallet")
	ErrDataSourceUnavailable = errors.New("market data source unavailable")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if err, ok := e.Causer.(error); ok {
		errs = append(errs, err)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
