package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

const (
	ErrKeyInvalidIntent        = "WG-4001"
	ErrKeyPinFormatInvalid     = "WG-4002"
	ErrKeySessionAlreadyActive = "WG-4091"
	ErrKeyIllegalCancellation  = "WG-4092"
	ErrKeySessionNotFound      = "WG-4041"
	ErrKeyCommitFailed         = "WG-5021"
	ErrKeyWalletUnavailable    = "WG-5031"
	ErrKeyDataSourceDown       = "WG-5032"
)

var MapErrors = MapErrs{
	ErrKeyInvalidIntent: {
		Code:         ErrKeyInvalidIntent,
		ErrorMessage: errors.New("intent is missing required fields or amount is not greater than zero"),
	},
	ErrKeyPinFormatInvalid: {
		Code:         ErrKeyPinFormatInvalid,
		ErrorMessage: errors.New("pin must be exactly 6 digits"),
	},
	ErrKeySessionAlreadyActive: {
		Code:         ErrKeySessionAlreadyActive,
		ErrorMessage: errors.New("another confirmation session is already active"),
	},
	ErrKeyIllegalCancellation: {
		Code:         ErrKeyIllegalCancellation,
		ErrorMessage: errors.New("session can only be cancelled while awaiting pin"),
	},
	ErrKeySessionNotFound: {
		Code:         ErrKeySessionNotFound,
		ErrorMessage: errors.New("confirmation session not found"),
	},
	ErrKeyCommitFailed: {
		Code:         ErrKeyCommitFailed,
		ErrorMessage: errors.New("commit failed"),
	},
	ErrKeyWalletUnavailable: {
		Code:         ErrKeyWalletUnavailable,
		ErrorMessage: errors.New("wallet unavailable"),
	},
	ErrKeyDataSourceDown: {
		Code:         ErrKeyDataSourceDown,
		ErrorMessage: errors.New("market data source unavailable"),
	},

	// validation map, keyed by <field>_<tag> the way the validator wrapper
	// resolves messages
	"amount_required": {
		Code:         "WG-4221",
		ErrorMessage: errors.New("amount is required"),
	},
	"amount_decimalGreaterThan": {
		Code:         "WG-4222",
		ErrorMessage: errors.New("amount must be greater than 0"),
	},
	"kind_required": {
		Code:         "WG-4223",
		ErrorMessage: errors.New("kind is required"),
	},
	"counterparty_required": {
		Code:         "WG-4224",
		ErrorMessage: errors.New("counterparty is required"),
	},
	"symbols_required": {
		Code:         "WG-4225",
		ErrorMessage: errors.New("symbols are required"),
	},
	"walletType_required": {
		Code:         "WG-4226",
		ErrorMessage: errors.New("walletType is required"),
	},
}
