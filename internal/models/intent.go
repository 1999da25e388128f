package models

import (
	"github.com/shopspring/decimal"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
)

// TransactionKind identifies which dashboard flow produced an intent.
type TransactionKind string

const (
	KindBankTransfer       TransactionKind = "bankTransfer"
	KindMobileTransfer     TransactionKind = "mobileTransfer"
	KindQRPayment          TransactionKind = "qrPayment"
	KindCryptoTransfer     TransactionKind = "cryptoTransfer"
	KindRecharge           TransactionKind = "recharge"
	KindBooking            TransactionKind = "booking"
	KindCurrencyConversion TransactionKind = "currencyConversion"
	KindTrade              TransactionKind = "trade"
)

var ValidTransactionKinds = []TransactionKind{
	KindBankTransfer,
	KindMobileTransfer,
	KindQRPayment,
	KindCryptoTransfer,
	KindRecharge,
	KindBooking,
	KindCurrencyConversion,
	KindTrade,
}

// IsDelegated reports whether committing this kind performs a real wallet
// call instead of a simulated delay. QR payments ride the crypto path, the
// reference implementation treats a scanned QR code as a crypto recipient.
func (k TransactionKind) IsDelegated() bool {
	return k == KindCryptoTransfer || k == KindQRPayment
}

func (k TransactionKind) Valid() bool {
	for _, v := range ValidTransactionKinds {
		if k == v {
			return true
		}
	}
	return false
}

type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// IntentMetadata carries the kind-specific fields of an intent. The gate
// never inspects it, only the commit executor does.
type IntentMetadata struct {
	// bank transfer
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
	Memo          string `json:"memo,omitempty"`

	// mobile transfer / recharge
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Operator    string `json:"operator,omitempty"`

	// crypto / qr
	ToAddress string `json:"toAddress,omitempty"`

	// currency conversion
	FromCurrency string `json:"fromCurrency,omitempty"`
	ToCurrency   string `json:"toCurrency,omitempty"`

	// trade
	Symbol    string    `json:"symbol,omitempty"`
	Quantity  *Decimal  `json:"quantity,omitempty"`
	Price     *Decimal  `json:"price,omitempty"`
	OrderType string    `json:"orderType,omitempty"`
	Side      TradeSide `json:"side,omitempty"`

	// booking
	BookingType string `json:"bookingType,omitempty"`
}

// TransactionIntent is a validated description of a requested monetary
// action. It is immutable once handed to the confirmation gate.
type TransactionIntent struct {
	Kind         TransactionKind `json:"kind"`
	Amount       Decimal         `json:"amount"`
	Counterparty string          `json:"counterparty"`
	Metadata     IntentMetadata  `json:"metadata"`
}

// Validate enforces the local intent invariants before a session is opened.
// Kind-specific metadata checks live here rather than in struct tags because
// the required set depends on the kind.
func (i TransactionIntent) Validate() error {
	if !i.Kind.Valid() {
		return common.ErrInvalidTransactionKind
	}
	if !i.Amount.GreaterThan(decimal.Zero) {
		return common.ErrInvalidAmount
	}
	if i.Counterparty == "" {
		return common.ErrMissingCounterparty
	}

	switch i.Kind {
	case KindBankTransfer:
		if i.Metadata.AccountNumber == "" {
			return common.ErrMissingAccountNumber
		}
		if i.Metadata.RoutingNumber == "" {
			return common.ErrMissingRoutingNumber
		}
	case KindMobileTransfer:
		if i.Metadata.PhoneNumber == "" {
			return common.ErrMissingPhoneNumber
		}
	case KindCryptoTransfer, KindQRPayment:
		if i.Metadata.ToAddress == "" {
			return common.ErrMissingRecipientAddress
		}
	case KindCurrencyConversion:
		if i.Metadata.FromCurrency == "" || i.Metadata.ToCurrency == "" {
			return common.ErrMissingCurrencyPair
		}
	case KindTrade:
		if i.Metadata.Symbol == "" {
			return common.ErrMissingTradeSymbol
		}
		if i.Metadata.Quantity == nil || !i.Metadata.Quantity.GreaterThan(decimal.Zero) {
			return common.ErrInvalidTradeQuantity
		}
		if i.Metadata.Price == nil || !i.Metadata.Price.GreaterThan(decimal.Zero) {
			return common.ErrInvalidTradePrice
		}
		if i.Metadata.Side != TradeSideBuy && i.Metadata.Side != TradeSideSell {
			return common.ErrInvalidTradeSide
		}
	}

	return nil
}

// SubmitIntentRequest is the POST /sessions payload.
type SubmitIntentRequest struct {
	Kind         string         `json:"kind" validate:"required"`
	Amount       string         `json:"amount" validate:"required,decimalGreaterThan=0"`
	Counterparty string         `json:"counterparty" validate:"required"`
	Metadata     IntentMetadata `json:"metadata"`
}

func (r SubmitIntentRequest) ToIntent() (TransactionIntent, error) {
	amount, err := NewDecimal(r.Amount)
	if err != nil {
		return TransactionIntent{}, common.ErrInvalidAmount
	}

	return TransactionIntent{
		Kind:         TransactionKind(r.Kind),
		Amount:       amount,
		Counterparty: r.Counterparty,
		Metadata:     r.Metadata,
	}, nil
}
