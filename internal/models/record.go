package models

import (
	"time"
)

type RecordStatus string

const (
	StatusCompleted RecordStatus = "completed"
	StatusPending   RecordStatus = "pending"
	StatusFailed    RecordStatus = "failed"
)

// RecordDetails holds the kind-specific commit output. Optional everywhere.
type RecordDetails struct {
	TransactionHash string   `json:"transactionHash,omitempty"`
	FromCurrency    string   `json:"fromCurrency,omitempty"`
	ToCurrency      string   `json:"toCurrency,omitempty"`
	Rate            *Decimal `json:"rate,omitempty"`
	ConvertedAmount *Decimal `json:"convertedAmount,omitempty"`
	Symbol          string   `json:"symbol,omitempty"`
	Quantity        *Decimal `json:"quantity,omitempty"`
	Price           *Decimal `json:"price,omitempty"`
	OrderType       string   `json:"orderType,omitempty"`
	Side            string   `json:"side,omitempty"`
}

// TransactionRecord is the durable (session-lifetime) output of a successful
// commit. Owned exclusively by the ledger once appended.
type TransactionRecord struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	Amount       Decimal         `json:"amount"`
	Counterparty string          `json:"counterparty"`
	Status       RecordStatus    `json:"status"`
	Fee          Decimal         `json:"fee"`
	Timestamp    time.Time       `json:"timestamp"`
	Details      RecordDetails   `json:"details,omitempty"`
}

type TransactionRecordResponse struct {
	Kind         string          `json:"kind"`
	ID           string          `json:"id"`
	Transaction  TransactionKind `json:"transactionKind"`
	Amount       Decimal         `json:"amount"`
	Counterparty string          `json:"counterparty"`
	Status       RecordStatus    `json:"status"`
	Fee          Decimal         `json:"fee"`
	Timestamp    time.Time       `json:"timestamp"`
	Details      RecordDetails   `json:"details,omitempty"`
}

func (r TransactionRecord) ToResponse() TransactionRecordResponse {
	return TransactionRecordResponse{
		Kind:         "transactionRecord",
		ID:           r.ID,
		Transaction:  r.Kind,
		Amount:       r.Amount,
		Counterparty: r.Counterparty,
		Status:       r.Status,
		Fee:          r.Fee,
		Timestamp:    r.Timestamp,
		Details:      r.Details,
	}
}
