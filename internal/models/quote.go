package models

// Quote is a single market data point for an asset.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         Decimal `json:"price"`
	Change        Decimal `json:"change"`
	ChangePercent Decimal `json:"changePercent"`
	Volume        string  `json:"volume"`
}

type QuoteListResponse struct {
	Kind      string  `json:"kind"`
	Contents  []Quote `json:"contents"`
	TotalRows int     `json:"total_rows"`
}

// ConversionPreview is the dry-run result of a currency conversion, served
// before any session is opened so the form can display the projected amount.
type ConversionPreview struct {
	Kind            string  `json:"kind"`
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	Amount          Decimal `json:"amount"`
	Rate            Decimal `json:"rate"`
	ConvertedAmount Decimal `json:"convertedAmount"`
	// Synthetic marks a rate produced by the last-resort fallback instead of
	// the rate table.
	Synthetic bool `json:"synthetic"`
}
