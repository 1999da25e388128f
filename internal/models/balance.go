package models

// Balance is one of the demo accounts shown on the dashboard. Balances are
// session-scoped, seeded from config at startup and debited by successful
// simulated commits.
type Balance struct {
	Account string  `json:"account"`
	Amount  Decimal `json:"amount"`
}

type BalanceListResponse struct {
	Kind      string    `json:"kind"`
	Contents  []Balance `json:"contents"`
	TotalRows int       `json:"total_rows"`
}
