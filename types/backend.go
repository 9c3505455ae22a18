package types

// DemoRequest is the payload for POST /requests/demo.
type DemoRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telegram string `json:"telegram,omitempty"`
}

// InvestorRequest is the payload for POST /requests/investor.
type InvestorRequest struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	ExpectedInvestment string `json:"expected_investment" validate:"required"`
}

// APIResponse is the generic success envelope the backend returns for
// request submissions.
type APIResponse struct {
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// APIError is the backend's non-2xx body.
type APIError struct {
	Detail string `json:"detail"`
}

// Signal is one trading signal row from GET /signals/.
type Signal struct {
	ID         int64   `json:"id"`
	Timestamp  string  `json:"timestamp"` // ISO-8601
	Exchange   string  `json:"exchange"`
	Symbol     string  `json:"symbol"`
	SignalType string  `json:"signal_type"` // BUY | SELL | HOLD
	Confidence float64 `json:"confidence"`  // 0..1
	Price      float64 `json:"price"`
	Volume     float64 `json:"volume"`
	Metadata   string  `json:"metadata,omitempty"`
}

// SignalsResponse is the envelope of GET /signals/.
type SignalsResponse struct {
	Signals []Signal `json:"signals"`
}

// WalletTxRecord is the best-effort bookkeeping copy of a transaction
// posted to the backend. The backend copy is never read back and is not
// the source of truth for transaction status.
type WalletTxRecord struct {
	Hash        string `json:"hash"`
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Amount      string `json:"amount"`
	Token       string `json:"token"`
	Network     string `json:"network"`
	Status      string `json:"status"`
}

// OrderRequest is the payload for POST /trade/order.
type OrderRequest struct {
	Exchange string   `json:"exchange" validate:"required"`
	Symbol   string   `json:"symbol" validate:"required"`
	Side     string   `json:"side" validate:"required,oneof=buy sell BUY SELL"`
	Amount   float64  `json:"amount" validate:"required,gt=0"`
	Price    *float64 `json:"price,omitempty"`
}
