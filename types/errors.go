package types

// WalletError is the error type surfaced by every operation in this
// library. Code is stable and machine-readable; Message is what the UI
// shows the user.
type WalletError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *WalletError) Error() string {
	return e.Message
}

// Error codes.
const (
	// Extension not installed. An ordinary, recoverable condition.
	ErrProviderUnavailable = "PROVIDER_UNAVAILABLE"

	// Opaque provider failure carrying the extension's own message.
	ErrProviderError = "PROVIDER_ERROR"

	// Explicit decline in the extension UI.
	ErrUserRejected = "USER_REJECTED"

	// A connect request is already queued in the extension (Tron code 4000).
	ErrRequestPending = "REQUEST_PENDING"

	ErrNoAccounts       = "NO_ACCOUNTS"
	ErrWrongNetwork     = "WRONG_NETWORK"
	ErrNotConnected     = "NOT_CONNECTED"
	ErrInvalidRecipient = "INVALID_RECIPIENT"
	ErrInvalidAmount    = "INVALID_AMOUNT"
	ErrInvalidRequest   = "INVALID_REQUEST"

	ErrInsufficientFunds  = "INSUFFICIENT_FUNDS"
	ErrSubmission         = "SUBMISSION_ERROR"
	ErrConfirmationFailed = "CONFIRMATION_FAILED"

	// Always swallowed by the mirror; only ever logged.
	ErrBackendMirror = "BACKEND_MIRROR_ERROR"

	ErrNetworkError         = "NETWORK_ERROR"
	ErrUnsupportedChain     = "UNSUPPORTED_CHAIN"
	ErrUnsupportedAsset     = "UNSUPPORTED_ASSET"
	ErrUnsupportedOperation = "UNSUPPORTED_OPERATION"
)

// ErrCode extracts the WalletError code from an error, or "" if the error
// is not a WalletError.
func ErrCode(err error) string {
	if we, ok := err.(*WalletError); ok {
		return we.Code
	}
	return ""
}
