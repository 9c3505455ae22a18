package providers

import (
	"errors"
	"strings"

	"github.com/cerebellumbot/walletpay/types"
)

// User-facing messages for provider failures.
const (
	msgNoEVMProvider  = "Metamask is not installed. Please install Metamask to continue."
	msgNoTronProvider = "TronLink is not installed. Please install the TronLink extension."
	msgUserRejected   = "Connection request was rejected in the wallet."
	msgRequestPending = "A connection request is already pending. Try again later."
	msgNoAccounts     = "No accounts available."
	msgTronNotReady   = "TronLink is not ready. Try reloading the page."
)

// connectError maps a raw provider failure during connect to a
// WalletError with a stable code.
func connectError(err error) *types.WalletError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Code == CodeUserRejected {
			return &types.WalletError{Code: types.ErrUserRejected, Message: msgUserRejected}
		}
		return &types.WalletError{Code: types.ErrProviderError, Message: pe.Message}
	}
	return &types.WalletError{Code: types.ErrProviderError, Message: "connection failed: " + err.Error()}
}

// sendError maps a raw provider failure during a transfer submission.
func sendError(err error) *types.WalletError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Code == CodeUserRejected {
			return &types.WalletError{Code: types.ErrUserRejected, Message: "Transaction was rejected in the wallet."}
		}
		if strings.Contains(strings.ToLower(pe.Message), "insufficient funds") {
			return &types.WalletError{Code: types.ErrInsufficientFunds, Message: pe.Message}
		}
		return &types.WalletError{Code: types.ErrSubmission, Message: pe.Message}
	}
	if strings.Contains(strings.ToLower(err.Error()), "insufficient funds") {
		return &types.WalletError{Code: types.ErrInsufficientFunds, Message: err.Error()}
	}
	return &types.WalletError{Code: types.ErrSubmission, Message: "payment failed: " + err.Error()}
}
