// Package providers wraps browser-injected wallet providers behind
// explicit interfaces so the payment flow is testable with fakes instead
// of a real extension. The providers themselves are owned by the browser
// extension; this package only holds references to invoke their methods
// and treats their absence as an ordinary, recoverable condition.
package providers

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// EvmProvider is the capability surface of an Ethereum-compatible
// injected provider (window.ethereum). Calls that open the extension UI
// (RequestAccounts, Transfer, TokenTransfer) suspend until the user acts;
// cancellation comes only from the context.
type EvmProvider interface {
	// RequestAccounts asks the extension for account access.
	RequestAccounts(ctx context.Context) ([]string, error)

	// ChainID reports the active chain.
	ChainID(ctx context.Context) (*big.Int, error)

	// Balance returns the native balance in wei.
	Balance(ctx context.Context, account common.Address) (*big.Int, error)

	// TokenBalance returns an ERC-20 balance in base units.
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error)

	// TokenDecimals reads the ERC-20 decimals() value.
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)

	// Transfer submits a native value transfer and returns the transaction
	// hash as soon as the network accepts the submission.
	Transfer(ctx context.Context, to common.Address, value *big.Int) (string, error)

	// TokenTransfer submits an ERC-20 transfer call.
	TokenTransfer(ctx context.Context, token, to common.Address, value *big.Int) (string, error)

	// WaitMined suspends until the transaction is included and returns its
	// receipt. No timeout of its own; bound it with the context.
	WaitMined(ctx context.Context, hash string) (*ethtypes.Receipt, error)
}

// TronToken is a loaded TRC-20 contract handle.
type TronToken interface {
	BalanceOf(ctx context.Context, owner string) (*big.Int, error)

	// Transfer submits a token transfer and returns the transaction id.
	Transfer(ctx context.Context, to string, amount *big.Int) (string, error)
}

// AccountResponse is the numeric result of a Tron account request.
type AccountResponse struct {
	Code    int
	Message string
}

// Tron account request response codes.
const (
	TronCodeOK             = 200
	TronCodeRequestPending = 4000
	TronCodeRejected       = 4001
)

// TronProvider is the capability surface of a Tron-compatible injected
// provider pair (window.tronLink for the account request, window.tronWeb
// for everything else).
type TronProvider interface {
	// RequestAccounts asks for account access. The outcome is in the
	// response code, not the error: the error is only for transport-level
	// failures.
	RequestAccounts(ctx context.Context) (AccountResponse, error)

	// DefaultAddress returns the base58 account address, or "" when the
	// provider is not ready.
	DefaultAddress() string

	// Balance returns the native balance in sun.
	Balance(ctx context.Context, account string) (int64, error)

	// Transfer submits a native TRX transfer (amount in sun) and returns
	// the transaction id.
	Transfer(ctx context.Context, to string, amountSun int64) (string, error)

	// TokenContract loads a TRC-20 contract handle.
	TokenContract(ctx context.Context, contract string) (TronToken, error)
}

// ProviderError carries a raw extension error. EVM providers use
// EIP-1193 codes (4001 = user rejected the request).
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// CodeUserRejected is the EIP-1193 code for an explicit decline in the
// extension UI.
const CodeUserRejected = 4001
