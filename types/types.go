package types

import (
	"time"
)

// ChainFamily identifies a blockchain ecosystem with its own address format
// and injected provider API.
type ChainFamily string

const (
	ChainEVM  ChainFamily = "evm"
	ChainTron ChainFamily = "tron"
)

func (f ChainFamily) String() string {
	return string(f)
}

// Valid reports whether the family is one this library supports.
func (f ChainFamily) Valid() bool {
	return f == ChainEVM || f == ChainTron
}

// BackendNetwork returns the network identifier the backend expects in
// mirrored transaction records.
func (f ChainFamily) BackendNetwork() string {
	switch f {
	case ChainEVM:
		return "ETHEREUM"
	case ChainTron:
		return "TRON"
	default:
		return string(f)
	}
}

// Asset is a payable asset symbol.
type Asset string

const (
	AssetETH  Asset = "ETH"
	AssetTRX  Asset = "TRX"
	AssetUSDT Asset = "USDT"
)

func (a Asset) String() string {
	return string(a)
}

// NativeFor reports whether the asset is the base currency of the given
// chain family rather than a token contract.
func (a Asset) NativeFor(f ChainFamily) bool {
	switch f {
	case ChainEVM:
		return a == AssetETH
	case ChainTron:
		return a == AssetTRX
	default:
		return false
	}
}

// Operator receiving accounts and USDT token contracts. These are system
// constants: the payment UI defaults to them and they are the only
// destinations the operator monitors.
const (
	PaymentAddressEVM  = "0x742d35Cc6634C0532925a3b8D4C9db96C4b5Da5A"
	USDTContractEVM    = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
	PaymentAddressTron = "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"
	USDTContractTron   = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
)

// EVMPrimaryChainID is Ethereum mainnet. Connecting to any other chain
// downgrades the session (no token balance) but does not fail it.
const EVMPrimaryChainID = 1

// WalletSession is the per-chain-family connection state.
//
// Invariant: Connected == false implies Address == "" and every balance
// is "0".
type WalletSession struct {
	ChainFamily ChainFamily      `json:"chainFamily"`
	Connected   bool             `json:"connected"`
	Address     string           `json:"address"`
	Balances    map[Asset]string `json:"balances"`
	Pending     bool             `json:"pending"`
}

// TxStatus is the lifecycle state of a tracked transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// Terminal reports whether the status can no longer change.
func (s TxStatus) Terminal() bool {
	return s == TxConfirmed || s == TxFailed
}

// Transaction is one submitted transfer. Status transitions
// pending -> confirmed or pending -> failed at most once.
type Transaction struct {
	Hash        string      `json:"hash"`
	Status      TxStatus    `json:"status"`
	Amount      string      `json:"amount"`
	Asset       Asset       `json:"asset"`
	ChainFamily ChainFamily `json:"chainFamily"`
	From        string      `json:"from,omitempty"`
	To          string      `json:"to,omitempty"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// PaymentIntent is the validated input to a submission attempt. It is
// never retained after the submission call returns.
type PaymentIntent struct {
	ChainFamily ChainFamily `json:"chainFamily" validate:"required"`
	Recipient   string      `json:"recipient" validate:"required"`
	Amount      string      `json:"amount" validate:"required"`
	Asset       Asset       `json:"asset" validate:"required"`
}

// Config is the library-wide configuration.
type Config struct {
	// BackendURL is the base URL of the REST backend, including the /api
	// prefix. Empty disables the backend client and the mirror.
	BackendURL string `json:"backendUrl,omitempty"`

	// DefaultTimeout bounds backend calls and mirror posts. Provider calls
	// are bounded only by their context: wallet-extension prompts wait on
	// the user.
	DefaultTimeout time.Duration `json:"defaultTimeout,omitempty"`

	LogLevel      string `json:"logLevel,omitempty"`
	EnableMetrics bool   `json:"enableMetrics,omitempty"`
}
