package walletpay

import (
	"time"

	"github.com/cerebellumbot/walletpay/backend"
	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/metrics"
	"github.com/cerebellumbot/walletpay/providers"
)

type Option func(*WalletPay)

func WithLogger(l logger.Logger) Option {
	return func(w *WalletPay) {
		w.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(w *WalletPay) {
		w.rec = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(w *WalletPay) {
		w.timeout = t
	}
}

// WithEVMProvider injects the detected Ethereum-compatible provider.
// Pass nil (or omit) when no extension is installed.
func WithEVMProvider(p providers.EvmProvider) Option {
	return func(w *WalletPay) {
		w.evmProvider = p
	}
}

// WithTronProvider injects the detected Tron-compatible provider.
func WithTronProvider(p providers.TronProvider) Option {
	return func(w *WalletPay) {
		w.tronProvider = p
	}
}

// WithBackendClient replaces the backend client built from
// Config.BackendURL.
func WithBackendClient(c *backend.Client) Option {
	return func(w *WalletPay) {
		w.client = c
	}
}
