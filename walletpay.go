// Package walletpay implements the crypto payment flow of the
// CerebellumBot site: connecting browser-injected wallet providers for
// the EVM and Tron chain families, reading native and USDT balances,
// submitting transfers, tracking their lifecycle, and best-effort
// mirroring of that lifecycle to the backend.
package walletpay

import (
	"context"
	"time"

	"github.com/cerebellumbot/walletpay/backend"
	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/metrics"
	"github.com/cerebellumbot/walletpay/providers"
	"github.com/cerebellumbot/walletpay/types"
	"github.com/cerebellumbot/walletpay/wallet"
)

// WalletPay is the main entry point wiring provider adapters, session
// state, the transaction tracker and the backend mirror.
type WalletPay struct {
	evmProvider  providers.EvmProvider
	tronProvider providers.TronProvider

	evm  *providers.EVMAdapter
	tron *providers.TronAdapter

	tracker *wallet.Tracker
	client  *backend.Client
	mirror  *backend.Mirror

	log     logger.Logger
	rec     metrics.Recorder
	timeout time.Duration
}

// New creates a WalletPay instance. Providers are injected via options;
// a missing provider models a browser without that extension and turns
// the corresponding connect into a ProviderUnavailable failure rather
// than a crash.
func New(config *types.Config, opts ...Option) *WalletPay {
	w := &WalletPay{
		tracker: wallet.NewTracker(),
		log:     logger.NoopLogger{},
		rec:     metrics.NoopRecorder{},
		timeout: 30 * time.Second,
	}

	backendURL := ""
	if config != nil {
		if config.DefaultTimeout > 0 {
			w.timeout = config.DefaultTimeout
		}
		if config.LogLevel != "" {
			w.log = logger.NewZapLogger(config.LogLevel)
		}
		if config.EnableMetrics {
			w.rec = metrics.NewPrometheusRecorder()
		}
		backendURL = config.BackendURL
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.client == nil && backendURL != "" {
		w.client = backend.NewClient(backendURL, w.timeout, w.log)
	}
	w.mirror = backend.NewMirror(w.client, w.log, w.rec, w.timeout)

	w.evm = providers.NewEVMAdapter(
		w.evmProvider,
		wallet.NewSession(types.ChainEVM, types.AssetETH, types.AssetUSDT),
		w.log,
	)
	w.tron = providers.NewTronAdapter(
		w.tronProvider,
		wallet.NewSession(types.ChainTron, types.AssetTRX, types.AssetUSDT),
		w.log,
	)

	return w
}

// NewWithDefaults creates a WalletPay instance with default
// configuration and no backend.
func NewWithDefaults(opts ...Option) *WalletPay {
	return New(&types.Config{DefaultTimeout: 30 * time.Second}, opts...)
}

// Connect connects the wallet for a chain family. On failure the session
// stays fully disconnected.
func (w *WalletPay) Connect(ctx context.Context, family types.ChainFamily) (types.WalletSession, error) {
	start := time.Now()

	var session types.WalletSession
	var err error
	switch family {
	case types.ChainEVM:
		session, err = w.evm.Connect(ctx)
	case types.ChainTron:
		session, err = w.tron.Connect(ctx)
	default:
		return types.WalletSession{}, unsupportedChain(family)
	}

	labels := map[string]string{"network": family.String()}
	w.rec.ObserveLatency("connect", time.Since(start), labels)
	if err != nil {
		w.rec.IncCounter(metrics.EventConnectFailed, labels)
		return session, err
	}
	w.rec.IncCounter(metrics.EventConnect, labels)
	return session, nil
}

// Disconnect resets the chain family's session and drops the tracked
// transaction history. Disconnecting an already-disconnected session is
// a no-op.
func (w *WalletPay) Disconnect(family types.ChainFamily) error {
	switch family {
	case types.ChainEVM:
		w.evm.Disconnect()
	case types.ChainTron:
		w.tron.Disconnect()
	default:
		return unsupportedChain(family)
	}

	w.tracker.Clear()
	w.rec.IncCounter(metrics.EventDisconnect, map[string]string{"network": family.String()})
	return nil
}

// Session returns the current session snapshot for a chain family.
func (w *WalletPay) Session(family types.ChainFamily) (types.WalletSession, error) {
	switch family {
	case types.ChainEVM:
		return w.evm.Session(), nil
	case types.ChainTron:
		return w.tron.Session(), nil
	default:
		return types.WalletSession{}, unsupportedChain(family)
	}
}

// SendPayment validates and submits a transfer, records it as pending,
// and dispatches the best-effort backend mirror. It returns as soon as
// the network accepts the submission; use AwaitConfirmation for the
// terminal status on EVM. Validation failures reject before any network
// call and record nothing.
func (w *WalletPay) SendPayment(ctx context.Context, intent types.PaymentIntent) (types.Transaction, error) {
	start := time.Now()

	var hash, from string
	var err error
	switch intent.ChainFamily {
	case types.ChainEVM:
		hash, from, err = w.evm.SendPayment(ctx, intent)
	case types.ChainTron:
		hash, from, err = w.tron.SendPayment(ctx, intent)
	default:
		return types.Transaction{}, unsupportedChain(intent.ChainFamily)
	}

	labels := map[string]string{"network": intent.ChainFamily.String()}
	w.rec.ObserveLatency("send_payment", time.Since(start), labels)
	if err != nil {
		w.rec.IncCounter(metrics.EventPaymentFailed, labels)
		return types.Transaction{}, err
	}

	tx := w.tracker.RecordSubmission(hash, intent, from)
	w.mirror.Record(tx, from, intent.Recipient)
	w.rec.IncCounter(metrics.EventPaymentSubmitted, labels)

	return tx, nil
}

// AwaitConfirmation suspends until the transaction reaches a terminal
// state and applies it to the tracker. Only EVM transactions can be
// awaited; the Tron provider has no confirmation primitive, so Tron
// transactions stay pending. A context cancellation leaves the tracked
// transaction pending and returns the context error.
func (w *WalletPay) AwaitConfirmation(ctx context.Context, hash string) (types.Transaction, error) {
	tx, ok := w.tracker.Get(hash)
	if !ok {
		return types.Transaction{}, &types.WalletError{
			Code:    types.ErrConfirmationFailed,
			Message: "unknown transaction hash",
		}
	}
	if tx.Status.Terminal() {
		return tx, nil
	}
	if tx.ChainFamily != types.ChainEVM {
		return tx, &types.WalletError{
			Code:    types.ErrUnsupportedOperation,
			Message: "confirmation tracking is not available for " + tx.ChainFamily.String(),
		}
	}

	status, err := w.evm.AwaitConfirmation(ctx, hash)
	if err != nil {
		tx, _ = w.tracker.Get(hash)
		return tx, err
	}

	labels := map[string]string{"network": tx.ChainFamily.String()}
	switch status {
	case types.TxConfirmed:
		w.tracker.MarkConfirmed(hash)
		w.rec.IncCounter(metrics.EventPaymentConfirmed, labels)
	case types.TxFailed:
		w.tracker.MarkFailed(hash)
		w.rec.IncCounter(metrics.EventPaymentFailed, labels)
	}

	tx, _ = w.tracker.Get(hash)
	return tx, nil
}

// CurrentTransaction returns the most recently submitted transaction.
func (w *WalletPay) CurrentTransaction() (types.Transaction, bool) {
	return w.tracker.Latest()
}

// Transactions returns the full submission history, oldest first.
func (w *WalletPay) Transactions() []types.Transaction {
	return w.tracker.Log()
}

// Backend returns the REST client, or nil when no backend is configured.
func (w *WalletPay) Backend() *backend.Client {
	return w.client
}

// Signals fetches published trading signals from the backend.
func (w *WalletPay) Signals(ctx context.Context) ([]types.Signal, error) {
	if w.client == nil {
		return nil, noBackend()
	}
	return w.client.Signals(ctx)
}

// SubmitDemoRequest forwards a demo access request to the backend.
func (w *WalletPay) SubmitDemoRequest(ctx context.Context, req types.DemoRequest) (*types.APIResponse, error) {
	if w.client == nil {
		return nil, noBackend()
	}
	return w.client.SubmitDemoRequest(ctx, req)
}

// SubmitInvestorRequest forwards an investor contact request to the
// backend.
func (w *WalletPay) SubmitInvestorRequest(ctx context.Context, req types.InvestorRequest) (*types.APIResponse, error) {
	if w.client == nil {
		return nil, noBackend()
	}
	return w.client.SubmitInvestorRequest(ctx, req)
}

// Close waits for in-flight mirror posts to finish.
func (w *WalletPay) Close() {
	w.mirror.Flush()
}

func unsupportedChain(family types.ChainFamily) *types.WalletError {
	return &types.WalletError{
		Code:    types.ErrUnsupportedChain,
		Message: "unsupported chain family: " + family.String(),
	}
}

func noBackend() *types.WalletError {
	return &types.WalletError{
		Code:    types.ErrNetworkError,
		Message: "no backend configured",
	}
}

// Version information.
const Version = "1.0.0"
