package backend

import (
	"context"
	"sync"
	"time"

	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/metrics"
	"github.com/cerebellumbot/walletpay/types"
)

// Mirror posts transaction metadata to the backend on a detached
// goroutine. One attempt, no retry; failures are logged and counted,
// never returned. The payment flow must never block on, or be failed
// by, the mirror.
type Mirror struct {
	client  *Client
	log     logger.Logger
	rec     metrics.Recorder
	timeout time.Duration

	wg sync.WaitGroup
}

func NewMirror(client *Client, log logger.Logger, rec metrics.Recorder, timeout time.Duration) *Mirror {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mirror{client: client, log: log, rec: rec, timeout: timeout}
}

// Record dispatches a best-effort post of the transaction and returns
// immediately. A nil mirror or nil client is a no-op.
func (m *Mirror) Record(tx types.Transaction, from, to string) {
	if m == nil || m.client == nil {
		return
	}

	rec := types.WalletTxRecord{
		Hash:        tx.Hash,
		FromAddress: from,
		ToAddress:   to,
		Amount:      tx.Amount,
		Token:       tx.Asset.String(),
		Network:     tx.ChainFamily.BackendNetwork(),
		Status:      string(tx.Status),
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		// Detached from the caller's context on purpose: the payment flow
		// must not be able to cancel or be delayed by the mirror.
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()

		if err := m.client.SaveWalletTx(ctx, rec); err != nil {
			m.log.Warn("failed to save transaction to backend", map[string]any{
				"hash":  rec.Hash,
				"error": err.Error(),
			})
			m.rec.IncCounter(metrics.EventMirrorFailure, map[string]string{
				"network": string(tx.ChainFamily),
			})
		}
	}()
}

// Flush waits for in-flight mirror posts. Used on shutdown and in tests.
func (m *Mirror) Flush() {
	if m == nil {
		return
	}
	m.wg.Wait()
}
