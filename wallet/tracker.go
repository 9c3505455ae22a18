package wallet

import (
	"sync"
	"time"

	"github.com/cerebellumbot/walletpay/types"
)

// Tracker is an append-only log of submitted transactions. The
// presentation layer reads Latest(); older entries remain as an audit
// trail. Terminal transitions are keyed by hash so a late confirmation
// can never flip a different transaction.
type Tracker struct {
	mu  sync.Mutex
	log []types.Transaction
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordSubmission appends a new transaction in the pending state and
// returns a copy of it.
func (t *Tracker) RecordSubmission(hash string, intent types.PaymentIntent, from string) types.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	tx := types.Transaction{
		Hash:        hash,
		Status:      types.TxPending,
		Amount:      intent.Amount,
		Asset:       intent.Asset,
		ChainFamily: intent.ChainFamily,
		From:        from,
		To:          intent.Recipient,
		SubmittedAt: time.Now(),
	}
	t.log = append(t.log, tx)
	return tx
}

// MarkConfirmed transitions the transaction with the given hash to
// confirmed. Returns false without modifying anything if the hash is
// unknown or the transaction already reached a terminal status.
func (t *Tracker) MarkConfirmed(hash string) bool {
	return t.transition(hash, types.TxConfirmed)
}

// MarkFailed transitions the transaction with the given hash to failed,
// with the same no-op rules as MarkConfirmed.
func (t *Tracker) MarkFailed(hash string) bool {
	return t.transition(hash, types.TxFailed)
}

func (t *Tracker) transition(hash string, status types.TxStatus) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := len(t.log) - 1; i >= 0; i-- {
		if t.log[i].Hash != hash {
			continue
		}
		if t.log[i].Status.Terminal() {
			return false
		}
		t.log[i].Status = status
		return true
	}
	return false
}

// Latest returns the most recently submitted transaction, if any.
func (t *Tracker) Latest() (types.Transaction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.log) == 0 {
		return types.Transaction{}, false
	}
	return t.log[len(t.log)-1], true
}

// Get returns the transaction with the given hash, if tracked.
func (t *Tracker) Get(hash string) (types.Transaction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := len(t.log) - 1; i >= 0; i-- {
		if t.log[i].Hash == hash {
			return t.log[i], true
		}
	}
	return types.Transaction{}, false
}

// Log returns a copy of the full transaction history, oldest first.
func (t *Tracker) Log() []types.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]types.Transaction, len(t.log))
	copy(out, t.log)
	return out
}

// Clear drops the history. Called on wallet disconnect.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log = nil
}
