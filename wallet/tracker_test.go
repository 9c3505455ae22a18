package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebellumbot/walletpay/types"
)

func usdtIntent() types.PaymentIntent {
	return types.PaymentIntent{
		ChainFamily: types.ChainEVM,
		Recipient:   types.PaymentAddressEVM,
		Amount:      "50",
		Asset:       types.AssetUSDT,
	}
}

func TestTracker_RecordThenConfirm(t *testing.T) {
	tr := NewTracker()

	tx := tr.RecordSubmission("0xabc", usdtIntent(), "0xfeed")
	assert.Equal(t, types.TxPending, tx.Status)
	assert.Equal(t, "50", tx.Amount)
	assert.Equal(t, types.AssetUSDT, tx.Asset)

	assert.True(t, tr.MarkConfirmed("0xabc"))

	got, ok := tr.Latest()
	require.True(t, ok)
	assert.Equal(t, types.TxConfirmed, got.Status)
}

func TestTracker_TerminalStateIsSticky(t *testing.T) {
	tr := NewTracker()
	tr.RecordSubmission("0xabc", usdtIntent(), "0xfeed")

	require.True(t, tr.MarkConfirmed("0xabc"))

	// Failed after confirmed is a no-op.
	assert.False(t, tr.MarkFailed("0xabc"))
	got, _ := tr.Get("0xabc")
	assert.Equal(t, types.TxConfirmed, got.Status)

	assert.False(t, tr.MarkConfirmed("0xabc"))
}

func TestTracker_UnknownHashIsNoop(t *testing.T) {
	tr := NewTracker()

	assert.False(t, tr.MarkConfirmed("0xmissing"))
	assert.False(t, tr.MarkFailed("0xmissing"))

	_, ok := tr.Latest()
	assert.False(t, ok)
}

func TestTracker_AppendOnlyLog(t *testing.T) {
	tr := NewTracker()

	tr.RecordSubmission("0x1", usdtIntent(), "0xfeed")
	second := usdtIntent()
	second.Amount = "100"
	tr.RecordSubmission("0x2", second, "0xfeed")

	latest, ok := tr.Latest()
	require.True(t, ok)
	assert.Equal(t, "0x2", latest.Hash)
	assert.Equal(t, "100", latest.Amount)

	// Older entries remain as the audit trail.
	log := tr.Log()
	require.Len(t, log, 2)
	assert.Equal(t, "0x1", log[0].Hash)

	// A terminal transition on the old hash does not touch the new one.
	assert.True(t, tr.MarkFailed("0x1"))
	latest, _ = tr.Latest()
	assert.Equal(t, types.TxPending, latest.Status)
}

func TestTracker_Clear(t *testing.T) {
	tr := NewTracker()
	tr.RecordSubmission("0x1", usdtIntent(), "0xfeed")

	tr.Clear()

	_, ok := tr.Latest()
	assert.False(t, ok)
	assert.Empty(t, tr.Log())
}
