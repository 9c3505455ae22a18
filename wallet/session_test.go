package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cerebellumbot/walletpay/types"
)

func TestSession_StartsDisconnected(t *testing.T) {
	s := NewSession(types.ChainEVM, types.AssetETH, types.AssetUSDT)

	snap := s.Snapshot()
	assert.False(t, snap.Connected)
	assert.Empty(t, snap.Address)
	assert.Equal(t, "0", snap.Balances[types.AssetETH])
	assert.Equal(t, "0", snap.Balances[types.AssetUSDT])
	assert.False(t, snap.Pending)
}

func TestSession_ConnectAndReset(t *testing.T) {
	s := NewSession(types.ChainTron, types.AssetTRX, types.AssetUSDT)

	s.SetConnected("TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE", map[types.Asset]string{
		types.AssetTRX:  "12.3456",
		types.AssetUSDT: "500.00",
	})
	snap := s.Snapshot()
	assert.True(t, snap.Connected)
	assert.Equal(t, "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE", snap.Address)
	assert.Equal(t, "12.3456", snap.Balances[types.AssetTRX])

	s.Reset()
	snap = s.Snapshot()
	assert.False(t, snap.Connected)
	assert.Empty(t, snap.Address)
	assert.Equal(t, "0", snap.Balances[types.AssetTRX])
	assert.Equal(t, "0", snap.Balances[types.AssetUSDT])
}

// The adapters set the pending flag on entry and clear it with a defer,
// so the snapshot taken in a connect's return expression must already
// see pending cleared by SetConnected — deferred calls run after return
// values are evaluated.
func TestSession_ConnectedSnapshotNotPending(t *testing.T) {
	s := NewSession(types.ChainEVM, types.AssetETH)

	snap := func() types.WalletSession {
		s.SetPending(true)
		defer s.SetPending(false)
		s.SetConnected("0x742d35Cc6634C0532925a3b8D4C9db96C4b5Da5A", map[types.Asset]string{
			types.AssetETH: "1.0000",
		})
		return s.Snapshot()
	}()

	assert.True(t, snap.Connected)
	assert.False(t, snap.Pending)
}

func TestSession_ResetIdempotent(t *testing.T) {
	s := NewSession(types.ChainEVM, types.AssetETH)

	s.Reset()
	s.Reset()

	snap := s.Snapshot()
	assert.False(t, snap.Connected)
	assert.Equal(t, "0", snap.Balances[types.AssetETH])
}

func TestSession_SnapshotIsCopy(t *testing.T) {
	s := NewSession(types.ChainEVM, types.AssetETH)

	snap := s.Snapshot()
	snap.Balances[types.AssetETH] = "999"

	assert.Equal(t, "0", s.Snapshot().Balances[types.AssetETH])
}
