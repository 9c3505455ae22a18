// Package wallet holds the in-memory session and transaction state the
// payment flow mutates. All state here is ephemeral UI-session state with
// no server-side counterpart.
package wallet

import (
	"sync"

	"github.com/cerebellumbot/walletpay/types"
)

// Session is the connection state for one chain family. It is mutated
// only by that family's provider adapter; everything else reads
// snapshots.
type Session struct {
	mu sync.Mutex

	family    types.ChainFamily
	connected bool
	address   string
	balances  map[types.Asset]string
	pending   bool
}

// NewSession creates a disconnected session tracking the given assets.
func NewSession(family types.ChainFamily, assets ...types.Asset) *Session {
	balances := make(map[types.Asset]string, len(assets))
	for _, a := range assets {
		balances[a] = "0"
	}
	return &Session{family: family, balances: balances}
}

func (s *Session) Family() types.ChainFamily {
	return s.family
}

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Session) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// SetPending marks a connect or balance-refresh call as outstanding.
func (s *Session) SetPending(pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = pending
}

// SetConnected transitions the session to connected with the given
// address and balances, and clears the pending flag: a completed connect
// is by definition no longer outstanding. Assets absent from balances
// keep their previous value.
func (s *Session) SetConnected(address string, balances map[types.Asset]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	s.address = address
	s.pending = false
	for a, v := range balances {
		s.balances[a] = v
	}
}

// Reset returns the session to the disconnected state: empty address,
// all balances "0", no pending flag. Resetting an already-disconnected
// session is a no-op, not an error.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	s.address = ""
	s.pending = false
	for a := range s.balances {
		s.balances[a] = "0"
	}
}

// Snapshot returns a copy safe to hand to the presentation layer.
func (s *Session) Snapshot() types.WalletSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := make(map[types.Asset]string, len(s.balances))
	for a, v := range s.balances {
		balances[a] = v
	}

	return types.WalletSession{
		ChainFamily: s.family,
		Connected:   s.connected,
		Address:     s.address,
		Balances:    balances,
		Pending:     s.pending,
	}
}
