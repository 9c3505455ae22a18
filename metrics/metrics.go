// Package metrics defines the event recorder the payment flow reports to.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event names recorded by the payment flow.
const (
	EventConnect          = "wallet_connect"
	EventConnectFailed    = "wallet_connect_failed"
	EventDisconnect       = "wallet_disconnect"
	EventPaymentSubmitted = "payment_submitted"
	EventPaymentConfirmed = "payment_confirmed"
	EventPaymentFailed    = "payment_failed"
	EventMirrorFailure    = "mirror_failure"
)
