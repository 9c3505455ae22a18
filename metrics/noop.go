package metrics

import "time"

// NoopRecorder discards every event. It is the default recorder when
// metrics are not enabled in the config.
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
