// Package metrics records per-call counters and latencies.
package metrics

import "time"

// Recorder observes one event per API call, labelled by endpoint.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Label keys set by the transport.
const (
	LabelEndpoint = "endpoint"
	LabelStatus   = "status"
)

// NoopRecorder discards every observation. It is the transport default.
type NoopRecorder struct{}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func (NoopRecorder) IncCounter(_ string, _ map[string]string) {}

func (NoopRecorder) ObserveLatency(_ string, _ time.Duration, _ map[string]string) {}
