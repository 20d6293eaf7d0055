package leafgo

import (
	"sync"

	"github.com/uber-go/tally/v4"
)

const (
	metricForwardedCalls       = "forwarded_calls"
	metricNativeErrors         = "native_errors"
	metricReifiedLayers        = "reified_layers"
	metricUnknownDiscriminants = "unknown_discriminants"
)

var (
	scopeMu sync.RWMutex
	scope   tally.Scope = tally.NoopScope
)

// SetMetricsScope routes bridge counters to s. A nil scope disables metrics.
func SetMetricsScope(s tally.Scope) {
	if s == nil {
		s = tally.NoopScope
	}
	scopeMu.Lock()
	scope = s
	scopeMu.Unlock()
}

func metricsScope() tally.Scope {
	scopeMu.RLock()
	defer scopeMu.RUnlock()
	return scope
}

func countForward(method string) {
	metricsScope().Tagged(map[string]string{"method": method}).Counter(metricForwardedCalls).Inc(1)
}

func countNativeError(method string) {
	metricsScope().Tagged(map[string]string{"method": method}).Counter(metricNativeErrors).Inc(1)
}

func countReified(kind LayerKind) {
	metricsScope().Tagged(map[string]string{"kind": string(kind)}).Counter(metricReifiedLayers).Inc(1)
}

func countUnknownDiscriminant() {
	metricsScope().Counter(metricUnknownDiscriminants).Inc(1)
}
