package metrics

// Provider is the contract for emitting operational metrics. It keeps
// the handler code independent from the Datadog client so tests (and
// deployments without an agent) can run against the no-op provider.
type Provider interface {
	Count(name string, value int64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// NoopProvider discards every metric. Used when Datadog is disabled.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value int64, tags []string) error       { return nil }
func (n *NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }
