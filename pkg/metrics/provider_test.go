package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/pet-crud-service/pkg/config"
)

func TestSetup_Disabled(t *testing.T) {
	provider, err := Setup(config.MetricsConf{})
	require.NoError(t, err)

	_, ok := provider.(*NoopProvider)
	assert.True(t, ok, "disabled metrics should yield the no-op provider")
}

func TestSetup_DatadogEnabled(t *testing.T) {
	provider, err := Setup(config.MetricsConf{
		Datadog: config.DatadogConf{
			Enabled:   true,
			Addr:      "127.0.0.1:8125",
			Namespace: "pet_service_test",
		},
	})
	// statsd.New does not dial UDP eagerly, so this succeeds without an agent.
	require.NoError(t, err)

	_, ok := provider.(*DatadogProvider)
	assert.True(t, ok)
}

func TestNoopProvider(t *testing.T) {
	n := &NoopProvider{}
	assert.NoError(t, n.Count("pet.request", 1, []string{"op:create"}))
	assert.NoError(t, n.Histogram("pet.latency", 12.5, nil))
}
