package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp3dr4/wren/config"
)

func testConfig() config.MetricsConfig {
	return config.MetricsConfig{
		Enabled:   true,
		Path:      "/metrics",
		Namespace: "wren",
		Subsystem: "shortener",
	}
}

func TestPrometheusRegistry_RecordsMetrics(t *testing.T) {
	registry, err := NewPrometheusRegistry(testConfig())
	require.NoError(t, err)

	registry.RecordHTTPRequest("POST", "/", "200", 0.015)
	registry.IncHTTPRequestsInFlight()
	registry.DecHTTPRequestsInFlight()
	registry.IncMappingsCreated()
	registry.IncMappingsCreated()
	registry.IncMappingsResolved()

	families, err := registry.GetRegistry().Gather()
	require.NoError(t, err)

	found := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				found[mf.GetName()] += m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, float64(2), found["wren_shortener_mappings_created_total"])
	assert.Equal(t, float64(1), found["wren_shortener_mappings_resolved_total"])
	assert.Equal(t, float64(1), found["wren_shortener_http_requests_total"])
}

func TestPrometheusRegistry_Handler(t *testing.T) {
	registry, err := NewPrometheusRegistry(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, registry.GetHandler())
}

func TestNoOpRegistry(t *testing.T) {
	registry := NewNoOpRegistry()

	// Every method is callable without side effects.
	registry.RecordHTTPRequest("GET", "/{id}", "404", 0.001)
	registry.IncHTTPRequestsInFlight()
	registry.DecHTTPRequestsInFlight()
	registry.IncMappingsCreated()
	registry.IncMappingsResolved()

	assert.Nil(t, registry.GetRegistry())
	assert.Nil(t, registry.GetHandler())
}
