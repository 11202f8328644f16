// Package metrics abstracts metrics collection behind a Registry interface
// so handlers and middleware do not depend on prometheus directly and a
// no-op registry can be swapped in when metrics are disabled.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry collects HTTP and business metrics.
type Registry interface {
	RecordHTTPRequest(method, path, statusCode string, duration float64)
	IncHTTPRequestsInFlight()
	DecHTTPRequestsInFlight()

	IncMappingsCreated()
	IncMappingsResolved()

	GetRegistry() *prometheus.Registry
	GetHandler() http.Handler
}

const (
	labelMethod     = "method"
	labelPath       = "path"
	labelStatusCode = "status_code"
)

// NoOpRegistry discards every observation. Used when metrics are disabled.
type NoOpRegistry struct{}

func NewNoOpRegistry() Registry {
	return &NoOpRegistry{}
}

func (n *NoOpRegistry) RecordHTTPRequest(_, _, _ string, _ float64) {}
func (n *NoOpRegistry) IncHTTPRequestsInFlight()                    {}
func (n *NoOpRegistry) DecHTTPRequestsInFlight()                    {}
func (n *NoOpRegistry) IncMappingsCreated()                         {}
func (n *NoOpRegistry) IncMappingsResolved()                        {}
func (n *NoOpRegistry) GetRegistry() *prometheus.Registry           { return nil }
func (n *NoOpRegistry) GetHandler() http.Handler                    { return nil }
