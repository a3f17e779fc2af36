// Package metrics provides Prometheus metrics for the config server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's collectors and their registry.
type Metrics struct {
	ConfigRequestsTotal *prometheus.CounterVec
	ConfigInfo          *prometheus.GaugeVec

	Registry *prometheus.Registry
}

// New creates a Metrics instance on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	reg.MustRegister(prometheus.NewBuildInfoCollector())

	return &Metrics{
		Registry: reg,
		ConfigRequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ui_config_requests_total",
				Help: "Total number of runtime config requests",
			},
			[]string{"format"},
		),
		ConfigInfo: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ui_config_info",
				Help: "Resolved runtime config, always 1",
			},
			[]string{"environment", "backend_url"},
		),
	}
}

// RecordConfig publishes the resolved environment and backend URL.
func (m *Metrics) RecordConfig(environment, backendURL string) {
	m.ConfigInfo.WithLabelValues(environment, backendURL).Set(1)
}

// RecordRequest counts one config request served in the given format.
func (m *Metrics) RecordRequest(format string) {
	m.ConfigRequestsTotal.WithLabelValues(format).Inc()
}

// Handler returns the HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
