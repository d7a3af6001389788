package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics expone counters/gauges/histograms del store de mascotas y del HTTP.
type Metrics struct {
	storeOps     *prometheus.CounterVec
	records      prometheus.Gauge
	httpDuration *prometheus.HistogramVec
	gatherer     prometheus.Gatherer
}

// New registra las métricas en reg. Con reg nil usa un registry propio,
// así varios routers (p.ej. en tests) no chocan en el DefaultRegisterer.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petclinic",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total pet store operations by result",
		}, []string{"op", "result"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "petclinic",
			Subsystem: "store",
			Name:      "records",
			Help:      "Pet records in the store after the last write",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "petclinic",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
	reg.MustRegister(m.storeOps, m.records, m.httpDuration)
	return m
}

func (m *Metrics) ObserveStoreOp(op, result string) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler sirve /metrics para el registry de estas métricas.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
