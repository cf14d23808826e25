// Package metrics expõe as métricas Prometheus da API de metas
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager concentra as métricas da aplicação. Um Manager nil ou desabilitado ignora todas as chamadas.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Metas
	targetBatches        *prometheus.CounterVec
	targetRecords        *prometheus.CounterVec
	noEligibleRecipients *prometheus.CounterVec
	targetBatchFailures  *prometheus.CounterVec

	// Desempenho
	summaries          *prometheus.CounterVec
	aggregationLatency *prometheus.HistogramVec

	// Descoberta de períodos
	discoveryFallbacks prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sales_targets",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.targetBatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "targeting",
		Name:      "batches_total",
		Help:      "Lotes de metas gravados com sucesso",
	}, []string{"category"})

	m.targetRecords = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "targeting",
		Name:      "records_total",
		Help:      "Metas individuais geradas pelo rateio",
	}, []string{"category"})

	m.noEligibleRecipients = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "targeting",
		Name:      "no_eligible_recipients_total",
		Help:      "Requisições rejeitadas por não haver destinatários elegíveis",
	}, []string{"category"})

	m.targetBatchFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "targeting",
		Name:      "batch_failures_total",
		Help:      "Lotes de metas descartados por falha de gravação",
	}, []string{"category"})

	m.summaries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "performance",
		Name:      "summaries_total",
		Help:      "Resumos de desempenho calculados, por categoria e parcialidade",
	}, []string{"category", "partial"})

	m.aggregationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "performance",
		Name:      "aggregation_duration_seconds",
		Help:      "Tempo para buscar e agregar um resumo de desempenho",
		Buckets:   m.histogramBuckets,
	}, []string{"category"})

	m.discoveryFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "periods",
		Name:      "discovery_fallbacks_total",
		Help:      "Vezes em que a janela fixa de anos foi usada",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requisições HTTP por método, rota e status",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duração das requisições HTTP",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

func (m *Manager) RecordTargetBatch(category string, records int) {
	if !m.active() {
		return
	}
	m.targetBatches.WithLabelValues(category).Inc()
	m.targetRecords.WithLabelValues(category).Add(float64(records))
}

func (m *Manager) RecordNoEligibleRecipients(category string) {
	if !m.active() {
		return
	}
	m.noEligibleRecipients.WithLabelValues(category).Inc()
}

func (m *Manager) RecordBatchFailure(category string) {
	if !m.active() {
		return
	}
	m.targetBatchFailures.WithLabelValues(category).Inc()
}

func (m *Manager) RecordSummary(category string, partial bool, elapsed time.Duration) {
	if !m.active() {
		return
	}
	m.summaries.WithLabelValues(category, strconv.FormatBool(partial)).Inc()
	m.aggregationLatency.WithLabelValues(category).Observe(elapsed.Seconds())
}

func (m *Manager) RecordDiscoveryFallback() {
	if !m.active() {
		return
	}
	m.discoveryFallbacks.Inc()
}

func (m *Manager) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if !m.active() {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expõe o registry no formato de texto do Prometheus
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry retorna o registry usado pelo Manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
