package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option aplica uma configuração ao Manager
type Option func(*Manager)

// WithNamespace define o namespace de todas as métricas
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithMetricsEnabled liga ou desliga a coleta
func WithMetricsEnabled(enabled bool) Option {
	return func(m *Manager) {
		m.enabled = enabled
	}
}

// WithHistogramBuckets define os buckets dos histogramas de latência
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry usa um registry específico, útil em testes
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}
