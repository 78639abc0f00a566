package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una operación del store.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics métricas Prometheus del almacenamiento de clientes.
type Metrics struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	CustomersTotal    prometheus.Gauge
}

// NewMetrics crea y registra las métricas en reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OperationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "customer_api",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total de operaciones del store por operación y resultado",
		}, []string{"operation", "outcome"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "customer_api",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duración de las operaciones del store",
			Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
		}, []string{"operation"}),
		CustomersTotal: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "customer_api",
			Subsystem: "store",
			Name:      "customers",
			Help:      "Clientes vivos tras la última operación de escritura o listado",
		}),
	}
}
