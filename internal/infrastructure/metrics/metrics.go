package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the session counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ExpensesAdded prometheus.Counter
	InvalidInputs *prometheus.CounterVec
	StoreSaves    prometheus.Counter
	Reports       *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ExpensesAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "goexpense_expenses_added_total",
			Help: "Total number of expenses recorded",
		}),
		InvalidInputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goexpense_invalid_inputs_total",
				Help: "Total number of rejected user inputs",
			},
			[]string{"kind"},
		),
		StoreSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "goexpense_store_saves_total",
			Help: "Total number of times the expense store was written",
		}),
		Reports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goexpense_reports_total",
				Help: "Total number of reports rendered",
			},
			[]string{"kind"},
		),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ExpenseAdded() {
	m.ExpensesAdded.Inc()
}

func (m *Metrics) InvalidInput(kind string) {
	m.InvalidInputs.WithLabelValues(kind).Inc()
}

func (m *Metrics) StoreSaved() {
	m.StoreSaves.Inc()
}

func (m *Metrics) ReportRendered(kind string) {
	m.Reports.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the current values in the node_exporter textfile
// collector format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
