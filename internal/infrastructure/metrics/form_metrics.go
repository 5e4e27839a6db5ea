package metrics

import (
	"strconv"

	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// FormMetrics exports order form outcomes to Prometheus.
type FormMetrics struct {
	submitted *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	deleted   prometheus.Counter
}

var _ interfaces.IFormMetrics = (*FormMetrics)(nil)

// NewFormMetrics registers the collectors on reg.
func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workorders",
			Name:      "form_submissions_total",
			Help:      "Order form submissions accepted, by mode and whether the store was written.",
		}, []string{"mode", "persisted"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workorders",
			Name:      "form_rejections_total",
			Help:      "Order form submissions rejected by validation or mode, by mode.",
		}, []string{"mode"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workorders",
			Name:      "deleted_total",
			Help:      "Work orders deleted from the details form.",
		}),
	}
	reg.MustRegister(m.submitted, m.rejected, m.deleted)
	return m
}

func (m *FormMetrics) FormSubmitted(mode string, persisted bool) {
	m.submitted.WithLabelValues(mode, strconv.FormatBool(persisted)).Inc()
}

func (m *FormMetrics) FormRejected(mode string) {
	m.rejected.WithLabelValues(mode).Inc()
}

func (m *FormMetrics) WorkOrderDeleted() {
	m.deleted.Inc()
}
