package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RegistrationsTotal *prometheus.CounterVec
	EventsCreatedTotal prometheus.Counter
	EventsDeletedTotal prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RegistrationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "event_registrar_registrations_total",
			Help: "Total number of participant registration attempts by outcome",
		}, []string{"outcome"}),
		EventsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "event_registrar_events_created_total",
			Help: "Total number of events created",
		}),
		EventsDeletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "event_registrar_events_deleted_total",
			Help: "Total number of events deleted",
		}),
	}
}

func (m *Metrics) ObserveRegistration(outcome string) {
	m.RegistrationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementEventsCreated() {
	m.EventsCreatedTotal.Inc()
}

func (m *Metrics) IncrementEventsDeleted() {
	m.EventsDeletedTotal.Inc()
}
