package server

import "github.com/prometheus/client_golang/prometheus"

var (
	plansGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "studyplan_plans_generated_total",
		Help: "Schedules exported, by file format.",
	}, []string{"format"})
	plansRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "studyplan_requests_rejected_total",
		Help: "Planning requests rejected by validation.",
	})
)

func init() {
	prometheus.MustRegister(plansGenerated, plansRejected)
}
