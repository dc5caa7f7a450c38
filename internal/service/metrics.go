package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSimulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "margin_simulator",
			Name:      "simulations_total",
			Help:      "Completed simulations by scenario",
		},
		[]string{"scenario"},
	)

	metricSimulationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "margin_simulator",
			Name:      "simulation_errors_total",
			Help:      "Rejected simulations by error code",
		},
		[]string{"code"},
	)
)
