package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsExecutedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gix_runtime_jobs_executed_total",
		Help: "Total number of jobs that entered execution, by precision.",
	}, []string{"precision"})
	jobsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gix_runtime_jobs_rejected_total",
		Help: "Total number of jobs rejected by the compliance gate, by violation.",
	}, []string{"violation"})
	executionDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gix_runtime_execution_duration_ms",
		Help:    "Simulated execution duration in milliseconds.",
		Buckets: []float64{10, 12, 15, 20, 30, 50, 100, 250},
	})
)
