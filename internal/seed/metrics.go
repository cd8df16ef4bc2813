package seed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seedTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetwise_seed_tasks_total",
		Help: "Fan-out worker tasks, by kind and outcome.",
	}, []string{"kind", "status"})

	seedUsersProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "budgetwise_seed_users_provisioned_total",
		Help: "Demo users created by the provisioning phase.",
	})

	seedRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetwise_seed_runs_total",
		Help: "Pipeline runs, by terminal state.",
	}, []string{"status"})

	seedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "budgetwise_seed_duration_seconds",
		Help:    "Wall-clock duration of a full pipeline run.",
		Buckets: prometheus.DefBuckets,
	})
)
