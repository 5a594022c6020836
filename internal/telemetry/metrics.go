package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskpad_tasks_created_total",
			Help: "Total number of tasks created",
		},
	)

	tasksRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskpad_tasks_removed_total",
			Help: "Total number of tasks removed",
		},
	)

	registrySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "taskpad_registry_tasks",
			Help: "Current number of tasks in the registry",
		},
	)
)

func ObserveTaskCreated(size int) {
	tasksCreatedTotal.Inc()
	registrySize.Set(float64(size))
}

func ObserveTaskRemoved(size int) {
	tasksRemovedTotal.Inc()
	registrySize.Set(float64(size))
}
