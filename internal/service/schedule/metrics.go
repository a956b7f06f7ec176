package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "schedule_transitions_total",
		Help: "Total number of successful schedule lifecycle transitions",
	},
	[]string{"event"},
)
