package capacity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReservationConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "capacity_reservation_conflicts_total",
		Help: "Total number of rejected capacity reservations",
	},
	[]string{"reason"},
)
