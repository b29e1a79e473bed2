package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ratingsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storeratings_ratings_submitted_total",
			Help: "Rating submissions by outcome",
		},
		[]string{"outcome"},
	)

	storesRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storeratings_stores_registered_total",
			Help: "Stores registered",
		},
	)
)

func observeSubmission(created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	ratingsSubmitted.WithLabelValues(outcome).Inc()
}
