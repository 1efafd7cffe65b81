// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RelationshipMutations counts follow/unfollow/like/unlike mutations by kind and outcome.
	RelationshipMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_relationship_mutations_total",
		Help: "Total relationship mutations by kind and outcome",
	}, []string{"kind", "outcome"})

	// CounterUnderflowClamps counts denormalized counter decrements that hit the zero floor.
	// A non-zero value means a counter had drifted below its edge count.
	CounterUnderflowClamps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_counter_underflow_clamps_total",
		Help: "Total counter decrements clamped at zero",
	}, []string{"counter"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
