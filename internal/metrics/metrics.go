// Package metrics exposes the Prometheus counters for vendor lifecycle
// operations. Counters use the default registry; cmd/api mounts promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VendorOnboards counts successful vendor promotions.
	VendorOnboards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "souq_vendor_onboard_total",
		Help: "Number of accounts promoted to vendor.",
	})

	// VendorCascades counts committed cascading vendor deletions, labelled by
	// who initiated them (self or admin).
	VendorCascades = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "souq_vendor_cascade_total",
		Help: "Number of committed cascading vendor deletions.",
	}, []string{"initiator"})

	// CascadeProductsDeleted counts catalog rows removed by cascades.
	CascadeProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "souq_cascade_products_deleted_total",
		Help: "Number of products removed by cascading vendor deletions.",
	})

	// ArtifactCleanupFailures counts stored-file removals that failed after a
	// committed deletion. These are compensation failures, never fatal.
	ArtifactCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "souq_artifact_cleanup_failures_total",
		Help: "Number of failed best-effort artifact removals.",
	})
)
