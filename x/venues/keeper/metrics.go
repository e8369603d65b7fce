package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// VenueMetrics holds all Prometheus metrics for the venues module
type VenueMetrics struct {
	SwapsTotal  *prometheus.CounterVec
	SwapLatency prometheus.Histogram
	QuotesTotal *prometheus.CounterVec

	RefundsTotal  *prometheus.CounterVec
	DustWithdrawn *prometheus.CounterVec
}

var (
	venueMetricsOnce sync.Once
	venueMetrics     *VenueMetrics
)

// NewVenueMetrics creates and registers venue metrics (singleton pattern)
func NewVenueMetrics() *VenueMetrics {
	venueMetricsOnce.Do(func() {
		venueMetrics = &VenueMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meshswap",
					Subsystem: "venues",
					Name:      "swaps_total",
					Help:      "Total swaps routed through each venue",
				},
				[]string{"venue", "status"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "meshswap",
					Subsystem: "venues",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			QuotesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meshswap",
					Subsystem: "venues",
					Name:      "quotes_total",
					Help:      "Total quote requests served per venue and direction",
				},
				[]string{"venue", "direction"},
			),
			RefundsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meshswap",
					Subsystem: "venues",
					Name:      "refunds_total",
					Help:      "Swaps that returned unspent input to the caller",
				},
				[]string{"venue"},
			),
			DustWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meshswap",
					Subsystem: "venues",
					Name:      "dust_withdrawn_total",
					Help:      "Residual balance swept to the owner, in base units",
				},
				[]string{"denom"},
			),
		}
	})
	return venueMetrics
}
