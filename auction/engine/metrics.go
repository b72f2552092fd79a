package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auctionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gix_auction_auctions_total",
		Help: "Total number of auctions run.",
	})
	matchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gix_auction_matches_total",
		Help: "Total number of auctions that produced a match.",
	})
	unmatchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gix_auction_unmatched_total",
		Help: "Total number of auctions with no capable provider.",
	})
	volumeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gix_auction_volume_microtokens_total",
		Help: "Cumulative matched price volume in micro-tokens.",
	})
	providerUtilizationGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gix_auction_provider_utilization",
		Help: "Current utilization of each provider.",
	}, []string{"slp_id"})
)
