// Package types defines the domain records owned by the auction engine:
// compute providers, routes, and the durable auction counters. The JSON
// field names are the storage encoding and must stay stable.
package types

import (
	"github.com/gixlabs/gix/gxf"
)

// ComputeProvider is one Sovereign Liquidity Pool in the provider pool.
type ComputeProvider struct {
	SlpID               gxf.SlpID            `json:"slp_id"`
	SupportedPrecisions []gxf.PrecisionLevel `json:"supported_precisions"`
	BasePrice           uint64               `json:"base_price"`
	Capacity            uint32               `json:"capacity"`
	Utilization         uint32               `json:"utilization"`
	Region              string               `json:"region"`
}

// Supports reports whether the provider can serve the given precision.
func (p *ComputeProvider) Supports(precision gxf.PrecisionLevel) bool {
	for _, supported := range p.SupportedPrecisions {
		if supported == precision {
			return true
		}
	}
	return false
}

// HasCapacity reports whether the provider can take one more job.
func (p *ComputeProvider) HasCapacity() bool {
	return p.Utilization < p.Capacity
}

// CanHandle reports whether the provider is a candidate for the job.
func (p *ComputeProvider) CanHandle(job *gxf.Job) bool {
	return p.Supports(job.Precision) && p.HasCapacity()
}

// Copy returns a deep copy of the provider.
func (p *ComputeProvider) Copy() *ComputeProvider {
	out := *p
	out.SupportedPrecisions = append([]gxf.PrecisionLevel(nil), p.SupportedPrecisions...)
	return &out
}

// Route is one dispatch path through the network.
type Route struct {
	ID        string     `json:"id"`
	LaneID    gxf.LaneID `json:"lane_id"`
	Path      []string   `json:"path"`
	LatencyMs uint64     `json:"latency_ms"`
	Cost      uint64     `json:"cost"`
}

// Score ranks routes; lower is preferred. The dimensionless score is
// latency_ms/1000 + cost/1_000_000, scaled by 10^6 so comparisons stay in
// exact integer arithmetic.
func (r *Route) Score() uint64 {
	return r.LatencyMs*1000 + r.Cost
}

// Copy returns a deep copy of the route.
func (r *Route) Copy() *Route {
	out := *r
	out.Path = append([]string(nil), r.Path...)
	return &out
}

// AuctionStats holds the monotonic auction counters. All fields only ever
// increase.
type AuctionStats struct {
	TotalAuctions      uint64                        `json:"total_auctions"`
	TotalMatches       uint64                        `json:"total_matches"`
	TotalUnmatched     uint64                        `json:"total_unmatched"`
	TotalVolume        uint64                        `json:"total_volume"`
	MatchesByPrecision map[gxf.PrecisionLevel]uint64 `json:"matches_by_precision"`
	MatchesByLane      map[gxf.LaneID]uint64         `json:"matches_by_lane"`
}

// NewAuctionStats returns zeroed counters with allocated maps.
func NewAuctionStats() *AuctionStats {
	return &AuctionStats{
		MatchesByPrecision: make(map[gxf.PrecisionLevel]uint64),
		MatchesByLane:      make(map[gxf.LaneID]uint64),
	}
}

// Copy returns a deep copy of the stats.
func (s *AuctionStats) Copy() *AuctionStats {
	out := &AuctionStats{
		TotalAuctions:      s.TotalAuctions,
		TotalMatches:       s.TotalMatches,
		TotalUnmatched:     s.TotalUnmatched,
		TotalVolume:        s.TotalVolume,
		MatchesByPrecision: make(map[gxf.PrecisionLevel]uint64, len(s.MatchesByPrecision)),
		MatchesByLane:      make(map[gxf.LaneID]uint64, len(s.MatchesByLane)),
	}
	for k, v := range s.MatchesByPrecision {
		out.MatchesByPrecision[k] = v
	}
	for k, v := range s.MatchesByLane {
		out.MatchesByLane[k] = v
	}
	return out
}
