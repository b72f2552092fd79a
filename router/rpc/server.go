package rpc

import (
	"context"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
)

// Server implements gix.v1.RouterServiceServer over the routing core.
// Failures are reported in the response body: success=false plus a
// human-readable error string, matching the wire contract of every GIX
// daemon.
type Server struct {
	router Backend
}

// RouteEnvelope decodes, routes, and commits one envelope.
func (s *Server) RouteEnvelope(ctx context.Context, req *gixv1.RouteEnvelopeRequest) (*gixv1.RouteEnvelopeResponse, error) {
	env, err := gxf.Unmarshal(req.GetEnvelopeData())
	if err != nil {
		return &gixv1.RouteEnvelopeResponse{Success: false, Error: err.Error()}, nil
	}
	laneID, err := s.router.RouteEnvelope(ctx, env)
	if err != nil {
		log.WithError(err).Debug("Envelope rejected")
		return &gixv1.RouteEnvelopeResponse{Success: false, Error: err.Error()}, nil
	}
	return &gixv1.RouteEnvelopeResponse{LaneId: uint32(laneID), Success: true}, nil
}

// GetRouterStats returns the admittance counters.
func (s *Server) GetRouterStats(_ context.Context, _ *gixv1.RouterStatsRequest) (*gixv1.RouterStatsResponse, error) {
	stats := s.router.Stats()
	laneStats := make(map[uint32]uint64, len(stats.LaneStats))
	for id, count := range stats.LaneStats {
		laneStats[uint32(id)] = count
	}
	return &gixv1.RouterStatsResponse{
		TotalRouted: stats.TotalRouted,
		LaneStats:   laneStats,
	}, nil
}
