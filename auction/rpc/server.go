package rpc

import (
	"context"
	"encoding/json"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
)

// Server implements gix.v1.AuctionServiceServer over the auction engine.
// Failures are reported in the response body: success=false plus a
// human-readable error string, matching the wire contract of every GIX
// daemon.
type Server struct {
	engine Backend
}

// RunAuction parses the job bytes and runs one auction at the given
// priority.
func (s *Server) RunAuction(ctx context.Context, req *gixv1.RunAuctionRequest) (*gixv1.RunAuctionResponse, error) {
	job := &gxf.Job{}
	if err := json.Unmarshal(req.GetJobData(), job); err != nil {
		return &gixv1.RunAuctionResponse{Success: false, Error: "could not deserialize job: " + err.Error()}, nil
	}
	match, err := s.engine.RunAuction(ctx, job, uint8(req.GetPriority()))
	if err != nil {
		log.WithError(err).Debug("Auction failed")
		return &gixv1.RunAuctionResponse{Success: false, Error: err.Error()}, nil
	}
	return &gixv1.RunAuctionResponse{
		JobId:   match.JobID.Bytes(),
		SlpId:   string(match.SlpID),
		LaneId:  uint32(match.LaneID),
		Price:   match.Price,
		Route:   match.RoutePath,
		Success: true,
	}, nil
}

// GetAuctionStats returns the durable auction counters.
func (s *Server) GetAuctionStats(_ context.Context, _ *gixv1.AuctionStatsRequest) (*gixv1.AuctionStatsResponse, error) {
	stats := s.engine.Stats()
	byPrecision := make(map[string]uint64, len(stats.MatchesByPrecision))
	for precision, count := range stats.MatchesByPrecision {
		byPrecision[string(precision)] = count
	}
	byLane := make(map[uint32]uint64, len(stats.MatchesByLane))
	for lane, count := range stats.MatchesByLane {
		byLane[uint32(lane)] = count
	}
	return &gixv1.AuctionStatsResponse{
		TotalAuctions:      stats.TotalAuctions,
		TotalMatches:       stats.TotalMatches,
		TotalUnmatched:     stats.TotalUnmatched,
		TotalVolume:        stats.TotalVolume,
		MatchesByPrecision: byPrecision,
		MatchesByLane:      byLane,
	}, nil
}
