package rpc

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gixlabs/gix/auction/engine"
	"github.com/gixlabs/gix/auction/types"
	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

type stubBackend struct {
	match *engine.Match
	err   error
	stats *types.AuctionStats
}

func (b *stubBackend) RunAuction(_ context.Context, job *gxf.Job, _ uint8) (*engine.Match, error) {
	if b.err != nil {
		return nil, b.err
	}
	match := *b.match
	match.JobID = job.JobID
	return &match, nil
}

func (b *stubBackend) Stats() *types.AuctionStats {
	return b.stats
}

func TestServer_RunAuction_OK(t *testing.T) {
	backend := &stubBackend{
		match: &engine.Match{
			SlpID:     "slp-us-east-1",
			LaneID:    gxf.LaneFlash,
			Price:     25852,
			RoutePath: []string{"node-1", "node-2"},
		},
	}
	server := &Server{engine: backend}

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 1024)
	jobData, err := json.Marshal(job)
	require.NoError(t, err)

	resp, err := server.RunAuction(context.Background(), &gixv1.RunAuctionRequest{JobData: jobData, Priority: 200})
	require.NoError(t, err)
	require.Equal(t, true, resp.Success)
	assert.Equal(t, "slp-us-east-1", resp.SlpId)
	assert.Equal(t, uint32(0), resp.LaneId)
	assert.Equal(t, uint64(25852), resp.Price)
	assert.DeepEqual(t, job.JobID.Bytes(), resp.JobId)
}

func TestServer_RunAuction_MalformedJob(t *testing.T) {
	server := &Server{engine: &stubBackend{}}

	resp, err := server.RunAuction(context.Background(), &gixv1.RunAuctionRequest{JobData: []byte("{not json")})
	require.NoError(t, err)
	require.Equal(t, false, resp.Success)
	if !strings.Contains(resp.Error, "could not deserialize job") {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestServer_RunAuction_NoMatchInBody(t *testing.T) {
	server := &Server{engine: &stubBackend{err: engine.ErrNoMatch}}

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionFP8, 64)
	jobData, err := json.Marshal(job)
	require.NoError(t, err)

	resp, err := server.RunAuction(context.Background(), &gixv1.RunAuctionRequest{JobData: jobData, Priority: 10})
	require.NoError(t, err)
	require.Equal(t, false, resp.Success)
	if !strings.Contains(resp.Error, "no provider matches") {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestServer_GetAuctionStats(t *testing.T) {
	stats := types.NewAuctionStats()
	stats.TotalAuctions = 4
	stats.TotalMatches = 3
	stats.TotalUnmatched = 1
	stats.TotalVolume = 77556
	stats.MatchesByPrecision[gxf.PrecisionBF16] = 2
	stats.MatchesByLane[gxf.LaneDeep] = 1
	server := &Server{engine: &stubBackend{stats: stats}}

	resp, err := server.GetAuctionStats(context.Background(), &gixv1.AuctionStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), resp.TotalAuctions)
	assert.Equal(t, uint64(3), resp.TotalMatches)
	assert.Equal(t, uint64(1), resp.TotalUnmatched)
	assert.Equal(t, uint64(77556), resp.TotalVolume)
	assert.Equal(t, uint64(2), resp.MatchesByPrecision["BF16"])
	assert.Equal(t, uint64(1), resp.MatchesByLane[uint32(gxf.LaneDeep)])
}
