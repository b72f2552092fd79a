package rpc

import (
	"context"
	"strings"
	"testing"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/router/lanes"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func newTestServer(t *testing.T) *Server {
	router, err := lanes.New([]lanes.Config{
		{ID: gxf.LaneFlash, Name: "flash", Capacity: 2},
		{ID: gxf.LaneDeep, Name: "deep", Capacity: 2},
	})
	require.NoError(t, err)
	return &Server{router: router}
}

func marshalEnvelope(t *testing.T, priority uint8) []byte {
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionINT8, 512)
	env, err := gxf.NewEnvelope(job, priority)
	require.NoError(t, err)
	data, err := env.Marshal()
	require.NoError(t, err)
	return data
}

func TestRouteEnvelope_OK(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.RouteEnvelope(context.Background(), &gixv1.RouteEnvelopeRequest{
		EnvelopeData: marshalEnvelope(t, 150),
	})
	require.NoError(t, err)
	assert.Equal(t, true, resp.Success)
	assert.Equal(t, "", resp.Error)
	assert.Equal(t, uint32(0), resp.LaneId)
}

func TestRouteEnvelope_MalformedBytes(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.RouteEnvelope(context.Background(), &gixv1.RouteEnvelopeRequest{
		EnvelopeData: []byte("not json"),
	})
	require.NoError(t, err)
	assert.Equal(t, false, resp.Success)
	assert.NotEqual(t, "", resp.Error)
}

func TestRouteEnvelope_CapacityErrorSurfaced(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 4; i++ {
		resp, err := s.RouteEnvelope(context.Background(), &gixv1.RouteEnvelopeRequest{
			EnvelopeData: marshalEnvelope(t, 200),
		})
		require.NoError(t, err)
		require.Equal(t, true, resp.Success)
	}
	resp, err := s.RouteEnvelope(context.Background(), &gixv1.RouteEnvelopeRequest{
		EnvelopeData: marshalEnvelope(t, 200),
	})
	require.NoError(t, err)
	assert.Equal(t, false, resp.Success)
	assert.Equal(t, true, strings.Contains(resp.Error, "all lanes at capacity"))
}

func TestGetRouterStats(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.RouteEnvelope(context.Background(), &gixv1.RouteEnvelopeRequest{
		EnvelopeData: marshalEnvelope(t, 10),
	})
	require.NoError(t, err)
	require.Equal(t, true, resp.Success)

	stats, err := s.GetRouterStats(context.Background(), &gixv1.RouterStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.TotalRouted)
	assert.Equal(t, uint64(1), stats.LaneStats[1])
}
