package lanes

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func testLanes() []Config {
	return []Config{
		{ID: gxf.LaneFlash, Name: "flash", Capacity: 100},
		{ID: gxf.LaneDeep, Name: "deep", Capacity: 50},
	}
}

func makeEnvelope(t *testing.T, priority uint8) *gxf.Envelope {
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 1024)
	env, err := gxf.NewEnvelope(job, priority)
	require.NoError(t, err)
	return env
}

func TestRouteEnvelope_HighPriorityTakesFlashLane(t *testing.T) {
	r, err := New(testLanes())
	require.NoError(t, err)

	laneID, err := r.RouteEnvelope(context.Background(), makeEnvelope(t, 150))
	require.NoError(t, err)
	assert.Equal(t, gxf.LaneFlash, laneID)

	stats := r.Stats()
	assert.Equal(t, uint64(1), stats.TotalRouted)
	assert.Equal(t, uint64(1), stats.LaneStats[gxf.LaneFlash])
	assert.Equal(t, uint64(0), stats.LaneStats[gxf.LaneDeep])
}

func TestRouteEnvelope_LowPriorityTakesDeepLane(t *testing.T) {
	r, err := New(testLanes())
	require.NoError(t, err)

	for _, priority := range []uint8{0, 63, 64, 127} {
		laneID, err := r.RouteEnvelope(context.Background(), makeEnvelope(t, priority))
		require.NoError(t, err)
		assert.Equal(t, gxf.LaneDeep, laneID, "priority %d", priority)
	}
}

func TestRouteEnvelope_Expired(t *testing.T) {
	r, err := New(testLanes())
	require.NoError(t, err)

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 1024)
	payload, err := json.Marshal(job)
	require.NoError(t, err)
	expiresAt := uint64(1001)
	env := &gxf.Envelope{
		Meta: &gxf.Metadata{
			SchemaVersion: gxf.Version,
			Priority:      150,
			CreatedAt:     1000,
			ExpiresAt:     &expiresAt,
		},
		Payload: payload,
	}

	_, err = r.RouteEnvelope(context.Background(), env)
	assert.ErrorIs(t, err, gxf.ErrExpired)

	stats := r.Stats()
	assert.Equal(t, uint64(0), stats.TotalRouted, "counters must be unchanged on rejection")
}

func TestRouteEnvelope_InvalidVersion(t *testing.T) {
	r, err := New(testLanes())
	require.NoError(t, err)

	env := makeEnvelope(t, 150)
	env.Meta.SchemaVersion = 2
	_, err = r.RouteEnvelope(context.Background(), env)
	assert.ErrorIs(t, err, gxf.ErrInvalidVersion)
}

func TestRouteEnvelope_FallbackWhenPrimaryFull(t *testing.T) {
	cfgs := []Config{
		{ID: gxf.LaneFlash, Name: "flash", Capacity: 1},
		{ID: gxf.LaneDeep, Name: "deep", Capacity: 1},
	}
	r, err := New(cfgs)
	require.NoError(t, err)

	laneID, err := r.RouteEnvelope(context.Background(), makeEnvelope(t, 200))
	require.NoError(t, err)
	assert.Equal(t, gxf.LaneFlash, laneID)

	// Flash is full, a high-priority envelope falls back to deep.
	laneID, err = r.RouteEnvelope(context.Background(), makeEnvelope(t, 200))
	require.NoError(t, err)
	assert.Equal(t, gxf.LaneDeep, laneID)

	// All lanes full.
	_, err = r.RouteEnvelope(context.Background(), makeEnvelope(t, 200))
	assert.ErrorIs(t, err, ErrAllLanesAtCapacity)

	stats := r.Stats()
	assert.Equal(t, uint64(2), stats.TotalRouted)
}

func TestRouteEnvelope_ConcurrentNeverExceedsCapacity(t *testing.T) {
	cfgs := []Config{
		{ID: gxf.LaneFlash, Name: "flash", Capacity: 10},
		{ID: gxf.LaneDeep, Name: "deep", Capacity: 5},
	}
	r, err := New(cfgs)
	require.NoError(t, err)

	const attempts = 40
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.RouteEnvelope(context.Background(), makeEnvelope(t, 200))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var accepted, rejected int
	for err := range results {
		if err == nil {
			accepted++
		} else {
			require.ErrorIs(t, err, ErrAllLanesAtCapacity)
			rejected++
		}
	}
	assert.Equal(t, 15, accepted, "total capacity across lanes")
	assert.Equal(t, attempts-15, rejected)

	stats := r.Stats()
	assert.Equal(t, uint64(10), stats.ActiveJobs[gxf.LaneFlash])
	assert.Equal(t, uint64(5), stats.ActiveJobs[gxf.LaneDeep])
	assert.Equal(t, uint64(15), stats.TotalRouted)
}

func TestNew_RejectsBadLaneSets(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, "at least one lane", err)

	_, err = New([]Config{
		{ID: 0, Name: "a", Capacity: 1},
		{ID: 0, Name: "b", Capacity: 1},
	})
	assert.ErrorContains(t, "duplicate lane id", err)

	_, err = New([]Config{{ID: 0, Name: "a", Capacity: 0}})
	assert.ErrorContains(t, "capacity > 0", err)
}

func TestDefaultLanes_MatchesNetworkConfig(t *testing.T) {
	cfgs := DefaultLanes()
	require.Equal(t, 2, len(cfgs))
	assert.Equal(t, uint64(100), cfgs[0].Capacity)
	assert.Equal(t, uint64(50), cfgs[1].Capacity)
}
