package kv

import (
	"context"
	"testing"

	"github.com/gixlabs/gix/auction/types"
	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

// setupDB instantiates and returns a Store instance backed by a temp dir.
func setupDB(t testing.TB) *Store {
	db, err := NewKVStore(t.TempDir())
	require.NoError(t, err, "Failed to instantiate DB")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close database")
	})
	return db
}

func TestStore_ProviderCRUD(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	retrieved, err := db.Provider(ctx, "slp-missing")
	require.NoError(t, err)
	var nilProvider *types.ComputeProvider
	assert.Equal(t, nilProvider, retrieved)

	provider := &types.ComputeProvider{
		SlpID:               "slp-us-east-1",
		SupportedPrecisions: []gxf.PrecisionLevel{gxf.PrecisionINT8, gxf.PrecisionFP8},
		BasePrice:           22480,
		Capacity:            10,
		Region:              "US",
	}
	require.NoError(t, db.SaveProvider(ctx, provider))

	retrieved, err = db.Provider(ctx, provider.SlpID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.DeepEqual(t, provider, retrieved)

	// Upsert mutates in place rather than duplicating.
	provider.Utilization = 3
	require.NoError(t, db.SaveProvider(ctx, provider))
	providers, err := db.Providers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, len(providers))
	assert.Equal(t, uint32(3), providers[0].Utilization)
}

func TestStore_ProvidersInsertionOrder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	ids := []gxf.SlpID{"slp-c", "slp-a", "slp-b"}
	for _, id := range ids {
		require.NoError(t, db.SaveProvider(ctx, &types.ComputeProvider{
			SlpID:               id,
			SupportedPrecisions: []gxf.PrecisionLevel{gxf.PrecisionINT8},
			Capacity:            1,
		}))
	}
	// Re-saving the first provider must not move it to the back.
	require.NoError(t, db.SaveProvider(ctx, &types.ComputeProvider{
		SlpID:               "slp-c",
		SupportedPrecisions: []gxf.PrecisionLevel{gxf.PrecisionINT8},
		Capacity:            2,
	}))

	providers, err := db.Providers(ctx)
	require.NoError(t, err)
	require.Equal(t, len(ids), len(providers))
	for i, id := range ids {
		assert.Equal(t, id, providers[i].SlpID)
	}
}

func TestStore_OrderSurvivesReopen(t *testing.T) {
	dirPath := t.TempDir()
	db, err := NewKVStore(dirPath)
	require.NoError(t, err)
	ctx := context.Background()

	routes := []*types.Route{
		{ID: "route-flash-1", LaneID: gxf.LaneFlash, Path: []string{"igp-1"}, LatencyMs: 5, Cost: 100},
		{ID: "route-deep-1", LaneID: gxf.LaneDeep, Path: []string{"igp-2", "igp-3"}, LatencyMs: 50, Cost: 10},
	}
	require.NoError(t, db.SaveRoutes(ctx, routes))
	require.NoError(t, db.Close())

	db, err = NewKVStore(dirPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	retrieved, err := db.Routes(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, len(retrieved))
	assert.Equal(t, "route-flash-1", retrieved[0].ID)
	assert.Equal(t, "route-deep-1", retrieved[1].ID)
	assert.DeepEqual(t, routes[1], retrieved[1])
}

func TestStore_AuctionStatsDefaultsToZero(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	stats, err := db.AuctionStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(0), stats.TotalAuctions)
	assert.Equal(t, 0, len(stats.MatchesByPrecision))
}

func TestStore_AuctionStatsRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	stats := types.NewAuctionStats()
	stats.TotalAuctions = 7
	stats.TotalMatches = 5
	stats.TotalUnmatched = 2
	stats.TotalVolume = 129260
	stats.MatchesByPrecision[gxf.PrecisionINT8] = 4
	stats.MatchesByLane[gxf.LaneFlash] = 3
	require.NoError(t, db.SaveAuctionStats(ctx, stats))

	retrieved, err := db.AuctionStats(ctx)
	require.NoError(t, err)
	assert.DeepEqual(t, stats, retrieved)
}

func TestStore_ClearDB(t *testing.T) {
	dirPath := t.TempDir()
	db, err := NewKVStore(dirPath)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, db.SaveRoute(ctx, &types.Route{ID: "route-1", LaneID: gxf.LaneDeep}))
	require.NoError(t, db.Close())
	require.NoError(t, db.ClearDB())

	db, err = NewKVStore(dirPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()
	routes, err := db.Routes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, len(routes))
}
