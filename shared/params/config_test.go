package params

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func TestDefaultNetworkConfig(t *testing.T) {
	cfg := GixNetworkConfig()
	assert.Equal(t, uint8(3), cfg.SchemaVersion)
	require.Equal(t, 2, len(cfg.Lanes))
	assert.Equal(t, "flash", cfg.Lanes[0].Name)
	assert.Equal(t, uint64(100), cfg.Lanes[0].Capacity)
	assert.Equal(t, "deep", cfg.Lanes[1].Name)
	assert.Equal(t, uint64(50), cfg.Lanes[1].Capacity)
}

func TestOverrideGixNetworkConfig(t *testing.T) {
	cfg := GixNetworkConfig().Copy()
	cfg.Lanes[0].Capacity = 7
	OverrideGixNetworkConfig(cfg)
	defer OverrideGixNetworkConfig(defaultNetworkConfig)

	assert.Equal(t, uint64(7), GixNetworkConfig().Lanes[0].Capacity)
	assert.Equal(t, uint64(100), defaultNetworkConfig.Lanes[0].Capacity, "default must not be mutated")
}

func TestDefaultSeedConfig(t *testing.T) {
	seed := DefaultSeedConfig()
	require.Equal(t, 2, len(seed.Providers))
	require.Equal(t, 2, len(seed.Routes))

	us := seed.Providers[0]
	assert.Equal(t, "slp-us-east-1", us.SlpID)
	assert.Equal(t, uint64(1000), us.BasePrice)
	assert.Equal(t, uint32(100), us.Capacity)
	assert.Equal(t, uint32(30), us.Utilization)
	assert.Equal(t, 4, len(us.SupportedPrecisions))

	eu := seed.Providers[1]
	assert.Equal(t, "slp-eu-west-1", eu.SlpID)
	assert.Equal(t, 3, len(eu.SupportedPrecisions))

	flash := seed.Routes[0]
	assert.Equal(t, "route-flash-1", flash.ID)
	assert.Equal(t, uint8(0), flash.LaneID)
	assert.DeepEqual(t, []string{"node-1", "node-2"}, flash.Path)

	deep := seed.Routes[1]
	assert.Equal(t, uint8(1), deep.LaneID)
	assert.Equal(t, uint64(150), deep.LatencyMs)
	assert.Equal(t, uint64(80), deep.Cost)
}

func TestLoadSeedConfigFile(t *testing.T) {
	content := `
providers:
  - slp_id: slp-test-1
    supported_precisions: [BF16, INT8]
    base_price: 500
    capacity: 10
    utilization: 2
    region: US
routes:
  - id: route-test-1
    lane_id: 0
    path: [n1]
    latency_ms: 5
    cost: 9
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadSeedConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, len(cfg.Providers))
	assert.Equal(t, "slp-test-1", cfg.Providers[0].SlpID)
	assert.Equal(t, uint32(10), cfg.Providers[0].Capacity)
	require.Equal(t, 1, len(cfg.Routes))
	assert.DeepEqual(t, []string{"n1"}, cfg.Routes[0].Path)
}

func TestLoadSeedConfigFile_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown precision",
			content: `
providers:
  - slp_id: p1
    supported_precisions: [FP64]
    capacity: 10
    region: US
routes:
  - id: r1
    path: [n1]
`,
		},
		{
			name: "utilization above capacity",
			content: `
providers:
  - slp_id: p1
    supported_precisions: [BF16]
    capacity: 10
    utilization: 11
    region: US
routes:
  - id: r1
    path: [n1]
`,
		},
		{
			name: "empty route path",
			content: `
providers:
  - slp_id: p1
    supported_precisions: [BF16]
    capacity: 10
    region: US
routes:
  - id: r1
    path: []
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			require.NoError(t, ioutil.WriteFile(path, []byte(tt.content), 0600))
			_, err := LoadSeedConfigFile(path)
			assert.NotNil(t, err, "invalid seed config must be rejected")
		})
	}
}
