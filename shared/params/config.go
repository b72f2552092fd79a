// Package params defines the GIX network configuration: deployment
// constants, lane definitions, runtime policy defaults, and the provider
// and route seed sets applied on first boot.
package params

import "time"

// LaneConfig describes one routing lane and its capacity budget.
type LaneConfig struct {
	ID       uint8  `json:"id"`
	Name     string `json:"name"`
	Capacity uint64 `json:"capacity" validate:"gt=0"`
}

// NetworkConfig holds the deployment parameters shared by the GIX daemons
// and clients.
type NetworkConfig struct {
	// Envelope constants.
	SchemaVersion      uint8
	DefaultEnvelopeTTL time.Duration

	// Default RPC endpoints.
	RouterRPCPort  int
	AuctionRPCPort int
	RuntimeRPCPort int

	// Default monitoring endpoints.
	RouterMonitoringPort  int
	AuctionMonitoringPort int
	RuntimeMonitoringPort int

	// Router lanes, in lane-id order.
	Lanes []LaneConfig

	// Runtime policy defaults.
	MaxSequenceLength uint32
	MaxBatchSize      uint32
	AllowedRegions    []string
	RequiredResidency string
}

var defaultNetworkConfig = &NetworkConfig{
	SchemaVersion:      3,
	DefaultEnvelopeTTL: 300 * time.Second,

	RouterRPCPort:  50051,
	AuctionRPCPort: 50052,
	RuntimeRPCPort: 50053,

	RouterMonitoringPort:  9001,
	AuctionMonitoringPort: 9002,
	RuntimeMonitoringPort: 9003,

	Lanes: []LaneConfig{
		{ID: 0, Name: "flash", Capacity: 100},
		{ID: 1, Name: "deep", Capacity: 50},
	},

	MaxSequenceLength: 8192,
	MaxBatchSize:      32,
	AllowedRegions:    []string{"US", "EU"},
	RequiredResidency: "",
}

var networkConfig = defaultNetworkConfig

// GixNetworkConfig returns the current network config.
func GixNetworkConfig() *NetworkConfig {
	return networkConfig
}

// OverrideGixNetworkConfig replaces the active network config. Used by
// tests and flag handling.
func OverrideGixNetworkConfig(cfg *NetworkConfig) {
	networkConfig = cfg
}

// Copy returns a deep copy of the config so callers can mutate overrides
// without touching the shared default.
func (c *NetworkConfig) Copy() *NetworkConfig {
	out := *c
	out.Lanes = append([]LaneConfig(nil), c.Lanes...)
	out.AllowedRegions = append([]string(nil), c.AllowedRegions...)
	return &out
}
