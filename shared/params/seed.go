package params

import (
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// SeedProvider is the config-file shape of a provider applied to an empty
// provider store on first boot.
type SeedProvider struct {
	SlpID               string   `json:"slp_id" validate:"required"`
	SupportedPrecisions []string `json:"supported_precisions" validate:"required,min=1,dive,oneof=BF16 FP8 E5M2 INT8"`
	BasePrice           uint64   `json:"base_price"`
	Capacity            uint32   `json:"capacity" validate:"gt=0"`
	Utilization         uint32   `json:"utilization" validate:"ltefield=Capacity"`
	Region              string   `json:"region" validate:"required"`
}

// SeedRoute is the config-file shape of a route applied to an empty route
// store on first boot.
type SeedRoute struct {
	ID        string   `json:"id" validate:"required"`
	LaneID    uint8    `json:"lane_id"`
	Path      []string `json:"path" validate:"required,min=1"`
	LatencyMs uint64   `json:"latency_ms"`
	Cost      uint64   `json:"cost"`
}

// SeedConfig bundles the first-boot provider and route sets.
type SeedConfig struct {
	Providers []SeedProvider `json:"providers" validate:"required,min=1,dive"`
	Routes    []SeedRoute    `json:"routes" validate:"required,min=1,dive"`
}

// DefaultSeedConfig returns the built-in seed set. First-boot behavior is
// deterministic: two providers and one route per lane.
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Providers: []SeedProvider{
			{
				SlpID:               "slp-us-east-1",
				SupportedPrecisions: []string{"BF16", "FP8", "E5M2", "INT8"},
				BasePrice:           1000,
				Capacity:            100,
				Utilization:         30,
				Region:              "US",
			},
			{
				SlpID:               "slp-eu-west-1",
				SupportedPrecisions: []string{"BF16", "FP8", "INT8"},
				BasePrice:           1200,
				Capacity:            80,
				Utilization:         20,
				Region:              "EU",
			},
		},
		Routes: []SeedRoute{
			{
				ID:        "route-flash-1",
				LaneID:    0,
				Path:      []string{"node-1", "node-2"},
				LatencyMs: 50,
				Cost:      100,
			},
			{
				ID:        "route-deep-1",
				LaneID:    1,
				Path:      []string{"node-3", "node-4", "node-5"},
				LatencyMs: 150,
				Cost:      80,
			},
		},
	}
}

// LoadSeedConfigFile reads and validates a YAML seed config, replacing the
// built-in seed set for first-boot stores.
func LoadSeedConfigFile(path string) (*SeedConfig, error) {
	data, err := ioutil.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read seed config file")
	}
	cfg := &SeedConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse seed config file")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid seed config")
	}
	return cfg, nil
}
