// Package flags contains the runtime daemon's command line flags.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// RPCPort defines the port that the runtime RPC server listens on.
	RPCPort = &cli.IntFlag{
		Name:  "rpc-port",
		Usage: "RPC port exposed by the runtime daemon",
		Value: 50053,
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus",
		Value: 9003,
	}
	// MaxSequenceLengthFlag overrides the compliance limit on kv_cache_seq_len.
	MaxSequenceLengthFlag = &cli.UintFlag{
		Name:  "max-sequence-length",
		Usage: "Maximum kv_cache_seq_len admitted by the compliance gate",
		Value: 8192,
	}
	// MaxBatchSizeFlag overrides the compliance limit on batch_size.
	MaxBatchSizeFlag = &cli.UintFlag{
		Name:  "max-batch-size",
		Usage: "Maximum batch_size admitted by the compliance gate",
		Value: 32,
	}
	// AllowedRegionsFlag overrides the regions the compliance gate accepts.
	AllowedRegionsFlag = &cli.StringSliceFlag{
		Name:  "allowed-regions",
		Usage: "Regions admitted by the compliance gate",
		Value: cli.NewStringSlice("US", "EU"),
	}
	// RequiredResidencyFlag demands an exact residency parameter on every job.
	RequiredResidencyFlag = &cli.StringFlag{
		Name:  "required-residency",
		Usage: "Residency value every job must declare, empty disables the check",
	}
)
