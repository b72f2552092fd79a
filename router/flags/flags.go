// Package flags contains the router daemon's command line flags.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// RPCPort defines the port that the router RPC server listens on.
	RPCPort = &cli.IntFlag{
		Name:  "rpc-port",
		Usage: "RPC port exposed by the router daemon",
		Value: 50051,
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus",
		Value: 9001,
	}
	// FlashCapacityFlag overrides the capacity of the flash lane.
	FlashCapacityFlag = &cli.Uint64Flag{
		Name:  "flash-capacity",
		Usage: "Maximum in-flight jobs admitted to the flash lane",
		Value: 100,
	}
	// DeepCapacityFlag overrides the capacity of the deep lane.
	DeepCapacityFlag = &cli.Uint64Flag{
		Name:  "deep-capacity",
		Usage: "Maximum in-flight jobs admitted to the deep lane",
		Value: 50,
	}
)
