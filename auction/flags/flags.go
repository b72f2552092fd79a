// Package flags contains the auction daemon's command line flags.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// RPCPort defines the port that the auction RPC server listens on.
	RPCPort = &cli.IntFlag{
		Name:  "rpc-port",
		Usage: "RPC port exposed by the auction daemon",
		Value: 50052,
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus",
		Value: 9002,
	}
)
