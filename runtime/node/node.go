// Package node wires the runtime daemon together: the execution core, the
// RPC service, and the monitoring endpoint, managed through a service
// registry.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/runtime/executor"
	"github.com/gixlabs/gix/runtime/flags"
	"github.com/gixlabs/gix/runtime/rpc"
	"github.com/gixlabs/gix/shared"
	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/debug"
	"github.com/gixlabs/gix/shared/prometheus"
	"github.com/gixlabs/gix/shared/tracing"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "node")

// RuntimeNode defines a struct that handles the services running the GSEE
// runtime. It handles the lifecycle of the entire system and registers
// services to a service registry.
type RuntimeNode struct {
	cliCtx   *cli.Context
	ctx      context.Context
	cancel   context.CancelFunc
	lock     sync.RWMutex
	services *shared.ServiceRegistry
	executor *executor.Executor
	stop     chan struct{} // Channel to wait for termination notifications.
}

// New creates a new node instance, sets up configuration options, and
// registers every required service.
func New(cliCtx *cli.Context) (*RuntimeNode, error) {
	if err := tracing.Setup(
		"runtime", // Service name.
		cliCtx.String(cmd.TracingProcessNameFlag.Name),
		cliCtx.String(cmd.TracingEndpointFlag.Name),
		cliCtx.Float64(cmd.TraceSampleFractionFlag.Name),
		cliCtx.Bool(cmd.EnableTracingFlag.Name),
	); err != nil {
		return nil, err
	}

	registry := shared.NewServiceRegistry()
	ctx, cancel := context.WithCancel(cliCtx.Context)
	n := &RuntimeNode{
		cliCtx:   cliCtx,
		ctx:      ctx,
		cancel:   cancel,
		services: registry,
		stop:     make(chan struct{}),
	}

	policy := executor.DefaultPolicy()
	policy.Shape.MaxSequenceLength = uint32(cliCtx.Uint(flags.MaxSequenceLengthFlag.Name))
	policy.Shape.MaxBatchSize = uint32(cliCtx.Uint(flags.MaxBatchSizeFlag.Name))
	if regions := cliCtx.StringSlice(flags.AllowedRegionsFlag.Name); len(regions) > 0 {
		policy.Residency.AllowedRegions = regions
	}
	policy.Residency.RequiredResidency = cliCtx.String(flags.RequiredResidencyFlag.Name)
	policy.SupportedPrecisions = gxf.Precisions()
	n.executor = executor.New(policy)

	if err := n.registerRPCService(); err != nil {
		cancel()
		return nil, err
	}
	if err := n.registerPrometheusService(); err != nil {
		cancel()
		return nil, err
	}
	return n, nil
}

func (n *RuntimeNode) registerRPCService() error {
	return n.services.RegisterService(rpc.NewService(n.ctx, &rpc.Config{
		Host:     n.cliCtx.String(cmd.RPCHost.Name),
		Port:     fmt.Sprintf("%d", n.cliCtx.Int(flags.RPCPort.Name)),
		CertFlag: n.cliCtx.String(cmd.CertFlag.Name),
		KeyFlag:  n.cliCtx.String(cmd.KeyFlag.Name),
		Executor: n.executor,
	}))
}

func (n *RuntimeNode) registerPrometheusService() error {
	if n.cliCtx.Bool(cmd.DisableMonitoringFlag.Name) {
		return nil
	}
	service := prometheus.NewService(
		fmt.Sprintf("%s:%d", n.cliCtx.String(cmd.MonitoringHostFlag.Name), n.cliCtx.Int(flags.MonitoringPortFlag.Name)),
		n.services,
	)
	logrus.AddHook(prometheus.NewLogrusCollector())
	return n.services.RegisterService(service)
}

// Start the runtime node and kick off every registered service.
func (n *RuntimeNode) Start() {
	n.lock.Lock()
	n.services.StartAll()
	n.lock.Unlock()

	stop := n.stop
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		log.Info("Got interrupt, shutting down...")
		debug.Exit(n.cliCtx) // Ensure trace and CPU profile data are flushed.
		go n.Close()
		for i := 10; i > 0; i-- {
			<-sigc
			if i > 1 {
				log.WithField("times", i-1).Info("Already shutting down, interrupt more to panic")
			}
		}
		panic("Panic closing the runtime node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (n *RuntimeNode) Close() {
	n.lock.Lock()
	defer n.lock.Unlock()

	log.Info("Stopping runtime node")
	n.services.StopAll()
	n.cancel()
	close(n.stop)
}
