// Package node wires the router daemon together: lane state, the RPC
// service, and the monitoring endpoint, managed through a service registry.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gixlabs/gix/router/flags"
	"github.com/gixlabs/gix/router/lanes"
	"github.com/gixlabs/gix/router/rpc"
	"github.com/gixlabs/gix/shared"
	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/debug"
	"github.com/gixlabs/gix/shared/prometheus"
	"github.com/gixlabs/gix/shared/tracing"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "node")

// RouterNode defines a struct that handles the services running the AJR
// router. It handles the lifecycle of the entire system and registers
// services to a service registry.
type RouterNode struct {
	cliCtx   *cli.Context
	ctx      context.Context
	cancel   context.CancelFunc
	lock     sync.RWMutex
	services *shared.ServiceRegistry
	router   *lanes.Router
	stop     chan struct{} // Channel to wait for termination notifications.
}

// New creates a new node instance, sets up configuration options, and
// registers every required service.
func New(cliCtx *cli.Context) (*RouterNode, error) {
	if err := tracing.Setup(
		"router", // Service name.
		cliCtx.String(cmd.TracingProcessNameFlag.Name),
		cliCtx.String(cmd.TracingEndpointFlag.Name),
		cliCtx.Float64(cmd.TraceSampleFractionFlag.Name),
		cliCtx.Bool(cmd.EnableTracingFlag.Name),
	); err != nil {
		return nil, err
	}

	registry := shared.NewServiceRegistry()
	ctx, cancel := context.WithCancel(cliCtx.Context)
	n := &RouterNode{
		cliCtx:   cliCtx,
		ctx:      ctx,
		cancel:   cancel,
		services: registry,
		stop:     make(chan struct{}),
	}

	laneCfgs := lanes.DefaultLanes()
	for i := range laneCfgs {
		switch laneCfgs[i].ID {
		case 0:
			laneCfgs[i].Capacity = cliCtx.Uint64(flags.FlashCapacityFlag.Name)
		case 1:
			laneCfgs[i].Capacity = cliCtx.Uint64(flags.DeepCapacityFlag.Name)
		}
	}
	router, err := lanes.New(laneCfgs)
	if err != nil {
		return nil, err
	}
	n.router = router

	if err := n.registerRPCService(); err != nil {
		return nil, err
	}
	if err := n.registerPrometheusService(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *RouterNode) registerRPCService() error {
	return n.services.RegisterService(rpc.NewService(n.ctx, &rpc.Config{
		Host:     n.cliCtx.String(cmd.RPCHost.Name),
		Port:     fmt.Sprintf("%d", n.cliCtx.Int(flags.RPCPort.Name)),
		CertFlag: n.cliCtx.String(cmd.CertFlag.Name),
		KeyFlag:  n.cliCtx.String(cmd.KeyFlag.Name),
		Router:   n.router,
	}))
}

func (n *RouterNode) registerPrometheusService() error {
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

// Start the router node and kick off every registered service.
func (n *RouterNode) Start() {
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
		panic("Panic closing the router node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (n *RouterNode) Close() {
	n.lock.Lock()
	defer n.lock.Unlock()

	log.Info("Stopping router node")
	n.services.StopAll()
	n.cancel()
	close(n.stop)
}
