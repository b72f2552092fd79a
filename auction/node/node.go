// Package node wires the auction daemon together: the durable store, the
// auction engine, the RPC service, and the monitoring endpoint, managed
// through a service registry.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"

	"github.com/gixlabs/gix/auction/db"
	"github.com/gixlabs/gix/auction/db/kv"
	"github.com/gixlabs/gix/auction/engine"
	"github.com/gixlabs/gix/auction/flags"
	"github.com/gixlabs/gix/auction/rpc"
	"github.com/gixlabs/gix/shared"
	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/debug"
	"github.com/gixlabs/gix/shared/params"
	"github.com/gixlabs/gix/shared/prometheus"
	"github.com/gixlabs/gix/shared/tracing"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "node")

// AuctionNode defines a struct that handles the services running the GCAM
// auction daemon. It handles the lifecycle of the entire system and
// registers services to a service registry.
type AuctionNode struct {
	cliCtx   *cli.Context
	ctx      context.Context
	cancel   context.CancelFunc
	lock     sync.RWMutex
	services *shared.ServiceRegistry
	db       db.Database
	engine   *engine.Engine
	stop     chan struct{} // Channel to wait for termination notifications.
}

// New creates a new node instance, sets up configuration options, and
// registers every required service.
func New(cliCtx *cli.Context) (*AuctionNode, error) {
	if err := tracing.Setup(
		"auction", // Service name.
		cliCtx.String(cmd.TracingProcessNameFlag.Name),
		cliCtx.String(cmd.TracingEndpointFlag.Name),
		cliCtx.Float64(cmd.TraceSampleFractionFlag.Name),
		cliCtx.Bool(cmd.EnableTracingFlag.Name),
	); err != nil {
		return nil, err
	}

	registry := shared.NewServiceRegistry()
	ctx, cancel := context.WithCancel(cliCtx.Context)
	n := &AuctionNode{
		cliCtx:   cliCtx,
		ctx:      ctx,
		cancel:   cancel,
		services: registry,
		stop:     make(chan struct{}),
	}

	if err := n.startDB(cliCtx); err != nil {
		cancel()
		return nil, err
	}
	if err := n.startEngine(cliCtx); err != nil {
		cancel()
		return nil, err
	}
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

func (n *AuctionNode) startDB(cliCtx *cli.Context) error {
	baseDir := cliCtx.String(cmd.DataDirFlag.Name)
	dbPath := path.Join(baseDir, kv.AuctionDbDirName)
	clearDB := cliCtx.Bool(cmd.ClearDB.Name)
	forceClearDB := cliCtx.Bool(cmd.ForceClearDB.Name)

	log.WithField("database-path", dbPath).Info("Checking DB")
	d, err := db.NewDB(dbPath)
	if err != nil {
		return err
	}
	clearDBConfirmed := false
	if clearDB && !forceClearDB {
		actionText := "This will delete your auction database stored in your data directory. " +
			"This may lead to a re-seeded provider set. Do you want to proceed? (Y/N)"
		deniedText := "Database will not be deleted. No changes have been made."
		clearDBConfirmed, err = cmd.ConfirmAction(actionText, deniedText)
		if err != nil {
			return err
		}
	}
	if clearDBConfirmed || forceClearDB {
		log.Warning("Removing database")
		if err := d.ClearDB(); err != nil {
			return err
		}
		d, err = db.NewDB(dbPath)
		if err != nil {
			return err
		}
	}
	n.db = d
	return nil
}

func (n *AuctionNode) startEngine(cliCtx *cli.Context) error {
	var seed *params.SeedConfig
	if cliCtx.IsSet(cmd.SeedConfigFileFlag.Name) {
		loaded, err := params.LoadSeedConfigFile(cliCtx.String(cmd.SeedConfigFileFlag.Name))
		if err != nil {
			return err
		}
		seed = loaded
	}
	e, err := engine.New(n.ctx, &engine.Config{
		Database: n.db,
		Seed:     seed,
	})
	if err != nil {
		return err
	}
	n.engine = e
	return nil
}

func (n *AuctionNode) registerRPCService() error {
	return n.services.RegisterService(rpc.NewService(n.ctx, &rpc.Config{
		Host:     n.cliCtx.String(cmd.RPCHost.Name),
		Port:     fmt.Sprintf("%d", n.cliCtx.Int(flags.RPCPort.Name)),
		CertFlag: n.cliCtx.String(cmd.CertFlag.Name),
		KeyFlag:  n.cliCtx.String(cmd.KeyFlag.Name),
		Engine:   n.engine,
	}))
}

func (n *AuctionNode) registerPrometheusService() error {
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

// Start the auction node and kick off every registered service.
func (n *AuctionNode) Start() {
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
		panic("Panic closing the auction node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system: stop services, flush the
// working set, close the store.
func (n *AuctionNode) Close() {
	n.lock.Lock()
	defer n.lock.Unlock()

	log.Info("Stopping auction node")
	n.services.StopAll()
	if err := n.engine.Flush(n.ctx); err != nil {
		log.WithError(err).Error("Failed to flush auction state")
	}
	if err := n.db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
	n.cancel()
	close(n.stop)
}
