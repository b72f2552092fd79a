// gix-sim drives a local GIX network: on every tick it builds a random
// job, routes the envelope, auctions the job, and executes it, then prints
// aggregate counters on shutdown. Intended for localnet smoke testing
// against all three daemons.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/params"
	"github.com/gixlabs/gix/shared/prometheus"
	"github.com/gixlabs/gix/shared/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
)

var log = logrus.WithField("prefix", "sim")

var (
	routerFlag = &cli.StringFlag{
		Name:  "router",
		Usage: "Address of the router daemon",
		Value: "127.0.0.1:50051",
	}
	auctionFlag = &cli.StringFlag{
		Name:  "auction",
		Usage: "Address of the auction daemon",
		Value: "127.0.0.1:50052",
	}
	runtimeFlag = &cli.StringFlag{
		Name:  "runtime",
		Usage: "Address of the runtime daemon",
		Value: "127.0.0.1:50053",
	}
	tickIntervalFlag = &cli.DurationFlag{
		Name:  "tick-interval",
		Usage: "Delay between submitted jobs",
		Value: 500 * time.Millisecond,
	}
	jobsFlag = &cli.IntFlag{
		Name:  "jobs",
		Usage: "Number of jobs to submit, 0 runs until interrupted",
		Value: 0,
	}
	metricsPortFlag = &cli.IntFlag{
		Name:  "metrics-port",
		Usage: "Port for the simulator's own /metrics endpoint, 0 disables it",
		Value: 0,
	}
)

type simulator struct {
	router  gixv1.RouterServiceClient
	auction gixv1.AuctionServiceClient
	runtime gixv1.ExecutionServiceClient
	rng     *rand.Rand

	submitted uint64
	routed    uint64
	matched   uint64
	executed  uint64
	failed    uint64
}

func main() {
	app := &cli.App{
		Name:    "gix-sim",
		Usage:   "drives a localnet GIX deployment with randomized compute jobs",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			routerFlag,
			auctionFlag,
			runtimeFlag,
			tickIntervalFlag,
			jobsFlag,
			metricsPortFlag,
			cmd.GrpcMaxCallRecvMsgSizeFlag,
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	if port := cliCtx.Int(metricsPortFlag.Name); port > 0 {
		go prometheus.RunSimpleServerOrDie(fmt.Sprintf(":%d", port))
	}

	maxRecvSize := cliCtx.Int(cmd.GrpcMaxCallRecvMsgSizeFlag.Name)
	routerConn, err := dial(cliCtx.String(routerFlag.Name), maxRecvSize)
	if err != nil {
		return err
	}
	defer closeConn(routerConn)
	auctionConn, err := dial(cliCtx.String(auctionFlag.Name), maxRecvSize)
	if err != nil {
		return err
	}
	defer closeConn(auctionConn)
	runtimeConn, err := dial(cliCtx.String(runtimeFlag.Name), maxRecvSize)
	if err != nil {
		return err
	}
	defer closeConn(runtimeConn)

	sim := &simulator{
		router:  gixv1.NewRouterServiceClient(routerConn),
		auction: gixv1.NewAuctionServiceClient(auctionConn),
		runtime: gixv1.NewExecutionServiceClient(runtimeConn),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	defer cancel()
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		log.Info("Got interrupt, finishing up...")
		cancel()
	}()

	maxJobs := cliCtx.Int(jobsFlag.Name)
	ticker := time.NewTicker(cliCtx.Duration(tickIntervalFlag.Name))
	defer ticker.Stop()

loop:
	for maxJobs == 0 || sim.submitted < uint64(maxJobs) {
		sim.tick(ctx)
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	sim.summarize()
	return nil
}

// tick pushes one random job through the full pipeline. Each stage failure
// is logged and ends the job's journey; later stages are skipped.
func (s *simulator) tick(ctx context.Context) {
	job, priority := s.randomJob()
	s.submitted++
	fields := logrus.Fields{
		"jobID":     job.JobID,
		"precision": job.Precision,
		"seqLen":    job.KVCacheSeqLen,
		"priority":  priority,
	}

	env, err := gxf.WrapJob(job, priority, params.GixNetworkConfig().DefaultEnvelopeTTL)
	if err != nil {
		log.WithError(err).WithFields(fields).Error("Could not build envelope")
		s.failed++
		return
	}
	envData, err := env.Marshal()
	if err != nil {
		log.WithError(err).WithFields(fields).Error("Could not serialize envelope")
		s.failed++
		return
	}

	routeResp, err := s.router.RouteEnvelope(ctx, &gixv1.RouteEnvelopeRequest{EnvelopeData: envData})
	if err != nil || !routeResp.GetSuccess() {
		log.WithFields(fields).WithField("error", rpcError(err, routeResp.GetError())).Warn("Routing failed")
		s.failed++
		return
	}
	s.routed++
	fields["laneID"] = routeResp.GetLaneId()

	auctionResp, err := s.auction.RunAuction(ctx, &gixv1.RunAuctionRequest{
		JobData:  env.Payload,
		Priority: uint32(priority),
	})
	if err != nil || !auctionResp.GetSuccess() {
		log.WithFields(fields).WithField("error", rpcError(err, auctionResp.GetError())).Warn("Auction failed")
		s.failed++
		return
	}
	s.matched++
	fields["slpID"] = auctionResp.GetSlpId()
	fields["price"] = auctionResp.GetPrice()
	fields["route"] = strings.Join(auctionResp.GetRoute(), " -> ")

	execResp, err := s.runtime.ExecuteJob(ctx, &gixv1.ExecuteJobRequest{EnvelopeData: envData})
	if err != nil || !execResp.GetSuccess() {
		log.WithFields(fields).WithField("error", rpcError(err, execResp.GetError())).Warn("Execution failed")
		s.failed++
		return
	}
	s.executed++
	fields["durationMs"] = execResp.GetDurationMs()
	log.WithFields(fields).Info("Job completed")
}

// randomJob builds a job with randomized precision, sequence length, and
// priority. A small batch size keeps the compliance gate mostly happy
// while still exercising rejections via oversized sequences.
func (s *simulator) randomJob() (*gxf.Job, uint8) {
	precisions := gxf.Precisions()
	precision := precisions[s.rng.Intn(len(precisions))]
	seqLen := uint32(s.rng.Intn(10000) + 1)
	priority := uint8(s.rng.Intn(256))

	job := gxf.NewJob(gxf.NewJobID(), precision, seqLen)
	job.SetParameter("model", "sim-model")
	job.SetParameter(gxf.ParamBatchSize, "1")
	regions := params.GixNetworkConfig().AllowedRegions
	job.SetParameter(gxf.ParamRegion, regions[s.rng.Intn(len(regions))])
	return job, priority
}

func (s *simulator) summarize() {
	log.WithFields(logrus.Fields{
		"submitted": s.submitted,
		"routed":    s.routed,
		"matched":   s.matched,
		"executed":  s.executed,
		"failed":    s.failed,
	}).Info("Simulation finished")
}

func rpcError(err error, body string) string {
	if err != nil {
		return err.Error()
	}
	return body
}

func dial(addr string, maxRecvSize int) (*grpc.ClientConn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := []grpc.DialOption{
		grpc.WithInsecure(),
		grpc.WithBlock(),
	}
	if maxRecvSize > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxRecvSize)))
	}
	return grpc.DialContext(ctx, addr, opts...)
}

func closeConn(conn *grpc.ClientConn) {
	if err := conn.Close(); err != nil {
		log.WithError(err).Debug("Could not close connection")
	}
}
