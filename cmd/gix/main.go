// Package main defines gix, the command line client of the GIX network:
// key generation, job submission, and network inspection against a running
// auction daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/params"
	"github.com/gixlabs/gix/shared/version"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
)

var log = logrus.WithField("prefix", "gix")

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path the wallet file is written to",
		Value:   cmd.DefaultWalletPath(),
	}
	walletFlag = &cli.StringFlag{
		Name:    "wallet",
		Aliases: []string{"w"},
		Usage:   "Path of the wallet file used for signing",
		Value:   cmd.DefaultWalletPath(),
	}
	walletFileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path of the wallet file to inspect",
		Value:   cmd.DefaultWalletPath(),
	}
	nodeFlag = &cli.StringFlag{
		Name:    "node",
		Aliases: []string{"n"},
		Usage:   "Address of the auction daemon RPC endpoint",
		Value:   "127.0.0.1:50052",
	}
	priorityFlag = &cli.UintFlag{
		Name:    "priority",
		Aliases: []string{"p"},
		Usage:   "Envelope priority, 0-255; 128 and above selects the flash lane",
		Value:   128,
	}
)

func main() {
	app := &cli.App{
		Name:    "gix",
		Usage:   "command line client for the GIX compute network",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "generate a signing key and store it with owner-only permissions",
				Flags:  []cli.Flag{outputFlag},
				Action: keygen,
			},
			{
				Name:      "submit",
				Usage:     "submit a job spec to the auction",
				ArgsUsage: "<job.yaml>",
				Flags:     []cli.Flag{walletFlag, nodeFlag, priorityFlag, cmd.GrpcMaxCallRecvMsgSizeFlag},
				Action:    submit,
			},
			{
				Name:   "status",
				Usage:  "show the auction counters of a running daemon",
				Flags:  []cli.Flag{nodeFlag, cmd.GrpcMaxCallRecvMsgSizeFlag},
				Action: status,
			},
			{
				Name:   "wallet",
				Usage:  "display the public key of a wallet file",
				Flags:  []cli.Flag{walletFileFlag},
				Action: walletInfo,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func keygen(cliCtx *cli.Context) error {
	path := cliCtx.String(outputFlag.Name)
	if path == "" {
		return cli.Exit("could not determine a wallet path, pass --output", 1)
	}
	w := NewWallet()
	if err := w.Save(path); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Printf("%s %s\n", aurora.Green("Wallet written to"), path)
	fmt.Printf("%s %s\n", aurora.Bold("Public key:"), w.PublicKey)
	return nil
}

func submit(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 1 {
		return cli.Exit("usage: gix submit <job.yaml>", 1)
	}
	spec, err := LoadJobSpec(cliCtx.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	w, err := LoadWallet(cliCtx.String(walletFlag.Name))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	job, err := spec.ToJob()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	priority := uint8(cliCtx.Uint(priorityFlag.Name))
	env, err := gxf.WrapJob(job, priority, params.GixNetworkConfig().DefaultEnvelopeTTL)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	env.Signature, err = w.Sign(env.Payload)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	conn, err := dial(cliCtx.String(nodeFlag.Name), cliCtx.Int(cmd.GrpcMaxCallRecvMsgSizeFlag.Name))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("Could not close connection")
		}
	}()

	ctx, cancel := context.WithTimeout(cliCtx.Context, 10*time.Second)
	defer cancel()
	resp, err := gixv1.NewAuctionServiceClient(conn).RunAuction(ctx, &gixv1.RunAuctionRequest{
		JobData:  env.Payload,
		Priority: uint32(priority),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if !resp.Success {
		return cli.Exit(fmt.Sprintf("auction failed: %s", resp.Error), 1)
	}

	fmt.Printf("%s\n", aurora.Green("Job matched"))
	fmt.Printf("  %s %s\n", aurora.Bold("Job:"), job.JobID)
	fmt.Printf("  %s %s\n", aurora.Bold("Provider:"), resp.SlpId)
	fmt.Printf("  %s %d\n", aurora.Bold("Lane:"), resp.LaneId)
	fmt.Printf("  %s %s micro-tokens\n", aurora.Bold("Price:"), humanize.Comma(int64(resp.Price)))
	fmt.Printf("  %s %s\n", aurora.Bold("Route:"), strings.Join(resp.Route, " -> "))
	return nil
}

func status(cliCtx *cli.Context) error {
	conn, err := dial(cliCtx.String(nodeFlag.Name), cliCtx.Int(cmd.GrpcMaxCallRecvMsgSizeFlag.Name))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("Could not close connection")
		}
	}()

	ctx, cancel := context.WithTimeout(cliCtx.Context, 10*time.Second)
	defer cancel()
	resp, err := gixv1.NewAuctionServiceClient(conn).GetAuctionStats(ctx, &gixv1.AuctionStatsRequest{})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("%s\n", aurora.Bold("Auction statistics"))
	fmt.Printf("  Auctions:  %s\n", humanize.Comma(int64(resp.TotalAuctions)))
	fmt.Printf("  Matches:   %s\n", humanize.Comma(int64(resp.TotalMatches)))
	fmt.Printf("  Unmatched: %s\n", humanize.Comma(int64(resp.TotalUnmatched)))
	fmt.Printf("  Volume:    %s micro-tokens\n", humanize.Comma(int64(resp.TotalVolume)))
	if len(resp.MatchesByPrecision) > 0 {
		fmt.Printf("  By precision:\n")
		precisions := make([]string, 0, len(resp.MatchesByPrecision))
		for p := range resp.MatchesByPrecision {
			precisions = append(precisions, p)
		}
		sort.Strings(precisions)
		for _, p := range precisions {
			fmt.Printf("    %-5s %d\n", p, resp.MatchesByPrecision[p])
		}
	}
	if len(resp.MatchesByLane) > 0 {
		fmt.Printf("  By lane:\n")
		lanes := make([]int, 0, len(resp.MatchesByLane))
		for lane := range resp.MatchesByLane {
			lanes = append(lanes, int(lane))
		}
		sort.Ints(lanes)
		for _, lane := range lanes {
			fmt.Printf("    lane %d: %d\n", lane, resp.MatchesByLane[uint32(lane)])
		}
	}
	return nil
}

func walletInfo(cliCtx *cli.Context) error {
	path := cliCtx.String(walletFileFlag.Name)
	w, err := LoadWallet(path)
	if err != nil {
		return cli.Exit(err.Error()+". Run 'gix keygen' to create a wallet", 1)
	}
	loose, err := HasLoosePermissions(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if loose {
		log.Warnf("Wallet file %s is readable by other users, consider chmod 600", path)
	}
	fmt.Printf("%s %s\n", aurora.Bold("Public key:"), w.PublicKey)
	return nil
}

func dial(addr string, maxRecvSize int) (*grpc.ClientConn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return grpc.DialContext(ctx, addr, dialOpts(maxRecvSize)...)
}

// dialOpts builds the client dial options, capping response sizes at
// maxRecvSize when it is positive.
func dialOpts(maxRecvSize int) []grpc.DialOption {
	opts := []grpc.DialOption{
		grpc.WithInsecure(),
		grpc.WithBlock(),
	}
	if maxRecvSize > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxRecvSize)))
	}
	return opts
}
