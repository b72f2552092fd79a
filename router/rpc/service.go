// Package rpc defines the gix.v1.RouterService server exposed by the AJR
// daemon.
package rpc

import (
	"context"
	"fmt"
	"net"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/router/lanes"
	"github.com/gixlabs/gix/shared/tracing"
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/plugin/ocgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"
)

var log = logrus.WithField("prefix", "rpc")

// Backend is the routing core the RPC surface fronts.
type Backend interface {
	RouteEnvelope(ctx context.Context, env *gxf.Envelope) (gxf.LaneID, error)
	Stats() lanes.Stats
}

// Config options for the router RPC server.
type Config struct {
	Host     string
	Port     string
	CertFlag string
	KeyFlag  string
	Router   Backend
}

// Service defining an RPC server for the router daemon.
type Service struct {
	ctx             context.Context
	cancel          context.CancelFunc
	cfg             *Config
	listener        net.Listener
	grpcServer      *grpc.Server
	credentialError error
}

// NewService creates a new instance of a struct implementing the
// gix.v1.RouterService interface.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
	}
}

// Start the gRPC server.
func (s *Service) Start() {
	address := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		log.Errorf("Could not listen to port in Start() %s: %v", address, err)
		return
	}
	s.listener = lis
	log.WithField("address", address).Info("RPC server listening on address")

	opts := []grpc.ServerOption{
		grpc.StatsHandler(&ocgrpc.ServerHandler{}),
		grpc.UnaryInterceptor(middleware.ChainUnaryServer(
			recovery.UnaryServerInterceptor(
				recovery.WithRecoveryHandlerContext(tracing.RecoveryHandlerFunc),
			),
			grpc_prometheus.UnaryServerInterceptor,
		)),
	}
	grpc_prometheus.EnableHandlingTimeHistogram()

	if s.cfg.CertFlag != "" && s.cfg.KeyFlag != "" {
		creds, err := credentials.NewServerTLSFromFile(s.cfg.CertFlag, s.cfg.KeyFlag)
		if err != nil {
			log.Errorf("Could not load TLS keys: %s", err)
			s.credentialError = err
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		log.Warn("You are using an insecure gRPC server. If you are running your router and " +
			"clients on the same machines, this is acceptable. Otherwise " +
			"we recommend distributing keys and certificates for secure connections.")
	}
	s.grpcServer = grpc.NewServer(opts...)

	gixv1.RegisterRouterServiceServer(s.grpcServer, &Server{router: s.cfg.Router})
	reflection.Register(s.grpcServer)

	go func() {
		if s.listener != nil {
			if err := s.grpcServer.Serve(s.listener); err != nil {
				log.Errorf("Could not serve gRPC: %v", err)
			}
		}
	}()
}

// Stop the service.
func (s *Service) Stop() error {
	s.cancel()
	if s.listener != nil {
		s.grpcServer.GracefulStop()
		log.Debug("Initiated graceful stop of gRPC server")
	}
	return nil
}

// Status returns nil or credentialError.
func (s *Service) Status() error {
	if s.credentialError != nil {
		return s.credentialError
	}
	return nil
}
