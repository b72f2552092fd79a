// Package iface defines the storage interface of the auction daemon so the
// engine does not depend on the concrete key-value implementation.
package iface

import (
	"context"
	"io"

	"github.com/gixlabs/gix/auction/types"
	"github.com/gixlabs/gix/gxf"
)

// ReadOnlyDatabase exposes the read paths of the auction store.
type ReadOnlyDatabase interface {
	Provider(ctx context.Context, slpID gxf.SlpID) (*types.ComputeProvider, error)
	// Providers returns every provider in first-write (insertion) order.
	Providers(ctx context.Context) ([]*types.ComputeProvider, error)
	// Routes returns every route in first-write (insertion) order.
	Routes(ctx context.Context) ([]*types.Route, error)
	AuctionStats(ctx context.Context) (*types.AuctionStats, error)
	DatabasePath() string
}

// Database is the full auction storage interface.
type Database interface {
	ReadOnlyDatabase
	io.Closer
	SaveProvider(ctx context.Context, provider *types.ComputeProvider) error
	SaveProviders(ctx context.Context, providers []*types.ComputeProvider) error
	SaveRoute(ctx context.Context, route *types.Route) error
	SaveRoutes(ctx context.Context, routes []*types.Route) error
	SaveAuctionStats(ctx context.Context, stats *types.AuctionStats) error
	// Flush forces a synchronous sync of the store to stable storage.
	Flush() error
	ClearDB() error
}
