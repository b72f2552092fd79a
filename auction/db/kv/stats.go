package kv

import (
	"context"

	"github.com/gixlabs/gix/auction/types"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// AuctionStats retrieves the durable auction counters. A fresh database
// yields zeroed counters rather than an error.
func (s *Store) AuctionStats(ctx context.Context) (*types.AuctionStats, error) {
	ctx, span := trace.StartSpan(ctx, "auctionDB.AuctionStats")
	defer span.End()
	stats := types.NewAuctionStats()
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(statsBucket).Get(statsKey)
		if enc == nil {
			return nil
		}
		return decode(enc, stats)
	})
	return stats, err
}

// SaveAuctionStats overwrites the durable auction counters.
func (s *Store) SaveAuctionStats(ctx context.Context, stats *types.AuctionStats) error {
	ctx, span := trace.StartSpan(ctx, "auctionDB.SaveAuctionStats")
	defer span.End()
	enc, err := encode(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(statsBucket).Put(statsKey, enc)
	})
}
