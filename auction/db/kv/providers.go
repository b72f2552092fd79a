package kv

import (
	"context"
	"encoding/binary"

	"github.com/gixlabs/gix/auction/types"
	"github.com/gixlabs/gix/gxf"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// Provider retrieves a single provider by its pool id. Returns nil with no
// error when the provider does not exist.
func (s *Store) Provider(ctx context.Context, slpID gxf.SlpID) (*types.ComputeProvider, error) {
	ctx, span := trace.StartSpan(ctx, "auctionDB.Provider")
	defer span.End()
	var provider *types.ComputeProvider
	err := s.db.View(func(tx *bolt.Tx) error {
		enc := tx.Bucket(providersBucket).Get([]byte(slpID))
		if enc == nil {
			return nil
		}
		provider = &types.ComputeProvider{}
		return decode(enc, provider)
	})
	return provider, err
}

// Providers retrieves every provider in first-write order. The ordering is
// stable across process restarts.
func (s *Store) Providers(ctx context.Context) ([]*types.ComputeProvider, error) {
	ctx, span := trace.StartSpan(ctx, "auctionDB.Providers")
	defer span.End()
	var providers []*types.ComputeProvider
	err := s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(providersBucket)
		c := tx.Bucket(providerSeqBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			enc := bkt.Get(v)
			if enc == nil {
				return errors.Errorf("provider index entry %q has no record", v)
			}
			provider := &types.ComputeProvider{}
			if err := decode(enc, provider); err != nil {
				return err
			}
			providers = append(providers, provider)
		}
		return nil
	})
	return providers, err
}

// SaveProvider upserts a provider. First writes take a sequence slot for
// ordered listing, updates keep the original slot.
func (s *Store) SaveProvider(ctx context.Context, provider *types.ComputeProvider) error {
	ctx, span := trace.StartSpan(ctx, "auctionDB.SaveProvider")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		return saveProvider(tx, provider)
	})
}

// SaveProviders upserts the given providers in one transaction, preserving
// slice order for first writes.
func (s *Store) SaveProviders(ctx context.Context, providers []*types.ComputeProvider) error {
	ctx, span := trace.StartSpan(ctx, "auctionDB.SaveProviders")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, provider := range providers {
			if err := saveProvider(tx, provider); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveProvider(tx *bolt.Tx, provider *types.ComputeProvider) error {
	if provider == nil || provider.SlpID == "" {
		return errors.New("cannot save nil or unidentified provider")
	}
	enc, err := encode(provider)
	if err != nil {
		return err
	}
	bkt := tx.Bucket(providersBucket)
	key := []byte(provider.SlpID)
	if bkt.Get(key) == nil {
		if err := appendSeqIndex(tx.Bucket(providerSeqBucket), key); err != nil {
			return err
		}
	}
	return bkt.Put(key, enc)
}

// appendSeqIndex records the primary key under the next monotone sequence
// number of the index bucket.
func appendSeqIndex(seqBkt *bolt.Bucket, key []byte) error {
	seq, err := seqBkt.NextSequence()
	if err != nil {
		return err
	}
	seqKey := make([]byte, 8)
	binary.BigEndian.PutUint64(seqKey, seq)
	return seqBkt.Put(seqKey, key)
}
