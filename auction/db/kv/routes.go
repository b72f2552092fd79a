package kv

import (
	"context"

	"github.com/gixlabs/gix/auction/types"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// Routes retrieves every route in first-write order. The ordering is stable
// across process restarts.
func (s *Store) Routes(ctx context.Context) ([]*types.Route, error) {
	ctx, span := trace.StartSpan(ctx, "auctionDB.Routes")
	defer span.End()
	var routes []*types.Route
	err := s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(routesBucket)
		c := tx.Bucket(routeSeqBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			enc := bkt.Get(v)
			if enc == nil {
				return errors.Errorf("route index entry %q has no record", v)
			}
			route := &types.Route{}
			if err := decode(enc, route); err != nil {
				return err
			}
			routes = append(routes, route)
		}
		return nil
	})
	return routes, err
}

// SaveRoute upserts a route. First writes take a sequence slot for ordered
// listing, updates keep the original slot.
func (s *Store) SaveRoute(ctx context.Context, route *types.Route) error {
	ctx, span := trace.StartSpan(ctx, "auctionDB.SaveRoute")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		return saveRoute(tx, route)
	})
}

// SaveRoutes upserts the given routes in one transaction, preserving slice
// order for first writes.
func (s *Store) SaveRoutes(ctx context.Context, routes []*types.Route) error {
	ctx, span := trace.StartSpan(ctx, "auctionDB.SaveRoutes")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, route := range routes {
			if err := saveRoute(tx, route); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveRoute(tx *bolt.Tx, route *types.Route) error {
	if route == nil || route.ID == "" {
		return errors.New("cannot save nil or unidentified route")
	}
	enc, err := encode(route)
	if err != nil {
		return err
	}
	bkt := tx.Bucket(routesBucket)
	key := []byte(route.ID)
	if bkt.Get(key) == nil {
		if err := appendSeqIndex(tx.Bucket(routeSeqBucket), key); err != nil {
			return err
		}
	}
	return bkt.Put(key, enc)
}
