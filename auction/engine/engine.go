// Package engine implements the GIX compute auction: candidate filtering,
// price discovery, route selection, and the durable commit of every
// auction outcome. One Engine instance owns the provider working set; all
// auctions on it serialize through a single commit mutex so utilization
// and counters never tear.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/gixlabs/gix/auction/db/iface"
	"github.com/gixlabs/gix/auction/types"
	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/params"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "auction")

// Auction failure modes. Callers match these with errors.Is.
var (
	// ErrNoMatch is returned when no provider supports the job's precision
	// with spare capacity.
	ErrNoMatch = errors.New("no provider matches job requirements")
	// ErrNoRoute is returned when the route set is empty.
	ErrNoRoute = errors.New("no route available")
)

// Precision multipliers as tenths, so pricing stays in exact integer
// arithmetic: INT8 1.0, E5M2 1.2, FP8 1.5, BF16 2.0.
var precisionMultTenths = map[gxf.PrecisionLevel]uint64{
	gxf.PrecisionINT8: 10,
	gxf.PrecisionE5M2: 12,
	gxf.PrecisionFP8:  15,
	gxf.PrecisionBF16: 20,
}

// Match is the outcome of a successful auction.
type Match struct {
	JobID     gxf.JobID  `json:"job_id"`
	SlpID     gxf.SlpID  `json:"slp_id"`
	LaneID    gxf.LaneID `json:"lane_id"`
	Price     uint64     `json:"price"`
	RoutePath []string   `json:"route_path"`
}

// Config options for the auction engine.
type Config struct {
	Database iface.Database
	// Seed is applied to empty provider and route partitions on
	// construction. Nil selects the built-in seed set.
	Seed *params.SeedConfig
}

// Engine matches jobs to providers and records every outcome durably. The
// provider and route working sets live in memory in first-write order and
// are written through to the store on each commit.
type Engine struct {
	lock      sync.Mutex
	db        iface.Database
	providers []*types.ComputeProvider
	routes    []*types.Route
	stats     *types.AuctionStats
}

// New loads the engine working set from the store, seeding empty
// partitions first.
func New(ctx context.Context, cfg *Config) (*Engine, error) {
	if cfg == nil || cfg.Database == nil {
		return nil, errors.New("auction engine requires a database")
	}
	e := &Engine{db: cfg.Database}

	seed := cfg.Seed
	if seed == nil {
		seed = params.DefaultSeedConfig()
	}
	if err := e.seedIfEmpty(ctx, seed); err != nil {
		return nil, errors.Wrap(err, "could not seed auction store")
	}

	providers, err := e.db.Providers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load providers")
	}
	routes, err := e.db.Routes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load routes")
	}
	stats, err := e.db.AuctionStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load auction stats")
	}
	e.providers = providers
	e.routes = routes
	e.stats = stats

	for _, p := range e.providers {
		providerUtilizationGauge.WithLabelValues(string(p.SlpID)).Set(float64(p.Utilization))
	}
	log.WithFields(logrus.Fields{
		"providers": len(e.providers),
		"routes":    len(e.routes),
	}).Info("Auction engine initialized")
	return e, nil
}

// seedIfEmpty writes the seed providers and routes into whichever
// partitions are empty. A store that already holds providers keeps them
// untouched, so restarts never reset utilization.
func (e *Engine) seedIfEmpty(ctx context.Context, seed *params.SeedConfig) error {
	existing, err := e.db.Providers(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		providers := make([]*types.ComputeProvider, 0, len(seed.Providers))
		for _, sp := range seed.Providers {
			precisions := make([]gxf.PrecisionLevel, 0, len(sp.SupportedPrecisions))
			for _, raw := range sp.SupportedPrecisions {
				p, err := gxf.ParsePrecision(raw)
				if err != nil {
					return err
				}
				precisions = append(precisions, p)
			}
			providers = append(providers, &types.ComputeProvider{
				SlpID:               gxf.SlpID(sp.SlpID),
				SupportedPrecisions: precisions,
				BasePrice:           sp.BasePrice,
				Capacity:            sp.Capacity,
				Utilization:         sp.Utilization,
				Region:              sp.Region,
			})
		}
		if err := e.db.SaveProviders(ctx, providers); err != nil {
			return err
		}
		log.WithField("count", len(providers)).Info("Seeded provider set")
	}

	existingRoutes, err := e.db.Routes(ctx)
	if err != nil {
		return err
	}
	if len(existingRoutes) == 0 {
		routes := make([]*types.Route, 0, len(seed.Routes))
		for _, sr := range seed.Routes {
			routes = append(routes, &types.Route{
				ID:        sr.ID,
				LaneID:    gxf.LaneID(sr.LaneID),
				Path:      append([]string(nil), sr.Path...),
				LatencyMs: sr.LatencyMs,
				Cost:      sr.Cost,
			})
		}
		if err := e.db.SaveRoutes(ctx, routes); err != nil {
			return err
		}
		log.WithField("count", len(routes)).Info("Seeded route set")
	}
	return nil
}

// price computes the micro-token price of job j on provider p. All four
// steps floor exactly: the multiplier table is carried in tenths and the
// utilization factor 1 + util/(2*cap) as the ratio (2*cap+util)/(2*cap),
// so no step leaves integer arithmetic.
func price(p *types.ComputeProvider, j *gxf.Job) uint64 {
	price0 := p.BasePrice + 10*uint64(j.KVCacheSeqLen)
	price1 := price0 * precisionMultTenths[j.Precision] / 10
	return price1 * uint64(2*p.Capacity+p.Utilization) / uint64(2*p.Capacity)
}

// RunAuction matches the job to the cheapest capable provider, picks a
// route for the priority's lane, and commits the outcome durably. Failed
// auctions still bump the durable counters before returning ErrNoMatch or
// ErrNoRoute.
func (e *Engine) RunAuction(ctx context.Context, job *gxf.Job, priority uint8) (*Match, error) {
	ctx, span := trace.StartSpan(ctx, "auction.RunAuction")
	defer span.End()

	if err := job.Validate(); err != nil {
		return nil, err
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	auctionsTotal.Inc()

	// Candidate set: supported precision with spare capacity, in
	// first-write order.
	var best *types.ComputeProvider
	var bestPrice uint64
	for _, p := range e.providers {
		if !p.CanHandle(job) {
			continue
		}
		cost := price(p, job)
		if best == nil || cost < bestPrice {
			best = p
			bestPrice = cost
		}
	}
	if best == nil {
		unmatchedTotal.Inc()
		e.stats.TotalAuctions++
		e.stats.TotalUnmatched++
		if err := e.persistStats(ctx); err != nil {
			return nil, err
		}
		return nil, errors.Wrapf(ErrNoMatch, "precision %s", job.Precision)
	}

	route, err := e.selectRoute(priority)
	if err != nil {
		e.stats.TotalAuctions++
		if persistErr := e.persistStats(ctx); persistErr != nil {
			return nil, persistErr
		}
		return nil, err
	}

	// Commit.
	best.Utilization++
	e.stats.TotalAuctions++
	e.stats.TotalMatches++
	e.stats.TotalVolume += bestPrice
	e.stats.MatchesByPrecision[job.Precision]++
	e.stats.MatchesByLane[route.LaneID]++

	if err := e.db.SaveProvider(ctx, best); err != nil {
		return nil, errors.Wrap(err, "could not persist provider")
	}
	if err := e.persistStats(ctx); err != nil {
		return nil, err
	}

	matchesTotal.Inc()
	volumeTotal.Add(float64(bestPrice))
	providerUtilizationGauge.WithLabelValues(string(best.SlpID)).Set(float64(best.Utilization))

	match := &Match{
		JobID:     job.JobID,
		SlpID:     best.SlpID,
		LaneID:    route.LaneID,
		Price:     bestPrice,
		RoutePath: append([]string(nil), route.Path...),
	}
	log.WithFields(logrus.Fields{
		"jobID":  job.JobID,
		"slpID":  match.SlpID,
		"laneID": match.LaneID,
		"price":  match.Price,
	}).Debug("Auction matched")
	return match, nil
}

// selectRoute picks the minimum-score route on the priority's primary
// lane, falling back to the global minimum when the primary lane has no
// routes. Ties keep the earliest-inserted route. Callers hold the lock.
func (e *Engine) selectRoute(priority uint8) (*types.Route, error) {
	if len(e.routes) == 0 {
		return nil, ErrNoRoute
	}
	primary := gxf.LaneDeep
	if gxf.BandOf(priority) >= gxf.PriorityHigh {
		primary = gxf.LaneFlash
	}
	var best *types.Route
	for _, r := range e.routes {
		if r.LaneID != primary {
			continue
		}
		if best == nil || r.Score() < best.Score() {
			best = r
		}
	}
	if best == nil {
		for _, r := range e.routes {
			if best == nil || r.Score() < best.Score() {
				best = r
			}
		}
	}
	return best, nil
}

// persistStats writes the counters through and syncs the store. Callers
// hold the lock.
func (e *Engine) persistStats(ctx context.Context) error {
	if err := e.db.SaveAuctionStats(ctx, e.stats); err != nil {
		return errors.Wrap(err, "could not persist auction stats")
	}
	if err := e.db.Flush(); err != nil {
		return errors.Wrap(err, "could not flush auction store")
	}
	return nil
}

// ProcessEnvelope is the envelope entry path into the auction: it
// validates the envelope, rejects expired ones, and runs the auction on
// the enclosed job at the envelope's priority.
func (e *Engine) ProcessEnvelope(ctx context.Context, env *gxf.Envelope) (*Match, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if env.Meta.ExpiredAt(time.Now()) {
		return nil, gxf.ErrExpired
	}
	job, err := env.Job()
	if err != nil {
		return nil, err
	}
	return e.RunAuction(ctx, job, env.Meta.Priority)
}

// Stats returns a snapshot of the durable auction counters.
func (e *Engine) Stats() *types.AuctionStats {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.stats.Copy()
}

// Providers returns a snapshot of the provider working set in first-write
// order.
func (e *Engine) Providers() []*types.ComputeProvider {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := make([]*types.ComputeProvider, 0, len(e.providers))
	for _, p := range e.providers {
		out = append(out, p.Copy())
	}
	return out
}

// Flush forces a synchronous snapshot of providers and stats to stable
// storage.
func (e *Engine) Flush(ctx context.Context) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if err := e.db.SaveProviders(ctx, e.providers); err != nil {
		return errors.Wrap(err, "could not persist providers")
	}
	return e.persistStats(ctx)
}
