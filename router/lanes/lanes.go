// Package lanes implements the AJR routing core: deterministic lane
// selection by priority with per-lane capacity budgets. Lane counters track
// cumulative admittance and never decrement; a completion signal is not part
// of the routing contract.
package lanes

import (
	"context"
	"sync"
	"time"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/params"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "lanes")

// ErrAllLanesAtCapacity is returned when neither the primary lane nor any
// fallback lane has spare capacity.
var ErrAllLanesAtCapacity = errors.New("all lanes at capacity")

var (
	envelopesRoutedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gix_router_envelopes_routed_total",
		Help: "Total envelopes admitted, by lane.",
	}, []string{"lane"})
	laneActiveJobs = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gix_router_lane_active_jobs",
		Help: "Jobs admitted to each lane.",
	}, []string{"lane"})
	routingFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gix_router_routing_failures_total",
		Help: "Envelopes rejected by the router, by reason.",
	}, []string{"reason"})
)

// Config describes one lane.
type Config struct {
	ID       gxf.LaneID
	Name     string
	Capacity uint64
}

// DefaultLanes returns the lane set of the active network config.
func DefaultLanes() []Config {
	netCfg := params.GixNetworkConfig()
	cfgs := make([]Config, 0, len(netCfg.Lanes))
	for _, l := range netCfg.Lanes {
		cfgs = append(cfgs, Config{ID: gxf.LaneID(l.ID), Name: l.Name, Capacity: l.Capacity})
	}
	return cfgs
}

type lane struct {
	cfg        Config
	activeJobs uint64
	routed     uint64
}

// Router holds the in-memory lane state. All state lives for the process
// lifetime only.
type Router struct {
	lock        sync.Mutex
	lanes       []*lane
	totalRouted uint64
}

// Stats is a point-in-time snapshot of the router counters.
type Stats struct {
	TotalRouted uint64
	LaneStats   map[gxf.LaneID]uint64
	ActiveJobs  map[gxf.LaneID]uint64
}

// New builds a router over the given lanes. Lane ids must be unique.
func New(cfgs []Config) (*Router, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("at least one lane is required")
	}
	seen := make(map[gxf.LaneID]bool, len(cfgs))
	ls := make([]*lane, 0, len(cfgs))
	for _, cfg := range cfgs {
		if seen[cfg.ID] {
			return nil, errors.Errorf("duplicate lane id %d", cfg.ID)
		}
		if cfg.Capacity == 0 {
			return nil, errors.Errorf("lane %d must have capacity > 0", cfg.ID)
		}
		seen[cfg.ID] = true
		ls = append(ls, &lane{cfg: cfg})
		laneActiveJobs.WithLabelValues(cfg.Name).Set(0)
	}
	return &Router{lanes: ls}, nil
}

// RouteEnvelope validates env, selects a lane by priority, and commits the
// admittance counters. The capacity check and the increment run under one
// critical section so a commit always observes the capacity it decided on.
func (r *Router) RouteEnvelope(ctx context.Context, env *gxf.Envelope) (gxf.LaneID, error) {
	_, span := trace.StartSpan(ctx, "lanes.RouteEnvelope")
	defer span.End()

	if err := env.Validate(); err != nil {
		if errors.Is(err, gxf.ErrExpired) {
			routingFailuresTotal.WithLabelValues("expired").Inc()
			return 0, err
		}
		routingFailuresTotal.WithLabelValues("invalid_envelope").Inc()
		return 0, err
	}
	if env.Meta.ExpiredAt(time.Now()) {
		routingFailuresTotal.WithLabelValues("expired").Inc()
		return 0, errors.Wrap(gxf.ErrExpired, "envelope expired at routing time")
	}
	// Envelopes are re-parsed on every hop; the payload is the contract.
	job, err := env.Job()
	if err != nil {
		routingFailuresTotal.WithLabelValues("invalid_payload").Inc()
		return 0, err
	}
	if err := job.Validate(); err != nil {
		routingFailuresTotal.WithLabelValues("invalid_job").Inc()
		return 0, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	chosen := r.selectLane(env.Meta.Priority)
	if chosen == nil {
		routingFailuresTotal.WithLabelValues("at_capacity").Inc()
		return 0, ErrAllLanesAtCapacity
	}

	chosen.activeJobs++
	chosen.routed++
	r.totalRouted++
	envelopesRoutedTotal.WithLabelValues(chosen.cfg.Name).Inc()
	laneActiveJobs.WithLabelValues(chosen.cfg.Name).Set(float64(chosen.activeJobs))

	log.WithFields(logrus.Fields{
		"jobId":    job.JobID,
		"lane":     chosen.cfg.Name,
		"priority": env.Meta.Priority,
	}).Debug("Envelope routed")
	return chosen.cfg.ID, nil
}

// selectLane picks the primary lane for the priority, falling back to the
// remaining lanes in id order. Callers must hold r.lock.
func (r *Router) selectLane(priority uint8) *lane {
	primary := gxf.LaneDeep
	if gxf.BandOf(priority) >= gxf.PriorityHigh {
		primary = gxf.LaneFlash
	}
	if l := r.lane(primary); l != nil && l.activeJobs < l.cfg.Capacity {
		return l
	}
	for _, l := range r.lanes {
		if l.cfg.ID == primary {
			continue
		}
		if l.activeJobs < l.cfg.Capacity {
			return l
		}
	}
	return nil
}

func (r *Router) lane(id gxf.LaneID) *lane {
	for _, l := range r.lanes {
		if l.cfg.ID == id {
			return l
		}
	}
	return nil
}

// Stats returns a snapshot of the routing counters.
func (r *Router) Stats() Stats {
	r.lock.Lock()
	defer r.lock.Unlock()

	s := Stats{
		TotalRouted: r.totalRouted,
		LaneStats:   make(map[gxf.LaneID]uint64, len(r.lanes)),
		ActiveJobs:  make(map[gxf.LaneID]uint64, len(r.lanes)),
	}
	for _, l := range r.lanes {
		s.LaneStats[l.cfg.ID] = l.routed
		s.ActiveJobs[l.cfg.ID] = l.activeJobs
	}
	return s
}
