// Package executor implements the GSEE runtime core: the compliance gate
// that every job must clear and the simulated execution that follows.
// Compliance checks run in a fixed order and the first violation stops the
// job before any execution side effect.
package executor

import (
	"context"
	"sync"
	"time"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/gcrypto"
	"github.com/gixlabs/gix/shared/params"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "executor")

// Violation names one compliance rule a job can break.
type Violation string

const (
	ViolationPrecision Violation = "precision"
	ViolationShape     Violation = "shape"
	ViolationResidency Violation = "residency"
)

// ComplianceError reports which rule a job broke and why. Jobs that fail
// compliance never execute.
type ComplianceError struct {
	Violation Violation
	Reason    string
}

func (e *ComplianceError) Error() string {
	return string(e.Violation) + " violation: " + e.Reason
}

// IsComplianceError reports whether err is a compliance rejection.
func IsComplianceError(err error) bool {
	var ce *ComplianceError
	return errors.As(err, &ce)
}

// Status of one executed job.
type Status uint8

const (
	StatusCompleted Status = iota
	StatusFailed
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "rejected"
	}
}

// Result of one simulated execution.
type Result struct {
	JobID      gxf.JobID
	Status     Status
	Duration   time.Duration
	OutputHash [gcrypto.DigestLength]byte
}

// ShapeRequirements bound the tensor shapes a job may request.
type ShapeRequirements struct {
	MaxSequenceLength uint32
	MaxBatchSize      uint32
}

// ResidencyRequirements bound where a job may claim to run.
type ResidencyRequirements struct {
	AllowedRegions    []string
	RequiredResidency string
}

// Policy is the full compliance policy of a runtime.
type Policy struct {
	SupportedPrecisions []gxf.PrecisionLevel
	Shape               ShapeRequirements
	Residency           ResidencyRequirements
}

// DefaultPolicy builds the policy from the network config.
func DefaultPolicy() *Policy {
	cfg := params.GixNetworkConfig()
	return &Policy{
		SupportedPrecisions: gxf.Precisions(),
		Shape: ShapeRequirements{
			MaxSequenceLength: cfg.MaxSequenceLength,
			MaxBatchSize:      cfg.MaxBatchSize,
		},
		Residency: ResidencyRequirements{
			AllowedRegions:    append([]string(nil), cfg.AllowedRegions...),
			RequiredResidency: cfg.RequiredResidency,
		},
	}
}

// Stats holds the monotonic runtime counters.
type Stats struct {
	TotalExecuted   uint64
	TotalCompleted  uint64
	TotalFailed     uint64
	TotalRejected   uint64
	JobsByPrecision map[gxf.PrecisionLevel]uint64
}

// Executor runs jobs through the compliance gate and the simulated
// execution path. Safe for concurrent use.
type Executor struct {
	lock   sync.Mutex
	policy *Policy
	stats  Stats
}

// New returns an executor enforcing the given policy. A nil policy selects
// the network defaults.
func New(policy *Policy) *Executor {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Executor{
		policy: policy,
		stats: Stats{
			JobsByPrecision: make(map[gxf.PrecisionLevel]uint64),
		},
	}
}

// ExecuteEnvelope validates the envelope, clears the job through the
// compliance gate, and performs the simulated execution. Compliance
// failures bump total_rejected and surface as *ComplianceError with no
// Result. The sleep honors ctx cancellation.
func (e *Executor) ExecuteEnvelope(ctx context.Context, env *gxf.Envelope) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, "executor.ExecuteEnvelope")
	defer span.End()

	if err := env.Validate(); err != nil {
		return nil, err
	}
	if env.Meta.Expired() {
		return nil, gxf.ErrExpired
	}
	job, err := env.Job()
	if err != nil {
		return nil, err
	}

	if err := e.checkCompliance(job); err != nil {
		e.lock.Lock()
		e.stats.TotalRejected++
		e.lock.Unlock()
		jobsRejectedTotal.WithLabelValues(string(err.Violation)).Inc()
		log.WithFields(logrus.Fields{
			"jobID":     job.JobID,
			"violation": err.Violation,
		}).Debug("Job rejected by compliance gate")
		return nil, err
	}

	e.lock.Lock()
	e.stats.TotalExecuted++
	e.stats.JobsByPrecision[job.Precision]++
	e.lock.Unlock()
	jobsExecutedTotal.WithLabelValues(string(job.Precision)).Inc()

	duration := executionDuration(job.KVCacheSeqLen)
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		e.lock.Lock()
		e.stats.TotalFailed++
		e.lock.Unlock()
		return nil, ctx.Err()
	case <-timer.C:
	}

	e.lock.Lock()
	e.stats.TotalCompleted++
	e.lock.Unlock()
	executionDurationMs.Observe(float64(duration.Milliseconds()))

	return &Result{
		JobID:      job.JobID,
		Status:     StatusCompleted,
		Duration:   duration,
		OutputHash: gcrypto.Hash(job.JobID.Bytes()),
	}, nil
}

// executionDuration models the work a job represents:
// ceil(seq_len/1000) + 10 milliseconds.
func executionDuration(seqLen uint32) time.Duration {
	ms := (uint64(seqLen)+999)/1000 + 10
	return time.Duration(ms) * time.Millisecond
}

// checkCompliance runs the gate in fixed order: precision, then shape,
// then residency. The first violation wins.
func (e *Executor) checkCompliance(job *gxf.Job) *ComplianceError {
	if !job.Precision.Valid() || !e.supports(job.Precision) {
		return &ComplianceError{
			Violation: ViolationPrecision,
			Reason:    "precision " + string(job.Precision) + " not supported",
		}
	}

	if job.KVCacheSeqLen > e.policy.Shape.MaxSequenceLength {
		return &ComplianceError{
			Violation: ViolationShape,
			Reason:    "kv_cache_seq_len exceeds maximum",
		}
	}
	// Unparsable batch_size values pass through the gate.
	if batchSize, ok := job.BatchSize(); ok && batchSize > e.policy.Shape.MaxBatchSize {
		return &ComplianceError{
			Violation: ViolationShape,
			Reason:    "batch_size exceeds maximum",
		}
	}

	if region, ok := job.Region(); ok && !e.regionAllowed(region) {
		return &ComplianceError{
			Violation: ViolationResidency,
			Reason:    "region " + region + " not allowed",
		}
	}
	if required := e.policy.Residency.RequiredResidency; required != "" {
		residency, ok := job.Residency()
		if !ok || residency != required {
			return &ComplianceError{
				Violation: ViolationResidency,
				Reason:    "residency " + required + " required",
			}
		}
	}
	return nil
}

func (e *Executor) supports(precision gxf.PrecisionLevel) bool {
	for _, p := range e.policy.SupportedPrecisions {
		if p == precision {
			return true
		}
	}
	return false
}

func (e *Executor) regionAllowed(region string) bool {
	for _, allowed := range e.policy.Residency.AllowedRegions {
		if allowed == region {
			return true
		}
	}
	return false
}

// Stats returns a snapshot of the runtime counters.
func (e *Executor) Stats() Stats {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := e.stats
	out.JobsByPrecision = make(map[gxf.PrecisionLevel]uint64, len(e.stats.JobsByPrecision))
	for k, v := range e.stats.JobsByPrecision {
		out.JobsByPrecision[k] = v
	}
	return out
}
