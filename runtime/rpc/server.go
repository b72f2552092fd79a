package rpc

import (
	"context"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/runtime/executor"
)

// Server implements gix.v1.ExecutionServiceServer over the execution core.
// Failures are reported in the response body: success=false plus a
// human-readable error string, matching the wire contract of every GIX
// daemon. Compliance rejections additionally carry the REJECTED status.
type Server struct {
	executor Backend
}

// ExecuteJob decodes and executes one envelope.
func (s *Server) ExecuteJob(ctx context.Context, req *gixv1.ExecuteJobRequest) (*gixv1.ExecuteJobResponse, error) {
	env, err := gxf.Unmarshal(req.GetEnvelopeData())
	if err != nil {
		return &gixv1.ExecuteJobResponse{Success: false, Error: err.Error()}, nil
	}
	result, err := s.executor.ExecuteEnvelope(ctx, env)
	if err != nil {
		log.WithError(err).Debug("Job not executed")
		resp := &gixv1.ExecuteJobResponse{Success: false, Error: err.Error()}
		if executor.IsComplianceError(err) {
			resp.Status = gixv1.ExecutionStatus_REJECTED
		} else {
			resp.Status = gixv1.ExecutionStatus_FAILED
		}
		return resp, nil
	}
	return &gixv1.ExecuteJobResponse{
		JobId:      result.JobID.Bytes(),
		Status:     gixv1.ExecutionStatus_COMPLETED,
		DurationMs: uint64(result.Duration.Milliseconds()),
		OutputHash: result.OutputHash[:],
		Success:    true,
	}, nil
}

// GetRuntimeStats returns the execution counters.
func (s *Server) GetRuntimeStats(_ context.Context, _ *gixv1.RuntimeStatsRequest) (*gixv1.RuntimeStatsResponse, error) {
	stats := s.executor.Stats()
	byPrecision := make(map[string]uint64, len(stats.JobsByPrecision))
	for precision, count := range stats.JobsByPrecision {
		byPrecision[string(precision)] = count
	}
	return &gixv1.RuntimeStatsResponse{
		TotalExecuted:   stats.TotalExecuted,
		TotalCompleted:  stats.TotalCompleted,
		TotalFailed:     stats.TotalFailed,
		TotalRejected:   stats.TotalRejected,
		JobsByPrecision: byPrecision,
	}, nil
}
