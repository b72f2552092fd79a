package executor

import (
	"context"
	"testing"
	"time"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/gcrypto"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func wrap(t *testing.T, job *gxf.Job) *gxf.Envelope {
	env, err := gxf.WrapJob(job, 100, 300*time.Second)
	require.NoError(t, err)
	return env
}

func TestExecuteEnvelope_Completed(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionFP8, 1024)

	start := time.Now()
	result, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.NoError(t, err)
	elapsed := time.Since(start)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, job.JobID, result.JobID)
	// ceil(1024/1000) + 10 = 12ms.
	assert.Equal(t, 12*time.Millisecond, result.Duration)
	if elapsed < result.Duration {
		t.Errorf("Execution returned after %v, before the simulated duration %v", elapsed, result.Duration)
	}
	assert.Equal(t, gcrypto.Hash(job.JobID.Bytes()), result.OutputHash)

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalExecuted)
	assert.Equal(t, uint64(1), stats.TotalCompleted)
	assert.Equal(t, uint64(0), stats.TotalRejected)
	assert.Equal(t, uint64(1), stats.JobsByPrecision[gxf.PrecisionFP8])
}

func TestExecuteEnvelope_ShapeViolation(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionFP8, 10000)

	_, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.NotNil(t, err)
	if !IsComplianceError(err) {
		t.Fatalf("Expected compliance error, got %v", err)
	}
	require.ErrorContains(t, "shape violation", err)

	// A rejected job must not touch the execution counters.
	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalRejected)
	assert.Equal(t, uint64(0), stats.TotalExecuted)
	assert.Equal(t, uint64(0), stats.TotalCompleted)
}

func TestExecuteEnvelope_BatchSizeViolation(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionINT8, 512)
	job.SetParameter(gxf.ParamBatchSize, "64")

	_, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.ErrorContains(t, "batch_size exceeds maximum", err)
}

func TestExecuteEnvelope_UnparsableBatchSizeIgnored(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionINT8, 512)
	job.SetParameter(gxf.ParamBatchSize, "not-a-number")

	result, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, result.Status)
}

func TestExecuteEnvelope_ResidencyViolation(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 512)
	job.SetParameter(gxf.ParamRegion, "APAC")

	_, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.ErrorContains(t, "region APAC not allowed", err)

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalRejected)
}

func TestExecuteEnvelope_RequiredResidency(t *testing.T) {
	policy := DefaultPolicy()
	policy.Residency.RequiredResidency = "EU"
	e := New(policy)

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 512)
	_, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.ErrorContains(t, "residency EU required", err)

	job.SetParameter(gxf.ParamResidency, "EU")
	result, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, result.Status)
}

func TestExecuteEnvelope_PrecisionBeforeShape(t *testing.T) {
	policy := DefaultPolicy()
	policy.SupportedPrecisions = []gxf.PrecisionLevel{gxf.PrecisionINT8}
	e := New(policy)

	// Breaks both the precision and the shape rules; the gate reports the
	// precision violation because it runs first.
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 10000)
	_, err := e.ExecuteEnvelope(context.Background(), wrap(t, job))
	require.ErrorContains(t, "precision violation", err)

	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalRejected)
}

func TestExecuteEnvelope_Expired(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionFP8, 512)
	env, err := gxf.NewEnvelope(job, 100)
	require.NoError(t, err)
	env.Meta.CreatedAt = 1000
	expiresAt := uint64(1001)
	env.Meta.ExpiresAt = &expiresAt

	_, err = e.ExecuteEnvelope(context.Background(), env)
	require.ErrorIs(t, err, gxf.ErrExpired)

	stats := e.Stats()
	assert.Equal(t, uint64(0), stats.TotalRejected)
	assert.Equal(t, uint64(0), stats.TotalExecuted)
}

func TestExecuteEnvelope_Cancellation(t *testing.T) {
	e := New(nil)
	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionFP8, 8192)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.ExecuteEnvelope(ctx, wrap(t, job))
	require.ErrorIs(t, err, context.Canceled)

	// The job entered execution but never completed.
	stats := e.Stats()
	assert.Equal(t, uint64(1), stats.TotalExecuted)
	assert.Equal(t, uint64(1), stats.TotalFailed)
	assert.Equal(t, uint64(0), stats.TotalCompleted)
}

func TestExecutionDuration(t *testing.T) {
	tests := []struct {
		seqLen uint32
		want   time.Duration
	}{
		{1, 11 * time.Millisecond},
		{1000, 11 * time.Millisecond},
		{1001, 12 * time.Millisecond},
		{8192, 19 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, executionDuration(tt.seqLen))
	}
}
