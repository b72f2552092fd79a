package rpc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gixlabs/gix/gxf"
	gixv1 "github.com/gixlabs/gix/proto/gix/v1"
	"github.com/gixlabs/gix/runtime/executor"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func envelopeBytes(t *testing.T, job *gxf.Job) []byte {
	env, err := gxf.WrapJob(job, 100, 300*time.Second)
	require.NoError(t, err)
	data, err := env.Marshal()
	require.NoError(t, err)
	return data
}

func TestServer_ExecuteJob_OK(t *testing.T) {
	server := &Server{executor: executor.New(nil)}

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionINT8, 1024)
	resp, err := server.ExecuteJob(context.Background(), &gixv1.ExecuteJobRequest{EnvelopeData: envelopeBytes(t, job)})
	require.NoError(t, err)
	require.Equal(t, true, resp.Success)
	assert.Equal(t, gixv1.ExecutionStatus_COMPLETED, resp.Status)
	assert.Equal(t, uint64(12), resp.DurationMs)
	assert.Equal(t, 32, len(resp.OutputHash))
	assert.DeepEqual(t, job.JobID.Bytes(), resp.JobId)
}

func TestServer_ExecuteJob_RejectedStatus(t *testing.T) {
	server := &Server{executor: executor.New(nil)}

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionINT8, 512)
	job.SetParameter(gxf.ParamRegion, "APAC")
	resp, err := server.ExecuteJob(context.Background(), &gixv1.ExecuteJobRequest{EnvelopeData: envelopeBytes(t, job)})
	require.NoError(t, err)
	require.Equal(t, false, resp.Success)
	assert.Equal(t, gixv1.ExecutionStatus_REJECTED, resp.Status)
	if !strings.Contains(resp.Error, "residency violation") {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestServer_ExecuteJob_MalformedEnvelope(t *testing.T) {
	server := &Server{executor: executor.New(nil)}

	resp, err := server.ExecuteJob(context.Background(), &gixv1.ExecuteJobRequest{EnvelopeData: []byte("{broken")})
	require.NoError(t, err)
	require.Equal(t, false, resp.Success)
	if !strings.Contains(resp.Error, "could not deserialize envelope") {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestServer_GetRuntimeStats(t *testing.T) {
	exec := executor.New(nil)
	server := &Server{executor: exec}

	job := gxf.NewJob(gxf.NewJobID(), gxf.PrecisionBF16, 100)
	env, err := gxf.WrapJob(job, 100, 300*time.Second)
	require.NoError(t, err)
	_, err = exec.ExecuteEnvelope(context.Background(), env)
	require.NoError(t, err)

	resp, err := server.GetRuntimeStats(context.Background(), &gixv1.RuntimeStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.TotalExecuted)
	assert.Equal(t, uint64(1), resp.TotalCompleted)
	assert.Equal(t, uint64(1), resp.JobsByPrecision["BF16"])
}
