package gxf_test

import (
	"testing"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func TestJob_Validate(t *testing.T) {
	job := gxf.NewJob(gxf.JobID{}, gxf.PrecisionBF16, 1024)
	require.NoError(t, job.Validate())

	job = gxf.NewJob(gxf.JobID{}, gxf.PrecisionBF16, 0)
	require.ErrorIs(t, job.Validate(), gxf.ErrInvalidSequenceLength)

	job = gxf.NewJob(gxf.JobID{}, gxf.PrecisionLevel("FP64"), 1024)
	require.ErrorIs(t, job.Validate(), gxf.ErrInvalidPrecision)
}

func TestJob_BatchSize(t *testing.T) {
	job := gxf.NewJob(gxf.JobID{}, gxf.PrecisionINT8, 16)

	_, ok := job.BatchSize()
	assert.Equal(t, false, ok, "absent batch_size must not parse")

	job.SetParameter(gxf.ParamBatchSize, "8")
	v, ok := job.BatchSize()
	require.Equal(t, true, ok)
	assert.Equal(t, uint32(8), v)

	job.SetParameter(gxf.ParamBatchSize, "not-a-number")
	_, ok = job.BatchSize()
	assert.Equal(t, false, ok, "unparsable batch_size must be ignored")

	job.SetParameter(gxf.ParamBatchSize, "-3")
	_, ok = job.BatchSize()
	assert.Equal(t, false, ok, "negative batch_size must be ignored")
}

func TestJob_RegionAndResidency(t *testing.T) {
	job := gxf.NewJob(gxf.JobID{}, gxf.PrecisionE5M2, 16)

	_, ok := job.Region()
	assert.Equal(t, false, ok)

	job.SetParameter(gxf.ParamRegion, "US")
	region, ok := job.Region()
	require.Equal(t, true, ok)
	assert.Equal(t, "US", region)

	job.SetParameter(gxf.ParamResidency, "sovereign")
	residency, ok := job.Residency()
	require.Equal(t, true, ok)
	assert.Equal(t, "sovereign", residency)
}

func TestJob_NilParameterMap(t *testing.T) {
	job := &gxf.Job{JobID: gxf.JobID{}, Precision: gxf.PrecisionBF16, KVCacheSeqLen: 1}
	_, ok := job.BatchSize()
	assert.Equal(t, false, ok)
	job.SetParameter("k", "v")
	assert.Equal(t, "v", job.Parameters["k"])
}
