package gxf

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parameter keys consumed by the core pipeline. Unknown keys are carried
// through untouched.
const (
	ParamBatchSize = "batch_size"
	ParamRegion    = "region"
	ParamResidency = "residency"
)

// Job describes one unit of compute work. Jobs travel inside envelope
// payloads and are re-parsed on every hop.
type Job struct {
	JobID         JobID             `json:"job_id"`
	Precision     PrecisionLevel    `json:"precision"`
	KVCacheSeqLen uint32            `json:"kv_cache_seq_len"`
	Parameters    map[string]string `json:"parameters"`
}

// NewJob constructs a job with an empty parameter set.
func NewJob(id JobID, precision PrecisionLevel, kvCacheSeqLen uint32) *Job {
	return &Job{
		JobID:         id,
		Precision:     precision,
		KVCacheSeqLen: kvCacheSeqLen,
		Parameters:    make(map[string]string),
	}
}

// Validate enforces the job-level invariants: a precision from the closed
// set and a strictly positive sequence length.
func (j *Job) Validate() error {
	if !j.Precision.Valid() {
		return errors.Wrapf(ErrInvalidPrecision, "%q", string(j.Precision))
	}
	if j.KVCacheSeqLen == 0 {
		return errors.Wrap(ErrInvalidSequenceLength, "must be > 0")
	}
	return nil
}

// SetParameter stores one key-value parameter, allocating the map on first use.
func (j *Job) SetParameter(key, value string) {
	if j.Parameters == nil {
		j.Parameters = make(map[string]string)
	}
	j.Parameters[key] = value
}

// BatchSize parses the batch_size parameter as a u32. The second return is
// false when the parameter is absent or does not parse; callers ignore
// unparsable values.
func (j *Job) BatchSize() (uint32, bool) {
	raw, ok := j.Parameters[ParamBatchSize]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Region returns the region parameter when present.
func (j *Job) Region() (string, bool) {
	v, ok := j.Parameters[ParamRegion]
	return v, ok
}

// Residency returns the residency parameter when present.
func (j *Job) Residency() (string, bool) {
	v, ok := j.Parameters[ParamResidency]
	return v, ok
}
