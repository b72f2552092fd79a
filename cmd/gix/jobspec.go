package main

import (
	"io/ioutil"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/gixlabs/gix/gxf"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// JobSpec is the YAML job description the submit command accepts.
type JobSpec struct {
	Model         string `json:"model" validate:"required"`
	Precision     string `json:"precision" validate:"required"`
	KVCacheSeqLen uint32 `json:"kv_cache_seq_len" validate:"required,gt=0"`
	TokenCount    uint32 `json:"token_count"`
	BatchSize     uint32 `json:"batch_size"`
	Region        string `json:"region"`
	Residency     string `json:"residency"`
}

// LoadJobSpec parses and validates a job spec file, filling in the
// token_count and batch_size defaults.
func LoadJobSpec(path string) (*JobSpec, error) {
	data, err := ioutil.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read job spec")
	}
	spec := &JobSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, errors.Wrap(err, "could not parse job spec")
	}
	if err := validator.New().Struct(spec); err != nil {
		return nil, errors.Wrap(err, "invalid job spec")
	}
	if _, err := gxf.ParsePrecision(spec.Precision); err != nil {
		return nil, err
	}
	if spec.TokenCount == 0 {
		spec.TokenCount = 128
	}
	if spec.BatchSize == 0 {
		spec.BatchSize = 1
	}
	return spec, nil
}

// ToJob converts the spec into a wire job with a fresh id.
func (s *JobSpec) ToJob() (*gxf.Job, error) {
	precision, err := gxf.ParsePrecision(s.Precision)
	if err != nil {
		return nil, err
	}
	job := gxf.NewJob(gxf.NewJobID(), precision, s.KVCacheSeqLen)
	job.SetParameter("model", s.Model)
	job.SetParameter("token_count", strconv.FormatUint(uint64(s.TokenCount), 10))
	job.SetParameter(gxf.ParamBatchSize, strconv.FormatUint(uint64(s.BatchSize), 10))
	if s.Region != "" {
		job.SetParameter(gxf.ParamRegion, s.Region)
	}
	if s.Residency != "" {
		job.SetParameter(gxf.ParamResidency, s.Residency)
	}
	return job, nil
}
