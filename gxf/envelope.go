// Package gxf implements GXF, the GIX exchange format: the versioned,
// time-gated job envelope that flows between clients and the router,
// auction, and runtime daemons. The JSON wire encoding produced here is the
// compatibility surface of the whole network; field names are stable and
// optional fields are omitted when absent.
package gxf

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Version is the GXF schema version accepted by every daemon.
const Version uint8 = 3

// Metadata carries the routing and lifecycle attributes of an envelope.
type Metadata struct {
	SchemaVersion    uint8             `json:"schema_version"`
	Priority         uint8             `json:"priority"`
	CreatedAt        uint64            `json:"created_at"`
	ExpiresAt        *uint64           `json:"expires_at,omitempty"`
	SourceSlp        string            `json:"source_slp,omitempty"`
	TargetLane       string            `json:"target_lane,omitempty"`
	AdditionalFields map[string]string `json:"additional_fields"`
}

// NewMetadata returns metadata stamped with the current schema version and
// creation time. No expiry is set.
func NewMetadata(priority uint8) *Metadata {
	return &Metadata{
		SchemaVersion:    Version,
		Priority:         priority,
		CreatedAt:        uint64(time.Now().Unix()),
		AdditionalFields: make(map[string]string),
	}
}

// Validate checks the metadata against the current clock.
func (m *Metadata) Validate() error {
	return m.ValidateAt(time.Now())
}

// ValidateAt enforces the metadata invariants as of the supplied instant:
// the schema version must match, and a set expiry must be in the future and
// after creation.
func (m *Metadata) ValidateAt(now time.Time) error {
	if m.SchemaVersion != Version {
		return errors.Wrapf(ErrInvalidVersion, "expected %d, got %d", Version, m.SchemaVersion)
	}
	if m.ExpiresAt != nil {
		expiresAt := *m.ExpiresAt
		if expiresAt <= uint64(now.Unix()) {
			return errors.Wrapf(ErrExpired, "at %d, current time %d", expiresAt, now.Unix())
		}
		if expiresAt <= m.CreatedAt {
			return errors.Wrap(ErrInvalidMetadata, "expiration time must be after creation time")
		}
	}
	return nil
}

// Expired reports whether the envelope is past its expiry. Envelopes
// without an expiry never expire.
func (m *Metadata) Expired() bool {
	return m.ExpiredAt(time.Now())
}

// ExpiredAt is Expired against the supplied instant.
func (m *Metadata) ExpiredAt(now time.Time) bool {
	return m.ExpiresAt != nil && *m.ExpiresAt <= uint64(now.Unix())
}

// Band returns the priority band of the envelope.
func (m *Metadata) Band() PriorityBand {
	return BandOf(m.Priority)
}

// Envelope pairs metadata with an opaque payload holding one serialized
// Job. The optional signature covers the payload bytes; daemons carry it
// but do not verify it.
type Envelope struct {
	Meta      *Metadata `json:"meta"`
	Payload   []byte    `json:"payload"`
	Signature []byte    `json:"signature,omitempty"`
}

// NewEnvelope validates job and wraps it in a fresh envelope at the given
// priority. No expiry is set; use WrapJob for TTL-bounded envelopes.
func NewEnvelope(job *Job, priority uint8) (*Envelope, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize job")
	}
	return &Envelope{Meta: NewMetadata(priority), Payload: payload}, nil
}

// WrapJob builds an envelope whose expiry is ttl past its creation time.
func WrapJob(job *Job, priority uint8, ttl time.Duration) (*Envelope, error) {
	env, err := NewEnvelope(job, priority)
	if err != nil {
		return nil, err
	}
	expiresAt := env.Meta.CreatedAt + uint64(ttl.Seconds())
	env.Meta.ExpiresAt = &expiresAt
	return env, nil
}

// Job parses the payload back into a Job.
func (e *Envelope) Job() (*Job, error) {
	job := &Job{}
	if err := json.Unmarshal(e.Payload, job); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "could not deserialize job: %v", err)
	}
	return job, nil
}

// Validate checks the envelope against the current clock.
func (e *Envelope) Validate() error {
	return e.ValidateAt(time.Now())
}

// ValidateAt enforces every envelope invariant as of the supplied instant:
// valid metadata, a non-empty payload, and a payload that parses into a
// valid job.
func (e *Envelope) ValidateAt(now time.Time) error {
	if e.Meta == nil {
		return errors.Wrap(ErrInvalidMetadata, "missing metadata")
	}
	if err := e.Meta.ValidateAt(now); err != nil {
		return err
	}
	if len(e.Payload) == 0 {
		return errors.Wrap(ErrInvalidPayload, "payload cannot be empty")
	}
	job, err := e.Job()
	if err != nil {
		return err
	}
	return job.Validate()
}

// Marshal encodes the envelope into its JSON wire form.
func (e *Envelope) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize envelope")
	}
	return data, nil
}

// Unmarshal decodes an envelope from its JSON wire form. The result is not
// validated; callers run Validate before trusting it.
func Unmarshal(data []byte) (*Envelope, error) {
	env := &Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "could not deserialize envelope: %v", err)
	}
	return env, nil
}
