package gxf

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JobID is the unique identifier of a compute job (UUID v4 bytes).
type JobID [16]byte

// SlpID identifies a Sovereign Liquidity Pool, a compute provider identity.
type SlpID string

// LaneID identifies an AJR routing lane.
type LaneID uint8

// Lanes defined by the initial deployment.
const (
	LaneFlash LaneID = 0
	LaneDeep  LaneID = 1
)

// NewJobID returns a random job identifier.
func NewJobID() JobID {
	return JobID(uuid.New())
}

// JobIDFromBytes converts a 16-byte slice into a JobID.
func JobIDFromBytes(b []byte) (JobID, error) {
	var id JobID
	if len(b) != len(id) {
		return id, errors.Errorf("job id must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// Bytes returns the raw identifier bytes.
func (id JobID) Bytes() []byte {
	return id[:]
}

func (id JobID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler, hex-encoding the identifier.
func (id JobID) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(id[:])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *JobID) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(err, "could not decode job id")
	}
	if len(b) != len(id) {
		return errors.Errorf("job id must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return nil
}
