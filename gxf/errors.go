package gxf

import "github.com/pkg/errors"

// Validation failures surfaced by the codec. Callers match on these with
// errors.Is; wrapped variants carry the offending values.
var (
	ErrInvalidVersion        = errors.New("invalid schema version")
	ErrExpired               = errors.New("envelope expired")
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrInvalidMetadata       = errors.New("invalid metadata")
	ErrInvalidPrecision      = errors.New("invalid precision level")
	ErrInvalidSequenceLength = errors.New("invalid sequence length")
)
