package gxf

import (
	"strings"

	"github.com/pkg/errors"
)

// PrecisionLevel is the numeric precision a job requires from a provider.
// The set is closed; the wire encoding is the uppercase name.
type PrecisionLevel string

const (
	PrecisionBF16 PrecisionLevel = "BF16"
	PrecisionFP8  PrecisionLevel = "FP8"
	PrecisionE5M2 PrecisionLevel = "E5M2"
	PrecisionINT8 PrecisionLevel = "INT8"
)

// Precisions lists every supported precision level in declaration order.
func Precisions() []PrecisionLevel {
	return []PrecisionLevel{PrecisionBF16, PrecisionFP8, PrecisionE5M2, PrecisionINT8}
}

// Valid reports whether p is a member of the closed precision set.
func (p PrecisionLevel) Valid() bool {
	switch p {
	case PrecisionBF16, PrecisionFP8, PrecisionE5M2, PrecisionINT8:
		return true
	}
	return false
}

func (p PrecisionLevel) String() string {
	return string(p)
}

// ParsePrecision converts a case-insensitive precision name into its
// canonical uppercase form.
func ParsePrecision(s string) (PrecisionLevel, error) {
	p := PrecisionLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Wrapf(ErrInvalidPrecision, "%q", s)
	}
	return p, nil
}
