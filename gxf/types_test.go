package gxf_test

import (
	"testing"

	"github.com/gixlabs/gix/gxf"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func TestJobID_RoundTrip(t *testing.T) {
	id := gxf.NewJobID()
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, 32, len(text), "hex encoding of 16 bytes")

	var decoded gxf.JobID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)
	assert.Equal(t, string(text), id.String())
}

func TestJobID_FromBytes(t *testing.T) {
	raw := make([]byte, 16)
	raw[0] = 0xab
	id, err := gxf.JobIDFromBytes(raw)
	require.NoError(t, err)
	assert.DeepEqual(t, raw, id.Bytes())

	_, err = gxf.JobIDFromBytes(make([]byte, 15))
	assert.ErrorContains(t, "must be 16 bytes", err)
}

func TestJobID_Uniqueness(t *testing.T) {
	assert.NotEqual(t, gxf.NewJobID(), gxf.NewJobID())
}

func TestPrecision_Valid(t *testing.T) {
	for _, p := range gxf.Precisions() {
		assert.Equal(t, true, p.Valid(), "precision %s", p)
	}
	assert.Equal(t, false, gxf.PrecisionLevel("FP64").Valid())
	assert.Equal(t, false, gxf.PrecisionLevel("bf16").Valid(), "wire form is uppercase only")
}

func TestParsePrecision(t *testing.T) {
	p, err := gxf.ParsePrecision("bf16")
	require.NoError(t, err)
	assert.Equal(t, gxf.PrecisionBF16, p)

	p, err = gxf.ParsePrecision(" Int8 ")
	require.NoError(t, err)
	assert.Equal(t, gxf.PrecisionINT8, p)

	_, err = gxf.ParsePrecision("FP64")
	require.ErrorIs(t, err, gxf.ErrInvalidPrecision)
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		priority uint8
		want     gxf.PriorityBand
	}{
		{0, gxf.PriorityLow},
		{63, gxf.PriorityLow},
		{64, gxf.PriorityNormal},
		{127, gxf.PriorityNormal},
		{128, gxf.PriorityHigh},
		{191, gxf.PriorityHigh},
		{192, gxf.PriorityCritical},
		{255, gxf.PriorityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gxf.BandOf(tt.priority), "priority %d", tt.priority)
	}
}
