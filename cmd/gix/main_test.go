package main

import (
	"testing"

	"github.com/gixlabs/gix/shared/cmd"
	"github.com/gixlabs/gix/shared/testutil/assert"
)

func TestDialOpts_AppliesRecvSizeCap(t *testing.T) {
	base := dialOpts(0)
	capped := dialOpts(cmd.GrpcMaxCallRecvMsgSizeFlag.Value)
	assert.Equal(t, 2, len(base))
	assert.Equal(t, 3, len(capped))
}
