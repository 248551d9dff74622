package perft

import (
	"context"
	"testing"

	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountStartingPositionShallowDepths(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := position.NewStarting()
		assert.Equal(t, c.nodes, Count(p, types.White, c.depth), "depth %d", c.depth)
	}
}

func TestDetailedStartingPositionDepthThree(t *testing.T) {
	p := position.NewStarting()
	r := Detailed(p, types.White, 3)
	assert.Equal(t, uint64(8902), r.TotalLeaves)
	assert.Equal(t, uint64(34), r.CaptureCount)
	assert.Equal(t, uint64(0), r.EpCount)
	assert.Equal(t, uint64(0), r.CastleCount)
	assert.Equal(t, uint64(0), r.PromotedCount)
	assert.Equal(t, uint64(12), r.CheckCount)
	assert.Equal(t, uint64(0), r.MateCount)
}

func TestParallelAgreesWithCountAtShallowDepth(t *testing.T) {
	p := position.NewStarting()
	got, err := Parallel(context.Background(), p, types.White, 3)
	require.NoError(t, err)
	assert.Equal(t, Count(position.NewStarting(), types.White, 3), got)
}

func TestCountZeroDepthIsOneLeaf(t *testing.T) {
	p := position.NewStarting()
	assert.Equal(t, uint64(1), Count(p, types.White, 0))
}
