// +build perft_long

package perft

import (
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"

	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// Deeper perft regressions. These take long enough that they're excluded
// from a plain "go test ./..." run; invoke with -tags perft_long to run
// them.
func TestCountStartingPositionDepthFour(t *testing.T) {
	defer profile.Start().Stop()
	p := position.NewStarting()
	assert.Equal(t, uint64(197281), Count(p, types.White, 4))
}

func TestDetailedStartingPositionDepthFour(t *testing.T) {
	p := position.NewStarting()
	r := Detailed(p, types.White, 4)
	assert.Equal(t, uint64(197281), r.TotalLeaves)
	assert.Equal(t, uint64(1576), r.CaptureCount)
	assert.Equal(t, uint64(469), r.CheckCount)
	assert.Equal(t, uint64(8), r.MateCount)
}

func kiwipete() *position.Position {
	p := position.New()
	placements := []struct {
		sq types.Square
		pc types.Piece
	}{
		{types.A8, types.BlackRook}, {types.E8, types.BlackKing}, {types.H8, types.BlackRook},
		{types.A7, types.BlackPawn}, {types.B4, types.BlackPawn},
		{types.C7, types.BlackPawn}, {types.D7, types.BlackPawn}, {types.E7, types.BlackQueen}, {types.F7, types.BlackPawn}, {types.G7, types.BlackBishop},
		{types.A6, types.BlackBishop}, {types.B6, types.BlackKnight}, {types.E6, types.BlackPawn}, {types.F6, types.BlackKnight}, {types.G6, types.BlackPawn},
		{types.D5, types.WhitePawn}, {types.E5, types.WhiteKnight},
		{types.C3, types.WhiteKnight}, {types.F3, types.WhiteQueen}, {types.H3, types.BlackPawn},
		{types.A2, types.WhitePawn}, {types.B2, types.WhitePawn}, {types.C2, types.WhitePawn}, {types.D2, types.WhiteBishop},
		{types.E2, types.WhiteBishop}, {types.E4, types.WhitePawn}, {types.F2, types.WhitePawn}, {types.G2, types.WhitePawn}, {types.H2, types.WhitePawn},
		{types.A1, types.WhiteRook}, {types.E1, types.WhiteKing}, {types.H1, types.WhiteRook},
	}
	for _, pl := range placements {
		p.PlacePiece(pl.pc, pl.sq)
	}
	p.UpdateSides()
	p.CastlingRights = types.AllCastling
	p.EpTarget = types.NoSquare
	return p
}

func TestCountKiwipeteShallowDepths(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		p := kiwipete()
		assert.Equal(t, c.nodes, Count(p, types.White, c.depth), "depth %d", c.depth)
	}
}
