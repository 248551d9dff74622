package search

import (
	"testing"

	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White queen takes an undefended black rook: both searches should find it
// at depth 1.
func TestAlphaBetaFindsFreeCaptureAtDepthOne(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.A1)
	p.PlacePiece(types.BlackKing, types.A8)
	p.PlacePiece(types.WhiteQueen, types.D4)
	p.PlacePiece(types.BlackRook, types.D8)
	p.UpdateSides()

	result := AlphaBeta(p, types.White, 1, -types.Infinite, types.Infinite)

	assert.Equal(t, types.D8, result.Move.Destination())
	assert.Equal(t, types.BlackRook, result.Move.CapturedPiece())
	assert.True(t, result.Eval > 0)
}

func TestMinimaxAndAlphaBetaAgreeOnEval(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.A1)
	p.PlacePiece(types.BlackKing, types.A8)
	p.PlacePiece(types.WhiteQueen, types.D4)
	p.PlacePiece(types.BlackRook, types.D8)
	p.PlacePiece(types.WhitePawn, types.B2)
	p.UpdateSides()

	mm := Minimax(p, types.White, 2)
	ab := AlphaBeta(p, types.White, 2, -types.Infinite, types.Infinite)

	assert.Equal(t, mm.Eval, ab.Eval)
}

func TestAlphaBetaAtStartingPositionReturnsLegalMove(t *testing.T) {
	p := position.NewStarting()
	result := AlphaBeta(p, types.White, 2, -types.Infinite, types.Infinite)
	require.NotEqual(t, types.NoMove, result.Move)
}

func TestMateIsScoredAsLossForTheMatedSide(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.A1)
	p.PlacePiece(types.WhitePawn, types.A2)
	p.PlacePiece(types.WhitePawn, types.B2)
	p.PlacePiece(types.BlackQueen, types.B1)
	p.PlacePiece(types.BlackKing, types.C2)
	p.UpdateSides()

	result := AlphaBeta(p, types.White, 2, -types.Infinite, types.Infinite)
	assert.True(t, result.Eval < -types.MateScore)
}
