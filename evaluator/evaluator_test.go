package evaluator

import (
	"testing"

	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
)

func TestStartingPositionIsNormalAndLevel(t *testing.T) {
	p := position.NewStarting()
	assert.Equal(t, Normal, ClassifyPosition(p, types.White))
	assert.Equal(t, types.Eval(0), Evaluate(p, types.White, 0))
}

func TestBareKingsIsInsufficientMaterial(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	assert.Equal(t, InsufficientMaterial, ClassifyPosition(p, types.White))
	assert.Equal(t, types.DrawScore, Evaluate(p, types.White, 0))
}

// White king boxed into the a1 corner by its own pawns, checked by a
// defended queen on b1: every pseudo-legal reply (both pawn pushes, the
// king's only capture) leaves the king in check.
func TestCornerMateIsMate(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.A1)
	p.PlacePiece(types.WhitePawn, types.A2)
	p.PlacePiece(types.WhitePawn, types.B2)
	p.PlacePiece(types.BlackQueen, types.B1)
	p.PlacePiece(types.BlackKing, types.C2)
	p.UpdateSides()

	assert.Equal(t, Mate, ClassifyPosition(p, types.White))
	score := Evaluate(p, types.White, 4)
	assert.Equal(t, -(types.MateScore + 4), score)
}

func TestCheckButNotMate(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.BlackKing, types.E8)
	p.PlacePiece(types.BlackRook, types.E5)
	p.UpdateSides()

	assert.Equal(t, Check, ClassifyPosition(p, types.White))
}

func TestMaterialEvalFavorsWhiteWhenAhead(t *testing.T) {
	p := position.New()
	p.PlacePiece(types.WhiteKing, types.A1)
	p.PlacePiece(types.BlackKing, types.A8)
	p.PlacePiece(types.WhiteQueen, types.D4)
	p.UpdateSides()
	p.Material = types.PieceValue[types.WhiteQueen]

	assert.Equal(t, types.PieceValue[types.WhiteQueen], Evaluate(p, types.White, 0))
	assert.Equal(t, -types.PieceValue[types.WhiteQueen], Evaluate(p, types.Black, 0))
}
