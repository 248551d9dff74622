package notation

import (
	"strings"
	"testing"

	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
)

func buildMove(src, dst types.Square, piece, captured, promo types.Piece) types.Move {
	m := types.NoMove.SetSource(src).SetDestination(dst).SetPiece(piece).SetCapturedPiece(captured)
	if promo != types.NoPiece {
		m = m.SetPromotionPiece(promo)
	}
	return m
}

func TestCoordQuietPawnMove(t *testing.T) {
	m := buildMove(types.E2, types.E4, types.WhitePawn, types.NoPiece, types.NoPiece)
	assert.Equal(t, "e2e4", Coord(m))
}

func TestCoordPromotion(t *testing.T) {
	m := buildMove(types.A7, types.A8, types.WhitePawn, types.NoPiece, types.WhiteQueen)
	assert.Equal(t, "a7a8q", Coord(m))
}

func TestCoordCastling(t *testing.T) {
	king := buildMove(types.E1, types.G1, types.WhiteKing, types.NoPiece, types.NoPiece).SetCastling(types.WhiteKing)
	assert.Equal(t, "O-O", Coord(king))

	queen := buildMove(types.E1, types.C1, types.WhiteKing, types.NoPiece, types.NoPiece).SetCastling(types.WhiteKing)
	assert.Equal(t, "O-O-O", Coord(queen))
}

func TestLongRendersCaptureAndCheckSuffix(t *testing.T) {
	m := buildMove(types.D4, types.D8, types.WhiteQueen, types.BlackRook, types.NoPiece)
	line := Long(m, 12, types.White, evaluator.Check, types.Eval(300))
	assert.Equal(t, "12. Qd4xd8+ (+3.00)", line)
}

func TestLongAddsDotsPrefixForBlack(t *testing.T) {
	m := buildMove(types.E7, types.E5, types.BlackPawn, types.NoPiece, types.NoPiece)
	line := Long(m, 1, types.Black, evaluator.Normal, types.Eval(0))
	assert.Equal(t, "1... e7-e5 (+0.00)", line)
}

func TestBoardRendersStartingPosition(t *testing.T) {
	p := position.NewStarting()
	board := Board(p)
	lines := strings.Split(board, "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "rnbqkbnr", lines[0])
	assert.Equal(t, "RNBQKBNR", lines[7])
}
