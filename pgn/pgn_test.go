package pgn

import (
	"strings"
	"testing"

	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMove(src, dst types.Square, piece, captured, promo types.Piece) types.Move {
	m := types.NoMove.SetSource(src).SetDestination(dst).SetPiece(piece).SetCapturedPiece(captured)
	if promo != types.NoPiece {
		m = m.SetPromotionPiece(promo)
	}
	return m
}

func TestWriteMoveAddsMoveNumberOnlyForWhite(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	m1 := buildMove(types.E2, types.E4, types.WhitePawn, types.NoPiece, types.NoPiece)
	require.NoError(t, w.WriteMove(m1, 1, types.White, evaluator.Normal))

	m2 := buildMove(types.E7, types.E5, types.BlackPawn, types.NoPiece, types.NoPiece)
	require.NoError(t, w.WriteMove(m2, 1, types.Black, evaluator.Normal))

	assert.Equal(t, "1. e2-e4 e7-e5 \n", buf.String())
}

func TestWriteMoveCaptureUsesX(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	m := buildMove(types.D4, types.D8, types.WhiteQueen, types.BlackRook, types.NoPiece)
	require.NoError(t, w.WriteMove(m, 5, types.White, evaluator.Mate))
	assert.Equal(t, "5. Qd4xd8# ", buf.String())
}

func TestWriteMoveCastlingBody(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	m := buildMove(types.E1, types.G1, types.WhiteKing, types.NoPiece, types.NoPiece).SetCastling(types.WhiteKing)
	require.NoError(t, w.WriteMove(m, 7, types.White, evaluator.Normal))
	assert.Equal(t, "7. O-O ", buf.String())
}

func TestWriteMovePromotion(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	m := buildMove(types.A7, types.A8, types.WhitePawn, types.NoPiece, types.WhiteQueen)
	require.NoError(t, w.WriteMove(m, 40, types.White, evaluator.Check))
	assert.Equal(t, "40. a7-a8=Q+ ", buf.String())
}
