package position

import (
	"testing"

	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMove(src, dst types.Square, piece, captured types.Piece) types.Move {
	var m types.Move
	m = m.SetSource(src).SetDestination(dst).SetPiece(piece).SetCapturedPiece(captured)
	return m
}

func TestStartingPositionInvariants(t *testing.T) {
	p := NewStarting()
	assert.Equal(t, p.Sides[types.White]|p.Sides[types.Black], p.Board)
	assert.Zero(t, p.Sides[types.White]&p.Sides[types.Black])
	assert.Equal(t, 1, p.PieceBB[types.WhiteKing].Count())
	assert.Equal(t, 1, p.PieceBB[types.BlackKing].Count())
	assert.Equal(t, types.NoSquare, p.EpTarget)
	assert.Equal(t, types.AllCastling, p.CastlingRights)
}

func TestMakeMoveSimplePawnPush(t *testing.T) {
	p := NewStarting()
	ok := p.MakeMove(newMove(types.E2, types.E3, types.WhitePawn, types.NoPiece))
	require.True(t, ok)
	assert.Equal(t, types.NoPiece, p.Squares[types.E2])
	assert.Equal(t, types.WhitePawn, p.Squares[types.E3])
	assert.Zero(t, p.PieceBB[types.WhitePawn]&types.E2.Bitboard())
	assert.NotZero(t, p.PieceBB[types.WhitePawn]&types.E3.Bitboard())
}

// S4: the two-square push EP setup.
func TestEnPassantSetupAndCapture(t *testing.T) {
	p := NewStarting()
	require.True(t, p.MakeMove(newMove(types.A2, types.A4, types.WhitePawn, types.NoPiece)))
	assert.Equal(t, types.A3, p.EpTarget)

	p.PieceBB[types.BlackPawn] |= types.B4.Bitboard()
	p.Squares[types.B4] = types.BlackPawn
	p.UpdateSides()

	epMove := newMove(types.B4, types.A3, types.BlackPawn, types.NoPiece).SetEnPassant(types.BlackPawn)
	require.True(t, p.MakeMove(epMove))

	assert.Zero(t, p.PieceBB[types.WhitePawn]&types.A4.Bitboard(), "captured pawn must be removed from a4")
	assert.Equal(t, types.NoPiece, p.Squares[types.A4])
	assert.Equal(t, types.BlackPawn, p.Squares[types.A3])
}

// S3: white pawn on c7 with a black bishop on b8 - promotion with and
// without capture both adjust material correctly.
func TestPromotionMaterial(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhitePawn, types.C7)
	p.PlacePiece(types.BlackBishop, types.B8)
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	promo := newMove(types.C7, types.C8, types.WhitePawn, types.NoPiece).SetPromotionPiece(types.WhiteQueen)
	require.True(t, p.MakeMove(promo))
	assert.Equal(t, types.WhiteQueen, p.Squares[types.C8])
	assert.Equal(t, types.PieceValue[types.WhiteQueen]-types.PieceValue[types.WhitePawn], p.Material)
}

func TestPromotionWithCaptureMaterial(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhitePawn, types.C7)
	p.PlacePiece(types.BlackBishop, types.B8)
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	promo := newMove(types.C7, types.B8, types.WhitePawn, types.BlackBishop).SetPromotionPiece(types.WhiteQueen)
	require.True(t, p.MakeMove(promo))
	assert.Equal(t, types.WhiteQueen, p.Squares[types.B8])
	expected := types.PieceValue[types.BlackBishop] + types.PieceValue[types.WhiteQueen] - types.PieceValue[types.WhitePawn]
	assert.Equal(t, expected, p.Material)
}

// S5: castling through check is illegal.
func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.WhiteRook, types.H1)
	p.PlacePiece(types.BlackRook, types.F8)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	castle := newMove(types.E1, types.G1, types.WhiteKing, types.NoPiece).SetCastling(types.WhiteKing)
	ok := p.MakeMove(castle)
	assert.False(t, ok)
}

func TestCastlingMovesRookToo(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.WhiteRook, types.H1)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	castle := newMove(types.E1, types.G1, types.WhiteKing, types.NoPiece).SetCastling(types.WhiteKing)
	require.True(t, p.MakeMove(castle))
	assert.Equal(t, types.WhiteKing, p.Squares[types.G1])
	assert.Equal(t, types.WhiteRook, p.Squares[types.F1])
	assert.Equal(t, types.NoPiece, p.Squares[types.H1])
	assert.Zero(t, p.CastlingRights&types.WhiteCastling)
}

func TestCapturingCornerRookClearsCastlingRights(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.WhiteRook, types.H1)
	p.PlacePiece(types.BlackRook, types.H8)
	p.PlacePiece(types.BlackKnight, types.G3)
	p.PlacePiece(types.BlackKing, types.E8)
	p.UpdateSides()

	capture := newMove(types.G3, types.H1, types.BlackKnight, types.WhiteRook)
	require.True(t, p.MakeMove(capture))
	assert.Zero(t, p.CastlingRights&types.WhiteKingside)
}

func TestDetectCheck(t *testing.T) {
	p := New()
	p.PlacePiece(types.WhiteKing, types.E1)
	p.PlacePiece(types.BlackRook, types.E8)
	p.PlacePiece(types.BlackKing, types.A8)
	p.UpdateSides()

	assert.True(t, p.DetectCheck(types.White))
	assert.False(t, p.DetectCheck(types.Black))
}
