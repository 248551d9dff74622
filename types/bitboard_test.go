package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSetSquareEveryBit(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		b := sq.Bitboard()
		assert.Equal(t, sq, b.FirstSetSquare())
		cleared, popped := b.PopFirstSet()
		assert.Equal(t, sq, popped)
		assert.Equal(t, Empty, cleared)
	}
}

func TestFirstSetSquareEmpty(t *testing.T) {
	assert.Equal(t, NoSquare, Empty.FirstSetSquare())
}

func TestPieceSideLowBitTrick(t *testing.T) {
	white := []Piece{WhitePawn, WhiteKing, WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen}
	black := []Piece{BlackPawn, BlackKing, BlackRook, BlackKnight, BlackBishop, BlackQueen}
	for _, p := range white {
		assert.Equal(t, White, p.Side())
	}
	for _, p := range black {
		assert.Equal(t, Black, p.Side())
	}
}

func TestSquareRankFileRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		rank, file := sq.RankFile()
		assert.Equal(t, sq, RankFileToSquare(rank, file))
	}
}

func TestParseSquare(t *testing.T) {
	assert.Equal(t, E4, ParseSquare("e4"))
	assert.Equal(t, A1, ParseSquare("a1"))
	assert.Equal(t, H8, ParseSquare("h8"))
	assert.Equal(t, NoSquare, ParseSquare("z9"))
}
