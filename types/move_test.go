package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundTrip(t *testing.T) {
	sources := []Square{A1, E4, H8, D5}
	dests := []Square{B2, F6, A8, G1}
	pieces := []Piece{WhitePawn, BlackKnight, WhiteQueen, BlackKing}
	captured := []Piece{NoPiece, WhiteRook, BlackBishop, WhitePawn}
	specials := []Piece{NoPiece, WhiteQueen, BlackKnight, WhiteKing, BlackPawn}

	for _, src := range sources {
		for _, dst := range dests {
			for _, p := range pieces {
				for _, cap := range captured {
					for _, sp := range specials {
						var m Move
						m = m.SetSource(src)
						m = m.SetDestination(dst)
						m = m.SetPiece(p)
						m = m.SetCapturedPiece(cap)
						m = m.setSpecial(sp)

						assert.Equal(t, src, m.Source())
						assert.Equal(t, dst, m.Destination())
						assert.Equal(t, p, m.Piece())
						assert.Equal(t, cap, m.CapturedPiece())
						assert.Equal(t, sp, m.special())
					}
				}
			}
		}
	}
}

func TestMoveSpecialInterpretationsAreMutuallyExclusive(t *testing.T) {
	var m Move
	m = m.SetSource(E7).SetDestination(E8).SetPiece(WhitePawn)

	promo := m.SetPromotionPiece(WhiteQueen)
	assert.Equal(t, WhiteQueen, promo.PromotionPiece())
	assert.Equal(t, NoPiece, promo.Castling())
	assert.Equal(t, NoPiece, promo.EnPassant())

	castle := m.SetCastling(WhiteKing)
	assert.Equal(t, NoPiece, castle.PromotionPiece())
	assert.Equal(t, WhiteKing, castle.Castling())
	assert.Equal(t, NoPiece, castle.EnPassant())

	ep := m.SetEnPassant(BlackPawn)
	assert.Equal(t, NoPiece, ep.PromotionPiece())
	assert.Equal(t, NoPiece, ep.Castling())
	assert.Equal(t, BlackPawn, ep.EnPassant())
}

func TestMoveString(t *testing.T) {
	m := Move(0).SetSource(E2).SetDestination(E4).SetPiece(WhitePawn)
	assert.Equal(t, "e2e4", m.String())

	promo := Move(0).SetSource(C7).SetDestination(C8).SetPiece(WhitePawn).SetPromotionPiece(WhiteQueen)
	assert.Equal(t, "c7c8q", promo.String())

	castle := Move(0).SetSource(E1).SetDestination(G1).SetPiece(WhiteKing).SetCastling(WhiteKing)
	assert.Equal(t, "O-O", castle.String())

	castleLong := Move(0).SetSource(E8).SetDestination(C8).SetPiece(BlackKing).SetCastling(BlackKing)
	assert.Equal(t, "O-O-O", castleLong.String())
}
