package attacks

import (
	"testing"

	"github.com/chesskit/oink/types"
	"github.com/stretchr/testify/assert"
)

func TestMain_Init(t *testing.T) {
	InitializeConstants()
}

func TestKnightMovesFromCorner(t *testing.T) {
	InitializeConstants()
	assert.Equal(t, 2, KnightMoves[types.A8].Count())
}

func TestRookMovesFromCornerEmptyBoard(t *testing.T) {
	InitializeConstants()
	total := HorizSliderMoves[types.A8][0].Count() + VertSliderMoves[types.A8][0].Count()
	assert.Equal(t, 14, total)
}

func TestBishopMovesFromCenterEmptyBoard(t *testing.T) {
	InitializeConstants()
	total := DiagMovesA1H8[types.E5][0].Count() + DiagMovesA8H1[types.E5][0].Count()
	assert.Equal(t, 13, total)
}

func TestPawnMovesEmptyOnFarRank(t *testing.T) {
	InitializeConstants()
	assert.Equal(t, types.Empty, PawnMoves[types.White][types.A8])
	assert.Equal(t, types.Empty, PawnMoves[types.Black][types.A1])
}

func TestPawnDoublePushFromStartingRank(t *testing.T) {
	InitializeConstants()
	assert.Equal(t, 2, PawnMoves[types.White][types.E2].Count())
	assert.Equal(t, 2, PawnMoves[types.Black][types.E7].Count())
	assert.Equal(t, 1, PawnMoves[types.White][types.E3].Count())
}

func TestRankOccupancy6BitMatchesSpecFormula(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for v := uint8(0); v < 64; v++ {
			board := types.Bitboard(v) << uint(8*rank+1)
			assert.Equal(t, v, RankOccupancy6Bit(board, rank), "rank=%d v=%d", rank, v)
		}
	}
}

func TestFileOccupancy6BitPortableMatchesMagicForEveryByte(t *testing.T) {
	for file := 0; file < 8; file++ {
		for p := 0; p < 256; p++ {
			var board types.Bitboard
			for rank := 0; rank < 8; rank++ {
				if (p>>uint(rank))&1 != 0 {
					board |= types.RankFileToSquare(rank, file).Bitboard()
				}
			}
			loop := FileOccupancy6Bit(board, file)
			magic := FileOccupancy6BitMagic(board, file)
			assert.Equal(t, loop, magic, "file=%d pattern=%d", file, p)
		}
	}
}

func TestDiagonalProjectionSeesInteriorSquare(t *testing.T) {
	InitializeConstants()
	// e5's a1-h8 diagonal runs a1-b2-c3-d4-e5-f6-g7-h8; d4 is an interior
	// square on it, so the projection must pick it up.
	board := types.D4.Bitboard()
	got := A1H8Occupancy6Bit(board, types.E5)
	assert.NotEqual(t, uint8(0), got)
}

func TestDiagMasksExcludeSelf(t *testing.T) {
	InitializeConstants()
	for sq := types.A1; sq <= types.H8; sq++ {
		assert.Zero(t, DiagMasksA1H8[sq]&sq.Bitboard())
		assert.Zero(t, DiagMasksA8H1[sq]&sq.Bitboard())
	}
}

func TestDiagMasksCornerLength(t *testing.T) {
	InitializeConstants()
	assert.Equal(t, types.Empty, DiagMasksA8H1[types.A1])
	assert.Equal(t, 7, DiagMasksA1H8[types.A1].Count())
}
