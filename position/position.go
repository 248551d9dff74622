/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position holds the mutable board representation: piece bitboards,
// side aggregates, the square-to-piece array, and the irreversible state
// (castling rights, en-passant target, halfmove clock, material) that
// MakeMove updates incrementally.
package position

import (
	"github.com/chesskit/oink/attacks"
	"github.com/chesskit/oink/logging"
	"github.com/chesskit/oink/types"
	"github.com/chesskit/oink/util"
)

var log = logging.GetLog("position")

func init() {
	attacks.InitializeConstants()
}

// Position is a value type: the search snapshots it by plain assignment
// before each recursive call and restores it the same way on the way back
// up, rather than maintaining a reversible undo stack.
type Position struct {
	PieceBB [13]types.Bitboard
	Sides   [2]types.Bitboard
	Board   types.Bitboard

	Squares [64]types.Piece

	CastlingRights types.CastlingRights
	EpTarget       types.Square
	FiftyMoveCount int
	Material       types.Eval
}

// New returns an empty position: no pieces, full castling rights, no
// en-passant target. Castling rights are meaningless without kings and
// rooks in place, but the C++ original to which this is ground-truthed
// leaves them set in the cleared state too, so this keeps that behaviour.
func New() *Position {
	p := &Position{}
	p.reset()
	return p
}

func (p *Position) reset() {
	for i := range p.Squares {
		p.Squares[i] = types.NoPiece
	}
	p.CastlingRights = types.AllCastling
	p.EpTarget = types.NoSquare
	p.FiftyMoveCount = 0
	p.Material = 0
}

// NewStarting returns the standard game-opening position.
func NewStarting() *Position {
	p := New()

	p.PieceBB[types.WhiteKing] = types.E1.Bitboard()
	p.PieceBB[types.BlackKing] = types.E8.Bitboard()
	p.PieceBB[types.WhiteRook] = types.A1.Bitboard() | types.H1.Bitboard()
	p.PieceBB[types.BlackRook] = types.A8.Bitboard() | types.H8.Bitboard()
	p.PieceBB[types.WhiteKnight] = types.B1.Bitboard() | types.G1.Bitboard()
	p.PieceBB[types.BlackKnight] = types.B8.Bitboard() | types.G8.Bitboard()
	p.PieceBB[types.WhiteBishop] = types.C1.Bitboard() | types.F1.Bitboard()
	p.PieceBB[types.BlackBishop] = types.C8.Bitboard() | types.F8.Bitboard()
	p.PieceBB[types.WhiteQueen] = types.D1.Bitboard()
	p.PieceBB[types.BlackQueen] = types.D8.Bitboard()

	var whitePawns, blackPawns types.Bitboard
	for file := 0; file < 8; file++ {
		whitePawns |= types.RankFileToSquare(1, file).Bitboard()
		blackPawns |= types.RankFileToSquare(6, file).Bitboard()
	}
	p.PieceBB[types.WhitePawn] = whitePawns
	p.PieceBB[types.BlackPawn] = blackPawns

	p.UpdateSides()

	layout := []struct {
		sq types.Square
		pc types.Piece
	}{
		{types.A1, types.WhiteRook}, {types.B1, types.WhiteKnight}, {types.C1, types.WhiteBishop},
		{types.D1, types.WhiteQueen}, {types.E1, types.WhiteKing}, {types.F1, types.WhiteBishop},
		{types.G1, types.WhiteKnight}, {types.H1, types.WhiteRook},
		{types.A8, types.BlackRook}, {types.B8, types.BlackKnight}, {types.C8, types.BlackBishop},
		{types.D8, types.BlackQueen}, {types.E8, types.BlackKing}, {types.F8, types.BlackBishop},
		{types.G8, types.BlackKnight}, {types.H8, types.BlackRook},
	}
	for _, l := range layout {
		p.Squares[l.sq] = l.pc
	}
	for file := 0; file < 8; file++ {
		p.Squares[types.RankFileToSquare(1, file)] = types.WhitePawn
		p.Squares[types.RankFileToSquare(6, file)] = types.BlackPawn
	}

	return p
}

// sideBitboard ORs together every one of side's piece bitboards.
func (p *Position) sideBitboard(side types.Side) types.Bitboard {
	return p.PieceBB[types.Kings[side]] |
		p.PieceBB[types.Rooks[side]] |
		p.PieceBB[types.Knights[side]] |
		p.PieceBB[types.Bishops[side]] |
		p.PieceBB[types.Queens[side]] |
		p.PieceBB[types.Pawns[side]]
}

// UpdateSides recomputes the two side aggregates and the whole-board union
// from the twelve piece bitboards. Called after bulk piece placement (the
// FEN deserializer's job); MakeMove maintains these incrementally instead.
func (p *Position) UpdateSides() {
	p.Sides[types.White] = p.sideBitboard(types.White)
	p.Sides[types.Black] = p.sideBitboard(types.Black)
	p.Board = p.Sides[types.White] | p.Sides[types.Black]
}

// PlacePiece sets a single square without touching any other, for use by
// the FEN deserializer while it is still assembling a position; callers
// must follow a sequence of these with UpdateSides.
func (p *Position) PlacePiece(piece types.Piece, sq types.Square) {
	p.PieceBB[piece] |= sq.Bitboard()
	p.Squares[sq] = piece
}

// ManuallyMovePiece relocates a piece outside of MakeMove's bookkeeping,
// again for the deserializer's use while building up a position.
func (p *Position) ManuallyMovePiece(piece types.Piece, from, to types.Square) {
	p.PieceBB[piece] |= to.Bitboard()
	p.PieceBB[piece] &^= from.Bitboard()
	p.Squares[from] = types.NoPiece
	p.Squares[to] = piece
}

// castlingMaskFor returns the castling-rights bits that a piece arriving on
// or leaving from bb's corner square(s) must clear: the rook has either
// moved away or been captured, either way that flank can no longer castle.
func castlingMaskFor(bb types.Bitboard) types.CastlingRights {
	var mask types.CastlingRights
	if bb&types.H1.Bitboard() != 0 {
		mask |= types.WhiteKingside
	}
	if bb&types.A1.Bitboard() != 0 {
		mask |= types.WhiteQueenside
	}
	if bb&types.H8.Bitboard() != 0 {
		mask |= types.BlackKingside
	}
	if bb&types.A8.Bitboard() != 0 {
		mask |= types.BlackQueenside
	}
	return mask
}

// signedBySide returns v for White, -v for Black, turning an unsigned
// magnitude into a material delta from White's point of view.
func signedBySide(side types.Side, v types.Eval) types.Eval {
	if side == types.Black {
		return -v
	}
	return v
}

// moveCommonFirstStage applies the part of every move that is the same
// regardless of capture: toggle the moving piece and side-aggregate bits,
// update the square array, and clear any stale en-passant target (MakeMove
// sets a fresh one afterward if this move is itself a two-square pawn push).
func (p *Position) moveCommonFirstStage(movingPiece types.Piece, side types.Side, source, dest types.Square, srcDestBB types.Bitboard) {
	p.PieceBB[movingPiece] ^= srcDestBB
	p.Sides[side] ^= srcDestBB
	p.Squares[source] = types.NoPiece
	p.Squares[dest] = movingPiece
	p.EpTarget = types.NoSquare
}

// moveCommonSecondStage applies the capture-dependent part of a move: if
// dest held an enemy piece, remove it and update material/castling rights;
// otherwise increment the halfmove clock and toggle whole_board (the
// capture branch only toggles the source bit on whole_board, since dest was
// already occupied before the move and remains occupied after it).
func (p *Position) moveCommonSecondStage(captured types.Piece, sideCapturing types.Side, destBB, srcBB, srcDestBB types.Bitboard) {
	if captured != types.NoPiece {
		p.PieceBB[captured] ^= destBB
		p.Sides[sideCapturing.Flip()] ^= destBB
		p.Board ^= srcBB
		p.FiftyMoveCount = 0
		p.Material += signedBySide(sideCapturing, types.PieceValue[captured])
		p.CastlingRights &^= castlingMaskFor(destBB)
	} else {
		p.Board ^= srcDestBB
		p.FiftyMoveCount++
	}
}

// SquareAttacked reports whether the side opposite to sideOnSquare attacks
// sq, assuming a piece of sideOnSquare stands there. It works by placing an
// imaginary attacker of each kind on sq and checking, via the same
// attack tables the generator uses, whether it would reach one of the
// opponent's real pieces of that kind.
func (p *Position) SquareAttacked(sq types.Square, sideOnSquare types.Side) bool {
	rank, file := sq.RankFile()
	other := sideOnSquare.Flip()

	if p.PieceBB[types.Pawns[other]]&attacks.PawnCaptures[sideOnSquare][sq] != 0 {
		return true
	}
	if p.PieceBB[types.Knights[other]]&attacks.KnightMoves[sq] != 0 {
		return true
	}
	if p.PieceBB[types.Kings[other]]&attacks.KingMoves[sq] != 0 {
		return true
	}

	rankFileAttackers := p.PieceBB[types.Queens[other]] | p.PieceBB[types.Rooks[other]]
	rankOcc := attacks.RankOccupancy6Bit(p.Board, rank)
	if rankFileAttackers&attacks.HorizSliderMoves[sq][rankOcc] != 0 {
		return true
	}
	fileOcc := attacks.FileOccupancy6Bit(p.Board, file)
	if rankFileAttackers&attacks.VertSliderMoves[sq][fileOcc] != 0 {
		return true
	}

	diagAttackers := p.PieceBB[types.Queens[other]] | p.PieceBB[types.Bishops[other]]
	a1h8Occ := attacks.A1H8Occupancy6Bit(p.Board, sq)
	if diagAttackers&attacks.DiagMovesA1H8[sq][a1h8Occ] != 0 {
		return true
	}
	a8h1Occ := attacks.A8H1Occupancy6Bit(p.Board, sq)
	if diagAttackers&attacks.DiagMovesA8H1[sq][a8h1Occ] != 0 {
		return true
	}

	return false
}

// DetectCheck reports whether side's own king currently stands on an
// attacked square.
func (p *Position) DetectCheck(side types.Side) bool {
	kingSquare := p.PieceBB[types.Kings[side]].FirstSetSquare()
	return p.SquareAttacked(kingSquare, side)
}

// castlingRookMove describes the rook relocation that accompanies a
// castling king move, keyed by the king's destination square.
type castlingRookMove struct {
	transitSquare types.Square // must not be attacked, or castling is illegal
	transitSide   types.Side
	rookFrom      types.Square
	rookTo        types.Square
	rookPiece     types.Piece
}

var castlingRookMoves = map[types.Square]castlingRookMove{
	types.G1: {types.F1, types.White, types.H1, types.F1, types.WhiteRook},
	types.C1: {types.D1, types.White, types.A1, types.D1, types.WhiteRook},
	types.G8: {types.F8, types.Black, types.H8, types.F8, types.BlackRook},
	types.C8: {types.D8, types.Black, types.A8, types.D8, types.BlackRook},
}

// MakeMove applies move to p, mutating it in place, and reports whether the
// result is legal: the move is always applied to completion (or, for
// castling, rejected before any mutation happens) and legality is decided
// by testing whether the mover's own king ends up in check. Callers that
// need to try a move and back out on illegality must have snapshotted p
// themselves beforehand.
func (p *Position) MakeMove(move types.Move) bool {
	movingPiece := move.Piece()
	captured := move.CapturedPiece()
	source := move.Source()
	dest := move.Destination()
	side := movingPiece.Side()

	sourceBB := source.Bitboard()
	destBB := dest.Bitboard()
	srcDestBB := sourceBB | destBB

	switch movingPiece {
	case types.WhitePawn, types.BlackPawn:
		p.moveCommonFirstStage(movingPiece, side, source, dest, srcDestBB)

		sourceRank, destRank := source.Rank(), dest.Rank()
		if util.Abs(destRank-sourceRank) == 2 {
			p.EpTarget = types.Square(int(source) + types.NextRankOffset[side])
		}

		if ep := move.EnPassant(); ep != types.NoPiece {
			capturedPawnSquare := types.Square(int(dest) - types.NextRankOffset[side])
			capturedPawnBB := capturedPawnSquare.Bitboard()
			other := side.Flip()

			p.PieceBB[types.Pawns[other]] ^= capturedPawnBB
			p.Sides[other] ^= capturedPawnBB
			p.Squares[capturedPawnSquare] = types.NoPiece
			p.Board ^= srcDestBB | capturedPawnBB

			p.Material += signedBySide(side, types.PawnValue[other])
		} else {
			p.moveCommonSecondStage(captured, side, destBB, sourceBB, srcDestBB)

			if promo := move.PromotionPiece(); promo != types.NoPiece {
				p.PieceBB[movingPiece] ^= destBB
				p.PieceBB[promo] ^= destBB
				p.Squares[dest] = promo

				p.Material += signedBySide(side, types.PieceValue[promo]-types.PawnValue[side])
			}
		}

		p.FiftyMoveCount = 0

	case types.WhiteKing, types.BlackKing:
		if move.Castling() != types.NoPiece {
			rookMove, ok := castlingRookMoves[dest]
			if !ok {
				log.Errorf("castling move with unrecognized destination %s", dest)
				return false
			}

			if p.DetectCheck(side) {
				return false
			}
			if p.SquareAttacked(rookMove.transitSquare, rookMove.transitSide) {
				return false
			}

			p.Squares[rookMove.rookFrom] = types.NoPiece
			p.Squares[rookMove.rookTo] = rookMove.rookPiece

			p.moveCommonFirstStage(movingPiece, side, source, dest, srcDestBB)
			p.moveCommonSecondStage(captured, side, destBB, sourceBB, srcDestBB)

			p.CastlingRights &^= types.AnyCastling[side]

			rookMask := rookMove.rookFrom.Bitboard() | rookMove.rookTo.Bitboard()
			p.PieceBB[rookMove.rookPiece] ^= rookMask
			p.Sides[side] ^= rookMask
			p.Board ^= rookMask
		} else {
			p.moveCommonFirstStage(movingPiece, side, source, dest, srcDestBB)
			p.moveCommonSecondStage(captured, side, destBB, sourceBB, srcDestBB)
			p.CastlingRights &^= types.AnyCastling[side]
		}

	case types.WhiteRook, types.BlackRook:
		p.moveCommonFirstStage(movingPiece, side, source, dest, srcDestBB)
		p.moveCommonSecondStage(captured, side, destBB, sourceBB, srcDestBB)
		p.CastlingRights &^= castlingMaskFor(sourceBB)

	default: // knight, bishop, queen
		p.moveCommonFirstStage(movingPiece, side, source, dest, srcDestBB)
		p.moveCommonSecondStage(captured, side, destBB, sourceBB, srcDestBB)
	}

	return !p.DetectCheck(side)
}

