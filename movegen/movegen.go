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

// Package movegen produces the pseudo-legal moves available to a side in a
// position. "Pseudo-legal" means every move respects how its piece moves and
// who occupies the destination, but not whether it leaves the mover's own
// king in check - position.MakeMove rejects those after the fact. The one
// exception is castling through check, which MakeMove also rejects but which
// the king generator deliberately doesn't pre-filter either, matching the
// split of responsibility in the position package.
package movegen

import (
	"github.com/chesskit/oink/attacks"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// castling transit masks: the squares that must be empty between king and
// rook for that flank's castle to even be attempted. Attacked-square checks
// happen later, in position.MakeMove.
const (
	whiteKingsideCastlingMask  = types.Bitboard(1)<<types.F1 | types.Bitboard(1)<<types.G1
	whiteQueensideCastlingMask = types.Bitboard(1)<<types.B1 | types.Bitboard(1)<<types.C1 | types.Bitboard(1)<<types.D1
	blackKingsideCastlingMask  = types.Bitboard(1)<<types.F8 | types.Bitboard(1)<<types.G8
	blackQueensideCastlingMask = types.Bitboard(1)<<types.B8 | types.Bitboard(1)<<types.C8 | types.Bitboard(1)<<types.D8
)

var castlingTransitMask = [2][2]types.Bitboard{
	types.White: {whiteKingsideCastlingMask, whiteQueensideCastlingMask},
	types.Black: {blackKingsideCastlingMask, blackQueensideCastlingMask},
}

var castlingDestination = [2][2]types.Square{
	types.White: {types.G1, types.C1},
	types.Black: {types.G8, types.C8},
}

var castlingRight = [2][2]types.CastlingRights{
	types.White: {types.WhiteKingside, types.WhiteQueenside},
	types.Black: {types.BlackKingside, types.BlackQueenside},
}

// generateFromDestinations appends one move per set bit of destinations,
// filling in the captured piece from whatever sits on that square.
func generateFromDestinations(moves []types.Move, base types.Move, destinations types.Bitboard, p *position.Position) []types.Move {
	for destinations != 0 {
		var destSq types.Square
		destinations, destSq = destinations.PopFirstSet()
		m := base.SetDestination(destSq).SetCapturedPiece(p.Squares[destSq])
		moves = append(moves, m)
	}
	return moves
}

// promotionPieces lists the four pieces a pawn can promote to, per side.
var promotionPieces = [2][4]types.Piece{
	types.White: {types.WhiteQueen, types.WhiteRook, types.WhiteKnight, types.WhiteBishop},
	types.Black: {types.BlackQueen, types.BlackRook, types.BlackKnight, types.BlackBishop},
}

// generateFromDestinationsWithPromotion appends four moves (one per
// promotion piece) for each set bit of destinations.
func generateFromDestinationsWithPromotion(moves []types.Move, base types.Move, destinations types.Bitboard, p *position.Position, side types.Side) []types.Move {
	for destinations != 0 {
		var destSq types.Square
		destinations, destSq = destinations.PopFirstSet()
		withDest := base.SetDestination(destSq).SetCapturedPiece(p.Squares[destSq])
		for _, promo := range promotionPieces[side] {
			moves = append(moves, withDest.SetPromotionPiece(promo))
		}
	}
	return moves
}

// GenerateKingMoves appends side's king's non-castling moves and, from its
// home square with the matching right still held and the transit squares
// empty, its castling moves.
func GenerateKingMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	king := p.PieceBB[types.Kings[side]]
	if king == types.Empty {
		return moves
	}
	source := king.FirstSetSquare()
	base := types.NoMove.SetPiece(types.Kings[side]).SetSource(source)

	destinations := attacks.KingMoves[source] &^ p.Sides[side]
	moves = generateFromDestinations(moves, base, destinations, p)

	if source != types.KingHomeSquare[side] {
		return moves
	}

	for flank := 0; flank < 2; flank++ {
		if p.CastlingRights&castlingRight[side][flank] == 0 {
			continue
		}
		if p.Board&castlingTransitMask[side][flank] != 0 {
			continue
		}
		m := base.SetDestination(castlingDestination[side][flank]).SetCastling(types.Kings[side])
		moves = append(moves, m)
	}

	return moves
}

// GenerateKnightMoves appends side's pseudo-legal knight moves. Knights
// never threaten their own side's pieces or the enemy king, which can never
// legally be captured.
func GenerateKnightMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	knights := p.PieceBB[types.Knights[side]]
	notOtherKing := ^p.PieceBB[types.Kings[side.Flip()]]
	notMySide := ^p.Sides[side]

	for knights != 0 {
		var source types.Square
		knights, source = knights.PopFirstSet()
		base := types.NoMove.SetPiece(types.Knights[side]).SetSource(source)
		destinations := attacks.KnightMoves[source] & notMySide & notOtherKing
		moves = generateFromDestinations(moves, base, destinations, p)
	}
	return moves
}

// GeneratePawnMoves appends side's pushes, captures, en-passant capture (if
// any) and promotions. attacks.PawnMoves encodes both the one- and
// two-square destinations for a pawn still on its starting rank, but a
// blocked single-push square also blocks the double push even when the
// square beyond it is empty - a pawn can't jump over an occupied square -
// so that case is masked out explicitly rather than left to attacks.PawnMoves
// &^ board, which only removes a destination when the destination itself is
// occupied.
func GeneratePawnMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	pawns := p.PieceBB[types.Pawns[side]]
	otherSide := p.Sides[side.Flip()]
	notOtherKing := ^p.PieceBB[types.Kings[side.Flip()]]

	for pawns != 0 {
		var source types.Square
		pawns, source = pawns.PopFirstSet()
		base := types.NoMove.SetPiece(types.Pawns[side]).SetSource(source)

		rank := source.Rank()
		pushes := attacks.PawnMoves[side][source]
		if rank == types.StartingPawnRank[side] {
			oneAhead := types.Square(int(source) + types.NextRankOffset[side])
			if p.Board&oneAhead.Bitboard() != 0 {
				pushes = types.Empty
			}
		}

		destinations := pushes &^ p.Board
		destinations |= attacks.PawnCaptures[side][source] & otherSide & notOtherKing

		if rank == types.AboutToPromoteRank[side] {
			moves = generateFromDestinationsWithPromotion(moves, base, destinations, p, side)
			continue
		}

		moves = generateFromDestinations(moves, base, destinations, p)

		if p.EpTarget == types.NoSquare {
			continue
		}
		epBB := attacks.PawnCaptures[side][source] & p.EpTarget.Bitboard()
		if epBB != 0 {
			m := base.SetDestination(p.EpTarget).
				SetCapturedPiece(types.Pawns[side.Flip()]).
				SetEnPassant(types.Pawns[side])
			moves = append(moves, m)
		}
	}
	return moves
}

// generateRankFileSliderMoves appends moves for every piece set in movers,
// using the rook/queen horizontal and vertical slider tables.
func generateRankFileSliderMoves(moves []types.Move, p *position.Position, side types.Side, piece types.Piece, movers types.Bitboard) []types.Move {
	notOtherKing := ^p.PieceBB[types.Kings[side.Flip()]]
	notMySide := ^p.Sides[side]

	for movers != 0 {
		var source types.Square
		movers, source = movers.PopFirstSet()
		base := types.NoMove.SetPiece(piece).SetSource(source)

		rank, file := source.RankFile()
		rankOcc := attacks.RankOccupancy6Bit(p.Board, rank)
		fileOcc := attacks.FileOccupancy6Bit(p.Board, file)
		destinations := (attacks.HorizSliderMoves[source][rankOcc] | attacks.VertSliderMoves[source][fileOcc]) & notMySide & notOtherKing
		moves = generateFromDestinations(moves, base, destinations, p)
	}
	return moves
}

// generateDiagonalSliderMoves appends moves for every piece set in movers,
// using the bishop/queen diagonal slider tables.
func generateDiagonalSliderMoves(moves []types.Move, p *position.Position, side types.Side, piece types.Piece, movers types.Bitboard) []types.Move {
	notOtherKing := ^p.PieceBB[types.Kings[side.Flip()]]
	notMySide := ^p.Sides[side]

	for movers != 0 {
		var source types.Square
		movers, source = movers.PopFirstSet()
		base := types.NoMove.SetPiece(piece).SetSource(source)

		a1h8Occ := attacks.A1H8Occupancy6Bit(p.Board, source)
		a8h1Occ := attacks.A8H1Occupancy6Bit(p.Board, source)
		destinations := (attacks.DiagMovesA1H8[source][a1h8Occ] | attacks.DiagMovesA8H1[source][a8h1Occ]) & notMySide & notOtherKing
		moves = generateFromDestinations(moves, base, destinations, p)
	}
	return moves
}

// GenerateRookMoves appends side's pseudo-legal rook moves.
func GenerateRookMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	return generateRankFileSliderMoves(moves, p, side, types.Rooks[side], p.PieceBB[types.Rooks[side]])
}

// GenerateBishopMoves appends side's pseudo-legal bishop moves.
func GenerateBishopMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	return generateDiagonalSliderMoves(moves, p, side, types.Bishops[side], p.PieceBB[types.Bishops[side]])
}

// GenerateQueenMoves appends side's pseudo-legal queen moves: queens move
// like rooks and bishops combined, so this runs both slider scans against
// the same piece bitboard.
func GenerateQueenMoves(moves []types.Move, p *position.Position, side types.Side) []types.Move {
	queens := p.PieceBB[types.Queens[side]]
	moves = generateRankFileSliderMoves(moves, p, side, types.Queens[side], queens)
	moves = generateDiagonalSliderMoves(moves, p, side, types.Queens[side], queens)
	return moves
}

// GenerateAllMoves returns every pseudo-legal move available to side in p.
func GenerateAllMoves(p *position.Position, side types.Side) []types.Move {
	moves := make([]types.Move, 0, 48)
	moves = GeneratePawnMoves(moves, p, side)
	moves = GenerateQueenMoves(moves, p, side)
	moves = GenerateBishopMoves(moves, p, side)
	moves = GenerateRookMoves(moves, p, side)
	moves = GenerateKnightMoves(moves, p, side)
	moves = GenerateKingMoves(moves, p, side)
	return moves
}
