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

package types

// Eval is a centipawn score, positive favouring White when stored on a
// Position, or favouring the side to move once returned from the
// evaluator or search.
type Eval int32

// MateScore is the magnitude of a detected mate, biased by search depth
// so that shallower mates are preferred over deeper ones. DrawScore is
// the flat evaluation of a stalemate or insufficient-material position.
const (
	MateScore Eval = 32000
	DrawScore Eval = 0
)

// Infinite is used to seed alpha-beta windows.
const Infinite Eval = MateScore + 1000

// PieceValue is the material worth of each piece in centipawns, indexed
// by Piece. Kings and NoPiece are worth zero: the king is never
// captured, so it never contributes to material.
var PieceValue = [13]Eval{
	NoPiece:     0,
	WhitePawn:   100,
	BlackPawn:   100,
	WhiteKing:   0,
	BlackKing:   0,
	WhiteRook:   500,
	BlackRook:   500,
	WhiteKnight: 320,
	BlackKnight: 320,
	WhiteBishop: 330,
	BlackBishop: 330,
	WhiteQueen:  900,
	BlackQueen:  900,
}

// PawnValue is PieceValue[Pawns[side]], named separately because the
// en-passant capture bookkeeping in Position.MakeMove needs the pawn's
// value without knowing which color captured.
var PawnValue = [2]Eval{PieceValue[WhitePawn], PieceValue[BlackPawn]}

// CastlingRights is a 4-bit mask over {white kingside, white queenside,
// black kingside, black queenside}.
type CastlingRights uint8

const (
	WhiteKingside  CastlingRights = 0x1
	WhiteQueenside CastlingRights = 0x2
	BlackKingside  CastlingRights = 0x4
	BlackQueenside CastlingRights = 0x8

	WhiteCastling CastlingRights = WhiteKingside | WhiteQueenside
	BlackCastling CastlingRights = BlackKingside | BlackQueenside
	AllCastling   CastlingRights = WhiteCastling | BlackCastling
)

// AnyCastling is indexed by Side and gives both of that side's rights
// bits, used to clear a side's castling rights in one mask when its king
// moves.
var AnyCastling = [2]CastlingRights{WhiteCastling, BlackCastling}

// KingRookStart and QueenRookStart name the rook's home square on the
// kingside/queenside for each side, indexed by Side.
var (
	KingRookStart  = [2]Square{H1, H8}
	QueenRookStart = [2]Square{A1, A8}
)

// KingHomeSquare is the square a side's king starts on, used to gate
// castling-move generation to only the home square.
var KingHomeSquare = [2]Square{E1, E8}
