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

// Piece enumerates the twelve colored pieces plus the empty-square
// sentinel. Values are chosen so the low bit carries color: every white
// piece constant is odd, every black piece constant is even (excluding
// None). This lets Piece.Side() be a single xor instead of a table probe.
type Piece uint8

// Piece constants. The numbering matches the original engine this was
// distilled from so that the bit trick in Side() holds.
const (
	NoPiece Piece = 0

	WhitePawn Piece = 0x1
	BlackPawn Piece = 0x2

	WhiteKing Piece = 0x3
	BlackKing Piece = 0x4

	WhiteRook Piece = 0x5
	BlackRook Piece = 0x6

	WhiteKnight Piece = 0x7
	BlackKnight Piece = 0x8

	WhiteBishop Piece = 0x9
	BlackBishop Piece = 0xa

	WhiteQueen Piece = 0xb
	BlackQueen Piece = 0xc
)

// Per-side lookup tables, indexed by Side (White=0, Black=1).
var (
	Pawns   = [2]Piece{WhitePawn, BlackPawn}
	Kings   = [2]Piece{WhiteKing, BlackKing}
	Rooks   = [2]Piece{WhiteRook, BlackRook}
	Knights = [2]Piece{WhiteKnight, BlackKnight}
	Bishops = [2]Piece{WhiteBishop, BlackBishop}
	Queens  = [2]Piece{WhiteQueen, BlackQueen}
)

// symbols is the ASCII glyph used to render each piece (upper case white,
// lower case black), indexed by Piece value.
var symbols = [13]byte{
	NoPiece:     '.',
	WhitePawn:   'P',
	BlackPawn:   'p',
	WhiteKing:   'K',
	BlackKing:   'k',
	WhiteRook:   'R',
	BlackRook:   'r',
	WhiteKnight: 'N',
	BlackKnight: 'n',
	WhiteBishop: 'B',
	BlackBishop: 'b',
	WhiteQueen:  'Q',
	BlackQueen:  'q',
}

// Symbol returns the ASCII glyph for the piece, '.' for NoPiece.
func (p Piece) Symbol() byte {
	return symbols[p]
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// Side returns which color this piece belongs to. White pieces are always
// odd, so this is a single xor against the low bit - callers must not call
// this on NoPiece.
func (p Piece) Side() Side {
	return Side(1 ^ (p & 1))
}

// SymbolToPiece maps a FEN/board-notation glyph back to a Piece.
func SymbolToPiece(symbol byte) Piece {
	for p, s := range symbols {
		if s == symbol {
			return Piece(p)
		}
	}
	return NoPiece
}
