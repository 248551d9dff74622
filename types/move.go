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

// Move packs a chess move into a single 32-bit word:
//
//	[source:6][destination:6][piece:4][captured:4][special:4]
//
// "special" is overloaded: it holds the promotion piece when promoting,
// the moving king (White/Black) when castling (the destination square
// tells kingside from queenside), or the moving pawn (White/Black) when
// this is an en-passant capture. Promotions are never to a king or a
// pawn, so reading back which of the three applies is unambiguous from
// the stored piece value alone.
type Move uint32

const (
	moveDestinationOffset = 6
	movePieceOffset       = 12
	moveCapturedOffset    = 16
	moveSpecialOffset     = 20

	moveSourceMask      Move = 0x3f
	moveDestinationMask Move = 0x3f << moveDestinationOffset
	movePieceMask       Move = 0xf << movePieceOffset
	moveCapturedMask    Move = 0xf << moveCapturedOffset
	moveSpecialMask     Move = 0xf << moveSpecialOffset
)

// NoMove is the zero move, never produced by the generator.
const NoMove Move = 0

// Source returns the moving piece's origin square.
func (m Move) Source() Square {
	return Square(m & moveSourceMask)
}

// Destination returns the move's target square.
func (m Move) Destination() Square {
	return Square((m & moveDestinationMask) >> moveDestinationOffset)
}

// Piece returns the moving piece.
func (m Move) Piece() Piece {
	return Piece((m & movePieceMask) >> movePieceOffset)
}

// CapturedPiece returns the piece captured by this move, or NoPiece.
func (m Move) CapturedPiece() Piece {
	return Piece((m & moveCapturedMask) >> moveCapturedOffset)
}

// special returns the raw overloaded special field.
func (m Move) special() Piece {
	return Piece((m & moveSpecialMask) >> moveSpecialOffset)
}

// PromotionPiece returns the piece this move promotes to, or NoPiece if
// this isn't a promotion. A promotion's special field is never a king or
// a pawn, so anything else stored there is read back as the promoted
// piece.
func (m Move) PromotionPiece() Piece {
	s := m.special()
	switch s {
	case NoPiece, WhiteKing, BlackKing, WhitePawn, BlackPawn:
		return NoPiece
	default:
		return s
	}
}

// Castling returns the castling king (White/Black) if this move castles,
// or NoPiece.
func (m Move) Castling() Piece {
	s := m.special()
	if s == WhiteKing || s == BlackKing {
		return s
	}
	return NoPiece
}

// EnPassant returns the moving pawn (White/Black) if this move is an
// en-passant capture, or NoPiece.
func (m Move) EnPassant() Piece {
	s := m.special()
	if s == WhitePawn || s == BlackPawn {
		return s
	}
	return NoPiece
}

// SetSource stamps the source square.
func (m Move) SetSource(sq Square) Move {
	return (m &^ moveSourceMask) | Move(sq)
}

// SetDestination stamps the destination square.
func (m Move) SetDestination(sq Square) Move {
	return (m &^ moveDestinationMask) | (Move(sq) << moveDestinationOffset)
}

// SetPiece stamps the moving piece.
func (m Move) SetPiece(p Piece) Move {
	return (m &^ movePieceMask) | (Move(p) << movePieceOffset)
}

// SetCapturedPiece stamps the captured piece (or NoPiece).
func (m Move) SetCapturedPiece(p Piece) Move {
	return (m &^ moveCapturedMask) | (Move(p) << moveCapturedOffset)
}

// setSpecial stamps the raw overloaded special field. SetPromotionPiece,
// SetCastling and SetEnPassant all funnel through here - it is the
// caller's responsibility that at most one of those attributes applies
// to a given move.
func (m Move) setSpecial(p Piece) Move {
	return (m &^ moveSpecialMask) | (Move(p) << moveSpecialOffset)
}

// SetPromotionPiece marks this move as promoting to p.
func (m Move) SetPromotionPiece(p Piece) Move {
	return m.setSpecial(p)
}

// SetCastling marks this move as the given side's king castling.
func (m Move) SetCastling(king Piece) Move {
	return m.setSpecial(king)
}

// SetEnPassant marks this move as the given side's pawn capturing
// en-passant.
func (m Move) SetEnPassant(pawn Piece) Move {
	return m.setSpecial(pawn)
}

// String renders the move in coordinate notation (e2e4, a7a8q), or the
// castling literals (O-O, O-O-O).
func (m Move) String() string {
	if m.Castling() != NoPiece {
		switch m.Destination() {
		case G1, G8:
			return "O-O"
		case C1, C8:
			return "O-O-O"
		}
	}
	s := m.Source().String() + m.Destination().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += string(toLowerSymbol(promo))
	}
	return s
}

func toLowerSymbol(p Piece) byte {
	sym := p.Symbol()
	if sym >= 'A' && sym <= 'Z' {
		return sym - 'A' + 'a'
	}
	return sym
}
