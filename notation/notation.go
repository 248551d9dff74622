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

// Package notation renders moves and positions as text: a minimal
// coordinate string for protocol use, a longer algebraic-flavoured form
// for human-readable output, and a rank-major ASCII board.
package notation

import (
	"fmt"
	"strings"

	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// Coord renders a move as the bare coordinate string a protocol adapter
// exchanges with a GUI: "e2e4", "a7a8q", "O-O", "O-O-O". Castling moves
// are identified by destination file, not by flank lookup tables, the
// same way the teacher's own display code tells them apart.
func Coord(move types.Move) string {
	if move.Castling() != types.NoPiece {
		if fileOf(move.Destination()) == 2 {
			return "O-O-O"
		}
		return "O-O"
	}

	var b strings.Builder
	b.WriteString(move.Source().String())
	b.WriteString(move.Destination().String())
	if promo := move.PromotionPiece(); promo != types.NoPiece {
		b.WriteByte(lower(promo.Symbol()))
	}
	return b.String()
}

// suffix mirrors the position-characteristic suffix table the console
// and PGN writers both key off: none, check, mate, stalemate, draw by
// insufficient material.
var suffix = map[evaluator.Classification]string{
	evaluator.Normal:               "",
	evaluator.Check:                "+",
	evaluator.Mate:                 "#",
	evaluator.Stalemate:            " 1/2-1/2 (stalemate)",
	evaluator.InsufficientMaterial: " 1/2-1/2 (insufficient material)",
}

// Long renders a move the way a human-readable game log does: move
// number, side-to-move prefix, a short algebraic body, the resulting
// position's check/mate/draw suffix, and a signed evaluation in pawns.
func Long(move types.Move, moveNum int, side types.Side, class evaluator.Classification, eval types.Eval) string {
	prefix := ""
	if side == types.Black {
		prefix = ".."
	}
	pawns := float64(eval) / float64(types.PieceValue[types.WhitePawn])
	return fmt.Sprintf("%d.%s %s%s (%+.2f)", moveNum, prefix, body(move), suffix[class], pawns)
}

func body(move types.Move) string {
	if move.Castling() != types.NoPiece {
		if fileOf(move.Destination()) == 2 {
			return "O-O-O"
		}
		return "O-O"
	}

	var b strings.Builder
	if piece := move.Piece(); piece != types.WhitePawn && piece != types.BlackPawn {
		b.WriteByte(upper(piece.Symbol()))
	}
	b.WriteString(move.Source().String())
	if move.CapturedPiece() != types.NoPiece {
		b.WriteByte('x')
	} else {
		b.WriteByte('-')
	}
	b.WriteString(move.Destination().String())
	if move.EnPassant() != types.NoPiece {
		b.WriteString("ep")
	} else if promo := move.PromotionPiece(); promo != types.NoPiece {
		b.WriteByte('=')
		b.WriteByte(upper(promo.Symbol()))
	}
	return b.String()
}

// Board renders the 64 squares rank 8 down to rank 1, files a to h, one
// character per square and no separators, matching the teacher's
// fixed-width console dump.
func Board(pos *position.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := types.RankFileToSquare(rank, file)
			b.WriteByte(pos.Squares[sq].Symbol())
		}
		if rank > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func fileOf(sq types.Square) int {
	return int(sq.File())
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
