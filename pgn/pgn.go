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

// Package pgn writes a minimal movetext game record: move number on
// White's turn, short algebraic body, check/mate/draw suffix.
package pgn

import (
	"fmt"
	"io"

	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/types"
)

var suffix = map[evaluator.Classification]string{
	evaluator.Normal:               "",
	evaluator.Check:                "+",
	evaluator.Mate:                 "#",
	evaluator.Stalemate:            " 1/2-1/2",
	evaluator.InsufficientMaterial: " 1/2-1/2",
}

// Writer accumulates movetext onto an io.Writer, one call per ply.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that appends movetext to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMove appends one ply's movetext: the move number and a dot
// before White's move, the move body, the position's resulting
// classification suffix, and a trailing newline after Black's move.
func (pw *Writer) WriteMove(move types.Move, moveNum int, side types.Side, class evaluator.Classification) error {
	if side == types.White {
		if _, err := fmt.Fprintf(pw.w, "%d. ", moveNum); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(pw.w, body(move)); err != nil {
		return err
	}
	if _, err := io.WriteString(pw.w, suffix[class]); err != nil {
		return err
	}
	if _, err := io.WriteString(pw.w, " "); err != nil {
		return err
	}
	if side == types.Black {
		if _, err := io.WriteString(pw.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// body renders the move's algebraic body: castling is identified by
// destination file the same way the console writer does it, a moving
// non-pawn piece gets an uppercase letter prefix, and captures use 'x'
// in place of the usual dash.
func body(move types.Move) string {
	if move.Castling() != types.NoPiece {
		if move.Destination().File() == 2 {
			return "O-O-O"
		}
		return "O-O"
	}

	var out []byte
	if piece := move.Piece(); piece != types.WhitePawn && piece != types.BlackPawn {
		out = append(out, upper(piece.Symbol()))
	}
	out = append(out, []byte(move.Source().String())...)
	if move.CapturedPiece() != types.NoPiece {
		out = append(out, 'x')
	} else {
		out = append(out, '-')
	}
	out = append(out, []byte(move.Destination().String())...)
	if promo := move.PromotionPiece(); promo != types.NoPiece {
		out = append(out, '=', upper(promo.Symbol()))
	}
	return string(out)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
