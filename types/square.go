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

// Square is a board coordinate on [0, 63], laid out a1=0, h1=7, a8=56,
// h8=63. NoSquare is the "nowhere" sentinel (e.g. an absent en-passant
// target).
type Square int8

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = 64

// Named squares, used throughout castling and en-passant bookkeeping.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Rank returns the rank index [0, 7] of the square (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// File returns the file index [0, 7] of the square (0 = file a).
func (sq Square) File() int {
	return int(sq) % 8
}

// RankFile splits a square into its rank and file indices in one call.
func (sq Square) RankFile() (rank, file int) {
	return sq.Rank(), sq.File()
}

// RankFileToSquare packs a rank/file pair back into a square index.
func RankFileToSquare(rank, file int) Square {
	return Square(file + rank*8)
}

// Bitboard returns the single-bit board with only this square set.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(sq)
}

// fileLetters/rankDigits back the coordinate-notation String() method.
const fileLetters = "abcdefgh"
const rankDigits = "12345678"

func (sq Square) String() string {
	if sq == NoSquare || sq < 0 || sq > H8 {
		return "-"
	}
	rank, file := sq.RankFile()
	return string([]byte{fileLetters[file], rankDigits[rank]})
}

// ParseSquare reads a two-character coordinate ("e4") into a Square, or
// NoSquare if it isn't one.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return RankFileToSquare(rank, file)
}
