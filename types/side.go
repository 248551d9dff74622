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

// Package types contains the small value types shared by every layer of the
// engine: sides, pieces, squares, bitboards and the packed move word. None of
// these carry behaviour beyond their own representation - the board model
// lives in the position package.
package types

// Side identifies the player to move.
type Side int8

// The two sides. Black is White flipped by its low bit.
const (
	White Side = 0
	Black Side = 1
)

// Flip returns the opposite side.
func (s Side) Flip() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// NextRankOffset is the square delta a pawn of this side travels moving one
// rank forward (+8 for White, -8 for Black).
var NextRankOffset = [2]int{8, -8}

// StartingPawnRank is the rank index pawns of this side begin on.
var StartingPawnRank = [2]int{1, 6}

// AboutToPromoteRank is the rank index from which a pawn's next push or
// capture lands on the promotion rank.
var AboutToPromoteRank = [2]int{6, 1}
