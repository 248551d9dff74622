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

// Package evaluator classifies a position (normal, check, stalemate, mate,
// insufficient material) and turns that classification plus the position's
// running material total into a signed centipawn score from the point of
// view of the side to move.
package evaluator

import (
	"github.com/chesskit/oink/movegen"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// Classification is the coarse legal/terminal status of a position for a
// given side to move.
type Classification int

const (
	Normal Classification = iota
	Check
	Stalemate
	Mate
	InsufficientMaterial
)

func (c Classification) String() string {
	switch c {
	case Normal:
		return "normal"
	case Check:
		return "check"
	case Stalemate:
		return "stalemate"
	case Mate:
		return "mate"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}

// ClassifyPosition reports sideToMove's status in pos. It generates every
// pseudo-legal move and replays each against a scratch copy until one turns
// out legal, the same approach position.MakeMove itself uses to decide
// legality - there is no separate "is this square safe" short-circuit for
// the in-check cases, since a position with any legal reply is Normal or
// Check regardless of how many of its pseudo-legal moves are actually
// illegal.
func ClassifyPosition(pos *position.Position, sideToMove types.Side) Classification {
	if onlyKingsRemain(pos) {
		return InsufficientMaterial
	}

	inCheck := pos.DetectCheck(sideToMove)

	anyLegal := false
	for _, move := range movegen.GenerateAllMoves(pos, sideToMove) {
		scratch := *pos
		if scratch.MakeMove(move) {
			anyLegal = true
			break
		}
	}

	switch {
	case inCheck && !anyLegal:
		return Mate
	case !inCheck && !anyLegal:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Normal
	}
}

// onlyKingsRemain reports whether the board holds nothing but the two
// kings, the simplest of the draw-by-insufficient-material conditions.
func onlyKingsRemain(pos *position.Position) bool {
	nonKings := pos.Board &^ pos.PieceBB[types.WhiteKing] &^ pos.PieceBB[types.BlackKing]
	return nonKings == types.Empty
}

// Evaluate scores pos from sideToMove's point of view. depth is the search
// depth the caller still had remaining when it reached pos, used to bias a
// detected mate so that search prefers the shortest forced mate it can find
// over a longer one: a mate found nearer the root has more depth remaining
// and so scores further from zero. Without the bias every mate scores
// identically and alpha-beta has no reason to prefer the nearer one.
func Evaluate(pos *position.Position, sideToMove types.Side, depth int) types.Eval {
	switch ClassifyPosition(pos, sideToMove) {
	case Mate:
		return -(types.MateScore + types.Eval(depth))
	case Stalemate, InsufficientMaterial:
		return types.DrawScore
	}

	materialSign := types.Eval(1)
	if sideToMove == types.Black {
		materialSign = -1
	}
	return materialSign * pos.Material
}
