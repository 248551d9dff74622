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

// Package perft counts the leaves of a fixed-depth game tree, the standard
// way to regression-test a move generator and make-move implementation
// against known node counts. Count is the plain recursive walk; Detailed
// additionally classifies each leaf's originating move (capture, castle,
// promotion, en passant, check, mate); Parallel fans the root moves of one
// perft line across goroutines.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/movegen"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// Count returns the number of leaf positions reachable from pos in exactly
// depth plies, playing only legal moves.
func Count(pos *position.Position, side types.Side, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var leaves uint64
	for _, move := range movegen.GenerateAllMoves(pos, side) {
		test := *pos
		if test.MakeMove(move) {
			leaves += Count(&test, side.Flip(), depth-1)
		}
	}
	return leaves
}

// Results is the per-leaf classification breakdown Detailed accumulates.
// Every leaf is counted in TotalLeaves; the rest classify the move that led
// to it (a move can be, for instance, both a capture and a check).
type Results struct {
	TotalLeaves   uint64
	CaptureCount  uint64
	CastleCount   uint64
	PromotedCount uint64
	EpCount       uint64
	CheckCount    uint64
	MateCount     uint64
}

// Detailed returns the same leaf count as Count, classifying the move that
// produced each leaf. Classification only runs one ply above the leaves
// (depth == 1 on entry to detailedInner), the same place the node is
// actually being counted, rather than re-walking the tree a second time.
func Detailed(pos *position.Position, side types.Side, depth int) Results {
	var r Results
	detailedInner(pos, side, depth, &r)
	return r
}

func detailedInner(pos *position.Position, side types.Side, depth int, r *Results) {
	if depth == 0 {
		r.TotalLeaves++
		return
	}

	for _, move := range movegen.GenerateAllMoves(pos, side) {
		test := *pos
		if !test.MakeMove(move) {
			continue
		}

		if depth == 1 {
			if move.CapturedPiece() != types.NoPiece {
				r.CaptureCount++
			}
			if move.Castling() != types.NoPiece {
				r.CastleCount++
			}
			if move.PromotionPiece() != types.NoPiece {
				r.PromotedCount++
			}
			if move.EnPassant() != types.NoPiece {
				r.EpCount++
			}
			switch evaluator.ClassifyPosition(&test, side.Flip()) {
			case evaluator.Mate:
				r.MateCount++
				r.CheckCount++
			case evaluator.Check:
				r.CheckCount++
			}
		}

		detailedInner(&test, side.Flip(), depth-1, r)
	}
}

// Parallel runs Count independently for each of pos's legal root moves on
// its own goroutine, each with its own Position snapshot, and sums the
// results. Intended for the first ply of a deep perft line, where the
// number of root moves (dozens at most) caps how much concurrency is worth
// using.
func Parallel(ctx context.Context, pos *position.Position, side types.Side, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	moves := movegen.GenerateAllMoves(pos, side)
	totals := make([]uint64, len(moves))

	group, ctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		i, move := i, move
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			test := *pos
			if test.MakeMove(move) {
				totals[i] = Count(&test, side.Flip(), depth-1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	var sum uint64
	for _, t := range totals {
		sum += t
	}
	return sum, nil
}
