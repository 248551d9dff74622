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

// Package search implements the two depth-bounded tree searches the engine
// offers: Minimax, a plain full-width recursive negamax kept around as a
// correctness oracle, and AlphaBeta, the same tree pruned with a window.
// Both snapshot the position by value before trying each move and discard
// the snapshot afterward rather than maintaining an incremental undo stack -
// the same trade the position package's MakeMove itself makes.
package search

import (
	"github.com/chesskit/oink/assert"
	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/logging"
	"github.com/chesskit/oink/movegen"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

var log = logging.GetSearchLog()

// Result is the move chosen at the root and the score it was assigned, in
// the negamax convention: positive always favors the side to move at the
// node the Result describes.
type Result struct {
	Move types.Move
	Eval types.Eval
}

// Minimax searches depth plies deep with no pruning, evaluating leaves (and
// any node with no legal replies, whatever its depth) through evaluator.Evaluate.
// It exists to cross-check AlphaBeta during development: same tree, same
// move, same score, far more nodes visited.
func Minimax(pos *position.Position, sideToMove types.Side, depth int) Result {
	best := Result{Eval: -types.Infinite}

	moves := movegen.GenerateAllMoves(pos, sideToMove)
	for _, move := range moves {
		test := *pos
		if !test.MakeMove(move) {
			continue
		}

		var childEval types.Eval
		if depth == 1 {
			childEval = -evaluator.Evaluate(&test, sideToMove.Flip(), depth)
		} else {
			childEval = -Minimax(&test, sideToMove.Flip(), depth-1).Eval
		}

		if childEval > best.Eval {
			best.Eval = childEval
			best.Move = move
		}
	}

	if best.Eval == -types.Infinite {
		// No legal moves: this node is mate, stalemate, or a draw by
		// insufficient material regardless of how much depth is left.
		best.Eval = evaluator.Evaluate(pos, sideToMove, depth)
	}

	return best
}

// AlphaBeta searches depth plies deep within the [alpha, beta] window,
// pruning any branch that proves it can't affect the result at the parent.
// Callers making the initial call from the root should pass
// alpha=-types.Infinite, beta=types.Infinite.
func AlphaBeta(pos *position.Position, sideToMove types.Side, depth int, alpha, beta types.Eval) Result {
	best := Result{Eval: alpha}
	anyLegal := false

	moves := movegen.GenerateAllMoves(pos, sideToMove)
	for _, move := range moves {
		test := *pos
		if !test.MakeMove(move) {
			continue
		}
		if assert.DEBUG {
			assert.Assert(move.CapturedPiece() != types.WhiteKing && move.CapturedPiece() != types.BlackKing,
				"generated move captures a king: %s", move)
		}

		var childEval types.Eval
		if depth == 1 {
			childEval = -evaluator.Evaluate(&test, sideToMove.Flip(), depth)
		} else {
			childEval = -AlphaBeta(&test, sideToMove.Flip(), depth-1, -beta, -best.Eval).Eval
		}

		if childEval >= beta {
			log.Debugf("beta cutoff at depth %d on %s (%d >= %d)", depth, move, childEval, beta)
			return Result{Move: move, Eval: beta}
		}

		if childEval > best.Eval || !anyLegal {
			best.Eval = childEval
			best.Move = move
		}
		anyLegal = true
	}

	if !anyLegal {
		best.Eval = evaluator.Evaluate(pos, sideToMove, depth)
	}

	return best
}
