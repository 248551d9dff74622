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

package attacks

import "github.com/chesskit/oink/types"

// RankMasks and FileMasks hold every square of a given rank or file.
var (
	RankMasks [8]types.Bitboard
	FileMasks [8]types.Bitboard
)

// DiagMasksA1H8 and DiagMasksA8H1 hold every other square on the diagonal
// through a given square, excluding the square itself.
var (
	DiagMasksA1H8 [64]types.Bitboard
	DiagMasksA8H1 [64]types.Bitboard
)

// KnightMoves and KingMoves are empty-board attack sets per square.
var (
	KnightMoves [64]types.Bitboard
	KingMoves   [64]types.Bitboard
)

// PawnMoves holds non-capture push destinations (including the double push
// from a pawn's starting rank), indexed by side then source square. It is
// empty for squares on the far rank, where no pawn of that side can stand.
// PawnCaptures holds the diagonal capture destinations.
var (
	PawnMoves    [2][64]types.Bitboard
	PawnCaptures [2][64]types.Bitboard
)

// HorizSliderMoves and VertSliderMoves are rook/queen attack sets indexed by
// source square and the six-bit occupancy of that square's rank or file.
// DiagMovesA1H8 and DiagMovesA8H1 are the bishop/queen equivalent for the two
// diagonal directions through the square.
var (
	HorizSliderMoves [64][64]types.Bitboard
	VertSliderMoves  [64][64]types.Bitboard
	DiagMovesA1H8    [64][64]types.Bitboard
	DiagMovesA8H1    [64][64]types.Bitboard
)

var initialized bool

// InitializeConstants populates every table in this package. It is
// idempotent and must run before any other attacks/movegen/position
// operation; callers normally never invoke it directly, since package
// position's init imports attacks and triggers it once at program start.
func InitializeConstants() {
	if initialized {
		return
	}
	initRankFileMasks()
	initDiagMasks()
	initKnightAndKingMoves()
	initPawnMoves()
	initSliderTables()
	initialized = true
}

func initRankFileMasks() {
	for i := 0; i < 8; i++ {
		var rank, file types.Bitboard
		for j := 0; j < 8; j++ {
			rank |= types.RankFileToSquare(i, j).Bitboard()
			file |= types.RankFileToSquare(j, i).Bitboard()
		}
		RankMasks[i] = rank
		FileMasks[i] = file
	}
}

func initDiagMasks() {
	for sq := types.A1; sq <= types.H8; sq++ {
		rank, file := sq.RankFile()

		startRank, startFile, length := diagStartA1H8(rank, file)
		DiagMasksA1H8[sq] = diagLineMask(startRank, startFile, 1, 1, length, sq)

		startRank, startFile, length = diagStartA8H1(rank, file)
		DiagMasksA8H1[sq] = diagLineMask(startRank, startFile, -1, 1, length, sq)
	}
}

func diagLineMask(startRank, startFile, rankStep, fileStep, length int, exclude types.Square) types.Bitboard {
	var mask types.Bitboard
	r, f := startRank, startFile
	for d := 0; d < length; d++ {
		sq := types.RankFileToSquare(r, f)
		if sq != exclude {
			mask |= sq.Bitboard()
		}
		r += rankStep
		f += fileStep
	}
	return mask
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func initKnightAndKingMoves() {
	for sq := types.A1; sq <= types.H8; sq++ {
		rank, file := sq.RankFile()
		KnightMoves[sq] = destinationsFromOffsets(rank, file, knightOffsets[:])
		KingMoves[sq] = destinationsFromOffsets(rank, file, kingOffsets[:])
	}
}

func destinationsFromOffsets(rank, file int, offsets [][2]int) types.Bitboard {
	var dest types.Bitboard
	for _, o := range offsets {
		r, f := rank+o[0], file+o[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		dest |= types.RankFileToSquare(r, f).Bitboard()
	}
	return dest
}

func initPawnMoves() {
	for _, side := range []types.Side{types.White, types.Black} {
		pushRank := types.NextRankOffset[side] / 8 // +1 for White, -1 for Black
		for sq := types.A1; sq <= types.H8; sq++ {
			rank, file := sq.RankFile()

			farRank := 7
			if side == types.Black {
				farRank = 0
			}
			if rank == farRank {
				continue
			}

			var push types.Bitboard
			oneStep := rank + pushRank
			push |= types.RankFileToSquare(oneStep, file).Bitboard()
			if rank == types.StartingPawnRank[side] {
				twoStep := rank + 2*pushRank
				push |= types.RankFileToSquare(twoStep, file).Bitboard()
			}
			PawnMoves[side][sq] = push

			var captures types.Bitboard
			for _, df := range []int{-1, 1} {
				f := file + df
				if f < 0 || f > 7 {
					continue
				}
				captures |= types.RankFileToSquare(oneStep, f).Bitboard()
			}
			PawnCaptures[side][sq] = captures
		}
	}
}

func initSliderTables() {
	for sq := types.A1; sq <= types.H8; sq++ {
		rank, file := sq.RankFile()
		for occ := 0; occ < 64; occ++ {
			o := uint8(occ)

			HorizSliderMoves[sq][occ] = scanLineAttacks(rank, 0, 0, 1, 8, file, o)
			VertSliderMoves[sq][occ] = scanLineAttacks(0, file, 1, 0, 8, rank, o)

			startRank, startFile, length := diagStartA1H8(rank, file)
			DiagMovesA1H8[sq][occ] = scanLineAttacks(startRank, startFile, 1, 1, length, rank-startRank, o)

			startRank, startFile, length = diagStartA8H1(rank, file)
			DiagMovesA8H1[sq][occ] = scanLineAttacks(startRank, startFile, -1, 1, length, startRank-rank, o)
		}
	}
}

// scanLineAttacks walks a line of the given length from (startRank,
// startFile) in steps of (rankStep, fileStep), starting at distance
// sourceDist, and returns every square reached before and including the
// first blocker in each direction. occ6 encodes interior occupancy: bit i
// means distance i+1 is occupied. The two endpoints (distance 0 and
// distance length-1) always stop the scan but never count as blockers
// themselves, matching the six-bit projections in bits.go.
func scanLineAttacks(startRank, startFile, rankStep, fileStep, length, sourceDist int, occ6 uint8) types.Bitboard {
	squareAt := func(d int) types.Square {
		return types.RankFileToSquare(startRank+d*rankStep, startFile+d*fileStep)
	}
	blockedAt := func(d int) bool {
		return d >= 1 && d <= 6 && (occ6>>uint(d-1))&1 == 1
	}

	var attack types.Bitboard
	for d := sourceDist + 1; d < length; d++ {
		attack |= squareAt(d).Bitboard()
		if blockedAt(d) || d == length-1 {
			break
		}
	}
	for d := sourceDist - 1; d >= 0; d-- {
		attack |= squareAt(d).Bitboard()
		if blockedAt(d) || d == 0 {
			break
		}
	}
	return attack
}
