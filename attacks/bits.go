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

// Package attacks holds the precomputed per-square and per-occupancy move
// tables the generator and the attacker-detection routines read from, plus
// the six-bit occupancy projections used to index the slider tables.
package attacks

import "github.com/chesskit/oink/types"

// sixBitMask keeps the low six bits of a projected occupancy.
const sixBitMask = 0x3f

// RankOccupancy6Bit projects the occupancy of rank r onto six bits, dropping
// the a-file and h-file bits: a slider that reaches either edge stops there
// regardless of what, if anything, occupies it.
func RankOccupancy6Bit(board types.Bitboard, rank int) uint8 {
	rankByte := uint8(board >> uint(8*rank))
	return (rankByte >> 1) & sixBitMask
}

// FileOccupancy6Bit projects the occupancy of file f onto six bits via a
// portable eight-iteration loop: one bit of the file read out per square,
// packed into the low byte in rank order.
func FileOccupancy6Bit(board types.Bitboard, file int) uint8 {
	var fileByte uint8
	for rank := 0; rank < 8; rank++ {
		sq := types.RankFileToSquare(rank, file)
		if board&sq.Bitboard() != 0 {
			fileByte |= 1 << uint(rank)
		}
	}
	return (fileByte >> 1) & sixBitMask
}

// fileMagic collapses a file's occupancy byte (one bit per rank, spaced
// eight bits apart along the a1-h8 file line) onto the top byte in one
// multiply. It is the fast counterpart to FileOccupancy6Bit's portable loop;
// the two must agree for every one of the 256 possible file bytes, which
// attacks_test.go checks directly.
const fileMagic = 0x0102040810204080

// FileOccupancy6BitMagic is the magic-multiplier equivalent of
// FileOccupancy6Bit.
func FileOccupancy6BitMagic(board types.Bitboard, file int) uint8 {
	fileMask := types.Bitboard(0x0101010101010101) << uint(file)
	fileBits := uint64(board&fileMask) >> uint(file)
	// fileBits now has one bit per rank at position 8*rank; the magic
	// multiply sums the shifted copies so that bit k of the result's top
	// byte is the OR of every contributing bit at distance 56-8k, which
	// for a single set bit per rank collapses exactly onto rank k.
	top := uint8((fileBits * fileMagic) >> 56)
	return (top >> 1) & sixBitMask
}

// diagStartA1H8 returns the lowest-rank endpoint of the a1-h8 diagonal
// through (rank, file), together with the diagonal's length in squares.
func diagStartA1H8(rank, file int) (startRank, startFile, length int) {
	if rank >= file {
		return rank - file, 0, 8 - (rank - file)
	}
	return 0, file - rank, 8 - (file - rank)
}

// diagStartA8H1 returns the top-left endpoint of the a8-h1 diagonal through
// (rank, file), together with the diagonal's length in squares. Distance
// increases toward h1: rank decreases, file increases.
func diagStartA8H1(rank, file int) (startRank, startFile, length int) {
	sum := rank + file
	if sum < 8 {
		return sum, 0, sum + 1
	}
	return 7, sum - 7, 15 - sum
}

// A1H8Occupancy6Bit projects the occupancy of the a1-h8 diagonal through sq
// onto six bits: one bit per interior square (the two endpoints are
// discarded, same rule as the rank/file projections).
func A1H8Occupancy6Bit(board types.Bitboard, sq types.Square) uint8 {
	rank, file := sq.RankFile()
	startRank, startFile, length := diagStartA1H8(rank, file)
	return diagOccupancy6Bit(board, startRank, startFile, 1, 1, length)
}

// A8H1Occupancy6Bit projects the occupancy of the a8-h1 diagonal through sq
// onto six bits.
func A8H1Occupancy6Bit(board types.Bitboard, sq types.Square) uint8 {
	rank, file := sq.RankFile()
	startRank, startFile, length := diagStartA8H1(rank, file)
	return diagOccupancy6Bit(board, startRank, startFile, -1, 1, length)
}

// diagOccupancy6Bit walks a diagonal of the given length from (startRank,
// startFile) in steps of (rankStep, fileStep), building a bit-per-square
// occupancy byte, then discards the two endpoint bits (distance 0 and
// distance length-1) the same way RankOccupancy6Bit and FileOccupancy6Bit
// discard the a/h-file or 1st/8th rank bits. Diagonals shorter than eight
// squares have fewer interior distances than a rank or file does; the
// unused high bits of the returned value are always zero since no real
// square ever sets them.
func diagOccupancy6Bit(board types.Bitboard, startRank, startFile, rankStep, fileStep, length int) uint8 {
	var occ uint8
	r, f := startRank, startFile
	for d := 0; d < length && d < 8; d++ {
		sq := types.RankFileToSquare(r, f)
		if board&sq.Bitboard() != 0 {
			occ |= 1 << uint(d)
		}
		r += rankStep
		f += fileStep
	}
	if length < 2 {
		return 0
	}
	endpointMask := uint8(1) | (uint8(1) << uint(length-1))
	interior := occ &^ endpointMask
	return (interior >> 1) & sixBitMask
}
