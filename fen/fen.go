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

// Package fen parses the standard one-line board notation (piece
// placement, side to move, castling rights, en-passant target, halfmove
// clock, fullmove number) into a position.Position. No partial Position is
// ever handed back: a parse failure returns a ParseError naming the
// offending token instead.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/types"
)

// ParseError names the field and token that failed to parse.
type ParseError struct {
	Field string
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: bad %s %q: %s", e.Field, e.Token, e.Msg)
}

var pieceLetters = map[byte]types.Piece{
	'P': types.WhitePawn, 'N': types.WhiteKnight, 'B': types.WhiteBishop,
	'R': types.WhiteRook, 'Q': types.WhiteQueen, 'K': types.WhiteKing,
	'p': types.BlackPawn, 'n': types.BlackKnight, 'b': types.BlackBishop,
	'r': types.BlackRook, 'q': types.BlackQueen, 'k': types.BlackKing,
}

// Result bundles the parsed Position with the two fields that live outside
// it: the side to move and the fullmove counter, which the game-record
// layer needs but the Position itself has no field for.
type Result struct {
	Position    *position.Position
	SideToMove  types.Side
	FullmoveNum int
}

// Parse reads one line of board notation and returns the resulting
// position, or a *ParseError.
func Parse(fenLine string) (*Result, error) {
	fields := strings.Fields(fenLine)
	if len(fields) < 1 {
		return nil, &ParseError{Field: "record", Token: fenLine, Msg: "empty"}
	}
	for len(fields) < 6 {
		fields = append(fields, "-")
	}

	pos := position.New()
	pos.CastlingRights = 0
	pos.EpTarget = types.NoSquare

	if err := parseBoard(pos, fields[0]); err != nil {
		return nil, err
	}

	side, err := parseSideToMove(fields[1])
	if err != nil {
		return nil, err
	}

	if err := parseCastlingRights(pos, fields[2]); err != nil {
		return nil, err
	}

	if err := parseEpTarget(pos, fields[3]); err != nil {
		return nil, err
	}

	if fields[4] != "-" {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &ParseError{Field: "halfmove clock", Token: fields[4], Msg: "not a non-negative integer"}
		}
		pos.FiftyMoveCount = n
	}

	fullmove := 1
	if fields[5] != "-" {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &ParseError{Field: "fullmove number", Token: fields[5], Msg: "not a positive integer"}
		}
		fullmove = n
	}

	pos.UpdateSides()

	return &Result{Position: pos, SideToMove: side, FullmoveNum: fullmove}, nil
}

// parseBoard fills pos's squares from the "/"-separated, rank-8-first
// placement field, where a digit 1-8 skips that many empty squares.
func parseBoard(pos *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: "piece placement", Token: field, Msg: "expected 8 ranks separated by '/'"}
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceLetters[c]
				if !ok {
					return &ParseError{Field: "piece placement", Token: string(c), Msg: "not a piece letter or digit"}
				}
				if file > 7 {
					return &ParseError{Field: "piece placement", Token: rankStr, Msg: "rank overflows past the h-file"}
				}
				pos.PlacePiece(piece, types.RankFileToSquare(rank, file))
				file++
			}
		}
		if file != 8 {
			return &ParseError{Field: "piece placement", Token: rankStr, Msg: "rank does not cover exactly 8 files"}
		}
	}
	return nil
}

func parseSideToMove(field string) (types.Side, error) {
	switch field {
	case "w":
		return types.White, nil
	case "b":
		return types.Black, nil
	default:
		return types.White, &ParseError{Field: "side to move", Token: field, Msg: "expected 'w' or 'b'"}
	}
}

func parseCastlingRights(pos *position.Position, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.CastlingRights |= types.WhiteKingside
		case 'Q':
			pos.CastlingRights |= types.WhiteQueenside
		case 'k':
			pos.CastlingRights |= types.BlackKingside
		case 'q':
			pos.CastlingRights |= types.BlackQueenside
		default:
			return &ParseError{Field: "castling rights", Token: string(field[i]), Msg: "expected one of KQkq or '-'"}
		}
	}
	return nil
}

func parseEpTarget(pos *position.Position, field string) error {
	if field == "-" {
		pos.EpTarget = types.NoSquare
		return nil
	}
	sq := types.ParseSquare(field)
	if sq == types.NoSquare {
		return &ParseError{Field: "en-passant target", Token: field, Msg: "not a valid square"}
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return &ParseError{Field: "en-passant target", Token: field, Msg: "must be on the 3rd or 6th rank"}
	}
	pos.EpTarget = sq
	return nil
}
