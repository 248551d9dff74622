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

// Package xboard adapts the kernel to the text command protocol spoken by
// xboard-compatible chess GUIs: a line-oriented loop reading commands from
// an input stream and writing moves and status back to an output stream.
// Move choice and legality live in position/movegen/search; this package
// only tracks whose turn it is, which side (if any) the engine is playing,
// and the game's move history for "undo"/"remove".
package xboard

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/chesskit/oink/config"
	"github.com/chesskit/oink/evaluator"
	"github.com/chesskit/oink/fen"
	"github.com/chesskit/oink/logging"
	"github.com/chesskit/oink/movegen"
	"github.com/chesskit/oink/notation"
	"github.com/chesskit/oink/position"
	"github.com/chesskit/oink/search"
	"github.com/chesskit/oink/types"
)

var log = logging.GetProtocolLog()

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// side the engine is playing moves for. engineNone means the engine only
// validates and applies moves it is told about; engineAnalyze means it
// searches the current position once, never moves, and then falls back to
// engineNone.
type engineMode int

const (
	engineNone engineMode = iota
	engineWhite
	engineBlack
	engineAnalyze
)

func modeForSide(side types.Side) engineMode {
	if side == types.White {
		return engineWhite
	}
	return engineBlack
}

// Adapter holds one game's worth of xboard session state.
type Adapter struct {
	in  *bufio.Scanner
	out io.Writer

	pos        *position.Position
	sideToMove types.Side
	lastFen    string
	history    []types.Move

	engine  engineMode
	depth   int
	posting bool

	commands  chan string
	searching bool
	results   chan searchOutcome
}

type searchOutcome struct {
	side   types.Side
	result search.Result
}

// NewAdapter builds an Adapter reading commands from in and writing
// responses to out, seeded with the standard starting position.
func NewAdapter(in io.Reader, out io.Writer) *Adapter {
	a := &Adapter{
		in:       bufio.NewScanner(in),
		out:      out,
		engine:   engineNone,
		depth:    config.Settings.Search.DefaultDepth,
		commands: make(chan string),
		results:  make(chan searchOutcome, 1),
	}
	a.resetGame()
	return a
}

func (a *Adapter) resetGame() {
	r, err := fen.Parse(startFen)
	if err != nil {
		panic(err)
	}
	a.lastFen = startFen
	a.pos = r.Position
	a.sideToMove = r.SideToMove
	a.history = nil
}

// Loop reads commands until "quit" or the input stream is exhausted. A
// separate goroutine feeds scanned lines into a.commands so a running
// search does not block "ping"/"quit" from being serviced.
func (a *Adapter) Loop() {
	go func() {
		for a.in.Scan() {
			a.commands <- a.in.Text()
		}
		close(a.commands)
	}()

	for {
		select {
		case line, ok := <-a.commands:
			if !ok {
				return
			}
			if a.handle(line) {
				return
			}
		case outcome := <-a.results:
			a.applySearchResult(outcome)
		}
	}
}

// Command runs one line synchronously against the adapter's own in-memory
// buffer, for tests, and returns what it wrote. It bypasses Loop's reader
// goroutine and never waits for a search; a command that hands the engine
// its turn still starts a background search, whose outcome arrives on
// a.results and is applied only by Loop or a direct applySearchResult call.
func (a *Adapter) Command(line string) string {
	var buf strings.Builder
	a.out = &buf
	a.handle(line)
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle processes one command line, returning true on "quit".
func (a *Adapter) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)

	switch tokens[0] {
	case "quit":
		return true
	case "new":
		a.resetGame()
		a.engine = modeForSide(a.sideToMove.Flip())
		a.depth = config.Settings.Search.DefaultDepth
	case "setboard":
		a.cmdSetboard(strings.TrimPrefix(line, "setboard "))
	case "usermove":
		a.cmdUsermove(strings.TrimPrefix(line, "usermove "))
	case "go":
		a.engine = modeForSide(a.sideToMove)
	case "force":
		a.engine = engineNone
	case "analyze":
		a.engine = engineAnalyze
	case "exit":
		a.engine = engineNone
	case "level":
		a.cmdLevel(tokens)
	case "st":
		// Per-move time budget; no effect, see cmdLevel.
	case "sd":
		if len(tokens) > 1 {
			if n, err := strconv.Atoi(tokens[1]); err == nil {
				a.depth = n
			}
		}
	case "time", "otim":
		// Wall-clock bookkeeping only; the kernel's fixed-depth searches
		// have no cooperative cancellation to steer with this value.
	case "ping":
		if len(tokens) > 1 {
			a.send("pong " + tokens[1])
		} else {
			a.send("pong")
		}
	case "undo":
		a.takeBack(1)
	case "remove":
		a.takeBack(2)
	case "post":
		a.posting = true
	case "nopost":
		a.posting = false
	case "easy", "hard", "random", "xboard", "computer", "name", "ics",
		"accepted", "rejected", "variant", "protover", "option", "memory":
		// Acknowledged but without effect: no pondering, no randomized
		// move choice, and no feature negotiation beyond what the GUI
		// already assumes by speaking this protocol at all.
	default:
		a.send("Error: unknown command")
		return false
	}

	a.maybeStartEngineMove()
	return false
}

func (a *Adapter) cmdSetboard(field string) {
	r, err := fen.Parse(field)
	if err != nil {
		a.send(fmt.Sprintf("Illegal position: %s", field))
		return
	}
	a.engine = engineNone
	a.lastFen = field
	a.pos = r.Position
	a.sideToMove = r.SideToMove
	a.history = nil
}

// cmdLevel accepts "level moves minutes increment" or
// "level moves min:sec increment" but otherwise ignores the session
// time budget: the kernel's fixed-depth searches have no time-based
// cutoff to steer with it, so "sd" remains the only control that actually
// reaches the search ("st" is accepted and ignored as well).
func (a *Adapter) cmdLevel(tokens []string) {
	if len(tokens) < 4 {
		a.send("Bad level command")
	}
}

// cmdUsermove parses a coordinate move string in the context of the
// current position (source/destination plus whatever promotion letter
// trails it), fills in the captured piece, en-passant, and castling
// flags from the position itself, and applies it if legal.
func (a *Adapter) cmdUsermove(text string) {
	parsed, ok := parseUserMove(a.pos, text)
	if !ok {
		a.send("Invalid move string")
		return
	}
	move := types.NoMove
	for _, m := range movegen.GenerateAllMoves(a.pos, a.sideToMove) {
		if m.Source() == parsed.Source() && m.Destination() == parsed.Destination() && m.PromotionPiece() == parsed.PromotionPiece() {
			move = m
			break
		}
	}
	next := *a.pos
	if move == types.NoMove || !next.MakeMove(move) {
		a.send("Illegal move")
		return
	}
	a.pos = &next
	a.sideToMove = a.sideToMove.Flip()
	a.history = append(a.history, move)
}

// parseUserMove mirrors the field-by-field coordinate parsing an xboard
// driver uses: the move text carries no piece or capture information, so
// it is read back out of the position the move is played against.
func parseUserMove(pos *position.Position, text string) (types.Move, bool) {
	if len(text) < 4 {
		return types.NoMove, false
	}
	source := types.ParseSquare(text[0:2])
	dest := types.ParseSquare(text[2:4])
	if source == types.NoSquare || dest == types.NoSquare {
		return types.NoMove, false
	}

	piece := pos.Squares[source]
	if piece == types.NoPiece {
		return types.NoMove, false
	}
	captured := pos.Squares[dest]

	move := types.NoMove.SetSource(source).SetDestination(dest).SetPiece(piece).SetCapturedPiece(captured)

	if len(text) > 4 {
		side := piece.Side()
		switch text[4] {
		case 'n':
			move = move.SetPromotionPiece(types.Knights[side])
		case 'b':
			move = move.SetPromotionPiece(types.Bishops[side])
		case 'r':
			move = move.SetPromotionPiece(types.Rooks[side])
		case 'q':
			move = move.SetPromotionPiece(types.Queens[side])
		}
	}

	switch {
	case (piece == types.WhitePawn || piece == types.BlackPawn) && source.File() != dest.File() && captured == types.NoPiece:
		move = move.SetEnPassant(types.Pawns[piece.Side()])
	case piece == types.WhiteKing && source == types.E1 && (dest == types.G1 || dest == types.C1):
		move = move.SetCastling(types.WhiteKing)
	case piece == types.BlackKing && source == types.E8 && (dest == types.G8 || dest == types.C8):
		move = move.SetCastling(types.BlackKing)
	}

	return move, true
}

// takeBack replays the game from lastFen up to (history length - how many)
// plies, since the kernel keeps no incremental undo information.
func (a *Adapter) takeBack(howMany int) {
	target := len(a.history) - howMany
	if target < 0 {
		target = 0
	}

	r, err := fen.Parse(a.lastFen)
	if err != nil {
		return
	}
	pos := r.Position
	side := r.SideToMove
	for i := 0; i < target; i++ {
		pos.MakeMove(a.history[i])
		side = side.Flip()
	}

	a.pos = pos
	a.sideToMove = side
	a.history = a.history[:target]
	a.engine = engineNone
}

// maybeStartEngineMove launches a search goroutine when it is the
// engine's turn and nothing is already running.
func (a *Adapter) maybeStartEngineMove() {
	if a.searching {
		return
	}
	if a.engine == engineNone {
		return
	}
	if a.engine == modeForSide(a.sideToMove) || a.engine == engineAnalyze {
		a.searching = true
		pos := *a.pos
		side := a.sideToMove
		depth := a.depth
		useMinimax := config.Settings.Search.UseMinimaxOracle
		go func() {
			var result search.Result
			if useMinimax {
				result = search.Minimax(&pos, side, depth)
			} else {
				result = search.AlphaBeta(&pos, side, depth, -types.Infinite, types.Infinite)
			}
			a.results <- searchOutcome{side: side, result: result}
		}()
	}
}

func (a *Adapter) applySearchResult(outcome searchOutcome) {
	a.searching = false

	if a.posting {
		a.send(fmt.Sprintf("%d %d 0 0 %s", a.depth, outcome.result.Eval, notation.Coord(outcome.result.Move)))
	}

	if a.engine == engineAnalyze {
		a.engine = engineNone
		return
	}
	if a.engine != modeForSide(outcome.side) || outcome.side != a.sideToMove {
		return // mode changed (force/setboard/undo) while the search ran
	}

	if outcome.result.Move == types.NoMove {
		a.engine = engineNone
		a.sendGameResult(outcome.side, outcome.result.Eval)
		return
	}

	a.pos.MakeMove(outcome.result.Move)
	a.history = append(a.history, outcome.result.Move)
	a.sideToMove = a.sideToMove.Flip()
	a.send("move " + notation.Coord(outcome.result.Move))

	a.maybeStartEngineMove()
}

func (a *Adapter) sendGameResult(side types.Side, score types.Eval) {
	class := evaluator.ClassifyPosition(a.pos, side)
	switch {
	case class == evaluator.Stalemate || class == evaluator.InsufficientMaterial:
		a.send("1/2-1/2")
	case score < 0 && side == types.White, score > 0 && side == types.Black:
		a.send("0-1")
	default:
		a.send("1-0")
	}
}

func (a *Adapter) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = io.WriteString(a.out, s+"\n")
}
