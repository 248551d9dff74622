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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chesskit/oink/config"
	"github.com/chesskit/oink/fen"
	"github.com/chesskit/oink/logging"
	"github.com/chesskit/oink/perft"
	"github.com/chesskit/oink/xboard"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on the start position (or -fen) and exit")
	fenStr := flag.String("fen", "", "fen to use with -perft instead of the starting position")
	flag.Parse()

	config.Setup(*configFile)
	if lvl, ok := config.LogLevels[*logLvl]; ok {
		config.LogLevel = lvl
	}
	log := logging.GetLog("main")

	if *perftDepth > 0 {
		runPerft(*perftDepth, *fenStr)
		return
	}

	log.Infof("oink starting, reading commands from stdin")
	xboard.NewAdapter(os.Stdin, os.Stdout).Loop()
}

func runPerft(depth int, fenStr string) {
	line := fenStr
	if line == "" {
		line = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}

	result, err := fen.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad fen:", err)
		os.Exit(1)
	}

	r := perft.Detailed(result.Position, result.SideToMove, depth)
	fmt.Printf("depth %d: %s nodes, %s captures, %s checks, %s mates\n",
		depth,
		logging.Numbers.Sprintf("%d", r.TotalLeaves),
		logging.Numbers.Sprintf("%d", r.CaptureCount),
		logging.Numbers.Sprintf("%d", r.CheckCount),
		logging.Numbers.Sprintf("%d", r.MateCount),
	)
}
