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

// Package logging is a thin helper over "github.com/op/go-logging" so each
// package gets a one-line-configured *logging.Logger tagged with its own
// name, instead of every package hand-rolling backend/formatter setup.
package logging

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit/oink/config"
)

// Numbers is a locale-aware printer, used by cmd/oink to format the large
// node counts of its perft report.
var Numbers = message.NewPrinter(language.English)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// GetLog returns the named logger, creating and configuring it the first
// time it is requested. Every package-level `var log = logging.GetLog(...)`
// gets its own module tag in the log output but shares the one stdout
// backend and level, which config.Setup resolves from the config file.
func GetLog(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), name)
	l.SetBackend(leveled)

	loggers[name] = l
	return l
}

// GetSearchLog is GetLog("search") configured at the search-specific level,
// which is usually turned down independently of everything else since it's
// by far the noisiest part of the engine at debug level.
func GetSearchLog() *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	const name = "search"
	if l, ok := loggers[name]; ok {
		return l
	}

	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), name)
	l.SetBackend(leveled)

	loggers[name] = l
	return l
}

// GetProtocolLog returns a logger dedicated to raw protocol traffic (every
// line read from or written to the command adapter), formatted without the
// usual file/line noise and optionally mirrored to a file named by
// config.Settings.Log.ProtocolLogFile.
func GetProtocolLog() *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	const name = "xboard"
	if l, ok := loggers[name]; ok {
		return l
	}

	l := logging.MustGetLogger(name)
	protocolFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s} %{message}`)

	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, protocolFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, name)

	if path := config.Settings.Log.ProtocolLogFile; path != "" {
		if f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666); err == nil {
			fileBackend := logging.NewLogBackend(f, "", stdlog.Lmsgprefix)
			fileFormatted := logging.NewBackendFormatter(fileBackend, protocolFormat)
			fileLeveled := logging.AddModuleLevel(fileFormatted)
			fileLeveled.SetLevel(logging.DEBUG, name)
			l.SetBackend(logging.SetBackend(leveled, fileLeveled))
		} else {
			stdlog.Println("logging: could not open protocol log file", path, "-", err)
			l.SetBackend(leveled)
		}
	} else {
		l.SetBackend(leveled)
	}

	loggers[name] = l
	return l
}
