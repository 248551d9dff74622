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

// Package config is the engine's single source of runtime configuration: a
// toml file, decoded once into Settings, with defaults set by each
// sub-configuration's own init() so the engine runs sanely with no config
// file present at all.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/chesskit/oink/util"
)

// LogLevel and SearchLogLevel are the numeric op-logging levels resolved
// from Settings.Log's string fields; logging.GetLog reads these.
var (
	LogLevel       = 4
	SearchLogLevel = 4
)

var (
	// Settings is the global configuration, read in from file by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads the config file at path (if it exists) into Settings and
// resolves the derived numeric fields. It is idempotent: later calls are
// no-ops, so main and tests can both call it freely.
func Setup(path string) {
	if initialized {
		return
	}

	if path != "" {
		resolved, err := util.ResolveFile(path)
		if err != nil {
			resolved = path
		}
		if _, err := toml.DecodeFile(resolved, &Settings); err != nil {
			fmt.Println("config: could not read", resolved, "-", err, "- using defaults")
		}
	}

	setupLogLvl()
	setupSearch()

	initialized = true
}
