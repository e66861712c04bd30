// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command radio is a small program built on arser. It tunes an imaginary
// radio and prints the settings it parsed.
//
//	radio --volume 5 --presets 88 95 101 kexp
//	radio --output yaml --volume 3 --tags jazz late kexp
//	radio --history
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yeetrun/arser/pkg/arser"
	"github.com/yeetrun/arser/pkg/cli"
)

const version = "0.1.0"

var history = []string{"kexp", "wfmu", "nts"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	global, remaining, err := cli.ParseGlobalFlags(args)
	if err != nil {
		cli.PrintError(stderr, err)
		return 2
	}
	logger := cli.NewLogger(global.LogLevel, global.LogFormat, stderr)

	p := newParser(stdout, logger, exit)
	if err := p.Parse(remaining); err != nil {
		if errors.Is(err, arser.ErrExit) {
			return 0
		}
		cli.PrintError(stderr, err)
		fmt.Fprintln(stderr, "Try 'radio --help' for more information")
		return 2
	}

	values, err := p.Values()
	if err != nil {
		cli.PrintError(stderr, err)
		return 1
	}
	if p.Has("--verbose") {
		if global.LogLevel != "debug" {
			logger = cli.NewLogger("info", global.LogFormat, stderr)
		}
		logger.Info("tuned",
			"station", arser.MustGet[string](p, "station"),
			"volume", values["--volume"],
			"balance", values["--balance"])
	}
	if err := cli.Render(stdout, global.Output, values); err != nil {
		cli.PrintError(stderr, err)
		return 1
	}
	return 0
}

func newParser(stdout io.Writer, logger *slog.Logger, exit func(int)) *arser.Parser {
	p := arser.New(
		arser.WithProgramName("radio"),
		arser.WithDescription("Tune the radio and print the settings."),
		arser.WithLogger(logger),
		arser.WithOutput(stdout),
		arser.WithExitFunc(exit),
	)
	p.AddHelpArgument()
	p.AddVersionArgument(version)
	p.AddArgument("-v", "--verbose").
		Help("log the tuned station at info level or lower")
	p.AddArgument("--volume").
		Nargs(1).
		Type(arser.Int32).
		Required().
		Help("volume from 0 to 11")
	p.AddArgument("--balance").
		Nargs(1).
		Type(arser.Float).
		Default("0").
		Help("left/right balance from -1 to 1")
	p.AddArgument("--presets").
		Nargs(3).
		Type(arser.Int32Vec).
		Help("three preset frequencies")
	p.AddArgument("--tags").
		Nargs(2).
		Type(arser.StringVec).
		Help("two tags for the station")
	p.AddArgument("--history").
		Help("print recently tuned stations and exit").
		ExitWith(func() {
			for _, s := range history {
				fmt.Fprintln(stdout, s)
			}
		})
	p.AddArgument("station").
		Help("station to tune")
	return p
}
