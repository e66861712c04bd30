// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yeetrun/arser/pkg/arser"
	"github.com/yeetrun/arser/pkg/cli"
)

func main() {
	global, args, err := cli.ParseGlobalFlags(os.Args[1:])
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(2)
	}

	p := arser.New(
		arser.WithProgramName("calculator"),
		arser.WithLogger(cli.NewLogger(global.LogLevel, global.LogFormat, os.Stderr)),
	)
	p.AddHelpArgument()
	p.AddArgument("--add").Nargs(2).Type(arser.Int32Vec).Help("add two integers")
	p.AddArgument("--mul").Nargs(2).Type(arser.FloatVec).Help("multiply two numbers")
	if err := p.Parse(args); err != nil {
		if errors.Is(err, arser.ErrExit) {
			return
		}
		cli.PrintError(os.Stderr, err)
		os.Exit(2)
	}

	results := map[string]any{}
	if p.Has("--add") {
		v, err := arser.Get[[]int32](p, "--add")
		if err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}
		results["sum"] = v[0] + v[1]
	}
	if p.Has("--mul") {
		v, err := arser.Get[[]float32](p, "--mul")
		if err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}
		results["product"] = v[0] * v[1]
	}
	if len(results) == 0 {
		fmt.Fprint(os.Stderr, p.Help())
		os.Exit(2)
	}
	if err := cli.Render(os.Stdout, global.Output, results); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
