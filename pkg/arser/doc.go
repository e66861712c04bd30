// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arser parses command-line arguments against a declared set of
// options and positional arguments and gives back type-checked values.
//
// Arguments are declared on a Parser with a fluent builder, the argument
// vector is parsed once, and values are then read by name:
//
//	p := arser.New(arser.WithProgramName("radio"))
//	p.AddArgument("--verbose").Help("Print more")
//	p.AddArgument("--volume").Nargs(1).Type(arser.Int32).Required().Help("Set a volume")
//	p.AddArgument("--add").Nargs(2).Type(arser.Int32Vec)
//	p.AddArgument("station")
//
//	if err := p.Parse(os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//	volume, err := arser.Get[int32](p, "--volume")
//
// # Names
//
// A name starting with "-" declares an option ("--volume", "-v"); several
// names may alias the same option. Any other name declares a positional
// argument, matched in declaration order against the tokens no option
// consumed. Positional arguments are always required.
//
// # Arity and types
//
// Nargs sets how many value tokens an argument consumes. Options default
// to 0, a presence flag read as bool; positional arguments default to 1.
// Without an explicit Type, an argument is BOOL for 0 values, STRING for 1
// and STRING_VEC for more.
//
// Tokens are kept as strings until Get converts them. Get requires the Go
// type that matches the declaration:
//
//	BOOL       bool
//	INT32      int32
//	FLOAT      float32
//	STRING     string
//	INT32_VEC  []int32
//	FLOAT_VEC  []float32
//	STRING_VEC []string
//
// # Exit callbacks
//
// An argument declared with ExitWith runs its callback as soon as it is
// matched and the process then exits with status 0. Required arguments are
// not checked in that case, so "--help" works without them. Tests replace
// os.Exit with WithExitFunc; Parse then returns ErrExit.
//
// # Errors
//
// Every error unwraps to one of ErrConfiguration, ErrParse, ErrLookup,
// ErrState, ErrTypeMismatch or ErrConversion. The package never prints
// errors itself.
package arser
