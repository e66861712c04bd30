// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"fmt"
	"strconv"
	"strings"
)

// Argument is a declared option or positional argument. It is created by
// Parser.AddArgument and configured through its chainable methods:
//
//	p.AddArgument("--volume").Nargs(1).Type(arser.Int32).Required().Help("Set a volume")
//
// The methods may be called in any order; a later call overrides an earlier
// one. Consistency between arity, type and defaults is checked when Parse
// starts.
type Argument struct {
	names    []string
	optional bool

	nargs    int
	nargsSet bool
	dtype    DataType
	typeSet  bool
	required bool
	help     string
	exit     func()
	defaults []string

	// Filled in by Parse.
	values []string
	parsed bool

	// err is the first builder misuse, reported by Parse.
	err error
}

func newArgument(names []string, optional bool) *Argument {
	a := &Argument{
		names:    names,
		optional: optional,
	}
	if !optional {
		a.nargs = 1
	}
	return a
}

// Nargs sets the number of value tokens the argument consumes. Zero makes
// an option a presence flag.
func (a *Argument) Nargs(n int) *Argument {
	if n < 0 {
		a.fail(fmt.Sprintf("nargs must not be negative, got %d", n))
		return a
	}
	a.nargs = n
	a.nargsSet = true
	return a
}

// Type sets the declared value type.
func (a *Argument) Type(t DataType) *Argument {
	if !t.valid() {
		a.fail(fmt.Sprintf("unknown type %s", t))
		return a
	}
	a.dtype = t
	a.typeSet = true
	return a
}

// Required marks an option as mandatory. Called without arguments it sets
// required to true. Positional arguments are always required and ignore it.
func (a *Argument) Required(required ...bool) *Argument {
	if !a.optional {
		return a
	}
	a.required = len(required) == 0 || required[0]
	return a
}

// Help sets the text shown next to the argument in help output.
func (a *Argument) Help(text string) *Argument {
	a.help = text
	return a
}

// ExitWith registers fn to run as soon as the argument is matched during
// Parse. After fn returns the parser exits with status 0; no further tokens
// are processed and required arguments are not checked.
func (a *Argument) ExitWith(fn func()) *Argument {
	a.exit = fn
	return a
}

// Default sets the raw tokens Get converts when the argument is absent from
// the command line. It does not make Has report the argument as present.
func (a *Argument) Default(values ...string) *Argument {
	a.defaults = values
	return a
}

// Names returns the names the argument was registered under.
func (a *Argument) Names() []string {
	return append([]string(nil), a.names...)
}

// Name returns the first registered name.
func (a *Argument) Name() string {
	return a.names[0]
}

// IsOptional reports whether the argument is an option rather than a
// positional argument.
func (a *Argument) IsOptional() bool { return a.optional }

// NumArgs returns the number of value tokens the argument consumes.
func (a *Argument) NumArgs() int { return a.nargs }

// DataType returns the declared type, applying the default rule when Type
// was never called.
func (a *Argument) DataType() DataType {
	if a.typeSet {
		return a.dtype
	}
	return defaultType(a.nargs)
}

// IsRequired reports whether Parse fails when the argument is missing.
func (a *Argument) IsRequired() bool {
	return !a.optional || a.required
}

// HelpText returns the text set with Help.
func (a *Argument) HelpText() string { return a.help }

func (a *Argument) fail(reason string) {
	if a.err != nil {
		return
	}
	a.err = &ConfigurationError{Names: a.Names(), Reason: reason}
}

// validate checks the combination of settings. It runs once, when Parse
// starts, so that builder calls can be made in any order.
func (a *Argument) validate() error {
	if a.err != nil {
		return a.err
	}
	t := a.DataType()
	switch {
	case !a.optional && a.nargs == 0:
		return &ConfigurationError{Names: a.Names(), Reason: "positional arguments must consume at least one value"}
	case a.nargs == 0 && t != Bool:
		return &ConfigurationError{Names: a.Names(), Reason: fmt.Sprintf("nargs 0 requires type %s, got %s", Bool, t)}
	case t.IsVector() && a.nargs < 1:
		return &ConfigurationError{Names: a.Names(), Reason: fmt.Sprintf("type %s requires nargs >= 1", t)}
	case !t.IsVector() && a.nargs > 1:
		return &ConfigurationError{Names: a.Names(), Reason: fmt.Sprintf("type %s cannot take %d values", t, a.nargs)}
	}
	if a.defaults != nil {
		want := max(a.nargs, 1)
		if len(a.defaults) != want {
			return &ConfigurationError{Names: a.Names(), Reason: fmt.Sprintf("default needs %d value(s), got %d", want, len(a.defaults))}
		}
		if _, err := convert(a.Name(), t, a.defaults); err != nil {
			return &ConfigurationError{Names: a.Names(), Reason: fmt.Sprintf("invalid default: %v", err)}
		}
	}
	return nil
}

// raw returns the tokens Get converts: the parsed values, or the defaults
// when the argument was absent.
func (a *Argument) raw() ([]string, bool) {
	if a.parsed {
		if a.nargs == 0 {
			return []string{strconv.FormatBool(true)}, true
		}
		return a.values, true
	}
	if a.defaults != nil {
		return a.defaults, true
	}
	return nil, false
}

// metavar is the placeholder printed for each value in help output.
func (a *Argument) metavar() string {
	name := a.names[len(a.names)-1]
	for _, n := range a.names {
		if strings.HasPrefix(n, "--") {
			name = n
			break
		}
	}
	name = strings.TrimLeft(name, optionMarker)
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
