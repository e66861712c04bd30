// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Help returns the usage line followed by the declared arguments, grouped
// as positional and optional, in declaration order:
//
//	Usage: radio [--verbose] --volume VOLUME station
//
//	positional arguments:
//	  station          station name
//
//	optional arguments:
//	  --verbose        print more
//	  --volume VOLUME  set a volume (required)
func (p *Parser) Help() string {
	return p.renderHelp(fmt.Sprint)
}

// WriteHelp writes Help to w. Section headings are bold when w is a
// terminal.
func (p *Parser) WriteHelp(w io.Writer) error {
	heading := fmt.Sprint
	if isTerminal(w) {
		bold := color.New(color.Bold)
		bold.EnableColor()
		heading = bold.Sprint
	}
	_, err := io.WriteString(w, p.renderHelp(heading))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Parser) renderHelp(heading func(a ...any) string) string {
	var b strings.Builder

	b.WriteString(heading("Usage:"))
	b.WriteString(" ")
	b.WriteString(p.usage())
	b.WriteString("\n")

	if p.description != "" {
		b.WriteString("\n")
		b.WriteString(p.description)
		b.WriteString("\n")
	}

	if pos := p.positionals(); len(pos) > 0 {
		b.WriteString("\n")
		b.WriteString(heading("positional arguments:"))
		b.WriteString("\n")
		writeRows(&b, pos)
	}

	if opts := p.optionals(); len(opts) > 0 {
		b.WriteString("\n")
		b.WriteString(heading("optional arguments:"))
		b.WriteString("\n")
		writeRows(&b, opts)
	}

	return b.String()
}

func (p *Parser) usage() string {
	parts := []string{p.programName()}
	for _, a := range p.optionals() {
		s := strings.Join(append([]string{a.Name()}, a.metavars()...), " ")
		if !a.IsRequired() {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	for _, a := range p.positionals() {
		parts = append(parts, a.metavars()...)
	}
	return strings.Join(parts, " ")
}

func writeRows(w io.Writer, args []*Argument) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range args {
		if desc := a.describe(); desc != "" {
			fmt.Fprintf(tw, "  %s\t%s\n", a.synopsis(), desc)
		} else {
			fmt.Fprintf(tw, "  %s\n", a.synopsis())
		}
	}
	tw.Flush()
}

// metavars returns one placeholder per value: the metavar for options and
// the argument name for positionals.
func (a *Argument) metavars() []string {
	name := a.Name()
	if a.optional {
		name = a.metavar()
	}
	out := make([]string, a.nargs)
	for i := range out {
		out[i] = name
	}
	return out
}

func (a *Argument) synopsis() string {
	if !a.optional {
		return a.Name()
	}
	return strings.Join(append([]string{strings.Join(a.names, ", ")}, a.metavars()...), " ")
}

func (a *Argument) describe() string {
	var notes []string
	if a.help != "" {
		notes = append(notes, a.help)
	}
	if a.optional && a.required {
		notes = append(notes, "(required)")
	}
	if a.defaults != nil {
		notes = append(notes, fmt.Sprintf("(default: %s)", strings.Join(a.defaults, " ")))
	}
	return strings.Join(notes, " ")
}
