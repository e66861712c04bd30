// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// optionMarker prefixes every optional argument name ("--verbose", "-v").
// Names without it are positional.
const optionMarker = "-"

// Parser holds a program's declared arguments and, after Parse, their
// values.
type Parser struct {
	// byName maps every alias to its Argument, in registration order.
	byName *orderedmap.OrderedMap[string, *Argument]

	prog        string
	description string

	logger *slog.Logger
	exit   func(code int)
	output io.Writer
	strict bool

	errs   []error
	parsed bool
	extra  []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithProgramName sets the program name shown in the usage line.
func WithProgramName(name string) Option {
	return func(p *Parser) { p.prog = name }
}

// WithDescription sets the text printed below the usage line.
func WithDescription(desc string) Option {
	return func(p *Parser) { p.description = desc }
}

// WithLogger sets the logger Parse traces matched tokens to at debug level.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithExitFunc replaces os.Exit as the function called after an exit
// callback ran.
func WithExitFunc(exit func(code int)) Option {
	return func(p *Parser) { p.exit = exit }
}

// WithOutput sets where the built-in help and version arguments write.
// It defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.output = w }
}

// WithStrict controls whether tokens left over after positional matching
// fail the parse (the default) or are kept for Extra.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// New returns an empty Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		byName: orderedmap.New[string, *Argument](),
		logger: slog.New(slog.DiscardHandler),
		exit:   os.Exit,
		output: os.Stdout,
		strict: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddArgument declares a new argument known by the given names and returns
// it for configuration. Names starting with "-" declare an option; a single
// name without it declares a positional argument.
//
// Invalid declarations (duplicate names, mixed option and positional names)
// are recorded and returned by Parse and Err. The returned Argument is then
// detached from the parser but still safe to configure. Check Err right
// after declaring if you need the failure immediately.
func (p *Parser) AddArgument(names ...string) *Argument {
	optional, err := p.checkNames(names)
	a := newArgument(names, optional)
	if err != nil {
		if len(names) == 0 {
			a.names = []string{""}
		}
		p.errs = append(p.errs, err)
		return a
	}
	for _, name := range names {
		p.byName.Set(name, a)
	}
	return a
}

func (p *Parser) checkNames(names []string) (optional bool, err error) {
	if len(names) == 0 {
		return false, &ConfigurationError{Reason: "at least one name is required"}
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" || strings.Trim(name, optionMarker) == "" {
			return false, &ConfigurationError{Names: names, Reason: fmt.Sprintf("invalid name %q", name)}
		}
		if strings.ContainsAny(name, " \t=") {
			return false, &ConfigurationError{Names: names, Reason: fmt.Sprintf("name %q must not contain spaces or '='", name)}
		}
		if _, ok := p.byName.Get(name); ok || seen[name] {
			return false, &ConfigurationError{Names: names, Reason: fmt.Sprintf("name %s is already registered", name)}
		}
		seen[name] = true
		isOpt := strings.HasPrefix(name, optionMarker)
		if i == 0 {
			optional = isOpt
		} else if isOpt != optional {
			return false, &ConfigurationError{Names: names, Reason: "cannot mix optional and positional names"}
		}
	}
	if !optional && len(names) > 1 {
		return false, &ConfigurationError{Names: names, Reason: "a positional argument takes exactly one name"}
	}
	return optional, nil
}

// AddHelpArgument declares "-h" and "--help", which print Help to the
// parser output and exit.
func (p *Parser) AddHelpArgument() *Argument {
	return p.AddArgument("-h", "--help").
		Nargs(0).
		Help("show this help message and exit").
		ExitWith(func() {
			if err := p.WriteHelp(p.output); err != nil {
				p.logger.Error("cannot write help", "err", err)
			}
		})
}

// AddVersionArgument declares "--version", which prints the program name
// and version to the parser output and exits.
func (p *Parser) AddVersionArgument(version string) *Argument {
	return p.AddArgument("--version").
		Nargs(0).
		Help("show version information and exit").
		ExitWith(func() {
			fmt.Fprintf(p.output, "%s version %s\n", p.programName(), version)
		})
}

// Err returns the declaration errors recorded so far, joined, or nil.
func (p *Parser) Err() error {
	return errors.Join(p.errs...)
}

// Arguments returns the declared arguments in registration order.
func (p *Parser) Arguments() []*Argument {
	var out []*Argument
	seen := make(map[*Argument]bool)
	for pair := p.byName.Oldest(); pair != nil; pair = pair.Next() {
		if seen[pair.Value] {
			continue
		}
		seen[pair.Value] = true
		out = append(out, pair.Value)
	}
	return out
}

func (p *Parser) lookup(name string) (*Argument, bool) {
	return p.byName.Get(name)
}

func (p *Parser) isOptionName(token string) bool {
	a, ok := p.byName.Get(token)
	return ok && a.optional
}

func (p *Parser) optionals() []*Argument {
	var out []*Argument
	for _, a := range p.Arguments() {
		if a.optional {
			out = append(out, a)
		}
	}
	return out
}

func (p *Parser) positionals() []*Argument {
	var out []*Argument
	for _, a := range p.Arguments() {
		if !a.optional {
			out = append(out, a)
		}
	}
	return out
}

func (p *Parser) programName() string {
	if p.prog != "" {
		return p.prog
	}
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "program"
}
