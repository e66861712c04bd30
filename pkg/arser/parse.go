// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
)

// endOfOptions makes every following token positional.
const endOfOptions = "--"

// Parse matches args against the declared arguments. Args must not include
// the program name (pass os.Args[1:], or use ParseArgv).
//
// The parser supports:
//   - Options anywhere on the command line: --volume 5, -v, --add 3 5
//   - Inline values for single-value options: --volume=5
//   - Positional arguments, matched in declaration order
//   - "--" to treat everything after it as positional
//
// An option given more than once keeps the values of its last occurrence.
//
// When a matched argument has an exit callback, Parse runs it, calls the
// exit function (os.Exit by default) with status 0 and, if that returns,
// returns ErrExit without looking at the remaining tokens.
//
// Values are stored as raw strings; conversion happens in Get.
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return &ParseError{Reason: "arguments were already parsed"}
	}
	p.parsed = true

	if err := p.validate(); err != nil {
		return err
	}

	candidates := deque.New()
	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == endOfOptions {
			for _, rest := range args[i+1:] {
				candidates.PushBack(rest)
			}
			break
		}

		a, inline, hasInline, err := p.matchOption(tok)
		if err != nil {
			return err
		}
		if a == nil {
			candidates.PushBack(tok)
			continue
		}

		var values []string
		if hasInline {
			values = []string{inline}
		} else {
			values, err = p.takeValues(a, tok, args[i+1:])
			if err != nil {
				return err
			}
			i += len(values)
		}
		p.set(a, tok, values)

		if a.exit != nil {
			return p.runExit(a, tok)
		}
	}

	for _, a := range p.positionals() {
		if candidates.Len() < a.nargs {
			return &ParseError{
				Argument: a.Name(),
				Reason:   fmt.Sprintf("expected %d value(s), got %d", a.nargs, candidates.Len()),
			}
		}
		values := make([]string, 0, a.nargs)
		for range a.nargs {
			v, _ := candidates.PopFront()
			values = append(values, v.(string))
		}
		p.set(a, a.Name(), values)

		if a.exit != nil {
			return p.runExit(a, a.Name())
		}
	}

	var leftover []string
	for candidates.Len() > 0 {
		v, _ := candidates.PopFront()
		leftover = append(leftover, v.(string))
	}
	if len(leftover) > 0 {
		if p.strict {
			return &ParseError{Reason: fmt.Sprintf("unrecognized arguments: %s", strings.Join(leftover, " "))}
		}
		p.logger.Debug("keeping unmatched tokens", "tokens", leftover)
		p.extra = leftover
	}

	var missing []error
	for _, a := range p.Arguments() {
		if a.IsRequired() && !a.parsed {
			missing = append(missing, &ParseError{Argument: a.Name(), Reason: "required but not given"})
		}
	}
	return errors.Join(missing...)
}

// ParseArgv is like Parse but takes the full argument vector, including the
// program name in argv[0]. The program name is used in help output unless
// one was set with WithProgramName.
func (p *Parser) ParseArgv(argv []string) error {
	if len(argv) == 0 {
		return p.Parse(nil)
	}
	if p.prog == "" {
		p.prog = argv[0]
	}
	return p.Parse(argv[1:])
}

// ParseString splits cmdline with shell quoting rules and parses the
// resulting tokens. Like Parse, cmdline must not start with the program
// name.
func (p *Parser) ParseString(cmdline string) error {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return &ParseError{Reason: fmt.Sprintf("cannot split command line: %v", err)}
	}
	return p.Parse(args)
}

// Extra returns the tokens no argument consumed. It is only populated when
// the parser was created with WithStrict(false).
func (p *Parser) Extra() []string {
	return append([]string(nil), p.extra...)
}

func (p *Parser) validate() error {
	errs := append([]error(nil), p.errs...)
	for _, a := range p.Arguments() {
		if err := a.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// matchOption reports the option tok refers to, if any. A token of the form
// "--name=value" matches a single-value option with an inline value.
func (p *Parser) matchOption(tok string) (a *Argument, inline string, hasInline bool, err error) {
	if a, ok := p.lookup(tok); ok && a.optional {
		return a, "", false, nil
	}
	name, value, ok := strings.Cut(tok, "=")
	if !ok || !p.isOptionName(name) {
		return nil, "", false, nil
	}
	a, _ = p.lookup(name)
	if a.nargs != 1 {
		return nil, "", false, &ParseError{
			Argument: name,
			Reason:   fmt.Sprintf("takes %d value(s) and cannot be given as %s=VALUE", a.nargs, name),
		}
	}
	return a, value, true, nil
}

// takeValues returns the nargs tokens following an option. A value may not
// be another declared option, in either form, or "--".
func (p *Parser) takeValues(a *Argument, tok string, rest []string) ([]string, error) {
	for j := range a.nargs {
		if j >= len(rest) || rest[j] == endOfOptions || p.startsOption(rest[j]) {
			return nil, &ParseError{
				Argument: tok,
				Reason:   fmt.Sprintf("missing value: expected %d value(s), got %d", a.nargs, j),
			}
		}
	}
	return rest[:a.nargs], nil
}

// startsOption reports whether tok names a declared option, either bare or
// as "name=value".
func (p *Parser) startsOption(tok string) bool {
	if p.isOptionName(tok) {
		return true
	}
	name, _, ok := strings.Cut(tok, "=")
	return ok && p.isOptionName(name)
}

func (p *Parser) set(a *Argument, tok string, values []string) {
	if a.parsed {
		p.logger.Debug("argument given again, keeping last values", "argument", tok, "previous", a.values)
	}
	a.values = append([]string(nil), values...)
	a.parsed = true
	p.logger.Debug("matched argument", "argument", tok, "values", a.values)
}

func (p *Parser) runExit(a *Argument, tok string) error {
	p.logger.Debug("running exit callback", "argument", tok)
	a.exit()
	p.exit(0)
	return ErrExit
}
