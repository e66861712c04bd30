// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHelp(t *testing.T) {
	p := New(WithProgramName("radio"), WithDescription("Tune the radio."))
	p.AddArgument("--verbose").Help("print more")
	p.AddArgument("--volume").Nargs(1).Type(Int32).Required().Help("set a volume")
	p.AddArgument("--add").Nargs(2).Type(Int32Vec).Default("1", "2")
	p.AddArgument("station").Help("station name")

	want := `Usage: radio [--verbose] --volume VOLUME [--add ADD ADD] station

Tune the radio.

positional arguments:
  station  station name

optional arguments:
  --verbose        print more
  --volume VOLUME  set a volume (required)
  --add ADD ADD    (default: 1 2)
`
	if diff := cmp.Diff(want, p.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpSections(t *testing.T) {
	tests := []struct {
		name    string
		declare func(p *Parser)
		want    string
	}{
		{
			name:    "nothing declared",
			declare: func(p *Parser) {},
			want:    "Usage: calc\n",
		},
		{
			name: "positionals only",
			declare: func(p *Parser) {
				p.AddArgument("lhs").Type(Float)
				p.AddArgument("pair").Nargs(2).Help("two values")
			},
			want: `Usage: calc lhs pair pair

positional arguments:
  lhs
  pair  two values
`,
		},
		{
			name: "aliases and metavar",
			declare: func(p *Parser) {
				p.AddArgument("-o", "--out-file").Nargs(1).Help("where to write")
				p.AddArgument("-q").Help("quiet")
			},
			want: `Usage: calc [-o OUT_FILE] [-q]

optional arguments:
  -o, --out-file OUT_FILE  where to write
  -q                       quiet
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(WithProgramName("calc"))
			tt.declare(p)
			if diff := cmp.Diff(tt.want, p.Help()); diff != "" {
				t.Errorf("Help() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHelpDoesNotChangeParseState(t *testing.T) {
	p := New(WithProgramName("radio"))
	p.AddArgument("--volume").Nargs(1).Required()
	_ = p.Help()

	if err := p.ParseString("--volume 3"); err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	before := p.Help()
	if after := p.Help(); before != after {
		t.Errorf("Help() changed between calls:\n%s\n---\n%s", before, after)
	}
	if !p.Has("--volume") {
		t.Error("Has(--volume) = false, want true")
	}
}

func TestWriteHelpPlainForNonTerminal(t *testing.T) {
	p := New(WithProgramName("radio"))
	p.AddArgument("--verbose").Help("print more")

	var buf bytes.Buffer
	if err := p.WriteHelp(&buf); err != nil {
		t.Fatalf("WriteHelp() error = %v", err)
	}
	if diff := cmp.Diff(p.Help(), buf.String()); diff != "" {
		t.Errorf("WriteHelp() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpArgument(t *testing.T) {
	var buf bytes.Buffer
	var rec exitRecorder
	p := New(WithProgramName("radio"), WithOutput(&buf), WithExitFunc(rec.exit))
	p.AddHelpArgument()
	p.AddArgument("--volume").Nargs(1).Type(Int32).Required()

	for _, flag := range []string{"-h", "--help"} {
		buf.Reset()
		rec.codes = nil
		p.parsed = false

		err := p.Parse([]string{flag})
		if !errors.Is(err, ErrExit) {
			t.Fatalf("Parse(%s) error = %v, want %v", flag, err, ErrExit)
		}
		if diff := cmp.Diff(p.Help(), buf.String()); diff != "" {
			t.Errorf("Parse(%s) output mismatch (-want +got):\n%s", flag, diff)
		}
		if diff := cmp.Diff([]int{0}, rec.codes); diff != "" {
			t.Errorf("exit codes mismatch (-want +got):\n%s", diff)
		}
	}

	want := `Usage: radio [-h] --volume VOLUME

optional arguments:
  -h, --help       show this help message and exit
  --volume VOLUME  (required)
`
	if diff := cmp.Diff(want, p.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestVersionArgument(t *testing.T) {
	var buf bytes.Buffer
	var rec exitRecorder
	p := New(WithProgramName("radio"), WithOutput(&buf), WithExitFunc(rec.exit))
	p.AddVersionArgument("1.2.3")

	if err := p.Parse([]string{"--version"}); !errors.Is(err, ErrExit) {
		t.Fatalf("Parse() error = %v, want %v", err, ErrExit)
	}
	if got, want := buf.String(), "radio version 1.2.3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestHelpArgumentLogsWriteError(t *testing.T) {
	var logs bytes.Buffer
	var rec exitRecorder
	p := New(
		WithOutput(failingWriter{}),
		WithExitFunc(rec.exit),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	p.AddHelpArgument()

	if err := p.Parse([]string{"--help"}); !errors.Is(err, ErrExit) {
		t.Fatalf("Parse() error = %v, want %v", err, ErrExit)
	}
	for _, want := range []string{"level=ERROR", "cannot write help", "disk full"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output %q does not contain %q", logs.String(), want)
		}
	}
	if diff := cmp.Diff([]int{0}, rec.codes); diff != "" {
		t.Errorf("exit codes mismatch (-want +got):\n%s", diff)
	}
}
