// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the plumbing shared by the arser binaries: global
// flags, logger construction, error printing and value rendering.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// GlobalFlags are consumed before a program's own arguments are parsed.
type GlobalFlags struct {
	LogLevel  string `flag:"log-level" default:"warn" help:"Log level: debug, info, warn or error"`
	LogFormat string `flag:"log-format" default:"text" help:"Log format: text or json"`
	Output    string `flag:"output" default:"text" help:"Output format: text, json or yaml"`
}

// ParseGlobalFlags removes the global flags from args and returns them with
// the remaining args, which are left for the program's own parser.
func ParseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[GlobalFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	flags := result.Flags
	flags.LogLevel = strings.ToLower(flags.LogLevel)
	flags.LogFormat = strings.ToLower(flags.LogFormat)
	flags.Output = strings.ToLower(flags.Output)

	switch flags.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return GlobalFlags{}, nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", flags.LogLevel)
	}
	if flags.LogFormat != "text" && flags.LogFormat != "json" {
		return GlobalFlags{}, nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", flags.LogFormat)
	}
	switch flags.Output {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return GlobalFlags{}, nil, fmt.Errorf("invalid output %q: must be 'text', 'json', or 'yaml'", flags.Output)
	}
	return flags, result.RemainingArgs, nil
}

// NewLogger returns a logger writing to w at the given level, as text or
// JSON. Unknown levels fall back to info.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// PrintError writes err to w behind an "error:" prefix, red when w is a
// terminal and NO_COLOR is unset. Nothing is written for a nil error.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed)
	if useColor(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	red.Fprint(w, "error: ")
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) && len(joined.Unwrap()) > 1 {
		fmt.Fprintln(w, strings.ReplaceAll(err.Error(), "\n", "; "))
		return
	}
	fmt.Fprintln(w, err)
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render writes values in the given format. Text output is one aligned
// "name value" line per entry, sorted by name.
func Render(w io.Writer, format string, values map[string]any) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(values); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		slices.Sort(names)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n", name, formatValue(values[name]))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case []string:
		return strings.Join(v, " ")
	case []int32, []float32:
		s := fmt.Sprint(v)
		return strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	default:
		return fmt.Sprint(v)
	}
}
