// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors identifying each failure kind. Every typed error below
// unwraps to exactly one of them, so callers can use errors.Is.
var (
	// ErrConfiguration is returned for invalid declarations: duplicate or
	// ambiguous names, or an arity/type combination that cannot work.
	ErrConfiguration = errors.New("configuration error")

	// ErrParse is returned when the argument vector does not satisfy the
	// declarations.
	ErrParse = errors.New("parse error")

	// ErrLookup is returned when querying a name that was never declared.
	ErrLookup = errors.New("unknown argument")

	// ErrState is returned when retrieving an argument that was neither
	// given on the command line nor defaulted.
	ErrState = errors.New("argument not set")

	// ErrTypeMismatch is returned when the requested Go type does not match
	// the declared DataType.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConversion is returned when a raw token cannot be converted to the
	// declared type.
	ErrConversion = errors.New("conversion error")

	// ErrExit is returned by Parse after an exit callback ran and the exit
	// function returned. It is not a failure: callers should stop and
	// return without reporting it.
	ErrExit = errors.New("exit requested")
)

// ConfigurationError describes an invalid declaration.
type ConfigurationError struct {
	Names  []string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if len(e.Names) == 0 {
		return fmt.Sprintf("invalid argument declaration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument declaration %s: %s", strings.Join(e.Names, ", "), e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ParseError is returned when the argument vector cannot be matched.
// Argument is empty when the error is not about a single declaration
// (for example unrecognized leftovers).
type ParseError struct {
	Argument string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Argument == "" {
		return e.Reason
	}
	return fmt.Sprintf("argument %s: %s", e.Argument, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// LookupError is returned for names that were never declared.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrLookup
}

// StateError is returned when an argument has no value to retrieve.
type StateError struct {
	Name string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("argument %s was not given and has no default", e.Name)
}

func (e *StateError) Unwrap() error {
	return ErrState
}

// TypeMismatchError is returned when Get is called with a type that does
// not match the declaration.
type TypeMismatchError struct {
	Name      string
	Declared  DataType
	Requested DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %s is declared as %s, requested %s", e.Name, e.Declared, e.Requested)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// ConversionError is returned when a raw token is not a valid literal of
// the declared type. Err holds the underlying strconv error.
type ConversionError struct {
	Name  string
	Value string
	Type  DataType
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("argument %s: invalid %s value %q", e.Name, e.Type, e.Value)
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}
