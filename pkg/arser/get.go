// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

// Has reports whether the named argument was given on the command line.
// It returns false for names that were never declared; use Lookup to tell
// the two cases apart.
func (p *Parser) Has(name string) bool {
	a, ok := p.lookup(name)
	return ok && a.parsed
}

// Lookup is like Has but returns a *LookupError for undeclared names.
func (p *Parser) Lookup(name string) (bool, error) {
	a, ok := p.lookup(name)
	if !ok {
		return false, &LookupError{Name: name}
	}
	return a.parsed, nil
}

// Get returns the value of the named argument converted to T. T must match
// the declared type exactly: bool for BOOL (and every nargs 0 option),
// int32 for INT32, float32 for FLOAT, string for STRING, and the matching
// slice type for the vector types.
//
// FLOAT values use decimal or scientific notation ("2.5", "-1e3"); "inf",
// "nan" and hex floats are rejected with a *ConversionError.
//
// When the argument was not given, its default is returned; without a
// default Get fails with a *StateError.
func Get[T Value](p *Parser, name string) (T, error) {
	var zero T
	a, ok := p.lookup(name)
	if !ok {
		return zero, &LookupError{Name: name}
	}
	raw, ok := a.raw()
	if !ok {
		return zero, &StateError{Name: name}
	}
	declared, requested := a.DataType(), dataTypeOf[T]()
	if declared != requested {
		return zero, &TypeMismatchError{Name: name, Declared: declared, Requested: requested}
	}
	v, err := convert(name, declared, raw)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MustGet is like Get but panics on error. It suits programs whose
// declarations make a failure impossible, such as a required option read
// with its declared type.
func MustGet[T Value](p *Parser, name string) T {
	v, err := Get[T](p, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Values returns the converted value of every argument that was given or
// has a default, keyed by its first name.
func (p *Parser) Values() (map[string]any, error) {
	out := make(map[string]any)
	for _, a := range p.Arguments() {
		raw, ok := a.raw()
		if !ok {
			continue
		}
		v, err := convert(a.Name(), a.DataType(), raw)
		if err != nil {
			return nil, err
		}
		out[a.Name()] = v
	}
	return out, nil
}
