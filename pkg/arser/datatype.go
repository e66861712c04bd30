// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import "fmt"

// DataType is the declared value type of an Argument.
type DataType int

const (
	Bool DataType = iota
	Int32
	Float
	String
	Int32Vec
	FloatVec
	StringVec
)

var dataTypeNames = [...]string{
	Bool:      "BOOL",
	Int32:     "INT32",
	Float:     "FLOAT",
	String:    "STRING",
	Int32Vec:  "INT32_VEC",
	FloatVec:  "FLOAT_VEC",
	StringVec: "STRING_VEC",
}

func (t DataType) String() string {
	if t.valid() {
		return dataTypeNames[t]
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// IsVector reports whether t holds a sequence of values.
func (t DataType) IsVector() bool {
	return t == Int32Vec || t == FloatVec || t == StringVec
}

// elem returns the scalar type of each element of t.
func (t DataType) elem() DataType {
	switch t {
	case Int32Vec:
		return Int32
	case FloatVec:
		return Float
	case StringVec:
		return String
	}
	return t
}

func (t DataType) valid() bool {
	return t >= Bool && t <= StringVec
}

// Value is the closed set of Go types an Argument can be retrieved as.
type Value interface {
	bool | int32 | float32 | string | []int32 | []float32 | []string
}

// dataTypeOf maps a retrieval type to its DataType tag.
func dataTypeOf[T Value]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case float32:
		return Float
	case string:
		return String
	case []int32:
		return Int32Vec
	case []float32:
		return FloatVec
	default:
		return StringVec
	}
}

// defaultType is the type an argument gets when Type was never called.
func defaultType(nargs int) DataType {
	switch {
	case nargs == 0:
		return Bool
	case nargs == 1:
		return String
	default:
		return StringVec
	}
}
