// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arser

import (
	"fmt"
	"strconv"
	"strings"
)

// decimalChars are the only characters a FLOAT token may contain. This
// leaves out the "inf", "nan" and hex forms strconv.ParseFloat also accepts.
const decimalChars = "0123456789+-.eE"

// convert turns raw tokens into the Go value for t: bool, int32, float32,
// string, or a slice of one of the last three.
func convert(name string, t DataType, raw []string) (any, error) {
	if !t.IsVector() {
		if len(raw) != 1 {
			return nil, fmt.Errorf("argument %s: expected 1 value, got %d", name, len(raw))
		}
		return convertScalar(name, t, raw[0])
	}

	switch t {
	case Int32Vec:
		out := make([]int32, 0, len(raw))
		for _, s := range raw {
			v, err := convertScalar(name, Int32, s)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(int32))
		}
		return out, nil
	case FloatVec:
		out := make([]float32, 0, len(raw))
		for _, s := range raw {
			v, err := convertScalar(name, Float, s)
			if err != nil {
				return nil, err
			}
			out = append(out, v.(float32))
		}
		return out, nil
	default:
		return append([]string(nil), raw...), nil
	}
}

func convertScalar(name string, t DataType, s string) (any, error) {
	switch t {
	case Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, &ConversionError{Name: name, Value: s, Type: t, Err: err}
		}
		return b, nil
	case Int32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, &ConversionError{Name: name, Value: s, Type: t, Err: err}
		}
		return int32(i), nil
	case Float:
		if strings.IndexFunc(s, func(r rune) bool { return !strings.ContainsRune(decimalChars, r) }) >= 0 {
			return nil, &ConversionError{Name: name, Value: s, Type: t, Err: strconv.ErrSyntax}
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, &ConversionError{Name: name, Value: s, Type: t, Err: err}
		}
		return float32(f), nil
	case String:
		return s, nil
	default:
		return nil, fmt.Errorf("argument %s: %s is not a scalar type", name, t)
	}
}
