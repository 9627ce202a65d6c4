package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// This file holds the small set of cty conversions the loader and the
// expansion rules share. They convert leniently (tuples, lists, and sets are
// all accepted) but never guess: a value that cannot represent the requested
// Go type is an error, not a zero value.

// StringList converts v to a []string. An empty collection yields an empty,
// non-nil slice, preserving the distinction between "explicitly empty" and
// "absent".
func StringList(v cty.Value) ([]string, error) {
	conv, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("expected a list of strings: %w", err)
	}
	if conv.IsNull() {
		return nil, nil
	}
	out := make([]string, 0, conv.LengthInt())
	for it := conv.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		out = append(out, ev.AsString())
	}
	return out, nil
}

// IntList converts v to a []int, rejecting fractional numbers.
func IntList(v cty.Value) ([]int, error) {
	conv, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("expected a list of integers: %w", err)
	}
	if conv.IsNull() {
		return nil, nil
	}
	out := make([]int, 0, conv.LengthInt())
	for it := conv.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		bf := ev.AsBigFloat()
		if !bf.IsInt() {
			return nil, fmt.Errorf("expected an integer, got %s", bf.String())
		}
		n, _ := bf.Int64()
		out = append(out, int(n))
	}
	return out, nil
}

// FloatList converts v to a []float64.
func FloatList(v cty.Value) ([]float64, error) {
	conv, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("expected a list of numbers: %w", err)
	}
	if conv.IsNull() {
		return nil, nil
	}
	out := make([]float64, 0, conv.LengthInt())
	for it := conv.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		f, _ := ev.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out, nil
}

// Float converts v to a float64.
func Float(v cty.Value) (float64, error) {
	conv, err := convert.Convert(v, cty.Number)
	if err != nil || conv.IsNull() {
		return 0, fmt.Errorf("expected a number")
	}
	f, _ := conv.AsBigFloat().Float64()
	return f, nil
}

// Bool converts v to a bool.
func Bool(v cty.Value) (bool, error) {
	conv, err := convert.Convert(v, cty.Bool)
	if err != nil || conv.IsNull() {
		return false, fmt.Errorf("expected a bool")
	}
	return conv.True(), nil
}

// String converts v to a string.
func String(v cty.Value) (string, error) {
	conv, err := convert.Convert(v, cty.String)
	if err != nil || conv.IsNull() {
		return "", fmt.Errorf("expected a string")
	}
	return conv.AsString(), nil
}

// AxisBounds interprets an axis_limits value. It returns the four bounds
// (xmin, xmax, ymin, ymax) when v is a well-formed numeric 4-tuple, and
// ok=false when limits are absent or disabled with `false`. Malformed values
// also report ok=false; diagnosing them is the validator's job.
func AxisBounds(v cty.Value) (bounds []float64, ok bool) {
	if v == cty.NilVal || v.IsNull() {
		return nil, false
	}
	fs, err := FloatList(v)
	if err != nil || len(fs) != 4 {
		return nil, false
	}
	return fs, true
}
