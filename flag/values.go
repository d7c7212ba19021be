// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/posener/complete"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"golang.org/x/exp/constraints"
)

// -- BoolValue
type BoolValue struct{}

func (BoolValue) Coerce(arg Arg) (bool, error) {
	v, err := strconv.ParseBool(arg.String())
	if err != nil {
		return false, Errorf("%q is not a boolean, expected true or false", arg.String())
	}
	return v, nil
}

func (BoolValue) Format(v bool) string          { return strconv.FormatBool(v) }
func (BoolValue) IsBoolFlag() bool              { return true }
func (BoolValue) Predictor() complete.Predictor { return complete.PredictNothing }

// -- StringValue
type StringValue struct{}

func (StringValue) Coerce(arg Arg) (string, error) { return arg.String(), nil }
func (StringValue) Format(v string) string         { return v }
func (StringValue) Example() string                { return "string" }

// -- PathValue

// PathValue accepts any token as a filesystem path. The path is not cleaned
// and its existence is not checked; use ExistingPathValue for that.
type PathValue struct{}

func (PathValue) Coerce(arg Arg) (string, error) { return arg.String(), nil }
func (PathValue) Format(v string) string         { return v }
func (PathValue) Example() string                { return "path" }
func (PathValue) Predictor() complete.Predictor  { return complete.PredictFiles("*") }

// -- SignedValue

// SignedValue parses decimal integers into any signed integer type, failing
// when the value does not fit in T.
type SignedValue[T constraints.Signed] struct{}

func (SignedValue[T]) Coerce(arg Arg) (T, error) {
	var zero T
	v, err := strconv.ParseInt(arg.String(), 10, bitSize(zero))
	if err != nil {
		return zero, numError(arg, zero, err)
	}
	return T(v), nil
}

func (SignedValue[T]) Format(v T) string { return strconv.FormatInt(int64(v), 10) }
func (SignedValue[T]) Example() string   { return "int" }

// -- UnsignedValue

// UnsignedValue parses decimal integers into any unsigned integer type.
type UnsignedValue[T constraints.Unsigned] struct{}

func (UnsignedValue[T]) Coerce(arg Arg) (T, error) {
	var zero T
	v, err := strconv.ParseUint(arg.String(), 10, bitSize(zero))
	if err != nil {
		return zero, numError(arg, zero, err)
	}
	return T(v), nil
}

func (UnsignedValue[T]) Format(v T) string { return strconv.FormatUint(uint64(v), 10) }
func (UnsignedValue[T]) Example() string   { return "uint" }

// -- FloatValue
type FloatValue[T constraints.Float] struct{}

func (FloatValue[T]) Coerce(arg Arg) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(arg.String(), bitSize(zero))
	if err != nil {
		return zero, numError(arg, zero, err)
	}
	return T(v), nil
}

func (FloatValue[T]) Format(v T) string {
	var zero T
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize(zero))
}

func (FloatValue[T]) Example() string { return "float" }

func bitSize(v interface{}) int {
	return reflect.TypeOf(v).Bits()
}

func numError(arg Arg, zero interface{}, err error) error {
	typ := reflect.TypeOf(zero).String()
	if errors.Is(err, strconv.ErrRange) {
		return Errorf("%q is out of range for %s: %w", arg.String(), typ, strconv.ErrRange)
	}
	return Errorf("%q is not a valid %s", arg.String(), typ)
}

// -- DurationValue
type DurationValue struct{}

func (DurationValue) Coerce(arg Arg) (time.Duration, error) {
	d, err := time.ParseDuration(arg.String())
	if err != nil {
		return 0, Errorf("%q is not a valid duration, e.g. 30s or 1h15m", arg.String())
	}
	return d, nil
}

func (DurationValue) Format(v time.Duration) string { return v.String() }
func (DurationValue) Example() string               { return "duration" }

// -- EnumValue

// EnumValue maps a fixed set of tokens onto values of T. Matching is exact.
type EnumValue[T comparable] struct {
	names  []string
	values map[string]T
}

// NewEnum returns an EnumValue accepting the keys of choices.
func NewEnum[T comparable](choices map[string]T) *EnumValue[T] {
	e := &EnumValue[T]{
		names:  make([]string, 0, len(choices)),
		values: make(map[string]T, len(choices)),
	}
	for name, v := range choices {
		e.names = append(e.names, name)
		e.values[name] = v
	}
	sort.Strings(e.names)
	return e
}

// OneOf returns an EnumValue for plain string choices.
func OneOf(choices ...string) *EnumValue[string] {
	m := make(map[string]string, len(choices))
	for _, c := range choices {
		m[c] = c
	}
	return NewEnum(m)
}

func (e *EnumValue[T]) Coerce(arg Arg) (T, error) {
	if v, ok := e.values[arg.String()]; ok {
		return v, nil
	}
	var zero T
	return zero, Errorf("'%s' not valid. Must be one of: %s", arg.String(), strings.Join(e.names, ", "))
}

// Format returns the first name, in sorted order, that maps to v.
func (e *EnumValue[T]) Format(v T) string {
	for _, name := range e.names {
		if e.values[name] == v {
			return name
		}
	}
	return ""
}

func (e *EnumValue[T]) Example() string               { return strings.Join(e.names, "|") }
func (e *EnumValue[T]) Predictor() complete.Predictor { return complete.PredictSet(e.names...) }

// -- ExistingPathValue

// ExistingPathValue accepts a path only if it exists on Fs. A nil Fs means
// the operating system's filesystem.
type ExistingPathValue struct {
	Fs afero.Fs

	// Dir requires the path to be a directory; otherwise it must not be one.
	Dir bool
}

func (p ExistingPathValue) Coerce(arg Arg) (string, error) {
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	path := arg.String()
	fi, err := fs.Stat(path)
	if err != nil {
		return "", Errorf("%q does not exist: %w", path, err)
	}
	if p.Dir && !fi.IsDir() {
		return "", Errorf("%q is not a directory", path)
	}
	if !p.Dir && fi.IsDir() {
		return "", Errorf("%q is a directory", path)
	}
	return path, nil
}

func (p ExistingPathValue) Format(v string) string { return v }

func (p ExistingPathValue) Example() string {
	if p.Dir {
		return "dir"
	}
	return "file"
}

func (p ExistingPathValue) Predictor() complete.Predictor {
	if p.Dir {
		return complete.PredictDirs("*")
	}
	return complete.PredictFiles("*")
}

// -- PFlagValue

// PFlagValue lets a type written for spf13/pflag be used as a flag value.
// Every Coerce calls Set on the same V, so V is normally a pointer type.
type PFlagValue[V pflag.Value] struct {
	V V
}

func (p PFlagValue[V]) Coerce(arg Arg) (V, error) {
	if err := p.V.Set(arg.String()); err != nil {
		return p.V, Errorf("%w", err)
	}
	return p.V, nil
}

func (p PFlagValue[V]) Format(v V) string { return v.String() }
func (p PFlagValue[V]) Example() string   { return p.V.Type() }
func (p PFlagValue[V]) IsBoolFlag() bool  { return p.V.Type() == "bool" }
