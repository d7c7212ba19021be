// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"time"
)

// NewFlag builds a flag from its declaration without registering it. Pass
// the result to Registry.Register or Registry.RegisterAll.
func NewFlag[T any](d Def[T], c Coercer[T]) (*Flag[T], error) {
	return newFlag(d, c)
}

// New declares a flag on r.
func New[T any](r *Registry, d Def[T], c Coercer[T]) (*Flag[T], error) {
	f, err := newFlag(d, c)
	if err != nil {
		var regErr *RegistrationError
		if errors.As(err, &regErr) {
			regErr.Registry = r.name
		}
		return nil, err
	}
	if err := r.Register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Var declares a flag on CommandLine whose values are produced by c. It is
// the extension point for user-defined value types. Var panics if the flag
// cannot be registered, so a collision is reported when the declaring
// package is initialized.
func Var[T any](d Def[T], c Coercer[T]) *Flag[T] {
	f, err := New(CommandLine, d, c)
	if err != nil {
		panic(err)
	}
	return f
}

// Bool declares a boolean flag on CommandLine. The flag is set to true by
// its bare presence; --name=false is also accepted.
func Bool(d Def[bool]) *Flag[bool] { return Var[bool](d, BoolValue{}) }

func String(d Def[string]) *Flag[string] { return Var[string](d, StringValue{}) }

// Path declares a flag holding a filesystem path. The path is not checked.
func Path(d Def[string]) *Flag[string] { return Var[string](d, PathValue{}) }

func Int(d Def[int]) *Flag[int]                          { return Var[int](d, SignedValue[int]{}) }
func Int8(d Def[int8]) *Flag[int8]                       { return Var[int8](d, SignedValue[int8]{}) }
func Int16(d Def[int16]) *Flag[int16]                    { return Var[int16](d, SignedValue[int16]{}) }
func Int32(d Def[int32]) *Flag[int32]                    { return Var[int32](d, SignedValue[int32]{}) }
func Int64(d Def[int64]) *Flag[int64]                    { return Var[int64](d, SignedValue[int64]{}) }
func Uint(d Def[uint]) *Flag[uint]                       { return Var[uint](d, UnsignedValue[uint]{}) }
func Uint8(d Def[uint8]) *Flag[uint8]                    { return Var[uint8](d, UnsignedValue[uint8]{}) }
func Uint16(d Def[uint16]) *Flag[uint16]                 { return Var[uint16](d, UnsignedValue[uint16]{}) }
func Uint32(d Def[uint32]) *Flag[uint32]                 { return Var[uint32](d, UnsignedValue[uint32]{}) }
func Uint64(d Def[uint64]) *Flag[uint64]                 { return Var[uint64](d, UnsignedValue[uint64]{}) }
func Float32(d Def[float32]) *Flag[float32]              { return Var[float32](d, FloatValue[float32]{}) }
func Float64(d Def[float64]) *Flag[float64]              { return Var[float64](d, FloatValue[float64]{}) }
func Duration(d Def[time.Duration]) *Flag[time.Duration] { return Var[time.Duration](d, DurationValue{}) }

// Enum declares a flag accepting only the keys of choices.
func Enum[T comparable](d Def[T], choices map[string]T) *Flag[T] {
	return Var[T](d, NewEnum(choices))
}
