// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import "github.com/posener/complete"

// Arg is a raw command-line token handed to a Coercer. For "--name=value" and
// fused "-xvalue" forms it holds only the value part.
type Arg string

// String returns the token text.
func (a Arg) String() string { return string(a) }

// Coercer converts a raw argument into a typed flag value. Built-in value
// types and user-defined types implement it alike; the parser dispatches
// through this interface only.
//
// Errors should be created with Errorf so the message reads well when it is
// embedded in the parse error shown to the user.
type Coercer[T any] interface {
	Coerce(arg Arg) (T, error)
}

// CoercerFunc adapts an ordinary function to the Coercer interface.
type CoercerFunc[T any] func(Arg) (T, error)

func (f CoercerFunc[T]) Coerce(arg Arg) (T, error) { return f(arg) }

// The following interfaces are optional capabilities a Coercer may
// implement. They are discovered by type assertion when a flag is created.

// boolFlag marks coercers for flags that can be supplied without a value.
type boolFlag interface {
	IsBoolFlag() bool
}

// Formatter renders a value in the canonical text form its Coercer accepts.
// It is used to display defaults in help output.
type Formatter[T any] interface {
	Format(v T) string
}

// FlagExample supplies the placeholder shown in help when the declaration
// has none, e.g. "int" in "--count=<int>".
type FlagExample interface {
	Example() string
}

// FlagPredictor supplies the default shell completion for a value type.
type FlagPredictor interface {
	Predictor() complete.Predictor
}
