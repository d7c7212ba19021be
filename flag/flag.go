// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"
	"unicode/utf8"

	"github.com/posener/complete"
)

// Def declares a flag. Only Name is required.
type Def[T any] struct {
	// Name is the long name, used as --name.
	Name string

	// Shorthand is an optional single ASCII character used as -x.
	Shorthand string

	Usage string

	// Placeholder labels the value in help output, e.g. "FILE" renders as
	// --config=<FILE>. It is ignored for boolean flags.
	Placeholder string

	// Default is the value returned when the flag is not supplied. A nil
	// Default means the flag must be checked with IsPresent before its value
	// is read.
	Default *T

	// Group is the help section the flag is listed under.
	Group string

	// Hidden flags are parsed normally but left out of help and completion.
	Hidden bool

	// Completion overrides the value type's shell completion.
	Completion complete.Predictor
}

// Descriptor is the type-erased view of a flag held by a Registry.
type Descriptor interface {
	Name() string
	Shorthand() rune
	Usage() string
	Placeholder() string
	Group() string
	Hidden() bool
	IsBool() bool
	IsPresent() bool
	HasDefault() bool
	DefaultString() string
	Completion() complete.Predictor

	// set coerces arg and stores the result. Only the parser calls it.
	set(arg Arg) error

	// valueString renders the current value the way DefaultString renders
	// the default.
	valueString() string
}

// Flag is a declared flag holding a value of type T.
type Flag[T any] struct {
	name        string
	shorthand   rune
	usage       string
	placeholder string
	group       string
	hidden      bool
	completion  complete.Predictor

	coercer Coercer[T]
	def     *T

	value   T
	present bool
}

var _ Descriptor = (*Flag[string])(nil)

// newFlag builds a Flag from its declaration without registering it.
func newFlag[T any](d Def[T], c Coercer[T]) (*Flag[T], error) {
	if c == nil {
		return nil, &RegistrationError{Name: d.Name, Err: fmt.Errorf("%w: no coercer", ErrInvalidName)}
	}

	short, err := parseShorthand(d.Shorthand)
	if err != nil {
		return nil, &RegistrationError{Name: d.Name, Err: err}
	}

	f := &Flag[T]{
		name:        d.Name,
		shorthand:   short,
		usage:       d.Usage,
		placeholder: d.Placeholder,
		group:       d.Group,
		hidden:      d.Hidden,
		completion:  d.Completion,
		coercer:     c,
	}
	if d.Default != nil {
		def := *d.Default
		f.def = &def
		f.value = def
	}
	return f, nil
}

func parseShorthand(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) != 1 || s[0] >= utf8.RuneSelf {
		return 0, fmt.Errorf("%w: shorthand %q is not a single ASCII character", ErrInvalidName, s)
	}
	if s == "-" || s == "=" {
		return 0, fmt.Errorf("%w: shorthand %q is reserved", ErrInvalidName, s)
	}
	return rune(s[0]), nil
}

// Value returns the flag's value: the last one given on the command line, or
// the default. It panics with an *AccessError if the flag has no default and
// was not supplied; use Lookup or IsPresent when that can happen.
func (f *Flag[T]) Value() T {
	v, err := f.Lookup()
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup is like Value but returns an *AccessError instead of panicking.
func (f *Flag[T]) Lookup() (T, error) {
	if !f.present && f.def == nil {
		var zero T
		return zero, &AccessError{Flag: f.name}
	}
	return f.value, nil
}

// IsPresent reports whether the flag was supplied on the command line.
func (f *Flag[T]) IsPresent() bool { return f.present }

func (f *Flag[T]) HasDefault() bool { return f.def != nil }
func (f *Flag[T]) Name() string     { return f.name }
func (f *Flag[T]) Shorthand() rune  { return f.shorthand }
func (f *Flag[T]) Usage() string    { return f.usage }
func (f *Flag[T]) Group() string    { return f.group }
func (f *Flag[T]) Hidden() bool     { return f.hidden }

// Placeholder returns the declared placeholder, falling back to the value
// type's example. Boolean flags have none.
func (f *Flag[T]) Placeholder() string {
	if f.IsBool() {
		return ""
	}
	if f.placeholder != "" {
		return f.placeholder
	}
	if e, ok := f.coercer.(FlagExample); ok {
		return e.Example()
	}
	return ""
}

// IsBool reports whether the flag can be given without a value.
func (f *Flag[T]) IsBool() bool {
	b, ok := f.coercer.(boolFlag)
	return ok && b.IsBoolFlag()
}

// DefaultString renders the default in the form the coercer accepts. It is
// empty when the flag has no default.
func (f *Flag[T]) DefaultString() string {
	if f.def == nil {
		return ""
	}
	return f.format(*f.def)
}

func (f *Flag[T]) valueString() string { return f.format(f.value) }

func (f *Flag[T]) format(v T) string {
	if fm, ok := f.coercer.(Formatter[T]); ok {
		return fm.Format(v)
	}
	return fmt.Sprint(v)
}

// Completion returns the predictor used for shell completion of the value.
func (f *Flag[T]) Completion() complete.Predictor {
	if f.completion != nil {
		return f.completion
	}
	if p, ok := f.coercer.(FlagPredictor); ok {
		return p.Predictor()
	}
	if f.IsBool() {
		return complete.PredictNothing
	}
	return complete.PredictAnything
}

func (f *Flag[T]) set(arg Arg) error {
	v, err := f.coercer.Coerce(arg)
	if err != nil {
		return err
	}
	f.value = v
	f.present = true
	return nil
}
