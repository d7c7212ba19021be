// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when a flag is registered with a long or short
	// name that is already taken.
	ErrDuplicate = errors.New("flag redefined")

	// ErrInvalidName is returned when a flag is declared with a name that
	// cannot be addressed on the command line.
	ErrInvalidName = errors.New("invalid flag name")

	// ErrRegistryFrozen is returned when a flag is registered after the
	// registry has been parsed.
	ErrRegistryFrozen = errors.New("flag registered after parsing")

	ErrUnknownFlag  = errors.New("flag provided but not defined")
	ErrMissingValue = errors.New("flag needs an argument")
	ErrInvalidValue = errors.New("invalid value")
	ErrSyntax       = errors.New("bad flag syntax")
	ErrNotPresent   = errors.New("flag accessed without default and not present")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissingValue
	KindInvalidValue
	KindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknown:
		return "unknown flag"
	case KindMissingValue:
		return "missing value"
	case KindInvalidValue:
		return "invalid value"
	case KindSyntax:
		return "syntax"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnknown:
		return ErrUnknownFlag
	case KindMissingValue:
		return ErrMissingValue
	case KindInvalidValue:
		return ErrInvalidValue
	default:
		return ErrSyntax
	}
}

// ParseError is returned by Parse. Flag is the long name of the flag involved,
// or the name as typed, without dashes, when no such flag exists. Token is
// the command-line form that caused the error, except for KindInvalidValue
// where it is always the --long form.
type ParseError struct {
	Kind  ErrorKind
	Flag  string
	Token string

	// Err is the underlying cause. For KindInvalidValue it is the error
	// returned by the flag's Coercer.
	Err error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindUnknown:
		return fmt.Sprintf("%v: %s", ErrUnknownFlag, e.Token)
	case KindMissingValue:
		return fmt.Sprintf("%v: %s", ErrMissingValue, e.Token)
	case KindInvalidValue:
		return fmt.Sprintf("invalid value for flag %s: %v", e.Token, e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%v: %s: %v", ErrSyntax, e.Token, e.Err)
		}
		return fmt.Sprintf("%v: %s", ErrSyntax, e.Token)
	}
}

// Unwrap exposes both the kind's sentinel and the cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// RegistrationError describes a flag that could not be added to a Registry.
type RegistrationError struct {
	Registry string
	Name     string
	Err      error
}

func (e *RegistrationError) Error() string {
	if e.Registry == "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Registry, e.Name, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// AccessError is the failure of reading a flag that has no default and was
// not supplied on the command line.
type AccessError struct {
	Flag string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("--%s: %v", e.Flag, ErrNotPresent)
}

func (e *AccessError) Unwrap() error { return ErrNotPresent }

// CoercionError is the error a Coercer returns when a raw argument cannot be
// converted. Msg is shown to the user verbatim.
type CoercionError struct {
	Msg string
	Err error
}

// Errorf returns a *CoercionError with a formatted message. A %w verb is
// honored and the wrapped error becomes reachable through Unwrap.
func Errorf(format string, a ...interface{}) error {
	err := fmt.Errorf(format, a...)
	return &CoercionError{Msg: err.Error(), Err: errors.Unwrap(err)}
}

func (e *CoercionError) Error() string { return e.Msg }

func (e *CoercionError) Unwrap() error { return e.Err }
