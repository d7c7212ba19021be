// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// newFlagSet returns the pflag set a Registry parses with.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	// Errors and usage are reported by the caller from the result of Parse.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	return fs
}

// pflagValue lets pflag assign a Descriptor through its Coercer.
type pflagValue struct {
	reg *Registry
	d   Descriptor
}

var _ pflag.Value = (*pflagValue)(nil)

func (v *pflagValue) Set(s string) error {
	if err := v.d.set(Arg(s)); err != nil {
		return err
	}
	v.reg.logger.Trace("set flag", "name", v.d.Name(), "value", s)
	return nil
}

func (v *pflagValue) String() string { return v.d.valueString() }

func (v *pflagValue) Type() string {
	if v.d.IsBool() {
		return "bool"
	}
	if p := v.d.Placeholder(); p != "" {
		return p
	}
	return "value"
}

func (r *Registry) toPFlag(d Descriptor) *pflag.Flag {
	f := &pflag.Flag{
		Name:     d.Name(),
		Usage:    d.Usage(),
		Value:    &pflagValue{reg: r, d: d},
		DefValue: d.DefaultString(),
		Hidden:   d.Hidden(),
	}
	if s := d.Shorthand(); s != 0 {
		f.Shorthand = string(s)
	}
	if d.IsBool() {
		f.NoOptDefVal = "true"
	}
	return f
}

// parseError converts an error returned by pflag into a *ParseError.
func parseError(err error) *ParseError {
	var (
		notExist *pflag.NotExistError
		required *pflag.ValueRequiredError
		invalid  *pflag.InvalidValueError
		syntax   *pflag.InvalidSyntaxError
	)

	switch {
	case errors.As(err, &notExist):
		// pflag names an unknown shorthand by its first byte; recover the
		// whole character from the rest of the token.
		if short := notExist.GetSpecifiedShortnames(); short != "" {
			s, _ := utf8.DecodeRuneInString(short)
			return &ParseError{Kind: KindUnknown, Flag: string(s), Token: "-" + string(s)}
		}
		name := notExist.GetSpecifiedName()
		return &ParseError{Kind: KindUnknown, Flag: name, Token: "--" + name}

	case errors.As(err, &required):
		token := "--" + required.GetSpecifiedName()
		if required.GetSpecifiedShortnames() != "" {
			token = "-" + required.GetSpecifiedName()
		}
		return &ParseError{Kind: KindMissingValue, Flag: required.GetFlag().Name, Token: token}

	case errors.As(err, &invalid):
		name := invalid.GetFlag().Name
		return &ParseError{Kind: KindInvalidValue, Flag: name, Token: "--" + name, Err: invalid.Unwrap()}

	case errors.As(err, &syntax):
		return &ParseError{Kind: KindSyntax, Token: syntax.GetSpecifiedFlag()}
	}
	return &ParseError{Kind: KindSyntax, Err: err}
}
