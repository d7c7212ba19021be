// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	errBoolFused      = errors.New("boolean shorthand takes no attached value; combined shorthands are not supported")
	errReservedPrefix = errors.New("the -test. prefix is reserved")
)

// Parse walks args from left to right, assigning flag values and collecting
// positional arguments, which it returns in their original order.
//
// Recognized forms are --name, --name=value, --name value, -x, -x=value,
// -xvalue and -x value. A value given as a separate token is taken as-is even
// if it begins with a dash or an equals sign, so "--file --other" sets file to
// "--other". Boolean flags never consume the next token. Everything after
// "--" is positional, as is a lone "-".
//
// Parsing stops at the first error. Flags assigned before the error keep
// their new values.
func (r *Registry) Parse(args []string) ([]string, error) {
	r.parsed = true

	n, stop := r.precheck(args)
	err := r.fs.Parse(args[:n])
	r.args = r.fs.Args()

	var pe *ParseError
	switch {
	case err != nil:
		pe = parseError(err)
	case stop != nil:
		pe = stop
	default:
		return r.args, nil
	}
	r.logger.Debug("parse failed", "error", pe)
	return r.args, pe
}

// precheck finds the first token that pflag reads differently from Parse: a
// boolean shorthand with something attached, which pflag takes as a cluster
// of shorthands; an undefined -h or --help, which pflag reports as a request
// for usage; and the -test. prefix, which pflag skips. It returns the number
// of tokens that can be handed to pflag and, if it stopped early, the error
// for the token it stopped at.
//
// Scanning ends at the first unknown flag, since pflag fails there first.
func (r *Registry) precheck(args []string) (int, *ParseError) {
	for i := 0; i < len(args); i++ {
		tok := args[i]

		switch {
		case tok == "--":
			return len(args), nil
		case len(tok) < 2 || tok[0] != '-':
			continue
		case tok[1] == '-':
			name, _, hasValue := strings.Cut(tok[2:], "=")
			d, ok := r.FindLong(name)
			switch {
			case !ok && name == "help":
				return i, &ParseError{Kind: KindUnknown, Flag: name, Token: "--" + name}
			case !ok:
				return len(args), nil
			case !hasValue && !d.IsBool():
				i++
			}
			continue
		}

		s, size := utf8.DecodeRuneInString(tok[1:])
		rest := tok[1+size:]
		d, ok := r.FindShort(s)

		switch {
		case !ok && (s == 'h' || strings.HasPrefix(tok, "-test.")):
			return i, &ParseError{Kind: KindUnknown, Flag: string(s), Token: "-" + string(s)}
		case !ok:
			return len(args), nil
		case d.IsBool() && rest != "" && (rest[0] != '=' || rest == "="):
			return i, &ParseError{Kind: KindSyntax, Flag: d.Name(), Token: tok, Err: errBoolFused}
		case strings.HasPrefix(tok, "-test."):
			return i, &ParseError{Kind: KindSyntax, Flag: d.Name(), Token: tok, Err: errReservedPrefix}
		case !d.IsBool() && rest == "":
			i++
		}
	}
	return len(args), nil
}
