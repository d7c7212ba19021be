// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package flag lets any package declare command-line flags where they are
// used, without a central list. Declarations are package-level variables, so
// they register themselves into CommandLine while the program's packages are
// initialized, before main runs:
//
//	var verbose = flag.Bool(flag.Def[bool]{
//		Name:      "verbose",
//		Shorthand: "v",
//		Usage:     "Print more output.",
//	})
//
// main then parses the command line once and reads the values:
//
//	args, err := flag.Parse(os.Args[1:])
//	...
//	if verbose.Value() { ... }
//
// Every flag's value type is fixed at its declaration by a Coercer, the
// single-method contract that turns a raw token into a typed value. The
// built-in types (bool, string, path, integers of every width, floats,
// durations, enums) and user-defined types go through the same contract; Var
// declares a flag for any Coercer.
//
// Parsing is done by an spf13/pflag FlagSet that mirrors the registry, so the
// command-line forms are pflag's, except that shorthands cannot be combined.
//
// Registering two flags with the same long name or the same shorthand is a
// programming error: the declaration functions panic, naming the flag, while
// the program initializes. Registering after Parse is rejected as well.
//
// A flag declared without a default must be checked with IsPresent, or read
// with Lookup, before its value is used. Value panics otherwise.
package flag
