// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/helper/pointer"
	"github.com/hashicorp/go-declflag/internal/pkg/logging"
)

// globalFlags are the flags every program run through Main understands.
type globalFlags struct {
	help      *flag.Flag[bool]
	version   *flag.Flag[bool]
	logLevel  *flag.Flag[hclog.Level]
	install   *flag.Flag[bool]
	uninstall *flag.Flag[bool]
}

var logLevels = map[string]hclog.Level{
	"trace": hclog.Trace,
	"debug": hclog.Debug,
	"info":  hclog.Info,
	"warn":  hclog.Warn,
	"error": hclog.Error,
	"off":   hclog.Off,
}

// commandLineFlags are declared on flag.CommandLine like any other package's
// flags.
var commandLineFlags = mustDeclareGlobals(flag.CommandLine)

// declared holds the globals of every other registry Run has seen, since a
// parsed registry accepts no new flags.
var (
	declaredMu sync.Mutex
	declared   = make(map[*flag.Registry]*globalFlags)
)

func mustDeclareGlobals(r *flag.Registry) *globalFlags {
	g, err := declareGlobals(r)
	if err != nil {
		panic(err)
	}
	return g
}

func declareGlobals(r *flag.Registry) (*globalFlags, error) {
	var (
		g    globalFlags
		mErr *multierror.Error
		err  error
	)

	g.help, err = flag.New[bool](r, flag.Def[bool]{
		Name:      "help",
		Shorthand: "h",
		Usage:     "Show this help and exit.",
		Default:   pointer.Of(false),
	}, flag.BoolValue{})
	mErr = multierror.Append(mErr, err)

	g.version, err = flag.New[bool](r, flag.Def[bool]{
		Name:    "version",
		Usage:   "Print the version and exit.",
		Default: pointer.Of(false),
	}, flag.BoolValue{})
	mErr = multierror.Append(mErr, err)

	g.logLevel, err = flag.New[hclog.Level](r, flag.Def[hclog.Level]{
		Name: "log-level",
		Usage: "Level of the diagnostic log written to stderr. Overrides " +
			logging.EnvLogLevel + ".",
		Group: "diagnostics",
	}, flag.NewEnum(logLevels))
	mErr = multierror.Append(mErr, err)

	g.install, err = flag.New[bool](r, flag.Def[bool]{
		Name:    "autocomplete-install",
		Usage:   "Install shell completion for this program.",
		Default: pointer.Of(false),
		Group:   "completion",
	}, flag.BoolValue{})
	mErr = multierror.Append(mErr, err)

	g.uninstall, err = flag.New[bool](r, flag.Def[bool]{
		Name:    "autocomplete-uninstall",
		Usage:   "Remove shell completion for this program.",
		Default: pointer.Of(false),
		Group:   "completion",
	}, flag.BoolValue{})
	mErr = multierror.Append(mErr, err)

	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &g, nil
}
