// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package cli runs a program whose flags were declared with package flag. It
// parses the process arguments against flag.CommandLine and handles --help,
// --version, the log level, shell completion and exit codes before handing
// the positional arguments to the program.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/posener/complete"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/internal/pkg/helper"
	"github.com/hashicorp/go-declflag/internal/pkg/logging"
	"github.com/hashicorp/go-declflag/internal/pkg/version"
)

// Exit codes returned by Main and Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// RunFunc is the body of a program. It is called with the positional
// arguments once the command line has been parsed. ctx is cancelled on
// interrupt.
type RunFunc func(ctx context.Context, args []string, ui cli.Ui) error

// Config is the input to Run. Main fills it from the process environment.
type Config struct {
	// Name is the program name shown in help and used for completion.
	Name string

	// Args are the command-line arguments without the program name.
	Args []string

	// Registry defaults to flag.CommandLine. The global flags are declared on
	// it the first time it is run. A registry may be run again, but values
	// parsed by an earlier run are kept.
	Registry *flag.Registry

	// Ui receives help, version and error output. Defaults to a BasicUi on
	// the standard streams.
	Ui cli.Ui

	// Logger is attached to the registry. Defaults to a null logger.
	Logger hclog.Logger

	// Width is the column help text is wrapped at. Zero means
	// flag.DefaultHelpWidth.
	Width int

	// Color enables bold flag names in help output.
	Color bool

	// Version is printed for --version.
	Version string

	Run RunFunc

	installer autocompleteInstaller
}

// Main runs the program with the given arguments and returns the exit code.
// The arguments SHOULD include argv[0] as the program name.
func Main(args []string, run RunFunc) int {
	// Build our cancellation context
	ctx, closer := WithInterrupt(context.Background())
	defer closer()

	name := filepath.Base(args[0])
	color := colorEnabled(os.Stdout)

	return Run(ctx, &Config{
		Name:     name,
		Args:     args[1:],
		Registry: flag.CommandLine,
		Ui:       newUi(color),
		Logger:   logging.New(name, os.Stderr),
		Width:    terminalWidth(os.Stdout),
		Color:    color,
		Version:  version.GetVersion().FullVersionNumber(name, true),
		Run:      run,
	})
}

// Run parses cfg.Args against cfg.Registry and, unless a global flag such as
// --help ends the run early, calls cfg.Run.
func Run(ctx context.Context, cfg *Config) int {
	c := *cfg
	if c.Registry == nil {
		c.Registry = flag.CommandLine
	}
	if c.Ui == nil {
		c.Ui = newUi(false)
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.installer == nil {
		c.installer = &realAutocompleteInstaller{}
	}

	globals, err := c.globals()
	if err != nil {
		c.Ui.Error(helper.FirstRuneToUpper(err.Error()))
		return ExitFailure
	}

	reg := c.Registry
	reg.SetLogger(c.Logger)

	// Shell completion runs this program with COMP_LINE set. Answer and stop.
	if complete.New(c.Name, complete.Command{Flags: reg.Completions()}).Complete() {
		return ExitOK
	}

	args, err := reg.Parse(c.Args)
	if err != nil {
		c.Ui.Error(helper.FirstRuneToUpper(err.Error()))
		if errors.Is(err, flag.ErrUnknownFlag) {
			c.Ui.Error("Available flags:\n" + strings.TrimRight(reg.Summary(), "\n"))
		}
		c.Ui.Error(fmt.Sprintf("Run '%s --help' for usage.", c.Name))
		return ExitUsage
	}

	if level, err := globals.logLevel.Lookup(); err == nil {
		c.Logger.SetLevel(level)
	}
	c.Logger.Debug("parsed command line", "flags", presentFlags(reg), "args", len(args))

	switch {
	case globals.help.Value():
		c.Ui.Output(strings.TrimRight(reg.Help(c.helpOptions()...), "\n"))
		return ExitOK
	case globals.version.Value():
		c.Ui.Output(c.Version)
		return ExitOK
	case globals.install.Value() || globals.uninstall.Value():
		return c.autocomplete(globals)
	}

	if c.Run == nil {
		return ExitOK
	}
	if err := invoke(ctx, c.Run, args, c.Ui); err != nil {
		c.Ui.Error(helper.FirstRuneToUpper(err.Error()))
		if errors.Is(err, flag.ErrNotPresent) {
			return ExitUsage
		}
		return ExitFailure
	}
	return ExitOK
}

func (c *Config) globals() (*globalFlags, error) {
	if c.Registry == flag.CommandLine {
		return commandLineFlags, nil
	}

	declaredMu.Lock()
	defer declaredMu.Unlock()
	if g, ok := declared[c.Registry]; ok {
		return g, nil
	}
	g, err := declareGlobals(c.Registry)
	if err != nil {
		return nil, err
	}
	declared[c.Registry] = g
	return g, nil
}

func (c *Config) helpOptions() []flag.HelpOption {
	opts := []flag.HelpOption{
		flag.WithTitle(fmt.Sprintf("Usage: %s [options] [args]", c.Name)),
		flag.WithColor(c.Color),
	}
	if c.Width > 0 {
		opts = append(opts, flag.WithWidth(c.Width))
	}
	return opts
}

// invoke calls run, turning a panic from reading a flag that was required but
// not given into an error.
func invoke(ctx context.Context, run RunFunc, args []string, ui cli.Ui) (err error) {
	defer func() {
		if r := recover(); r != nil {
			accessErr, ok := r.(*flag.AccessError)
			if !ok {
				panic(r)
			}
			err = accessErr
		}
	}()
	return run(ctx, args, ui)
}

func presentFlags(r *flag.Registry) []string {
	var names []string
	r.Visit(func(d flag.Descriptor) {
		names = append(names, d.Name())
	})
	return names
}
