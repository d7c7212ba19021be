// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/shoenig/test/must"

	"github.com/hashicorp/go-declflag/flag"
	"github.com/hashicorp/go-declflag/helper/pointer"
)

type fakeInstaller struct {
	installed   []string
	uninstalled []string
	err         error
}

func (f *fakeInstaller) Install(cmd string) error {
	f.installed = append(f.installed, cmd)
	return f.err
}

func (f *fakeInstaller) Uninstall(cmd string) error {
	f.uninstalled = append(f.uninstalled, cmd)
	return f.err
}

type testProgram struct {
	reg     *flag.Registry
	ui      *cli.MockUi
	bigMenu *flag.Flag[bool]
	file    *flag.Flag[string]

	ran  bool
	args []string
}

func newTestProgram(t *testing.T) *testProgram {
	t.Helper()

	p := &testProgram{
		reg: flag.NewRegistry("dinner"),
		ui:  cli.NewMockUi(),
	}

	var err error
	p.bigMenu, err = flag.New[bool](p.reg, flag.Def[bool]{
		Name:    "big-menu",
		Usage:   "Show the big menu.",
		Default: pointer.Of(false),
	}, flag.BoolValue{})
	must.NoError(t, err)

	p.file, err = flag.New[string](p.reg, flag.Def[string]{
		Name:      "file",
		Shorthand: "f",
		Usage:     "Path to the order file.",
	}, flag.PathValue{})
	must.NoError(t, err)

	return p
}

func (p *testProgram) config(args ...string) *Config {
	return &Config{
		Name:     "dinner",
		Args:     args,
		Registry: p.reg,
		Ui:       p.ui,
		Version:  "dinner v1.0.0",
		Run: func(_ context.Context, args []string, _ cli.Ui) error {
			p.ran = true
			p.args = args
			return nil
		},
	}
}

func TestRun_Program(t *testing.T) {
	p := newTestProgram(t)

	code := Run(context.Background(), p.config("--big-menu", "soup", "-f", "/tmp/order", "salad"))
	must.Eq(t, ExitOK, code)
	must.True(t, p.ran)
	must.Eq(t, []string{"soup", "salad"}, p.args)
	must.True(t, p.bigMenu.Value())
	must.Eq(t, "/tmp/order", p.file.Value())
	must.Eq(t, "", p.ui.ErrorWriter.String())
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			p := newTestProgram(t)

			code := Run(context.Background(), p.config("--big-menu", arg))
			must.Eq(t, ExitOK, code)
			must.False(t, p.ran)

			out := p.ui.OutputWriter.String()
			must.StrContains(t, out, "Usage: dinner [options] [args]\n\nOptions:\n")
			must.StrContains(t, out, "      --big-menu\n")
			must.StrContains(t, out, "  -f, --file=<path>\n")
			must.StrContains(t, out, "  -h, --help\n")
			must.StrContains(t, out, "Completion:\n")
			must.StrContains(t, out, "Diagnostics:\n")
			must.StrContains(t, out, "--log-level=<debug|error|info|off|trace|warn>")
		})
	}
}

func TestRun_Version(t *testing.T) {
	p := newTestProgram(t)

	code := Run(context.Background(), p.config("--version"))
	must.Eq(t, ExitOK, code)
	must.False(t, p.ran)
	must.Eq(t, "dinner v1.0.0\n", p.ui.OutputWriter.String())
}

func TestRun_UsageError(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "unknown flag",
			args:    []string{"--nope"},
			message: "Flag provided but not defined: --nope",
		},
		{
			name:    "missing value",
			args:    []string{"--file"},
			message: "Flag needs an argument: --file",
		},
		{
			name:    "bad value",
			args:    []string{"--big-menu=maybe"},
			message: "Invalid value for flag --big-menu",
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "loud"},
			message: "Must be one of: debug, error, info, off, trace, warn",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestProgram(t)

			code := Run(context.Background(), p.config(tc.args...))
			must.Eq(t, ExitUsage, code)
			must.False(t, p.ran)

			errOut := p.ui.ErrorWriter.String()
			must.StrContains(t, errOut, tc.message)
			must.StrContains(t, errOut, "Run 'dinner --help' for usage.")
		})
	}
}

func TestRun_UnknownFlagListsFlags(t *testing.T) {
	p := newTestProgram(t)

	must.Eq(t, ExitUsage, Run(context.Background(), p.config("--nope")))
	errOut := p.ui.ErrorWriter.String()
	must.StrContains(t, errOut, "Available flags:\n")
	must.StrContains(t, errOut, "--file=<path>")
	must.StrContains(t, errOut, "Path to the order file.")
	must.StrContains(t, errOut, "--autocomplete-install")

	p = newTestProgram(t)
	must.Eq(t, ExitUsage, Run(context.Background(), p.config("--file")))
	must.StrNotContains(t, p.ui.ErrorWriter.String(), "Available flags:")
}

func TestRun_SameRegistryTwice(t *testing.T) {
	p := newTestProgram(t)

	must.Eq(t, ExitOK, Run(context.Background(), p.config("--big-menu", "soup")))
	must.Eq(t, []string{"soup"}, p.args)

	p.ran = false
	must.Eq(t, ExitOK, Run(context.Background(), p.config("-f", "/tmp/order", "salad")))
	must.True(t, p.ran)
	must.Eq(t, []string{"salad"}, p.args)
	must.Eq(t, "/tmp/order", p.file.Value())
	must.True(t, p.bigMenu.Value())
	must.Eq(t, "", p.ui.ErrorWriter.String())

	must.Eq(t, ExitOK, Run(context.Background(), p.config("--version")))
	must.StrContains(t, p.ui.OutputWriter.String(), "dinner v1.0.0")
}

func TestRun_Failure(t *testing.T) {
	p := newTestProgram(t)
	cfg := p.config()
	cfg.Run = func(context.Context, []string, cli.Ui) error {
		return errors.New("kitchen is closed")
	}

	must.Eq(t, ExitFailure, Run(context.Background(), cfg))
	must.StrContains(t, p.ui.ErrorWriter.String(), "Kitchen is closed")
}

func TestRun_RequiredFlagMissing(t *testing.T) {
	p := newTestProgram(t)
	cfg := p.config()
	cfg.Run = func(context.Context, []string, cli.Ui) error {
		_ = p.file.Value()
		return nil
	}

	must.Eq(t, ExitUsage, Run(context.Background(), cfg))
	must.StrContains(t, p.ui.ErrorWriter.String(), "--file: flag accessed without default and not present")
}

func TestRun_OtherPanicsPropagate(t *testing.T) {
	p := newTestProgram(t)
	cfg := p.config()
	cfg.Run = func(context.Context, []string, cli.Ui) error {
		panic("burnt")
	}

	defer func() {
		must.Eq[any](t, "burnt", recover())
	}()
	Run(context.Background(), cfg)
}

func TestRun_LogLevel(t *testing.T) {
	p := newTestProgram(t)

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "dinner",
		Output: &buf,
		Level:  hclog.Warn,
	})

	cfg := p.config("--log-level=debug", "--big-menu")
	cfg.Logger = logger

	must.Eq(t, ExitOK, Run(context.Background(), cfg))
	must.True(t, logger.IsDebug())
	must.StrContains(t, buf.String(), "parsed command line")
	must.StrContains(t, buf.String(), "big-menu")
}

func TestRun_Autocomplete(t *testing.T) {
	t.Run("install", func(t *testing.T) {
		p := newTestProgram(t)
		inst := &fakeInstaller{}
		cfg := p.config("--autocomplete-install")
		cfg.installer = inst

		must.Eq(t, ExitOK, Run(context.Background(), cfg))
		must.Eq(t, []string{"dinner"}, inst.installed)
		must.SliceEmpty(t, inst.uninstalled)
		must.False(t, p.ran)
	})

	t.Run("uninstall", func(t *testing.T) {
		p := newTestProgram(t)
		inst := &fakeInstaller{}
		cfg := p.config("--autocomplete-uninstall")
		cfg.installer = inst

		must.Eq(t, ExitOK, Run(context.Background(), cfg))
		must.Eq(t, []string{"dinner"}, inst.uninstalled)
		must.SliceEmpty(t, inst.installed)
	})

	t.Run("both", func(t *testing.T) {
		p := newTestProgram(t)
		inst := &fakeInstaller{}
		cfg := p.config("--autocomplete-install", "--autocomplete-uninstall")
		cfg.installer = inst

		must.Eq(t, ExitUsage, Run(context.Background(), cfg))
		must.SliceEmpty(t, inst.installed)
		must.SliceEmpty(t, inst.uninstalled)
	})

	t.Run("error", func(t *testing.T) {
		p := newTestProgram(t)
		inst := &fakeInstaller{err: errors.New("no shell found")}
		cfg := p.config("--autocomplete-install")
		cfg.installer = inst

		must.Eq(t, ExitFailure, Run(context.Background(), cfg))
		must.StrContains(t, p.ui.ErrorWriter.String(), "Error executing install: No shell found")
	})
}

func TestRun_GlobalFlagCollision(t *testing.T) {
	reg := flag.NewRegistry("dinner")
	_, err := flag.New[string](reg, flag.Def[string]{Name: "version"}, flag.StringValue{})
	must.NoError(t, err)

	ui := cli.NewMockUi()
	code := Run(context.Background(), &Config{Name: "dinner", Registry: reg, Ui: ui})
	must.Eq(t, ExitFailure, code)
	must.StrContains(t, ui.ErrorWriter.String(), "dinner: version: flag redefined")
}

func TestCommandLineGlobals(t *testing.T) {
	for _, name := range []string{"help", "version", "log-level", "autocomplete-install", "autocomplete-uninstall"} {
		_, ok := flag.Lookup(name)
		must.True(t, ok, must.Sprintf("flag %s not declared", name))
	}

	d, ok := flag.CommandLine.FindShort('h')
	must.True(t, ok)
	must.Eq(t, "help", d.Name())
}

func TestWithInterrupt(t *testing.T) {
	ctx, closer := WithInterrupt(context.Background())
	must.NoError(t, ctx.Err())

	closer()
	<-ctx.Done()
	must.ErrorIs(t, ctx.Err(), context.Canceled)
}
