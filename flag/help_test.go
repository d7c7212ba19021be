// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shoenig/test/must"

	"github.com/hashicorp/go-declflag/helper/pointer"
)

func newHelpRegistry(t *testing.T) *Registry {
	t.Helper()

	reg := NewRegistry("dinner")
	must.NoError(t, reg.RegisterAll(
		mustFlag[string](t, Def[string]{
			Name:      "language",
			Shorthand: "l",
			Usage:     "Languages to offer.",
			Default:   pointer.Of("english,french,german"),
		}, StringValue{}),
		mustFlag[int](t, Def[int]{
			Name: "count",
			Usage: `Number of dishes to prepare
				for each guest at the table.`,
			Default: pointer.Of(3),
			Group:   "tuning",
		}, SignedValue[int]{}),
		mustFlag[bool](t, Def[bool]{
			Name:    "big-menu",
			Usage:   "Show the big menu.",
			Default: pointer.Of(false),
		}, BoolValue{}),
		mustFlag[string](t, Def[string]{
			Name:        "file",
			Shorthand:   "f",
			Usage:       "Path to the order file.",
			Placeholder: "FILE",
		}, PathValue{}),
		mustFlag[string](t, Def[string]{
			Name:   "secret",
			Usage:  "Not for guests.",
			Hidden: true,
		}, StringValue{}),
	))
	return reg
}

func TestHelp(t *testing.T) {
	reg := newHelpRegistry(t)

	var out bytes.Buffer
	must.NoError(t, reg.WriteHelp(&out, WithWidth(40), WithTitle("Usage: dinner [options]")))

	expected := `Usage: dinner [options]

Options:

      --big-menu
        Show the big menu.

  -f, --file=<FILE>
        Path to the order file.

  -l, --language=<string> (default english,french,german)
        Languages to offer.

Tuning:

      --count=<int> (default 3)
        Number of dishes to prepare for
        each guest at the table.
`
	must.Eq(t, expected, out.String())
	must.Eq(t, expected, reg.Help(WithWidth(40), WithTitle("Usage: dinner [options]")))
}

func TestHelp_Defaults(t *testing.T) {
	reg := NewRegistry("test")
	must.NoError(t, reg.RegisterAll(
		mustFlag[bool](t, Def[bool]{Name: "on", Default: pointer.Of(true)}, BoolValue{}),
		mustFlag[string](t, Def[string]{Name: "greeting", Default: pointer.Of("hello there")}, StringValue{}),
		mustFlag[string](t, Def[string]{Name: "empty", Default: pointer.Of("")}, StringValue{}),
		mustFlag[string](t, Def[string]{Name: "bare"}, StringValue{}),
	))

	help := reg.Help()
	must.StrContains(t, help, "--on (default true)\n")
	must.StrContains(t, help, `--greeting=<string> (default "hello there")`)
	must.StrContains(t, help, "--empty=<string>\n")
	must.StrContains(t, help, "--bare=<string>\n")
}

func TestHelp_Color(t *testing.T) {
	reg := newHelpRegistry(t)

	plain := reg.Help()
	must.False(t, strings.Contains(plain, "\x1b["))

	colored := reg.Help(WithColor(true))
	must.StrContains(t, colored, "\x1b[1m")
	must.StrContains(t, colored, "--big-menu")
}

func TestHelp_DoesNotMutate(t *testing.T) {
	reg := newHelpRegistry(t)
	_ = reg.Help()
	reg.VisitAll(func(d Descriptor) {
		must.False(t, d.IsPresent())
	})
	must.False(t, reg.Parsed())
}

func TestSummary(t *testing.T) {
	reg := newHelpRegistry(t)

	summary := reg.Summary()
	lines := strings.Split(strings.TrimRight(summary, "\n"), "\n")
	must.Eq(t, 4, len(lines))
	must.StrContains(t, lines[0], "--big-menu")
	must.StrContains(t, lines[1], "-f")
	must.StrContains(t, lines[1], "--file=<FILE>")
	must.StrContains(t, lines[1], "Path to the order file.")
	must.StrContains(t, lines[3], "Number of dishes to prepare for each guest at the table.")
	must.False(t, strings.Contains(summary, "secret"))

	must.Eq(t, "", NewRegistry("empty").Summary())
}

func TestWriteMarkdown(t *testing.T) {
	reg := newHelpRegistry(t)

	var out bytes.Buffer
	must.NoError(t, reg.WriteMarkdown(&out, "Dinner"))

	expected := "# Dinner\n\n" +
		"## Options\n\n" +
		"- `--big-menu`: Show the big menu.\n" +
		"- `-f, --file=<FILE>`: Path to the order file.\n" +
		"- `-l, --language=<string>`: Languages to offer. Default: `english,french,german`.\n\n" +
		"## Tuning\n\n" +
		"- `--count=<int>`: Number of dishes to prepare for each guest at the table. Default: `3`.\n"
	must.Eq(t, expected, out.String())
}

func TestCompletions(t *testing.T) {
	reg := newHelpRegistry(t)

	comps := reg.Completions()
	for _, key := range []string{"--big-menu", "--file", "-f", "--language", "-l", "--count"} {
		_, ok := comps[key]
		must.True(t, ok, must.Sprintf("missing completion for %s", key))
	}
	_, ok := comps["--secret"]
	must.False(t, ok)
	must.Eq(t, 6, len(comps))
}
