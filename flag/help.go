// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/text"
	"github.com/mitchellh/go-wordwrap"
	"github.com/ryanuber/columnize"

	"github.com/hashicorp/go-declflag/internal/pkg/helper"
)

const (
	// DefaultHelpWidth is the column help text is wrapped at when no width
	// is given.
	DefaultHelpWidth = 80

	// usageIndent is how far usage text is indented under its flag.
	usageIndent = 8
)

var reRemoveWhitespace = regexp.MustCompile(`[\s]+`)

type helpConfig struct {
	width int
	color bool
	title string
}

// HelpOption configures WriteHelp and Help.
type HelpOption func(*helpConfig)

// WithWidth wraps usage text so lines fit in width columns. Values that
// leave no room for text are ignored.
func WithWidth(width int) HelpOption {
	return func(c *helpConfig) {
		if width > usageIndent+10 {
			c.width = width
		}
	}
}

// WithColor highlights flag names with terminal escape codes.
func WithColor(enabled bool) HelpOption {
	return func(c *helpConfig) {
		c.color = enabled
	}
}

// WithTitle prints s, followed by a blank line, before the flags.
func WithTitle(s string) HelpOption {
	return func(c *helpConfig) {
		c.title = s
	}
}

// Help renders help for every visible flag and returns it as a string.
func (r *Registry) Help(opts ...HelpOption) string {
	var out bytes.Buffer
	_ = r.WriteHelp(&out, opts...)
	return out.String()
}

// WriteHelp writes help for every visible flag to w. Flags are listed by
// group, ungrouped flags first under "Options", then the remaining groups in
// name order. Within a group flags are sorted by long name, byte-wise.
func (r *Registry) WriteHelp(w io.Writer, opts ...HelpOption) error {
	cfg := helpConfig{width: DefaultHelpWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out bytes.Buffer
	if cfg.title != "" {
		fmt.Fprintf(&out, "%s\n\n", cfg.title)
	}
	for _, g := range r.groups() {
		printFlagTitle(&out, helper.Heading(g.name)+":")
		for _, d := range g.flags {
			printFlagDetail(&out, d, &cfg)
		}
	}

	_, err := io.WriteString(w, strings.TrimRight(out.String(), "\n")+"\n")
	return err
}

type flagGroup struct {
	name  string
	flags []Descriptor
}

// groups buckets the visible flags, already sorted, by group.
func (r *Registry) groups() []flagGroup {
	byName := map[string]*flagGroup{}
	var names []string
	for _, d := range r.Sorted() {
		if d.Hidden() {
			continue
		}
		g, ok := byName[d.Group()]
		if !ok {
			g = &flagGroup{name: d.Group()}
			byName[d.Group()] = g
			names = append(names, d.Group())
		}
		g.flags = append(g.flags, d)
	}

	// The empty group sorts first.
	sort.Strings(names)
	out := make([]flagGroup, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	return out
}

// printFlagTitle prints a consistently-formatted title to the given writer.
func printFlagTitle(w io.Writer, s string) {
	fmt.Fprintf(w, "%s\n\n", s)
}

// printFlagDetail prints a single flag to the given writer.
func printFlagDetail(w io.Writer, d Descriptor, cfg *helpConfig) {
	fmt.Fprintf(w, "  %s", flagSignature(d, cfg.color))

	if def, ok := displayDefault(d); ok {
		fmt.Fprintf(w, " (default %s)", def)
	}
	fmt.Fprint(w, "\n")

	usage := strings.TrimSpace(reRemoveWhitespace.ReplaceAllString(d.Usage(), " "))
	if usage != "" {
		fmt.Fprintf(w, "%s\n", wrapAtLengthWithPadding(usage, usageIndent, cfg.width))
	}
	fmt.Fprint(w, "\n")
}

// flagSignature renders "-x, --name=<placeholder>", keeping long names
// aligned whether or not the flag has a shorthand.
func flagSignature(d Descriptor, colored bool) string {
	paint := fmt.Sprint
	if colored {
		c := color.New(color.Bold)
		c.EnableColor()
		paint = c.Sprint
	}

	var b strings.Builder
	if s := d.Shorthand(); s != 0 {
		fmt.Fprintf(&b, "%s, ", paint("-"+string(s)))
	} else {
		b.WriteString("    ")
	}
	b.WriteString(paint("--" + d.Name()))
	if p := d.Placeholder(); p != "" {
		fmt.Fprintf(&b, "=<%s>", p)
	}
	return b.String()
}

// displayDefault returns the default as shown in help. Zero-ish defaults
// (false, empty) are not shown.
func displayDefault(d Descriptor) (string, bool) {
	if !d.HasDefault() {
		return "", false
	}
	def := d.DefaultString()
	switch {
	case def == "":
		return "", false
	case d.IsBool() && def == "false":
		return "", false
	case strings.IndexFunc(def, func(r rune) bool { return r == '"' || r == ' ' || r == '\t' || r == '\n' }) >= 0:
		return strconv.Quote(def), true
	}
	return def, true
}

// wrapAtLengthWithPadding wraps s to fit in width columns once it has been
// indented by pad spaces.
func wrapAtLengthWithPadding(s string, pad, width int) string {
	wrapped := wordwrap.WrapString(s, uint(width-pad))
	return text.Indent(wrapped, strings.Repeat(" ", pad))
}

// Summary renders a compact table with one line per visible flag: its
// names and its usage text on a single line.
func (r *Registry) Summary() string {
	const delim = "\x1f"

	var lines []string
	for _, g := range r.groups() {
		for _, d := range g.flags {
			short := ""
			if s := d.Shorthand(); s != 0 {
				short = "-" + string(s)
			}
			long := "--" + d.Name()
			if p := d.Placeholder(); p != "" {
				long += "=<" + p + ">"
			}
			usage := strings.TrimSpace(reRemoveWhitespace.ReplaceAllString(d.Usage(), " "))
			lines = append(lines, strings.Join([]string{short, long, usage}, delim))
		}
	}
	if len(lines) == 0 {
		return ""
	}

	conf := columnize.DefaultConfig()
	conf.Delim = delim
	conf.Glue = "  "
	conf.Prefix = "  "
	return columnize.Format(lines, conf)
}
