// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-declflag/internal/pkg/helper"
)

// WriteMarkdown writes reference documentation for the visible flags as
// Markdown, grouped and ordered the same way as WriteHelp.
func (r *Registry) WriteMarkdown(w io.Writer, title string) error {
	var out bytes.Buffer
	if title != "" {
		fmt.Fprintf(&out, "# %s\n\n", title)
	}

	for _, g := range r.groups() {
		fmt.Fprintf(&out, "## %s\n\n", helper.Heading(g.name))
		for _, d := range g.flags {
			fmt.Fprintf(&out, "- `%s`", strings.TrimSpace(flagSignature(d, false)))
			if usage := strings.TrimSpace(reRemoveWhitespace.ReplaceAllString(d.Usage(), " ")); usage != "" {
				fmt.Fprintf(&out, ": %s", usage)
			}
			if def, ok := displayDefault(d); ok {
				fmt.Fprintf(&out, " Default: `%s`.", def)
			}
			fmt.Fprint(&out, "\n")
		}
		fmt.Fprint(&out, "\n")
	}

	_, err := io.WriteString(w, strings.TrimRight(out.String(), "\n")+"\n")
	return err
}
