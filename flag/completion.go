// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import "github.com/posener/complete"

// Completions returns the shell completion table for the visible flags,
// keyed by both "--name" and "-x" forms.
func (r *Registry) Completions() complete.Flags {
	flags := complete.Flags{}
	for _, d := range r.flags {
		if d.Hidden() {
			continue
		}
		p := d.Completion()
		flags["--"+d.Name()] = p
		if s := d.Shorthand(); s != 0 {
			flags["-"+string(s)] = p
		}
	}
	return flags
}
