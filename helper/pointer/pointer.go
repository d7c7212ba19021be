// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package pointer helps fill optional fields such as flag.Def.Default:
//
//	var lang = flag.String(flag.Def[string]{
//		Name:    "language",
//		Default: pointer.Of("english"),
//	})
package pointer

// Of returns a pointer to a copy of a.
func Of[A any](a A) *A {
	return &a
}
