// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultHeading is the heading used for flags declared without a group.
const DefaultHeading = "Options"

var (
	titleFmt = cases.Title(language.AmericanEnglish, cases.NoLower)
)

// Title returns the American English title format of s.
func Title(s string) string {
	return titleFmt.String(s)
}

// Heading turns a flag group name into a help section heading: whitespace is
// collapsed and each word is title-cased. Acronyms keep their case, so
// "TLS options" stays "TLS Options".
func Heading(group string) string {
	group = strings.Join(strings.Fields(group), " ")
	if group == "" {
		return DefaultHeading
	}
	return Title(group)
}
