// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering Dense values.
// This file defines:
//   - FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - The zero-option rendering is exactly Dense.String (rows concatenated,
//     no separator between rows).
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ---------- Defaults (single source of truth) ----------

// Rendering defaults used by String and Format.
const (
	// DefaultVerb is the fmt verb applied to every element.
	// For floats %v is the shortest %g form; integers print as decimals.
	DefaultVerb = "%v"

	// DefaultElementSeparator separates elements inside a row.
	DefaultElementSeparator = ", "

	// DefaultRowSeparator is written between consecutive rows.
	// Empty: rows are concatenated as-is.
	DefaultRowSeparator = ""

	// DefaultRowOpen and DefaultRowClose bracket every row.
	DefaultRowOpen  = "["
	DefaultRowClose = "]"

	// multilineRowSeparator is the row separator selected by WithMultiline.
	multilineRowSeparator = "\n"
)

// Comparison defaults used by AllClose callers and tests.
const (
	// DefaultRTol is the relative tolerance for AllClose-style checks.
	DefaultRTol = 1e-9

	// DefaultATol is the absolute tolerance for AllClose-style checks.
	DefaultATol = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid = "matrix: WithVerb: verb must start with '%' and end with a verb letter"
	panicTagUnset    = "matrix: WithLanguage: language tag must not be Und"
)

// ---------- Public option type (functional) ----------

// FormatOption mutates internal render options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

// formatOptions stores the effective rendering configuration.
type formatOptions struct {
	verb    string           // per-element fmt verb; DefaultVerb
	elemSep string           // DefaultElementSeparator
	rowSep  string           // DefaultRowSeparator
	open    string           // DefaultRowOpen
	close   string           // DefaultRowClose
	printer *message.Printer // nil ⇒ plain fmt formatting
}

// WithVerb sets the fmt verb used for every element (e.g. "%.2f", "%v").
// Panics unless verb starts with '%' and ends with a verb letter
// ("%5" is rejected, "%5.1f" is accepted).
func WithVerb(verb string) FormatOption {
	if len(verb) < 2 || verb[0] != '%' || !isVerbLetter(verb[len(verb)-1]) {
		panic(panicVerbInvalid)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// isVerbLetter reports whether b is an ASCII letter, the final byte of any
// fmt verb.
func isVerbLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// WithElementSeparator sets the separator written between elements of a row.
func WithElementSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.elemSep = sep }
}

// WithRowSeparator sets the separator written between consecutive rows.
// No separator is written after the last row.
func WithRowSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.rowSep = sep }
}

// WithBrackets sets the strings that open and close every row.
func WithBrackets(open, close string) FormatOption {
	return func(o *formatOptions) {
		o.open = open
		o.close = close
	}
}

// WithMultiline puts every row on its own line.
func WithMultiline() FormatOption {
	return WithRowSeparator(multilineRowSeparator)
}

// WithLanguage renders elements through a golang.org/x/text message printer
// for tag, which applies locale-specific digit grouping and decimal marks.
// Panics when tag is language.Und.
//
// Example:
//
//	m.Format(matrix.WithLanguage(language.German), matrix.WithVerb("%.2f"))
func WithLanguage(tag language.Tag) FormatOption {
	if tag == language.Und {
		panic(panicTagUnset)
	}
	p := message.NewPrinter(tag)

	return func(o *formatOptions) { o.printer = p }
}

// --------------------------- Option Resolution ---------------------------

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		verb:    DefaultVerb,
		elemSep: DefaultElementSeparator,
		rowSep:  DefaultRowSeparator,
		open:    DefaultRowOpen,
		close:   DefaultRowClose,
	}
}

// gatherFormatOptions applies user-provided setters on top of defaults.
// Last-writer-wins; nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
