// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input implements free-form numeric text fields for the six
// coefficients.
//
// A field keeps whatever the user typed, including partial text such as
// "-" or "1.", and only updates its value when the text parses to a finite
// number. Losing focus rewrites the text in canonical form, reverting
// unparsable text to the last valid value.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/conic"
)

// ErrNotFinite is returned by Parse for NaN and infinite values.
var ErrNotFinite = errors.New("input: value is not finite")

// Names lists the coefficient names in canonical order.
var Names = [6]string{"a11", "a12", "a22", "b1", "b2", "c"}

// Labels are the terms each coefficient multiplies.
var Labels = [6]string{"x²", "xy", "y²", "x", "y", "1"}

// Parse converts field text to a finite number.
func Parse(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("input: parse %q: %w", text, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("input: parse %q: %w", text, ErrNotFinite)
	}
	return v, nil
}

// Format renders a value canonically: the shortest representation that
// parses back to the same number.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Field is one editable numeric field.
type Field struct {
	Name  string
	text  string
	value float64
}

// NewField returns a field showing v.
func NewField(name string, v float64) *Field {
	return &Field{Name: name, text: Format(v), value: v}
}

// Text returns the text as typed.
func (f *Field) Text() string { return f.text }

// Value returns the last valid value.
func (f *Field) Value() float64 { return f.value }

// Valid reports whether the current text parses.
func (f *Field) Valid() bool {
	_, err := Parse(f.text)
	return err == nil
}

// Edit replaces the text. It reports whether the value changed; invalid or
// partial text is kept without touching the value.
func (f *Field) Edit(text string) bool {
	f.text = text
	v, err := Parse(text)
	if err != nil {
		conic.Logger().Debug("input: keeping partial text", "field", f.Name, "text", text, "err", err)
		return false
	}
	if v == f.value {
		return false
	}
	f.value = v
	return true
}

// Blur is called on focus loss: the text is rewritten in the canonical form
// of the value, which reverts unparsable text to the last valid value and
// normalises valid text such as "1.50" or "+2".
func (f *Field) Blur() {
	if v, err := Parse(f.text); err == nil {
		f.value = v
	}
	f.text = Format(f.value)
}

// Set replaces both value and text, e.g. when the model changes externally.
func (f *Field) Set(v float64) {
	f.value = v
	f.text = Format(v)
}

// Form holds the six coefficient fields and a focus cursor.
type Form struct {
	fields [6]*Field
	focus  int
}

// NewForm returns a form showing c.
func NewForm(c conic.Coefficients) *Form {
	var f Form
	for i, v := range c.Values() {
		f.fields[i] = NewField(Names[i], v)
	}
	return &f
}

// Fields returns the fields in canonical order.
func (f *Form) Fields() []*Field { return f.fields[:] }

// Focus returns the index of the focused field.
func (f *Form) Focus() int { return f.focus }

// Focused returns the focused field.
func (f *Form) Focused() *Field { return f.fields[f.focus] }

// Next blurs the focused field and moves focus by delta, wrapping around.
func (f *Form) Next(delta int) {
	f.Focused().Blur()
	n := len(f.fields)
	f.focus = ((f.focus+delta)%n + n) % n
}

// Coefficients returns a snapshot of the last valid values.
func (f *Form) Coefficients() conic.Coefficients {
	var v [6]float64
	for i, fld := range f.fields {
		v[i] = fld.Value()
	}
	return conic.CoefficientsFrom(v)
}

// Type appends r to the focused field and reports whether the model changed.
func (f *Form) Type(r rune) bool {
	fld := f.Focused()
	return fld.Edit(fld.Text() + string(r))
}

// Backspace deletes the last rune of the focused field and reports whether
// the model changed.
func (f *Form) Backspace() bool {
	fld := f.Focused()
	t := []rune(fld.Text())
	if len(t) == 0 {
		return false
	}
	return fld.Edit(string(t[:len(t)-1]))
}
