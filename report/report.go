// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package report formats a conic analysis frame as text: the rotation
// matrix (exact where possible), the translation vector and the notices
// shown next to the plot.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/conic"
)

// Undefined is shown in place of a translation that could not be computed.
const Undefined = "Undefined"

// EmptyNotice is shown when no pixel of the curve is in view.
const EmptyNotice = "Curve Empty: No real solution in visible range."

// Formula relates the global and primed frames.
const Formula = "(x,y)ᵀ = R(x',y')ᵀ + T"

var printer = message.NewPrinter(language.English)

// Number formats v with three decimals and no digit grouping, printing
// negative zero as "0.000".
func Number(v float64) string {
	s := printer.Sprint(number.Decimal(v, number.Scale(3), number.NoSeparator()))
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// Rotation returns the cells of R = [[cos, -sin], [sin, cos]], using the
// exact terms when the frame has them.
func Rotation(f *conic.Frame) [2][2]string {
	if f.HasExact {
		cos, sin := f.Exact.Cos.String(), f.Exact.Sin.String()
		return [2][2]string{
			{cos, "-(" + sin + ")"},
			{sin, cos},
		}
	}
	cos, sin := f.CosSin()
	return [2][2]string{
		{Number(cos), Number(-sin)},
		{Number(sin), Number(cos)},
	}
}

// Translation returns the label ("Center" or "Vertex") and the formatted
// translation vector. ok is false when the translation is undefined.
func Translation(f *conic.Frame) (label string, vec [2]string, ok bool) {
	label = "Center"
	if f.Geometry.IsVertex {
		label = "Vertex"
	}
	t, ok := f.Geometry.Translation()
	if !ok {
		return label, [2]string{Undefined, Undefined}, false
	}
	return label, [2]string{Number(t.X), Number(t.Y)}, true
}

// Write writes the full textual analysis of f to w.
func Write(w io.Writer, f *conic.Frame) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Equation: %s\n", f.Coefficients)
	fmt.Fprintf(bw, "Kind: %s\n", f.Kind)
	fmt.Fprintf(bw, "Rotation %s°\n", Number(f.Geometry.Degrees()))
	writeMatrix(bw, "R = ", Rotation(f))

	label, vec, ok := Translation(f)
	fmt.Fprintln(bw, label)
	if ok {
		writeMatrix(bw, "T = ", [2][2]string{{vec[0]}, {vec[1]}})
	} else {
		fmt.Fprintf(bw, "T = %s\n", Undefined)
	}

	fmt.Fprintln(bw, Formula)
	if f.Field != nil && f.Field.Empty() {
		fmt.Fprintln(bw, EmptyNotice)
	}
	return bw.Flush()
}

// String returns the output of Write as a string.
func String(f *conic.Frame) string {
	var sb strings.Builder
	_ = Write(&sb, f)
	return sb.String()
}

// writeMatrix prints a bracketed matrix with right-aligned columns. Empty
// cells in the second column are skipped.
func writeMatrix(w io.Writer, prefix string, cells [2][2]string) {
	var width [2]int
	for _, row := range cells {
		for j, c := range row {
			width[j] = max(width[j], utf8.RuneCountInString(c))
		}
	}

	indent := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	for i, row := range cells {
		lead := indent
		if i == 0 {
			lead = prefix
		}
		parts := make([]string, 0, 2)
		for j, c := range row {
			if width[j] == 0 {
				continue
			}
			parts = append(parts, pad(c, width[j]))
		}
		fmt.Fprintf(w, "%s[ %s ]\n", lead, strings.Join(parts, "  "))
	}
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
