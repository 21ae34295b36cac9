/*
 * report.go, part of molmass.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package molmass

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPrecision is the number of decimals used for weights unless told otherwise.
const DefaultPrecision = 2

// FormatNames sorts names and returns the sentence listing them:
// "The element is X", "The elements are X and Y" or
// "The elements are A, B and C". names is not modified.
// It panics if names is empty, as there is no sentence for that: a formula
// with no elements is an error before this point.
func FormatNames(names []string) string {
	if len(names) == 0 {
		panic("FormatNames: no names given")
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	n := len(sorted)
	switch n {
	case 1:
		return "The element is " + sorted[0]
	case 2:
		return fmt.Sprintf("The elements are %s and %s", sorted[0], sorted[1])
	}
	var b strings.Builder
	b.WriteString("The elements are")
	for _, v := range sorted[:n-2] {
		b.WriteString(" " + v + ",")
	}
	fmt.Fprintf(&b, " %s and %s", sorted[n-2], sorted[n-1])
	return b.String()
}

// Report is everything there is to say about one formula.
type Report struct {
	Input    string
	Compound *Compound
	Sentence string
}

// Evaluate weighs input against table and builds its report.
// On failure it returns a *FormulaError with Input set.
func Evaluate(table Looker, input string) (*Report, error) {
	C, err := Compute(Tokenize(input), table)
	if err != nil {
		if ferr, ok := err.(*FormulaError); ok {
			ferr.Input = input
		}
		return nil, errDecorate(err, "Evaluate")
	}
	return &Report{
		Input:    input,
		Compound: C,
		Sentence: FormatNames(C.Names.Names()),
	}, nil
}

// WeightLine returns "The atomic weight of <input> is <weight>", with
// prec decimals. A negative prec means DefaultPrecision.
func (R *Report) WeightLine(prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	return fmt.Sprintf("The atomic weight of %s is %.*f", R.Input, prec, R.Compound.Weight)
}

// String returns the weight line and the element sentence, one per line.
func (R *Report) String() string {
	return R.WeightLine(DefaultPrecision) + "\n" + R.Sentence
}
