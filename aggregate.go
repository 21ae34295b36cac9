/*
 * aggregate.go, part of molmass.
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
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Part is the contribution of one element to a compound.
type Part struct {
	Element *Element
	Count   int //total atoms of Element in the compound
}

// Mass returns the mass Part contributes to its compound.
func (P Part) Mass() float64 {
	return float64(P.Count) * P.Element.weight
}

// Compound is the result of weighing a formula.
type Compound struct {
	Weight float64
	Names  *NameSet //each element name once, in discovery order
	Parts  []Part   //one per element, in discovery order
}

// Fractions returns the mass fraction of each element in the compound,
// in the same order as C.Parts. The fractions add up to 1.
func (C *Compound) Fractions() []float64 {
	ret := make([]float64, len(C.Parts))
	for i, v := range C.Parts {
		ret[i] = v.Mass()
	}
	if C.Weight > 0 {
		floats.Scale(1/C.Weight, ret)
	}
	return ret
}

// Compute weighs the tokens of a formula using table. It fails at the first token
// whose symbol is not in the table, or whose quantity is not positive, and
// never returns a partial weight. It also fails if there are no tokens at all.
func Compute(tokens []Token, table Looker) (*Compound, error) {
	if len(tokens) == 0 {
		return nil, &FormulaError{Kind: ErrEmptyFormula, deco: []string{"Compute"}}
	}
	quantities := make([]float64, len(tokens))
	weights := make([]float64, len(tokens))
	C := &Compound{Names: new(NameSet)}
	parts := make(map[*Element]int) //element to its index in C.Parts
	for i, t := range tokens {
		e, ok := table.Lookup(t.Symbol)
		if !ok {
			return nil, &FormulaError{Kind: ErrUnknownSymbol, Symbol: t.Symbol, deco: []string{"Compute"}}
		}
		if t.Quantity < 1 {
			return nil, &FormulaError{Kind: ErrBadQuantity, Symbol: t.Symbol, deco: []string{"Compute"}}
		}
		quantities[i] = float64(t.Quantity)
		weights[i] = e.weight
		C.Names.Add(e.name)
		if j, ok := parts[e]; ok {
			C.Parts[j].Count += t.Quantity
			continue
		}
		parts[e] = len(C.Parts)
		C.Parts = append(C.Parts, Part{Element: e, Count: t.Quantity})
	}
	C.Weight = floats.Dot(quantities, weights)
	return C, nil
}

//The kinds of FormulaError. Use errors.Is to tell them apart.
var (
	ErrEmptyFormula  = errors.New("not a valid compound")
	ErrUnknownSymbol = errors.New("no such element")
	ErrBadQuantity   = errors.New("quantity must be at least 1")
)

// FormulaError is returned when a single formula can't be weighed.
// It does not affect any other formula.
type FormulaError struct {
	Kind   error  //one of ErrEmptyFormula, ErrUnknownSymbol or ErrBadQuantity.
	Symbol string //the offending symbol, empty for ErrEmptyFormula.
	Input  string //the whole formula, if known.
	deco   []string
}

func (E *FormulaError) Error() string {
	return strings.Join(E.Messages(), "; ")
}

// Unwrap returns the kind of the error, so errors.Is(err, ErrUnknownSymbol)
// and friends work.
func (E *FormulaError) Unwrap() error {
	return E.Kind
}

// Decorate adds dec to the call trail of the error, and returns the trail.
func (E *FormulaError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// Messages returns the lines to show a user for this error, in the
// order they should be shown: "<symbol>: no such element" (when there is
// a symbol) followed by "<input>: not a valid compound".
func (E *FormulaError) Messages() []string {
	var ret []string
	if E.Symbol != "" {
		ret = append(ret, fmt.Sprintf("%s: %s", E.Symbol, E.Kind))
	}
	return append(ret, fmt.Sprintf("%s: %s", E.Input, ErrEmptyFormula))
}
