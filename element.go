/*
 * element.go, part of molmass.
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

import "sort"

// Record is one entry of a reference table, as read from a file.
// The loader is in charge of rejecting malformed records; NewTable
// trusts what it gets.
type Record struct {
	Weight float64
	Symbol string
	Name   string
}

// Element is a chemical element from the reference table. It is never
// modified after the table is built.
type Element struct {
	symbol string
	name   string
	weight float64
}

// Symbol returns the 1 or 2 letter, case-sensitive symbol of the element.
func (E *Element) Symbol() string { return E.symbol }

// Name returns the display name of the element.
func (E *Element) Name() string { return E.name }

// Weight returns the atomic weight of the element.
func (E *Element) Weight() float64 { return E.weight }

// Table is the reference table of elements, keyed by symbol.
// A Table is read-only once built, so it can be shared by any number of
// goroutines without locking.
type Table struct {
	bySymbol   map[string]*Element
	duplicates int
}

// NewTable builds a table from records. It returns an *EmptyTableError
// if records is empty. When a symbol appears more than once, the first
// record wins and the rest are only counted (see Duplicates).
func NewTable(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, &EmptyTableError{deco: []string{"NewTable"}}
	}
	T := &Table{bySymbol: make(map[string]*Element, len(records))}
	for _, r := range records {
		if _, ok := T.bySymbol[r.Symbol]; ok {
			T.duplicates++
			continue
		}
		T.bySymbol[r.Symbol] = &Element{symbol: r.Symbol, name: r.Name, weight: r.Weight}
	}
	return T, nil
}

// Lookup returns the element with exactly the given symbol. "CO" is not "Co".
func (T *Table) Lookup(symbol string) (*Element, bool) {
	e, ok := T.bySymbol[symbol]
	return e, ok
}

// Len returns the number of distinct elements in the table.
func (T *Table) Len() int {
	return len(T.bySymbol)
}

// Duplicates returns how many records were ignored because their symbol
// was already in the table.
func (T *Table) Duplicates() int {
	return T.duplicates
}

// Elements returns all the elements in the table, sorted by symbol.
func (T *Table) Elements() []*Element {
	ret := make([]*Element, 0, len(T.bySymbol))
	for _, v := range T.bySymbol {
		ret = append(ret, v)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].symbol < ret[j].symbol })
	return ret
}

// Records returns the table contents as records, sorted by symbol.
// Useful to write a table back to a file.
func (T *Table) Records() []Record {
	els := T.Elements()
	ret := make([]Record, len(els))
	for i, v := range els {
		ret[i] = Record{Weight: v.weight, Symbol: v.symbol, Name: v.name}
	}
	return ret
}
