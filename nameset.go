/*
 * nameset.go, part of molmass.
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

// NameSet is a set of strings that remembers the order in which they
// were first added. The zero value is ready to use.
type NameSet struct {
	order []string
	index map[string]int
}

// NewNameSet returns a set containing names, in order, without repeats.
func NewNameSet(names ...string) *NameSet {
	N := new(NameSet)
	for _, v := range names {
		N.Add(v)
	}
	return N
}

// Add puts name in the set. It returns false, and does nothing, if name
// was already there.
func (N *NameSet) Add(name string) bool {
	if N.index == nil {
		N.index = make(map[string]int)
	}
	if _, ok := N.index[name]; ok {
		return false
	}
	N.index[name] = len(N.order)
	N.order = append(N.order, name)
	return true
}

// Has returns true if name is in the set.
func (N *NameSet) Has(name string) bool {
	if N == nil {
		return false
	}
	_, ok := N.index[name]
	return ok
}

// Len returns the number of names in the set.
func (N *NameSet) Len() int {
	if N == nil {
		return 0
	}
	return len(N.order)
}

// Names returns a copy of the names in the order they were first added.
func (N *NameSet) Names() []string {
	if N == nil {
		return nil
	}
	ret := make([]string, len(N.order))
	copy(ret, N.order)
	return ret
}

// Sorted returns a copy of the names in byte-wise lexicographic order
// (case-sensitive and locale-independent).
func (N *NameSet) Sorted() []string {
	ret := N.Names()
	sort.Strings(ret)
	return ret
}
