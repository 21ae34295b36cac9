/*
 * interfaces.go, part of molmass.
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

import "fmt"

// Looker is anything that can resolve an element symbol. *Table is the
// only implementation in this module, but Compute only needs this.
type Looker interface {
	//Lookup returns the element with the exact (case-sensitive) symbol
	//given, and false if there is none.
	Lookup(symbol string) (*Element, bool)
}

//Errors

// Error is the interface for errors that all packages in this module implement.
// The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function (plus, optionally, "FunctionName: extra info")
	//to the trail of the error and returns the trail. An empty string just returns
	//the current trail.
	Decorate(string) []string
}

// EmptyTableError is returned when a reference table is built from zero records.
// There is nothing meaningful to compute without one, so callers should stop.
type EmptyTableError struct {
	Source string //where the records came from, if known.
	deco   []string
}

func (E *EmptyTableError) Error() string {
	if E.Source == "" {
		return "no atomic weights there!"
	}
	return fmt.Sprintf("%s: no atomic weights there!", E.Source)
}

// Decorate adds dec to the call trail of the error, and returns the trail.
func (E *EmptyTableError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// errDecorate decorates err with caller if err implements Error.
// Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
