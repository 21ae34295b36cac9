/*
 * atomicdata.go, part of molmass.
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

//Standard atomic weights (IUPAC, abridged), for
//the common "bio-elements" only. Use a table file
//for anything else.
var defaultElements = []Record{
	{1.008, "H", "Hydrogen"},
	{4.0026, "He", "Helium"},
	{6.94, "Li", "Lithium"},
	{9.0122, "Be", "Beryllium"},
	{10.81, "B", "Boron"},
	{12.011, "C", "Carbon"},
	{14.007, "N", "Nitrogen"},
	{15.999, "O", "Oxygen"},
	{18.998, "F", "Fluorine"},
	{22.990, "Na", "Sodium"},
	{24.305, "Mg", "Magnesium"},
	{26.982, "Al", "Aluminium"},
	{28.085, "Si", "Silicon"},
	{30.974, "P", "Phosphorus"},
	{32.06, "S", "Sulfur"},
	{35.45, "Cl", "Chlorine"},
	{39.098, "K", "Potassium"},
	{40.078, "Ca", "Calcium"},
	{51.996, "Cr", "Chromium"},
	{54.938, "Mn", "Manganese"},
	{55.845, "Fe", "Iron"},
	{58.933, "Co", "Cobalt"},
	{58.693, "Ni", "Nickel"},
	{63.546, "Cu", "Copper"},
	{65.38, "Zn", "Zinc"},
	{78.971, "Se", "Selenium"},
	{79.904, "Br", "Bromine"},
	{95.95, "Mo", "Molybdenum"},
	{126.90, "I", "Iodine"},
}

// DefaultRecords returns a copy of the built-in reference records.
func DefaultRecords() []Record {
	ret := make([]Record, len(defaultElements))
	copy(ret, defaultElements)
	return ret
}
