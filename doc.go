/*
 * doc.go, part of molmass.
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

/*
Package molmass computes the molar mass of a compound written as a plain
formula ("H2O", "C6H12O6") and lists the elements it contains.

	**molmass Capabilities**

    A reference Table of element symbols, names and atomic weights, built once
	from records (see the tables package for reading them from files) and
	safe to share between goroutines.

    Tokenize splits a formula into (symbol, quantity) tokens. Symbols are an
	uppercase letter plus an optional lowercase one; quantities are the digits
	right after the symbol, 1 if there are none. Anything else is skipped.

    Compute weighs the tokens against a table. An unknown symbol makes the whole
	formula invalid; no partial weight is ever returned.

    FormatNames gives the sorted list of elements as an English sentence.

    Evaluate does all of the above for one formula.

Groups with multipliers ("Mg(OH)2"), isotopes and charges are not supported.

The batch, massjson and massplot packages build on this one to weigh many
formulas at once, serialize results, and plot compositions.
*/
package molmass
