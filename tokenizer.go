/*
 * tokenizer.go, part of molmass.
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
	"strconv"
)

// Token is one element symbol in a formula, with the number of atoms
// that follow it.
type Token struct {
	Symbol   string
	Quantity int
}

func (T Token) String() string {
	return fmt.Sprintf("%s%d", T.Symbol, T.Quantity)
}

// scanner walks a formula one byte at a time. Formulas are ASCII; any
// byte of a multi-byte character is just "not an uppercase letter".
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

// peek returns the current byte, or 0 at the end of the input.
func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() { s.pos++ }

// digits consumes the maximal run of decimal digits at the cursor and
// returns it. Returns "" without moving if there is none.
func (s *scanner) digits() string {
	start := s.pos
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.src[start:s.pos]
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Tokenize splits a formula into (symbol, quantity) tokens, left to right.
// A symbol is an uppercase letter, optionally followed by one lowercase
// letter. The digits right after a symbol are its quantity, 1 if there are none.
//
// Anything that does not start a symbol is skipped silently: "H2 O" and
// "H2-O" give the same tokens as "H2O", and "h2O" gives just O.
// Tokenize does not check symbols against any table.
//
// A quantity of all zeros, or one too large for an int, is returned as 0
// so Compute can reject it.
func Tokenize(input string) []Token {
	var tokens []Token
	s := &scanner{src: input}
	for !s.done() {
		c := s.peek()
		s.advance()
		if !isUpper(c) {
			continue
		}
		symbol := input[s.pos-1 : s.pos]
		if isLower(s.peek()) {
			s.advance()
			symbol = input[s.pos-2 : s.pos]
		}
		quantity := 1
		if run := s.digits(); run != "" {
			q, err := strconv.Atoi(run)
			if err != nil {
				q = 0
			}
			quantity = q
		}
		tokens = append(tokens, Token{Symbol: symbol, Quantity: quantity})
	}
	return tokens
}
