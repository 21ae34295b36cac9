/*
 * json.go, part of molmass.
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

package massjson

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/rmera/molmass"
)

// A ready-to-serialize container for one element of a compound.
type Part struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"` //mass fraction
}

// A ready-to-serialize container for a weighed formula.
type Result struct {
	Input    string   `json:"input"`
	Weight   float64  `json:"weight"`
	Elements []string `json:"elements"` //names, sorted
	Sentence string   `json:"sentence"`
	Parts    []Part   `json:"parts"`
}

// NewResult builds a Result from R.
func NewResult(R *molmass.Report) *Result {
	fr := R.Compound.Fractions()
	ret := &Result{
		Input:    R.Input,
		Weight:   R.Compound.Weight,
		Elements: R.Compound.Names.Sorted(),
		Sentence: R.Sentence,
		Parts:    make([]Part, len(R.Compound.Parts)),
	}
	for i, p := range R.Compound.Parts {
		ret.Parts[i] = Part{Symbol: p.Element.Symbol(), Name: p.Element.Name(), Count: p.Count, Fraction: fr[i]}
	}
	return ret
}

// An easily JSON-serializable error.
type Error struct {
	IsError  bool     `json:"is_error"` //always true, so errors are easy to tell from results in a stream.
	Input    string   `json:"input"`
	Kind     string   `json:"kind"`             //"empty", "unknown_symbol", "bad_quantity" or "other"
	Symbol   string   `json:"symbol,omitempty"` //the offending symbol, if any
	Messages []string `json:"messages"`
}

// Error implements the error interface
func (J *Error) Error() string {
	return strings.Join(J.Messages, "; ")
}

// NewError builds an Error for the formula input that failed with err.
func NewError(input string, err error) *Error {
	J := &Error{IsError: true, Input: input, Kind: "other", Messages: []string{err.Error()}}
	var ferr *molmass.FormulaError
	if !errors.As(err, &ferr) {
		return J
	}
	J.Symbol = ferr.Symbol
	J.Messages = ferr.Messages()
	switch {
	case errors.Is(err, molmass.ErrEmptyFormula):
		J.Kind = "empty"
	case errors.Is(err, molmass.ErrUnknownSymbol):
		J.Kind = "unknown_symbol"
	case errors.Is(err, molmass.ErrBadQuantity):
		J.Kind = "bad_quantity"
	}
	return J
}

// Encoder writes results and errors as a stream of JSON objects, one per line.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes the result of evaluating input: R if err is nil, an Error otherwise.
func (E *Encoder) Encode(input string, R *molmass.Report, err error) error {
	if err != nil {
		return E.enc.Encode(NewError(input, err))
	}
	return E.enc.Encode(NewResult(R))
}

// Decode reads one line produced by an Encoder back, returning either
// a *Result or an *Error.
func Decode(line []byte) (*Result, *Error, error) {
	var probe struct {
		IsError bool `json:"is_error"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return nil, nil, err
	}
	if probe.IsError {
		J := new(Error)
		if err := json.Unmarshal(line, J); err != nil {
			return nil, nil, err
		}
		return nil, J, nil
	}
	R := new(Result)
	if err := json.Unmarshal(line, R); err != nil {
		return nil, nil, err
	}
	return R, nil, nil
}
