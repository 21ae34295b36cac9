/*
 * json_test.go, part of molmass.
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
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/molmass"
)

func TestEncoderStream(t *testing.T) {
	table, err := molmass.NewTable(molmass.DefaultRecords())
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, in := range []string{"H2O", "Xx2", "123"} {
		r, err := molmass.Evaluate(table, in)
		require.NoError(t, enc.Encode(in, r, err))
	}

	var lines [][]byte
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		lines = append(lines, append([]byte(nil), sc.Bytes()...))
	}
	require.Len(t, lines, 3)

	res, jerr, err := Decode(lines[0])
	require.NoError(t, err)
	require.Nil(t, jerr)
	assert.Equal(t, "H2O", res.Input)
	assert.InDelta(t, 18.015, res.Weight, 1e-9)
	assert.Equal(t, []string{"Hydrogen", "Oxygen"}, res.Elements)
	assert.Equal(t, "The elements are Hydrogen and Oxygen", res.Sentence)
	require.Len(t, res.Parts, 2)
	assert.Equal(t, "H", res.Parts[0].Symbol)
	assert.Equal(t, 2, res.Parts[0].Count)
	assert.InDelta(t, 1.0, res.Parts[0].Fraction+res.Parts[1].Fraction, 1e-9)

	res, jerr, err = Decode(lines[1])
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, "unknown_symbol", jerr.Kind)
	assert.Equal(t, "Xx", jerr.Symbol)
	assert.Equal(t, []string{"Xx: no such element", "Xx2: not a valid compound"}, jerr.Messages)

	_, jerr, err = Decode(lines[2])
	require.NoError(t, err)
	assert.Equal(t, "empty", jerr.Kind)
	assert.Empty(t, jerr.Symbol)
}

func TestNewErrorOther(t *testing.T) {
	J := NewError("H2O", errors.New("boom"))
	assert.True(t, J.IsError)
	assert.Equal(t, "other", J.Kind)
	assert.Equal(t, "boom", J.Error())
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}
